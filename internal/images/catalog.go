// Package images отдает ссылки на подготовленные визуальные ресурсы сцен.
// Генерация и кеширование картинок живут снаружи; здесь только манифест
// имен и базовый URL раздачи.
package images

import (
	"fmt"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

var defaultBackgrounds = map[string]string{
	"casino_lobby":    "backgrounds/casino_lobby.png",
	"casino_interior": "backgrounds/casino_interior.png",
	"casino_bar":      "backgrounds/casino_bar.png",
	"casino_tables":   "backgrounds/casino_tables.png",
	"casino_vip":      "backgrounds/casino_vip.png",
}

// Базовые портреты. Эмоция персонажа намеренно не участвует в выборе
// картинки, всегда используется базовый портрет.
var defaultPortraits = map[models.SpeakerID]string{
	models.SpeakerHero:      "characters/hero.png",
	models.SpeakerBartender: "characters/bartender.png",
	models.SpeakerDealer:    "characters/dealer.png",
	models.SpeakerTarget:    "characters/target.png",
	models.SpeakerEmployee:  "characters/employee.png",
}

// Catalog is a manifest-backed models.ImageBindings. A miss returns nil,
// which is a valid, non-fatal answer: the scene plays without the visual.
type Catalog struct {
	log         *zap.Logger
	baseURL     string
	backgrounds map[string]string
	portraits   map[models.SpeakerID]string
}

var _ models.ImageBindings = (*Catalog)(nil)

// NewCatalog creates a catalog serving the built-in manifest from baseURL.
func NewCatalog(log *zap.Logger, baseURL string) *Catalog {
	return &Catalog{
		log:         log.Named("Images"),
		baseURL:     baseURL,
		backgrounds: defaultBackgrounds,
		portraits:   defaultPortraits,
	}
}

// GetBackground реализует models.ImageBindings.
func (c *Catalog) GetBackground(sceneName string) *models.ImageRef {
	path, ok := c.backgrounds[sceneName]
	if !ok {
		c.log.Debug("фон отсутствует в манифесте", zap.String("name", sceneName))
		return nil
	}
	return &models.ImageRef{
		Name: sceneName,
		URL:  fmt.Sprintf("%s/%s", c.baseURL, path),
	}
}

// GetCharacterImage реализует models.ImageBindings.
func (c *Catalog) GetCharacterImage(name models.SpeakerID) *models.ImageRef {
	path, ok := c.portraits[name]
	if !ok {
		c.log.Debug("портрет отсутствует в манифесте", zap.String("name", string(name)))
		return nil
	}
	return &models.ImageRef{
		Name: string(name),
		URL:  fmt.Sprintf("%s/%s", c.baseURL, path),
	}
}
