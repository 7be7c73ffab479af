package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"lucky-wave-server/internal/config"
	"lucky-wave-server/internal/content"
	"lucky-wave-server/internal/engine"
	"lucky-wave-server/internal/handler"
	"lucky-wave-server/internal/images"
	"lucky-wave-server/internal/messaging"
	"lucky-wave-server/internal/middleware"
	"lucky-wave-server/internal/repository"
	"lucky-wave-server/internal/service"
	"lucky-wave-server/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	log.Println("Запуск Lucky Wave Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Logger initialized", zap.String("logLevel", cfg.LogLevel))

	// Авторский контент проверяется на старте: битая ссылка на сцену
	// роняет сервер здесь, а не посреди прохождения.
	library, err := content.NewLibrary()
	if err != nil {
		zapLogger.Fatal("Ошибка валидации контента", zap.Error(err))
	}
	zapLogger.Info("Контент загружен", zap.Int("chapters", len(library.Chapters())))

	// Redis — хранилище сохранений
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		zapLogger.Fatal("Не удалось подключиться к Redis", zap.Error(err))
	}
	cancelPing()
	zapLogger.Info("Успешное подключение к Redis", zap.String("addr", cfg.RedisAddr))

	// RabbitMQ — канал игровых событий
	rabbitConn, err := connectRabbitMQ(cfg.RabbitMQURL, zapLogger)
	if err != nil {
		zapLogger.Fatal("Не удалось подключиться к RabbitMQ", zap.Error(err))
	}
	defer rabbitConn.Close()
	zapLogger.Info("Успешное подключение к RabbitMQ")

	eventPublisher, err := messaging.NewRabbitMQEventPublisher(rabbitConn, cfg.EventQueueName, zapLogger)
	if err != nil {
		zapLogger.Fatal("Не удалось создать publisher событий", zap.Error(err))
	}
	defer eventPublisher.Close()

	metricsSink := handler.NewMetricsSink(prometheus.DefaultRegisterer)

	saveRepo := repository.NewRedisSaveRepository(redisClient, zapLogger)
	imageCatalog := images.NewCatalog(zapLogger, "/assets")

	sessionService := service.NewSessionService(service.SessionServiceDeps{
		Logger:         zapLogger,
		Library:        library,
		Saves:          saveRepo,
		Images:         imageCatalog,
		Events:         engine.FanOutSink{eventPublisher, metricsSink},
		TypingInterval: cfg.TypingInterval,
		SaveSlots:      cfg.SaveSlots,
	})

	hub := handler.NewHub(zapLogger)
	gameHandler := handler.NewGameHandler(zapLogger, sessionService, library, hub)

	// Настройка Gin
	router := gin.New()
	router.Use(middleware.ZapLogging(zapLogger))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	// регистрирует /metrics и счетчики HTTP-запросов
	ginProm := ginprometheus.NewPrometheus("gin")
	ginProm.Use(router)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"sessions": sessionService.SessionCount(),
		})
	})

	gameHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("HTTP сервер слушает", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Ошибка запуска HTTP сервера", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Получен сигнал завершения, начинаем graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Ошибка при graceful shutdown", zap.Error(err))
	}

	log.Println("Lucky Wave Server успешно остановлен")
}

// connectRabbitMQ пытается подключиться к RabbitMQ с несколькими попытками
func connectRabbitMQ(url string, logger *zap.Logger) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	maxRetries := 5
	retryDelay := 5 * time.Second
	for i := 0; i < maxRetries; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		logger.Warn("Не удалось подключиться к RabbitMQ",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
			zap.Duration("retry_delay", retryDelay),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}
	return nil, err
}
