package minigames

import "math/rand"

type card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c card) String() string { return c.Rank + c.Suit }

var (
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	suits = []string{"♠", "♥", "♦", "♣"}
)

// newDeck returns a shuffled 52-card deck.
func newDeck(rng *rand.Rand) []card {
	deck := make([]card, 0, len(ranks)*len(suits))
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, card{Rank: r, Suit: s})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// handValue computes a blackjack hand value with soft-ace counting: each ace
// contributes 11 unless that would bust the hand, re-evaluated per card.
// [A, 6] = 17, [A, 6, 10] = 17.
func handValue(hand []card) int {
	total, aces := 0, 0
	for _, c := range hand {
		switch c.Rank {
		case "A":
			total += 11
			aces++
		case "J", "Q", "K", "10":
			total += 10
		default:
			// "2".."9"
			total += int(c.Rank[0] - '0')
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func handStrings(hand []card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}
