package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

// Suit identifies one of the four card suits. The declaration order is the
// display order used when sorting hands.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var (
	suitSymbols = [4]string{"♠", "♥", "♦", "♣"}
	suitNames   = [4]string{"Spades", "Hearts", "Diamonds", "Clubs"}
)

func (s Suit) Symbol() string { return suitSymbols[s] }
func (s Suit) Name() string   { return suitNames[s] }

// Rank is the face value of a card, 2 through 14 with aces high.
type Rank int

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return fmt.Sprintf("%d", int(r))
}

// Card is an immutable (suit, rank) value. A standard deck holds exactly one
// of each combination.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string { return c.Rank.String() + c.Suit.Symbol() }

// IsZero reports whether c is the empty placeholder value, not a real card.
func (c Card) IsZero() bool { return c.Rank == 0 }

// NewDeck returns the 52-card deck in suit-major, rank-minor order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Rank(2); r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a uniformly shuffled copy of the given deck using a
// Fisher-Yates walk from the top of the slice down.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SortHand orders a hand for display: suits grouped in declaration order,
// descending rank within each suit.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit != cards[j].Suit {
			return cards[i].Suit < cards[j].Suit
		}
		return cards[i].Rank > cards[j].Rank
	})
}

// RemoveCard returns hand without the first occurrence of card.
func RemoveCard(hand []Card, card Card) []Card {
	out := make([]Card, 0, len(hand))
	removed := false
	for _, c := range hand {
		if !removed && c == card {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}

// ContainsCard reports whether the hand holds the given card.
func ContainsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}
