// Package internal holds card heuristics shared by the bot strategies.
package internal

import (
	"sort"

	"spades/internal/domain"
)

// SortByRank returns a copy of cards ordered by rank, ascending or
// descending. Suits are ignored, matching how the strategies weigh cards.
func SortByRank(cards []domain.Card, ascending bool) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Rank > out[j].Rank
	})
	return out
}

// Lowest returns the lowest-ranked card. Panics on an empty slice; the
// strategies only call it after checking.
func Lowest(cards []domain.Card) domain.Card { return SortByRank(cards, true)[0] }

// Highest returns the highest-ranked card.
func Highest(cards []domain.Card) domain.Card { return SortByRank(cards, false)[0] }

// FilterSuit returns the cards of the given suit.
func FilterSuit(cards []domain.Card, suit domain.Suit) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// NonSpades returns the cards outside the trump suit.
func NonSpades(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.Suit != domain.Spades {
			out = append(out, c)
		}
	}
	return out
}

// CardsAbove returns the cards that would beat the current winning card,
// honoring trump rules.
func CardsAbove(cards []domain.Card, winning domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if domain.Beats(c, winning) {
			out = append(out, c)
		}
	}
	return out
}

// CountSuit counts cards of the given suit.
func CountSuit(cards []domain.Card, suit domain.Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

// CountRank counts cards of the given rank.
func CountRank(cards []domain.Card, rank domain.Rank) int {
	n := 0
	for _, c := range cards {
		if c.Rank == rank {
			n++
		}
	}
	return n
}

// LongestSuit returns the suit with the most cards among the given cards.
// ok is false when the slice is empty. Ties resolve to the suit seen first
// in suit declaration order, keeping the choice deterministic.
func LongestSuit(cards []domain.Card) (domain.Suit, bool) {
	if len(cards) == 0 {
		return 0, false
	}
	var counts [4]int
	for _, c := range cards {
		counts[c.Suit]++
	}
	best := domain.Spades
	for s := domain.Spades; s <= domain.Clubs; s++ {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best, true
}

// VoidSuits returns the suits the hand holds no cards of.
func VoidSuits(cards []domain.Card) []domain.Suit {
	var counts [4]int
	for _, c := range cards {
		counts[c.Suit]++
	}
	var out []domain.Suit
	for s := domain.Spades; s <= domain.Clubs; s++ {
		if counts[s] == 0 {
			out = append(out, s)
		}
	}
	return out
}
