package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}
	seen := make(map[Card]bool, 52)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
		if c.Rank < 2 || c.Rank > Ace {
			t.Errorf("rank out of range: %v", c)
		}
	}
	// Deterministic order: suit-major, rank-minor.
	if deck[0] != (Card{Suit: Spades, Rank: 2}) {
		t.Errorf("first card = %v, want 2♠", deck[0])
	}
	if deck[51] != (Card{Suit: Clubs, Rank: Ace}) {
		t.Errorf("last card = %v, want A♣", deck[51])
	}
}

func TestShuffleDeckIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := NewDeck()
	shuffled := ShuffleDeck(rng, deck)

	if len(shuffled) != len(deck) {
		t.Fatalf("shuffle changed deck size: %d", len(shuffled))
	}
	counts := make(map[Card]int)
	for _, c := range shuffled {
		counts[c]++
	}
	for _, c := range deck {
		if counts[c] != 1 {
			t.Errorf("card %v appears %d times after shuffle", c, counts[c])
		}
	}
	// Input must be untouched.
	if deck[0] != (Card{Suit: Spades, Rank: 2}) {
		t.Error("ShuffleDeck mutated its input")
	}
}

func TestShuffleDeckRoughlyUniform(t *testing.T) {
	// The 2♠ starts at index 0; over many shuffles it should land in the
	// first and last positions about equally often.
	rng := rand.New(rand.NewSource(99))
	deck := NewDeck()
	trials := 5200
	first, last := 0, 0
	for i := 0; i < trials; i++ {
		s := ShuffleDeck(rng, deck)
		if s[0] == deck[0] {
			first++
		}
		if s[51] == deck[0] {
			last++
		}
	}
	// Expected count per position is trials/52 = 100.
	for name, got := range map[string]int{"first": first, "last": last} {
		if got < 50 || got > 160 {
			t.Errorf("2♠ in %s position %d times over %d trials, far from uniform", name, got, trials)
		}
	}
}

func TestSortHand(t *testing.T) {
	hand := []Card{
		{Suit: Clubs, Rank: 9},
		{Suit: Spades, Rank: 4},
		{Suit: Hearts, Rank: Ace},
		{Suit: Spades, Rank: King},
		{Suit: Hearts, Rank: 3},
	}
	SortHand(hand)
	want := []Card{
		{Suit: Spades, Rank: King},
		{Suit: Spades, Rank: 4},
		{Suit: Hearts, Rank: Ace},
		{Suit: Hearts, Rank: 3},
		{Suit: Clubs, Rank: 9},
	}
	for i := range want {
		if hand[i] != want[i] {
			t.Fatalf("position %d = %v, want %v", i, hand[i], want[i])
		}
	}
}

func TestRemoveCard(t *testing.T) {
	hand := []Card{
		{Suit: Spades, Rank: 4},
		{Suit: Hearts, Rank: 9},
		{Suit: Clubs, Rank: 2},
	}
	out := RemoveCard(hand, Card{Suit: Hearts, Rank: 9})
	if len(out) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(out))
	}
	if ContainsCard(out, Card{Suit: Hearts, Rank: 9}) {
		t.Error("card still present after removal")
	}
	if !ContainsCard(out, Card{Suit: Spades, Rank: 4}) || !ContainsCard(out, Card{Suit: Clubs, Rank: 2}) {
		t.Error("removal dropped an unrelated card")
	}
}
