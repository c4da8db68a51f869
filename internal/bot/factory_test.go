package bot

import (
	"testing"

	"spades/internal/domain"
)

func TestNewBrainPerDifficulty(t *testing.T) {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		if _, err := NewBrain(d, nil); err != nil {
			t.Errorf("NewBrain(%v) failed: %v", d, err)
		}
	}
	if _, err := NewBrain(domain.Difficulty(99), nil); err == nil {
		t.Error("NewBrain accepted an unknown difficulty")
	}
}

func TestNewBrainNilRNG(t *testing.T) {
	brain, err := NewBrain(domain.Easy, nil)
	if err != nil {
		t.Fatal(err)
	}

	s := playingState(t)
	p := s.PlayerAt(domain.West)
	p.Hand = []domain.Card{
		{Suit: domain.Hearts, Rank: 4},
		{Suit: domain.Hearts, Rank: 9},
		{Suit: domain.Clubs, Rank: 7},
	}
	card, err := brain.ChooseCard(s, p)
	if err != nil {
		t.Fatal(err)
	}
	if !domain.ContainsCard(p.Hand, card) {
		t.Errorf("chose %v, not in hand", card)
	}
}
