package bot

import (
	"math/rand"
	"testing"

	"spades/internal/domain"
)

func TestEasyBotChooseBid(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want domain.BidValue
	}{
		{
			name: "counts aces and kings",
			hand: []domain.Card{
				{Suit: domain.Hearts, Rank: domain.Ace},
				{Suit: domain.Clubs, Rank: domain.King},
				{Suit: domain.Diamonds, Rank: domain.Queen},
				{Suit: domain.Spades, Rank: 7},
			},
			want: 2,
		},
		{
			name: "never below one",
			hand: []domain.Card{
				{Suit: domain.Hearts, Rank: 2},
				{Suit: domain.Clubs, Rank: 5},
				{Suit: domain.Diamonds, Rank: 9},
			},
			want: 1,
		},
	}

	b := &EasyBot{rng: rand.New(rand.NewSource(1))}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewGameState(domain.ModePartnership, domain.Easy, "You")
			p := s.PlayerAt(domain.West)
			p.Hand = tt.hand
			if got := b.ChooseBid(s, p); got != tt.want {
				t.Errorf("ChooseBid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEasyBotChooseCardIsLegal(t *testing.T) {
	b := &EasyBot{rng: rand.New(rand.NewSource(2))}
	s := domain.NewGameState(domain.ModePartnership, domain.Easy, "You")
	s.Phase = domain.PhasePlaying
	s.CurrentTrick = domain.Trick{{Player: domain.East, Card: domain.Card{Suit: domain.Hearts, Rank: 8}}}
	p := s.PlayerAt(domain.South)
	p.Hand = []domain.Card{
		{Suit: domain.Hearts, Rank: 3},
		{Suit: domain.Hearts, Rank: domain.Jack},
		{Suit: domain.Clubs, Rank: 9},
		{Suit: domain.Spades, Rank: domain.Ace},
	}

	for i := 0; i < 50; i++ {
		card, err := b.ChooseCard(s, p)
		if err != nil {
			t.Fatalf("ChooseCard: %v", err)
		}
		if card.Suit != domain.Hearts {
			t.Fatalf("easy bot broke follow-suit with %v", card)
		}
	}
}
