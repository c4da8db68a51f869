package domain

import "testing"

func TestValidCardsFollowSuit(t *testing.T) {
	hand := []Card{
		{Suit: Hearts, Rank: 4},
		{Suit: Hearts, Rank: Queen},
		{Suit: Clubs, Rank: 9},
		{Suit: Spades, Rank: Ace},
	}
	trick := Trick{{Player: West, Card: Card{Suit: Hearts, Rank: 7}}}

	valid := ValidCards(hand, trick, false)
	if len(valid) != 2 {
		t.Fatalf("expected 2 hearts, got %v", valid)
	}
	for _, c := range valid {
		if c.Suit != Hearts {
			t.Errorf("non-heart %v returned while holding hearts", c)
		}
	}
}

func TestValidCardsVoidInLeadSuit(t *testing.T) {
	hand := []Card{
		{Suit: Clubs, Rank: 9},
		{Suit: Spades, Rank: Ace},
	}
	trick := Trick{{Player: West, Card: Card{Suit: Hearts, Rank: 7}}}

	valid := ValidCards(hand, trick, false)
	if len(valid) != len(hand) {
		t.Fatalf("void player should have whole hand legal, got %v", valid)
	}
}

func TestValidCardsOpeningLead(t *testing.T) {
	mixed := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Hearts, Rank: 4},
		{Suit: Clubs, Rank: 9},
	}
	allSpades := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: 3},
	}

	tests := []struct {
		name         string
		hand         []Card
		spadesBroken bool
		wantSpades   bool
		wantLen      int
	}{
		{"unbroken excludes spades", mixed, false, false, 2},
		{"broken allows everything", mixed, true, true, 3},
		{"only spades left forces spades", allSpades, false, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := ValidCards(tt.hand, nil, tt.spadesBroken)
			if len(valid) != tt.wantLen {
				t.Fatalf("got %d legal cards, want %d", len(valid), tt.wantLen)
			}
			hasSpade := false
			for _, c := range valid {
				if c.Suit == Spades {
					hasSpade = true
				}
			}
			if hasSpade != tt.wantSpades {
				t.Errorf("spades legal = %v, want %v", hasSpade, tt.wantSpades)
			}
		})
	}
}

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name  string
		trick Trick
		want  Position
	}{
		{
			name: "highest in lead suit wins",
			trick: Trick{
				{South, Card{Hearts, 7}},
				{West, Card{Hearts, King}},
				{North, Card{Hearts, 2}},
				{East, Card{Hearts, Ace}},
			},
			want: East,
		},
		{
			name: "low spade trumps high lead suit",
			trick: Trick{
				{South, Card{Diamonds, 7}},
				{West, Card{Diamonds, King}},
				{North, Card{Spades, 2}},
				{East, Card{Diamonds, Ace}},
			},
			want: North,
		},
		{
			name: "highest spade wins among trumps",
			trick: Trick{
				{South, Card{Clubs, Queen}},
				{West, Card{Spades, 5}},
				{North, Card{Spades, Jack}},
				{East, Card{Clubs, Ace}},
			},
			want: North,
		},
		{
			name: "off-suit discard never wins",
			trick: Trick{
				{South, Card{Clubs, 3}},
				{West, Card{Hearts, Ace}},
				{North, Card{Clubs, 8}},
				{East, Card{Diamonds, King}},
			},
			want: North,
		},
		{
			name: "partial trick has a winner",
			trick: Trick{
				{South, Card{Hearts, 9}},
				{West, Card{Hearts, 10}},
			},
			want: West,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrickWinner(tt.trick); got != tt.want {
				t.Errorf("TrickWinner() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinningPlay(t *testing.T) {
	trick := Trick{
		{South, Card{Diamonds, 7}},
		{West, Card{Spades, 3}},
	}
	play := WinningPlay(trick)
	if play.Player != West || play.Card != (Card{Spades, 3}) {
		t.Errorf("WinningPlay() = %+v, want West's 3♠", play)
	}
}
