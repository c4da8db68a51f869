package app

import "spades/internal/domain"

// EventKind identifies the transition that produced a snapshot, so the
// presentation layer can decide what to animate without re-deriving it.
type EventKind string

const (
	EventNone       EventKind = "none"
	EventDealt      EventKind = "dealt"
	EventBidPlaced  EventKind = "bid_placed"
	EventCardPlayed EventKind = "card_played"
	EventTrickWon   EventKind = "trick_won"
	EventScored     EventKind = "scored"
)

// Event describes the last transition applied to the game state.
type Event struct {
	Kind    EventKind
	Payload any
}

type DealtPayload struct {
	Round  int
	Dealer domain.Position
}

type BidPlacedPayload struct {
	Player domain.Position
	Value  domain.BidValue
	// BiddingComplete is set on the fourth bid, when team bids have been
	// aggregated and play begins.
	BiddingComplete bool
}

type CardPlayedPayload struct {
	Play domain.Play
	// BrokeSpades is set when this play flipped the spades-broken flag.
	BrokeSpades bool
}

type TrickWonPayload struct {
	Winner domain.Position
	Trick  domain.Trick
	// RoundOver is set on the thirteenth trick, when the round moves to
	// scoring.
	RoundOver bool
	// BrokeSpades mirrors CardPlayedPayload for the trick-closing card.
	BrokeSpades bool
}

type ScoredPayload struct {
	Results []domain.TeamRoundResult
	// GameOver is set when a terminal score was reached.
	GameOver bool
}
