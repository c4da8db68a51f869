package app

import (
	"errors"
	"math/rand"
	"time"

	"spades/internal/domain"
)

var (
	ErrWrongPhase    = errors.New("action not allowed in current phase")
	ErrNotYourTurn   = errors.New("not this seat's turn")
	ErrAlreadyBid    = errors.New("seat has already bid this round")
	ErrInvalidBid    = errors.New("bid value out of range")
	ErrNotInHand     = errors.New("card not in hand")
	ErrIllegalCard   = errors.New("card is not a legal play")
	ErrAlreadyScored = errors.New("round already scored")
)

// Service applies game transitions. Every transition takes the current
// snapshot, works on a deep clone and returns the clone, so callers never
// observe partial mutation and may keep old snapshots around freely.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// NewGame creates a fresh game in the given mode and deals the first round.
func (s *Service) NewGame(mode domain.Mode, difficulty domain.Difficulty, humanName string) (*domain.GameState, Event) {
	state := domain.NewGameState(mode, difficulty, humanName)
	next, ev, _ := s.StartRound(state)
	return next, ev
}

// StartRound rotates the dealer, clears round state and deals 13 cards to
// each seat. Legal on a freshly created game or after the previous round has
// been scored.
func (s *Service) StartRound(state *domain.GameState) (*domain.GameState, Event, error) {
	if state.Round > 0 && !(state.Phase == domain.PhaseScoring && state.Scored) {
		return state, Event{Kind: EventNone}, ErrWrongPhase
	}

	next := state.Clone()
	next.Round++
	next.Dealer = next.Dealer.Next()
	next.Bids = nil
	next.Tricks = nil
	next.CurrentTrick = nil
	next.SpadesBroken = false
	next.Scored = false
	next.Phase = domain.PhaseBidding

	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())
	for i := range next.Players {
		next.Players[i].Hand = nil
	}
	for i, card := range deck {
		p := &next.Players[i%4]
		p.Hand = append(p.Hand, card)
	}
	for i := range next.Players {
		domain.SortHand(next.Players[i].Hand)
	}
	for i := range next.Teams {
		next.Teams[i].Bid = 0
		next.Teams[i].TricksWon = 0
	}

	next.CurrentPlayer = int(next.Dealer.Next())

	return next, Event{
		Kind:    EventDealt,
		Payload: DealtPayload{Round: next.Round, Dealer: next.Dealer},
	}, nil
}

// SubmitBid records one seat's bid. On the fourth bid the team bids are
// aggregated and the phase moves to playing, with the lead staying on the
// first bidder.
func (s *Service) SubmitBid(state *domain.GameState, pos domain.Position, value domain.BidValue) (*domain.GameState, Event, error) {
	if state.Phase != domain.PhaseBidding {
		return state, Event{Kind: EventNone}, ErrWrongPhase
	}
	if state.Players[state.CurrentPlayer].Position != pos {
		return state, Event{Kind: EventNone}, ErrNotYourTurn
	}
	if _, ok := state.BidOf(pos); ok {
		return state, Event{Kind: EventNone}, ErrAlreadyBid
	}
	if !value.Valid() {
		return state, Event{Kind: EventNone}, ErrInvalidBid
	}

	next := state.Clone()
	next.Bids = append(next.Bids, domain.Bid{Player: pos, Value: value})
	next.CurrentPlayer = (next.CurrentPlayer + 1) % 4

	complete := len(next.Bids) == 4
	if complete {
		domain.CalculateTeamBids(next)
		next.Phase = domain.PhasePlaying
	}

	return next, Event{
		Kind:    EventBidPlaced,
		Payload: BidPlacedPayload{Player: pos, Value: value, BiddingComplete: complete},
	}, nil
}

// PlayCard validates and applies one card play for the seat whose turn it
// is. Completing a trick passes the lead to the winner; completing the
// thirteenth trick moves the round to scoring.
func (s *Service) PlayCard(state *domain.GameState, pos domain.Position, card domain.Card) (*domain.GameState, Event, error) {
	if state.Phase != domain.PhasePlaying {
		return state, Event{Kind: EventNone}, ErrWrongPhase
	}
	if state.Players[state.CurrentPlayer].Position != pos {
		return state, Event{Kind: EventNone}, ErrNotYourTurn
	}
	player := state.PlayerAt(pos)
	if !domain.ContainsCard(player.Hand, card) {
		return state, Event{Kind: EventNone}, ErrNotInHand
	}
	if !domain.ContainsCard(domain.ValidCards(player.Hand, state.CurrentTrick, state.SpadesBroken), card) {
		return state, Event{Kind: EventNone}, ErrIllegalCard
	}

	next := state.Clone()
	p := next.PlayerAt(pos)
	p.Hand = domain.RemoveCard(p.Hand, card)

	broke := !next.SpadesBroken && card.Suit == domain.Spades
	if card.Suit == domain.Spades {
		next.SpadesBroken = true
	}

	next.CurrentTrick = append(next.CurrentTrick, domain.Play{Player: pos, Card: card})

	if !next.CurrentTrick.Complete() {
		next.CurrentPlayer = (next.CurrentPlayer + 1) % 4
		return next, Event{
			Kind:    EventCardPlayed,
			Payload: CardPlayedPayload{Play: domain.Play{Player: pos, Card: card}, BrokeSpades: broke},
		}, nil
	}

	trick := next.CurrentTrick
	winner := domain.TrickWinner(trick)
	next.TeamOf(next.PlayerAt(winner).Team).TricksWon++
	next.Tricks = append(next.Tricks, trick)
	next.CurrentTrick = nil
	next.CurrentPlayer = int(winner)

	roundOver := len(next.Tricks) == 13
	if roundOver {
		next.Phase = domain.PhaseScoring
	}

	return next, Event{
		Kind: EventTrickWon,
		Payload: TrickWonPayload{
			Winner:      winner,
			Trick:       trick,
			RoundOver:   roundOver,
			BrokeSpades: broke,
		},
	}, nil
}

// ScoreRound applies round scoring exactly once per round and decides
// whether the game is over. The game-over thresholds are only consulted
// here, never mid-round.
func (s *Service) ScoreRound(state *domain.GameState) (*domain.GameState, Event, error) {
	if state.Phase != domain.PhaseScoring {
		return state, Event{Kind: EventNone}, ErrWrongPhase
	}
	if state.Scored {
		return state, Event{Kind: EventNone}, ErrAlreadyScored
	}

	next := state.Clone()
	results := domain.ScoreRound(next)
	next.Scored = true

	over := next.IsGameOver()
	if over {
		next.Phase = domain.PhaseGameOver
	}

	return next, Event{
		Kind:    EventScored,
		Payload: ScoredPayload{Results: results, GameOver: over},
	}, nil
}
