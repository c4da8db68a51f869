package bot

import "spades/internal/domain"

// Brain is the interface all AI strategies implement. Implementations read
// only the acting player's own hand plus the public parts of the state and
// never mutate their inputs.
type Brain interface {
	// ChooseBid returns the bid this seat should declare for the round.
	ChooseBid(state *domain.GameState, player *domain.Player) domain.BidValue
	// ChooseCard selects a legal card for this seat's turn. It fails only
	// when the seat has no legal card, which a correct state machine never
	// allows before the round ends.
	ChooseCard(state *domain.GameState, player *domain.Player) (domain.Card, error)
}
