package bot

import (
	"errors"

	"spades/internal/bot/internal"
	"spades/internal/domain"
)

// ErrNoLegalCard is returned when a seat has no playable card. The state
// machine guarantees every active seat holds at least one legal card until
// the round ends, so seeing this error means the caller's state is corrupt.
var ErrNoLegalCard = errors.New("no legal card to play")

// legalCards returns the acting player's legal set, or an error on the
// unreachable empty case.
func legalCards(state *domain.GameState, player *domain.Player) ([]domain.Card, error) {
	valid := domain.ValidCards(player.Hand, state.CurrentTrick, state.SpadesBroken)
	if len(valid) == 0 {
		return nil, ErrNoLegalCard
	}
	return valid, nil
}

// partnerWinning reports whether the player's partner currently holds the
// trick. Always false in Individual mode and on an empty trick.
func partnerWinning(state *domain.GameState, player *domain.Player) bool {
	if len(state.CurrentTrick) == 0 {
		return false
	}
	partner, ok := state.PartnerOf(player.Position)
	return ok && domain.TrickWinner(state.CurrentTrick) == partner
}

// chooseLead picks an opening card for a trick. Shared by the Medium and
// Hard tiers.
//
// With the team's bid already met it dumps the lowest card to conserve
// strength. Otherwise it cashes a non-spade ace or king, considers a high
// spade late in the round once spades are broken, and falls back to the
// longest non-spade suit.
func chooseLead(state *domain.GameState, player *domain.Player, valid []domain.Card) domain.Card {
	team := state.TeamOf(player.Team)
	if team.TricksWon >= team.Bid {
		return internal.Lowest(valid)
	}

	nonSpades := internal.NonSpades(valid)

	aceKings := make([]domain.Card, 0, len(nonSpades))
	for _, c := range nonSpades {
		if c.Rank >= domain.King {
			aceKings = append(aceKings, c)
		}
	}
	if len(aceKings) > 0 {
		return internal.Highest(aceKings)
	}

	if state.SpadesBroken {
		if spades := internal.FilterSuit(valid, domain.Spades); len(spades) > 0 {
			high := internal.Highest(spades)
			if state.CardsPlayed() > 26 || high.Rank >= domain.King {
				return high
			}
		}
	}

	if suit, ok := internal.LongestSuit(nonSpades); ok {
		return internal.Highest(internal.FilterSuit(nonSpades, suit))
	}
	if len(nonSpades) > 0 {
		return internal.Lowest(nonSpades)
	}
	return internal.Lowest(valid)
}

// chooseFollow picks a card when the player can follow the lead suit; valid
// is then exactly the in-suit holding. With the partner winning it ducks
// low; otherwise it plays the cheapest card that still takes the trick, or
// its lowest when it cannot win.
func chooseFollow(valid []domain.Card, winning domain.Card, partnerHasTrick bool) domain.Card {
	if partnerHasTrick {
		return internal.Lowest(valid)
	}
	if winners := internal.CardsAbove(valid, winning); len(winners) > 0 {
		return internal.Lowest(winners)
	}
	return internal.Lowest(valid)
}

// chooseVoid picks a card when the player cannot follow suit. Partner
// winning means a safe discard; a team still short of its bid trumps with
// the cheapest sufficient spade; otherwise it sluffs the lowest non-spade.
func chooseVoid(state *domain.GameState, player *domain.Player, valid []domain.Card, winning domain.Card, partnerHasTrick bool) domain.Card {
	nonSpades := internal.NonSpades(valid)
	spades := internal.FilterSuit(valid, domain.Spades)

	if partnerHasTrick {
		if len(nonSpades) > 0 {
			return internal.Lowest(nonSpades)
		}
		return internal.Lowest(valid)
	}

	team := state.TeamOf(player.Team)
	if team.TricksWon < team.Bid && len(spades) > 0 {
		if winning.Suit != domain.Spades {
			return internal.Lowest(spades)
		}
		if over := internal.CardsAbove(spades, winning); len(over) > 0 {
			return internal.Lowest(over)
		}
	}

	if len(nonSpades) > 0 {
		return internal.Lowest(nonSpades)
	}
	return internal.Lowest(valid)
}
