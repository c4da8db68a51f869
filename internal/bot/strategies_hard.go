package bot

import (
	"math"

	"spades/internal/bot/internal"
	"spades/internal/domain"
)

// HardBot refines the medium heuristics with suit-support weighting for
// honors, distribution bonuses and partner awareness: it tempers its bid
// against a strong partner bid, and both covers and avoids exposing a
// partner's Nil during play.
type HardBot struct{}

func (b *HardBot) ChooseBid(state *domain.GameState, player *domain.Player) domain.BidValue {
	hand := player.Hand

	// Stricter Nil test: no top honors at all and a short spade holding.
	highCards := internal.CountRank(hand, domain.Ace) + internal.CountRank(hand, domain.King)
	if highCards == 0 && internal.CountSuit(hand, domain.Spades) <= 3 {
		return domain.BidNil
	}

	points := 0.0
	for _, c := range hand {
		support := internal.CountSuit(hand, c.Suit)
		switch c.Rank {
		case domain.Ace:
			points++
		case domain.King:
			if support >= 2 {
				points++
			} else {
				points += 0.5
			}
		case domain.Queen:
			if support >= 3 {
				points += 0.75
			}
		}
		if c.Suit == domain.Spades && c.Rank >= domain.Queen {
			points += 0.5
		}
	}

	for s := domain.Hearts; s <= domain.Clubs; s++ {
		switch internal.CountSuit(hand, s) {
		case 0:
			points += 2
		case 1:
			points++
		}
	}

	if state.Mode == domain.ModePartnership {
		if partner, ok := state.PartnerOf(player.Position); ok {
			if bid, placed := state.BidOf(partner); placed && !bid.IsNil() && bid >= 5 {
				points--
			}
		}
	}

	bid := int(math.Round(points))
	if bid < 1 {
		bid = 1
	}
	return domain.BidValue(bid)
}

func (b *HardBot) ChooseCard(state *domain.GameState, player *domain.Player) (domain.Card, error) {
	valid, err := legalCards(state, player)
	if err != nil {
		return domain.Card{}, err
	}
	if len(valid) == 1 {
		return valid[0], nil
	}

	partnerNil := false
	if partner, ok := state.PartnerOf(player.Position); ok {
		if bid, placed := state.BidOf(partner); placed && bid.IsNil() {
			partnerNil = true
		}
	}

	trick := state.CurrentTrick
	if len(trick) == 0 {
		if partnerNil {
			// Never hand a nil partner a spade lead to cover.
			if nonSpades := internal.NonSpades(valid); len(nonSpades) > 0 {
				return internal.Lowest(nonSpades), nil
			}
			return internal.Lowest(valid), nil
		}
		return chooseLead(state, player, valid), nil
	}

	winning := domain.WinningPlay(trick).Card
	partnerHasTrick := partnerWinning(state, player)
	inSuit := internal.FilterSuit(valid, trick.LeadSuit())

	if partnerNil && !partnerHasTrick {
		// Win the trick away from the nil partner as cheaply as possible.
		if len(inSuit) > 0 {
			if winners := internal.CardsAbove(inSuit, winning); len(winners) > 0 {
				return internal.Lowest(winners), nil
			}
			return internal.Lowest(inSuit), nil
		}
		if spades := internal.FilterSuit(valid, domain.Spades); len(spades) > 0 {
			if winning.Suit != domain.Spades {
				return internal.Lowest(spades), nil
			}
			if over := internal.CardsAbove(spades, winning); len(over) > 0 {
				return internal.Lowest(over), nil
			}
		}
		return internal.Lowest(valid), nil
	}

	if len(inSuit) > 0 {
		return chooseFollow(inSuit, winning, partnerHasTrick), nil
	}
	return chooseVoid(state, player, valid, winning, partnerHasTrick), nil
}
