package bot

import (
	"math"

	"spades/internal/bot/internal"
	"spades/internal/domain"
)

// MediumBot weighs honors, spade length and voids when bidding, tries Nil
// on weak hands, and plays the shared lead/follow/void heuristics.
type MediumBot struct{}

func (b *MediumBot) ChooseBid(state *domain.GameState, player *domain.Player) domain.BidValue {
	hand := player.Hand

	// Nil on a hand with no ace, at most one king and no spade honor.
	highSpades := 0
	for _, c := range hand {
		if c.Suit == domain.Spades && c.Rank >= domain.Queen {
			highSpades++
		}
	}
	if internal.CountRank(hand, domain.Ace) == 0 &&
		internal.CountRank(hand, domain.King) <= 1 &&
		highSpades == 0 {
		return domain.BidNil
	}

	points := 0.0
	for _, c := range hand {
		if c.Rank >= domain.King {
			points++
		}
		if c.Suit == domain.Spades && c.Rank >= 10 && c.Rank <= domain.Queen {
			points += 0.5
		}
	}
	if spadeCount := internal.CountSuit(hand, domain.Spades); spadeCount >= 4 {
		points += float64(spadeCount - 3)
	}
	points += float64(len(internal.VoidSuits(hand)))

	bid := int(math.Round(points))
	if bid < 1 {
		bid = 1
	}
	if bid > 8 {
		bid = 8
	}
	return domain.BidValue(bid)
}

func (b *MediumBot) ChooseCard(state *domain.GameState, player *domain.Player) (domain.Card, error) {
	valid, err := legalCards(state, player)
	if err != nil {
		return domain.Card{}, err
	}
	if len(valid) == 1 {
		return valid[0], nil
	}

	trick := state.CurrentTrick
	if len(trick) == 0 {
		return chooseLead(state, player, valid), nil
	}

	winning := domain.WinningPlay(trick).Card
	partnerHasTrick := partnerWinning(state, player)

	if inSuit := internal.FilterSuit(valid, trick.LeadSuit()); len(inSuit) > 0 {
		return chooseFollow(inSuit, winning, partnerHasTrick), nil
	}
	return chooseVoid(state, player, valid, winning, partnerHasTrick), nil
}
