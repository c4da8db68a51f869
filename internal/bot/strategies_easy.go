package bot

import (
	"math/rand"

	"spades/internal/bot/internal"
	"spades/internal/domain"
)

// EasyBot bids by counting top honors and plays a uniformly random legal
// card. It never bids Nil.
type EasyBot struct {
	rng *rand.Rand
}

func (b *EasyBot) ChooseBid(state *domain.GameState, player *domain.Player) domain.BidValue {
	count := internal.CountRank(player.Hand, domain.Ace) + internal.CountRank(player.Hand, domain.King)
	if count < 1 {
		count = 1
	}
	return domain.BidValue(count)
}

func (b *EasyBot) ChooseCard(state *domain.GameState, player *domain.Player) (domain.Card, error) {
	valid, err := legalCards(state, player)
	if err != nil {
		return domain.Card{}, err
	}
	if len(valid) == 1 {
		return valid[0], nil
	}
	return valid[b.rng.Intn(len(valid))], nil
}
