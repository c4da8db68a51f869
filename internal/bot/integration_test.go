package bot

import (
	"fmt"
	"math/rand"
	"testing"

	"spades/internal/app"
	"spades/internal/domain"
)

// TestBrainsDriveFullRounds runs complete rounds through the state machine
// with a brain on every seat, for each difficulty and mode. Every bid must
// be accepted as placed and every chosen card must survive the legality
// checks in PlayCard.
func TestBrainsDriveFullRounds(t *testing.T) {
	difficulties := []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard}
	modes := []domain.Mode{domain.ModePartnership, domain.ModeIndividual}

	for _, diff := range difficulties {
		for _, mode := range modes {
			t.Run(fmt.Sprintf("%s_%s", diff, mode), func(t *testing.T) {
				rng := rand.New(rand.NewSource(7))
				svc := app.NewService(rng)
				brain, err := NewBrain(diff, rng)
				if err != nil {
					t.Fatal(err)
				}

				state, _ := svc.NewGame(mode, diff, "You")
				for round := 0; round < 3; round++ {
					for len(state.Bids) < 4 {
						pos := domain.Position(state.CurrentPlayer)
						bid := brain.ChooseBid(state, state.PlayerAt(pos))
						if !bid.Valid() {
							t.Fatalf("round %d: %v produced invalid bid %v", round, pos, bid)
						}
						state, _, err = svc.SubmitBid(state, pos, bid)
						if err != nil {
							t.Fatalf("round %d: bid by %v rejected: %v", round, pos, err)
						}
					}

					for state.Phase == domain.PhasePlaying {
						pos := domain.Position(state.CurrentPlayer)
						card, err := brain.ChooseCard(state, state.PlayerAt(pos))
						if err != nil {
							t.Fatalf("round %d: %v found no card: %v", round, pos, err)
						}
						state, _, err = svc.PlayCard(state, pos, card)
						if err != nil {
							t.Fatalf("round %d: %v played illegal %v: %v", round, pos, card, err)
						}
					}

					if state.Phase != domain.PhaseScoring {
						t.Fatalf("round %d ended in phase %v", round, state.Phase)
					}
					state, _, err = svc.ScoreRound(state)
					if err != nil {
						t.Fatal(err)
					}
					if state.Phase == domain.PhaseGameOver {
						return
					}
					state, _, err = svc.StartRound(state)
					if err != nil {
						t.Fatal(err)
					}
				}
			})
		}
	}
}

// TestNilBiddersKeepHandsLegal checks that a brain never strands itself: on
// hands engineered toward Nil bids, ChooseCard still always returns a legal
// card for every trick of the round.
func TestNilBiddersKeepHandsLegal(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		svc := app.NewService(rng)
		brain, err := NewBrain(domain.Hard, rng)
		if err != nil {
			t.Fatal(err)
		}

		state, _ := svc.NewGame(domain.ModePartnership, domain.Hard, "You")
		for len(state.Bids) < 4 {
			pos := domain.Position(state.CurrentPlayer)
			state, _, err = svc.SubmitBid(state, pos, brain.ChooseBid(state, state.PlayerAt(pos)))
			if err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
		}
		for state.Phase == domain.PhasePlaying {
			pos := domain.Position(state.CurrentPlayer)
			card, err := brain.ChooseCard(state, state.PlayerAt(pos))
			if err != nil {
				t.Fatalf("seed %d: %v found no card: %v", seed, pos, err)
			}
			state, _, err = svc.PlayCard(state, pos, card)
			if err != nil {
				t.Fatalf("seed %d: %v rejected for %v: %v", seed, card, pos, err)
			}
		}
	}
}
