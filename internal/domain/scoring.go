package domain

const (
	// WinScore ends the game when any team reaches it.
	WinScore = 500
	// LoseScore ends the game when any team falls to it.
	LoseScore = -200
	// BagLimit is the running bag count that triggers a penalty.
	BagLimit = 10
	// BagPenalty is the score cost per complete group of BagLimit bags.
	BagPenalty = 100
	// NilBonus is the reward for a made Nil and the cost of a failed one.
	NilBonus = 100
)

// NilResult records the outcome of one seat's Nil bid.
type NilResult struct {
	Player Position
	Made   bool
	Tricks int
}

// TeamRoundResult is the scoring breakdown for one team in one round.
type TeamRoundResult struct {
	Team      string
	Bid       int
	TricksWon int
	MadeBid   bool
	Delta     int // total score change, including nils and bag penalties
	BagsAdded int
	Penalties int // number of 100-point bag penalties applied
	Nils      []NilResult
}

// CalculateTeamBids sums each team's member bids into its aggregate round
// bid. Nil and Blind Nil contribute zero. Summation replaces the previous
// aggregate, so recomputation with unchanged bids is a no-op.
func CalculateTeamBids(s *GameState) {
	for i := range s.Teams {
		team := &s.Teams[i]
		total := 0
		for _, pos := range team.Players {
			if bid, ok := s.BidOf(pos); ok {
				total += bid.Tricks()
			}
		}
		team.Bid = total
	}
}

// tricksWonBy counts completed tricks taken by the given seat this round.
func tricksWonBy(s *GameState, pos Position) int {
	n := 0
	for _, trick := range s.Tricks {
		if TrickWinner(trick) == pos {
			n++
		}
	}
	return n
}

// ScoreRound applies end-of-round scoring to the state's teams and returns
// the per-team breakdown.
//
// A made numeric bid earns 10 per bid trick plus 1 per overtrick; overtricks
// accumulate as bags. A failed bid loses 10 per bid trick. Each Nil bidder is
// scored independently: +100 when they took no tricks, otherwise -100 with
// their tricks counted as team bags. After the round delta is applied, every
// complete group of ten running bags costs 100 points and the remainder
// carries over.
func ScoreRound(s *GameState) []TeamRoundResult {
	results := make([]TeamRoundResult, 0, len(s.Teams))
	for i := range s.Teams {
		team := &s.Teams[i]
		res := TeamRoundResult{Team: team.Name, TricksWon: team.TricksWon}

		if s.Mode == ModePartnership {
			res.Bid = 0
			for _, pos := range team.Players {
				if bid, ok := s.BidOf(pos); ok {
					res.Bid += bid.Tricks()
				}
			}
			team.Bid = res.Bid

			res.MadeBid = team.TricksWon >= res.Bid
			if res.MadeBid {
				overtricks := team.TricksWon - res.Bid
				res.Delta += res.Bid*10 + overtricks
				res.BagsAdded += overtricks
			} else {
				res.Delta -= res.Bid * 10
			}

			for _, pos := range team.Players {
				bid, ok := s.BidOf(pos)
				if !ok || !bid.IsNil() {
					continue
				}
				taken := tricksWonBy(s, pos)
				nr := NilResult{Player: pos, Made: taken == 0, Tricks: taken}
				if nr.Made {
					res.Delta += NilBonus
				} else {
					res.Delta -= NilBonus
					res.BagsAdded += taken
				}
				res.Nils = append(res.Nils, nr)
			}
		} else {
			pos := team.Players[0]
			bid, _ := s.BidOf(pos)
			if bid.IsNil() {
				nr := NilResult{Player: pos, Made: team.TricksWon == 0, Tricks: team.TricksWon}
				if nr.Made {
					res.Delta = NilBonus
				} else {
					res.Delta = -NilBonus
					res.BagsAdded = team.TricksWon
				}
				res.Nils = append(res.Nils, nr)
			} else {
				res.Bid = bid.Tricks()
				team.Bid = res.Bid
				res.MadeBid = team.TricksWon >= res.Bid
				if res.MadeBid {
					overtricks := team.TricksWon - res.Bid
					res.Delta = res.Bid*10 + overtricks
					res.BagsAdded = overtricks
				} else {
					res.Delta = -res.Bid * 10
				}
			}
		}

		team.Score += res.Delta
		total := team.Bags + res.BagsAdded
		if total >= BagLimit {
			res.Penalties = total / BagLimit
			penalty := res.Penalties * BagPenalty
			team.Score -= penalty
			team.Bags = total % BagLimit
			res.Delta -= penalty
		} else {
			team.Bags = total
		}
		results = append(results, res)
	}
	return results
}

// IsGameOver reports whether any team has crossed a terminal score. Checked
// only after scoring, never mid-round.
func (s *GameState) IsGameOver() bool {
	for _, t := range s.Teams {
		if t.Score >= WinScore || t.Score <= LoseScore {
			return true
		}
	}
	return false
}

// LeadingTeam returns the team with the highest score.
func (s *GameState) LeadingTeam() Team {
	best := s.Teams[0]
	for _, t := range s.Teams[1:] {
		if t.Score > best.Score {
			best = t
		}
	}
	return best
}
