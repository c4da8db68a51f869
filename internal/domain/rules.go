package domain

// ValidCards returns the subset of hand that may legally be played onto the
// current trick.
//
// On an opening lead (empty trick), spades are excluded until they have been
// broken; a hand holding nothing but spades may lead them anyway. Otherwise
// the player must follow the lead suit when able, and may play anything when
// void in it.
func ValidCards(hand []Card, currentTrick Trick, spadesBroken bool) []Card {
	if len(currentTrick) == 0 {
		if spadesBroken {
			return append([]Card(nil), hand...)
		}
		nonSpades := make([]Card, 0, len(hand))
		for _, c := range hand {
			if c.Suit != Spades {
				nonSpades = append(nonSpades, c)
			}
		}
		if len(nonSpades) > 0 {
			return nonSpades
		}
		return append([]Card(nil), hand...)
	}

	leadSuit := currentTrick.LeadSuit()
	inSuit := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.Suit == leadSuit {
			inSuit = append(inSuit, c)
		}
	}
	if len(inSuit) > 0 {
		return inSuit
	}
	return append([]Card(nil), hand...)
}

// Beats reports whether challenger wins over the current winning card.
// Spades trump everything; otherwise only a higher card of the winning
// card's own suit wins.
func Beats(challenger, currentWinner Card) bool {
	if challenger.Suit == Spades && currentWinner.Suit != Spades {
		return true
	}
	return challenger.Suit == currentWinner.Suit && challenger.Rank > currentWinner.Rank
}

// TrickWinner returns the seat currently winning the trick. Defined for any
// non-empty trick, complete or partial.
func TrickWinner(trick Trick) Position {
	winner := trick[0].Player
	winning := trick[0].Card
	for _, play := range trick[1:] {
		if Beats(play.Card, winning) {
			winning = play.Card
			winner = play.Player
		}
	}
	return winner
}

// WinningPlay returns the play currently taking the trick.
func WinningPlay(trick Trick) Play {
	winner := TrickWinner(trick)
	for _, play := range trick {
		if play.Player == winner {
			return play
		}
	}
	return trick[0]
}
