package domain

import "fmt"

// Position is a compass seat at the table. Turn order cycles through the
// declaration order: South, West, North, East.
type Position int

const (
	South Position = iota
	West
	North
	East
)

var positionNames = [4]string{"South", "West", "North", "East"}

func (p Position) String() string { return positionNames[p] }

// Next returns the seat that acts after p.
func (p Position) Next() Position { return (p + 1) % 4 }

// Mode selects how the four seats are grouped into teams.
type Mode int

const (
	// ModePartnership pairs South/North against West/East.
	ModePartnership Mode = iota
	// ModeIndividual scores every seat for itself.
	ModeIndividual
)

func (m Mode) String() string {
	if m == ModePartnership {
		return "Partnership"
	}
	return "Individual"
}

// Difficulty selects the AI tier used for every computer seat.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [3]string{"Easy", "Medium", "Hard"}

func (d Difficulty) String() string { return difficultyNames[d] }

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseBidding Phase = iota
	PhasePlaying
	PhaseScoring
	PhaseGameOver
)

var phaseNames = [4]string{"bidding", "playing", "scoring", "game over"}

func (p Phase) String() string { return phaseNames[p] }

// BidValue is a declared bid: 1..13 tricks, or one of the zero-trick
// sentinels. Blind Nil is modeled but never produced by the bots or the
// bidding prompt.
type BidValue int

const (
	BidNil      BidValue = -1
	BidBlindNil BidValue = -2
)

// Tricks returns the number of tricks the bid contributes to a team bid.
// Nil and Blind Nil contribute zero.
func (b BidValue) Tricks() int {
	if b < 0 {
		return 0
	}
	return int(b)
}

// IsNil reports whether the bid is a zero-trick bet.
func (b BidValue) IsNil() bool { return b == BidNil || b == BidBlindNil }

// Valid reports whether b is a playable bid value.
func (b BidValue) Valid() bool {
	return b.IsNil() || (b >= 1 && b <= 13)
}

func (b BidValue) String() string {
	switch b {
	case BidNil:
		return "Nil"
	case BidBlindNil:
		return "Blind Nil"
	}
	return fmt.Sprintf("%d", int(b))
}

// Bid records one player's declared bid for the round.
type Bid struct {
	Player Position
	Value  BidValue
}

// Play is a single card laid into a trick.
type Play struct {
	Player Position
	Card   Card
}

// Trick is an ordered sequence of plays. The first entry's suit is the lead
// suit; a complete trick holds exactly four plays.
type Trick []Play

// LeadSuit returns the suit led on this trick. Only valid when the trick is
// non-empty.
func (t Trick) LeadSuit() Suit { return t[0].Card.Suit }

// Complete reports whether all four seats have played.
func (t Trick) Complete() bool { return len(t) == 4 }

// Player holds one seat's state.
type Player struct {
	Position Position
	Name     string
	Hand     []Card
	IsAI     bool
	Team     string
}

// Team groups one or two seats and carries their cumulative score, running
// bag count, aggregate round bid and round trick count.
type Team struct {
	Name      string
	Players   []Position
	Score     int
	Bags      int
	Bid       int
	TricksWon int
}

// GameState is the single authoritative snapshot of a game. Transitions are
// applied to a clone and swapped whole, never edited in place.
type GameState struct {
	Players       []Player
	Teams         []Team
	Bids          []Bid
	Tricks        []Trick
	CurrentTrick  Trick
	CurrentPlayer int
	Dealer        Position
	SpadesBroken  bool
	Phase         Phase
	Round         int
	Scored        bool
	Mode          Mode
	Difficulty    Difficulty
}

// NewGameState builds the pre-deal state for a fresh game. The dealer starts
// at East and rotates before every deal, so South deals round one and West
// bids first.
func NewGameState(mode Mode, difficulty Difficulty, humanName string) *GameState {
	if humanName == "" {
		humanName = "You"
	}
	var players []Player
	var teams []Team
	if mode == ModePartnership {
		players = []Player{
			{Position: South, Name: humanName, Team: "Team 1"},
			{Position: West, Name: "West", IsAI: true, Team: "Team 2"},
			{Position: North, Name: "North", IsAI: true, Team: "Team 1"},
			{Position: East, Name: "East", IsAI: true, Team: "Team 2"},
		}
		teams = []Team{
			{Name: "Team 1", Players: []Position{South, North}},
			{Name: "Team 2", Players: []Position{West, East}},
		}
	} else {
		players = []Player{
			{Position: South, Name: humanName, Team: humanName},
			{Position: West, Name: "West", IsAI: true, Team: "West"},
			{Position: North, Name: "North", IsAI: true, Team: "North"},
			{Position: East, Name: "East", IsAI: true, Team: "East"},
		}
		teams = []Team{
			{Name: humanName, Players: []Position{South}},
			{Name: "West", Players: []Position{West}},
			{Name: "North", Players: []Position{North}},
			{Name: "East", Players: []Position{East}},
		}
	}
	return &GameState{
		Players:    players,
		Teams:      teams,
		Dealer:     East,
		Phase:      PhaseBidding,
		Mode:       mode,
		Difficulty: difficulty,
	}
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	out := *s
	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p
		out.Players[i].Hand = append([]Card(nil), p.Hand...)
	}
	out.Teams = make([]Team, len(s.Teams))
	for i, t := range s.Teams {
		out.Teams[i] = t
		out.Teams[i].Players = append([]Position(nil), t.Players...)
	}
	out.Bids = append([]Bid(nil), s.Bids...)
	out.Tricks = make([]Trick, len(s.Tricks))
	for i, t := range s.Tricks {
		out.Tricks[i] = append(Trick(nil), t...)
	}
	out.CurrentTrick = append(Trick(nil), s.CurrentTrick...)
	return &out
}

// PlayerAt returns the player seated at pos.
func (s *GameState) PlayerAt(pos Position) *Player {
	for i := range s.Players {
		if s.Players[i].Position == pos {
			return &s.Players[i]
		}
	}
	return nil
}

// TeamOf returns the team with the given name.
func (s *GameState) TeamOf(name string) *Team {
	for i := range s.Teams {
		if s.Teams[i].Name == name {
			return &s.Teams[i]
		}
	}
	return nil
}

// PartnerOf returns the other seat on pos's team. ok is false in Individual
// mode, where every seat plays alone.
func (s *GameState) PartnerOf(pos Position) (Position, bool) {
	me := s.PlayerAt(pos)
	for i := range s.Players {
		p := &s.Players[i]
		if p.Position != pos && p.Team == me.Team {
			return p.Position, true
		}
	}
	return 0, false
}

// BidOf returns pos's recorded bid for the round.
func (s *GameState) BidOf(pos Position) (BidValue, bool) {
	for _, b := range s.Bids {
		if b.Player == pos {
			return b.Value, true
		}
	}
	return 0, false
}

// CardsPlayed counts cards already laid into completed tricks this round.
func (s *GameState) CardsPlayed() int {
	n := 0
	for _, t := range s.Tricks {
		n += len(t)
	}
	return n
}
