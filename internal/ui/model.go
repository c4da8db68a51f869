package ui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"spades/internal/app"
	"spades/internal/bot"
	"spades/internal/config"
	"spades/internal/domain"
)

type screen int

const (
	screenMenu screen = iota
	screenMode
	screenDifficulty
	screenName
	screenGame
	screenGameOver
)

// Pacing messages. Each carries the id of the game that scheduled it so a
// restart invalidates every timer still in flight.
type aiMoveMsg struct{ game uuid.UUID }
type trickClearMsg struct{ game uuid.UUID }
type nextRoundMsg struct{ game uuid.UUID }

// Model is the bubbletea model for the whole program. The rules live in the
// app and domain packages; this layer only routes input and schedules pacing.
type Model struct {
	svc   *app.Service
	cfg   *config.GameConfig
	brain bot.Brain

	state  *domain.GameState
	gameID uuid.UUID

	screen     screen
	menuCursor int
	mode       domain.Mode
	difficulty domain.Difficulty
	nameInput  textinput.Model

	// Card selection and the human bid widget.
	selected int
	humanBid int
	bidNil   bool

	// Trick and score reveals held on screen between pacing ticks.
	showTrick   bool
	lastTrick   domain.Trick
	trickWinner domain.Position
	showScores  bool
	results     []domain.TeamRoundResult

	banner string
	width  int
	height int
}

func NewModel(cfg *config.GameConfig) Model {
	ti := textinput.New()
	ti.Placeholder = "You"
	ti.CharLimit = 12
	ti.Width = 16
	if cfg.PlayerName != "" {
		ti.SetValue(cfg.PlayerName)
	}

	return Model{
		svc:        app.NewService(rand.New(rand.NewSource(time.Now().UnixNano()))),
		cfg:        cfg,
		mode:       parseMode(cfg.DefaultMode),
		difficulty: parseDifficulty(cfg.DefaultDifficulty),
		nameInput:  ti,
		humanBid:   3,
		banner:     "Welcome to Spades",
	}
}

func parseMode(s string) domain.Mode {
	if s == "individual" {
		return domain.ModeIndividual
	}
	return domain.ModePartnership
}

func parseDifficulty(s string) domain.Difficulty {
	switch s {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	}
	return domain.Medium
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) startGame() tea.Cmd {
	brain, err := bot.NewBrain(m.difficulty, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		m.banner = err.Error()
		return nil
	}
	m.brain = brain

	name := m.nameInput.Value()
	m.state, _ = m.svc.NewGame(m.mode, m.difficulty, name)
	m.gameID = uuid.New()
	m.screen = screenGame
	m.selected = 0
	m.humanBid = 3
	m.bidNil = false
	m.showTrick = false
	m.showScores = false
	m.results = nil
	m.banner = "Round 1 · place your bids"
	return m.afterTurnChange()
}

// exitToMenu abandons the running game and returns to mode selection. The
// fresh game id makes every tick still in flight stale, so no timer from the
// abandoned game can fire into the next one.
func (m *Model) exitToMenu() {
	m.gameID = uuid.New()
	m.state = nil
	m.brain = nil
	m.showTrick = false
	m.lastTrick = nil
	m.showScores = false
	m.results = nil
	m.screen = screenMode
	m.banner = "Welcome to Spades"
}

// afterTurnChange schedules the AI when it is a bot's turn, or points the
// banner and card cursor at the human.
func (m *Model) afterTurnChange() tea.Cmd {
	if m.showTrick || m.showScores {
		return nil
	}
	switch m.state.Phase {
	case domain.PhaseBidding, domain.PhasePlaying:
	default:
		return nil
	}

	current := m.state.PlayerAt(domain.Position(m.state.CurrentPlayer))
	if current.IsAI {
		return m.tick(m.cfg.AIDelayMs, aiMoveMsg{m.gameID})
	}
	if m.state.Phase == domain.PhaseBidding {
		m.banner = "Your bid: ↑/↓ adjust, N for nil, ENTER to confirm"
	} else {
		m.banner = "Your turn: ←/→ select a card, ENTER to play"
		m.snapSelection()
	}
	return nil
}

func (m Model) tick(ms int, msg tea.Msg) tea.Cmd {
	return tea.Tick(time.Duration(ms)*time.Millisecond, func(time.Time) tea.Msg {
		return msg
	})
}

// human returns the south seat.
func (m Model) human() *domain.Player {
	return m.state.PlayerAt(domain.South)
}

func (m Model) humanTurn() bool {
	if m.state == nil || m.showTrick || m.showScores {
		return false
	}
	return domain.Position(m.state.CurrentPlayer) == domain.South
}

// legalMask marks which cards of the human hand are playable right now.
func (m Model) legalMask() []bool {
	hand := m.human().Hand
	mask := make([]bool, len(hand))
	valid := domain.ValidCards(hand, m.state.CurrentTrick, m.state.SpadesBroken)
	for i, c := range hand {
		mask[i] = domain.ContainsCard(valid, c)
	}
	return mask
}

// snapSelection keeps the cursor on a legal card.
func (m *Model) snapSelection() {
	hand := m.human().Hand
	if len(hand) == 0 {
		return
	}
	if m.selected >= len(hand) {
		m.selected = len(hand) - 1
	}
	mask := m.legalMask()
	if !mask[m.selected] {
		for i, ok := range mask {
			if ok {
				m.selected = i
				return
			}
		}
	}
}

func (m *Model) moveSelection(dir int) {
	hand := m.human().Hand
	if len(hand) == 0 {
		return
	}
	mask := m.legalMask()
	next := m.selected + dir
	for next >= 0 && next < len(hand) {
		if mask[next] {
			m.selected = next
			return
		}
		next += dir
	}
}
