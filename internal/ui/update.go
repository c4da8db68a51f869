package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"spades/internal/app"
	"spades/internal/domain"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case aiMoveMsg:
		if msg.game != m.gameID {
			return m, nil
		}
		return m.handleAIMove()

	case trickClearMsg:
		if msg.game != m.gameID {
			return m, nil
		}
		return m.handleTrickClear()

	case nextRoundMsg:
		if msg.game != m.gameID {
			return m, nil
		}
		return m.handleNextRound()
	}

	if m.screen == screenName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {

	case screenMenu:
		switch key {
		case "q":
			return m, tea.Quit
		case "enter", " ":
			m.screen = screenMode
		}

	case screenMode:
		switch key {
		case "q":
			return m, tea.Quit
		case "up", "k", "down", "j":
			if m.mode == domain.ModePartnership {
				m.mode = domain.ModeIndividual
			} else {
				m.mode = domain.ModePartnership
			}
		case "enter", " ":
			m.screen = screenDifficulty
		case "esc":
			m.screen = screenMenu
		}

	case screenDifficulty:
		switch key {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.difficulty > domain.Easy {
				m.difficulty--
			}
		case "down", "j":
			if m.difficulty < domain.Hard {
				m.difficulty++
			}
		case "enter", " ":
			m.screen = screenName
			m.nameInput.Focus()
			return m, textinput.Blink
		case "esc":
			m.screen = screenMode
		}

	case screenName:
		switch key {
		case "enter":
			m.nameInput.Blur()
			cmd := m.startGame()
			return m, cmd
		case "esc":
			m.nameInput.Blur()
			m.screen = screenDifficulty
		default:
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}

	case screenGame:
		if key == "esc" {
			m.exitToMenu()
			return m, nil
		}
		return m.handleGameKey(key)

	case screenGameOver:
		switch key {
		case "q":
			return m, tea.Quit
		case "r", "enter":
			cmd := m.startGame()
			return m, cmd
		case "m", "esc":
			m.exitToMenu()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleGameKey(key string) (tea.Model, tea.Cmd) {
	if !m.humanTurn() {
		return m, nil
	}

	switch m.state.Phase {

	case domain.PhaseBidding:
		switch key {
		case "up", "k":
			m.bidNil = false
			if m.humanBid < 13 {
				m.humanBid++
			}
		case "down", "j":
			m.bidNil = false
			if m.humanBid > 1 {
				m.humanBid--
			}
		case "n":
			m.bidNil = !m.bidNil
		case "enter", " ":
			value := domain.BidValue(m.humanBid)
			if m.bidNil {
				value = domain.BidNil
			}
			return m.submitBid(domain.South, value)
		}

	case domain.PhasePlaying:
		switch key {
		case "left", "h":
			m.moveSelection(-1)
		case "right", "l":
			m.moveSelection(1)
		case "enter", " ":
			hand := m.human().Hand
			if len(hand) == 0 {
				return m, nil
			}
			if !m.legalMask()[m.selected] {
				m.banner = "That card is not legal, pick a highlighted one"
				return m, nil
			}
			return m.playCard(domain.South, hand[m.selected])
		}
	}
	return m, nil
}

func (m Model) handleAIMove() (tea.Model, tea.Cmd) {
	pos := domain.Position(m.state.CurrentPlayer)
	player := m.state.PlayerAt(pos)
	if !player.IsAI {
		cmd := m.afterTurnChange()
		return m, cmd
	}

	switch m.state.Phase {
	case domain.PhaseBidding:
		return m.submitBid(pos, m.brain.ChooseBid(m.state, player))
	case domain.PhasePlaying:
		card, err := m.brain.ChooseCard(m.state, player)
		if err != nil {
			m.banner = err.Error()
			return m, nil
		}
		return m.playCard(pos, card)
	}
	return m, nil
}

func (m Model) submitBid(pos domain.Position, value domain.BidValue) (tea.Model, tea.Cmd) {
	next, ev, err := m.svc.SubmitBid(m.state, pos, value)
	if err != nil {
		return m, nil
	}
	m.state = next

	if p, ok := ev.Payload.(app.BidPlacedPayload); ok {
		name := m.state.PlayerAt(p.Player).Name
		m.banner = fmt.Sprintf("%s bids %s", name, p.Value)
		if p.BiddingComplete {
			m.banner = fmt.Sprintf("%s bids %s · play begins", name, p.Value)
		}
	}
	cmd := m.afterTurnChange()
	return m, cmd
}

func (m Model) playCard(pos domain.Position, card domain.Card) (tea.Model, tea.Cmd) {
	next, ev, err := m.svc.PlayCard(m.state, pos, card)
	if err != nil {
		return m, nil
	}
	m.state = next

	switch p := ev.Payload.(type) {

	case app.CardPlayedPayload:
		m.banner = fmt.Sprintf("%s plays %s", m.state.PlayerAt(p.Play.Player).Name, p.Play.Card)
		if p.BrokeSpades {
			m.banner += " · spades are broken!"
		}
		cmd := m.afterTurnChange()
		return m, cmd

	case app.TrickWonPayload:
		m.showTrick = true
		m.lastTrick = p.Trick
		m.trickWinner = p.Winner
		m.banner = fmt.Sprintf("%s wins the trick", m.state.PlayerAt(p.Winner).Name)
		if p.BrokeSpades {
			m.banner += " · spades are broken!"
		}
		return m, m.tick(m.cfg.TrickPauseMs, trickClearMsg{m.gameID})
	}
	return m, nil
}

func (m Model) handleTrickClear() (tea.Model, tea.Cmd) {
	m.showTrick = false
	m.lastTrick = nil

	if m.state.Phase == domain.PhaseScoring {
		next, ev, err := m.svc.ScoreRound(m.state)
		if err != nil {
			return m, nil
		}
		m.state = next
		if p, ok := ev.Payload.(app.ScoredPayload); ok {
			m.results = p.Results
			m.showScores = true
			if p.GameOver {
				m.banner = "Game over"
				return m, m.tick(m.cfg.ScorePauseMs, nextRoundMsg{m.gameID})
			}
		}
		m.banner = fmt.Sprintf("Round %d scored", m.state.Round)
		return m, m.tick(m.cfg.ScorePauseMs, nextRoundMsg{m.gameID})
	}

	cmd := m.afterTurnChange()
	return m, cmd
}

func (m Model) handleNextRound() (tea.Model, tea.Cmd) {
	m.showScores = false
	m.results = nil

	if m.state.Phase == domain.PhaseGameOver {
		m.screen = screenGameOver
		return m, nil
	}

	next, _, err := m.svc.StartRound(m.state)
	if err != nil {
		return m, nil
	}
	m.state = next
	m.selected = 0
	m.humanBid = 3
	m.bidNil = false
	m.banner = fmt.Sprintf("Round %d · place your bids", m.state.Round)
	return m, m.tick(m.cfg.DealPauseMs, aiMoveMsg{m.gameID})
}
