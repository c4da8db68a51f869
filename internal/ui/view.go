package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spades/internal/domain"
)

var (
	clrBorder = lipgloss.Color("#30363d")
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrGreen  = lipgloss.Color("#3fb950")
	clrRed    = lipgloss.Color("#f85149")
	clrYellow = lipgloss.Color("#f0c862")
	clrWhite  = lipgloss.Color("#e6edf3")
	clrTitle  = lipgloss.Color("#58a6ff")

	suitColors = [4]lipgloss.Color{
		lipgloss.Color("#50FA7B"), // Spades
		lipgloss.Color("#FF6B6B"), // Hearts
		lipgloss.Color("#FFD700"), // Diamonds
		lipgloss.Color("#44AAFF"), // Clubs
	}
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

func padCenter(s string, w int) string {
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(s)
}

func box(content string, w int, borderClr lipgloss.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderClr).
		Width(w).
		Padding(0, 1).
		Render(content)
}

// joinCols places two multi-line blocks side by side, padding both to equal
// height so JoinHorizontal cannot leave fill artifacts.
func joinCols(left, right string, gap int) string {
	ll := strings.Split(left, "\n")
	rl := strings.Split(right, "\n")
	h := len(ll)
	if len(rl) > h {
		h = len(rl)
	}
	lw := maxLineWidth(ll)
	sep := strings.Repeat(" ", gap)
	rows := make([]string, h)
	for i := 0; i < h; i++ {
		l, r := "", ""
		if i < len(ll) {
			l = ll[i]
		}
		if i < len(rl) {
			r = rl[i]
		}
		rows[i] = l + strings.Repeat(" ", lw-lipgloss.Width(l)) + sep + r
	}
	return strings.Join(rows, "\n")
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if lw := lipgloss.Width(l); lw > w {
			w = lw
		}
	}
	return w
}

func cardLines(c domain.Card) []string {
	if c.IsZero() {
		return []string{"┌───┐", "│   │", "│   │", "│   │", "└───┘"}
	}
	r := fmt.Sprintf("%-2s", c.Rank.String())
	b := fmt.Sprintf("%2s", c.Rank.String())
	return []string{
		"┌───┐",
		"│" + r + " │",
		"│ " + c.Suit.Symbol() + " │",
		"│ " + b + "│",
		"└───┘",
	}
}

func renderCard(c domain.Card, selected, valid bool) string {
	clr := suitColors[c.Suit]
	borderClr, textClr := clr, clr
	if selected {
		borderClr = clrGold
	}
	if !valid {
		borderClr, textClr = clrBorder, clrBorder
	}
	lines := cardLines(c)
	out := make([]string, len(lines))
	for i, l := range lines {
		if i == 0 || i == len(lines)-1 {
			out[i] = fg(borderClr).Render(l)
		} else {
			out[i] = fg(textClr).Render(l)
		}
	}
	if selected {
		out[len(out)-1] = fg(clrGold).Render("└─▲─┘")
	}
	return strings.Join(out, "\n")
}

func renderTableCard(c domain.Card) string {
	if c.IsZero() {
		lines := cardLines(c)
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = fg(clrBorder).Faint(true).Render(l)
		}
		return strings.Join(out, "\n")
	}
	clr := suitColors[c.Suit]
	r := fmt.Sprintf("%-2s", c.Rank.String())
	b := fmt.Sprintf("%2s", c.Rank.String())
	return strings.Join([]string{
		bold(clr).Render("╔═══╗"),
		fg(clr).Render("║" + r + " ║"),
		bold(clr).Render("║ " + c.Suit.Symbol() + " ║"),
		fg(clr).Render("║ " + b + "║"),
		bold(clr).Render("╚═══╝"),
	}, "\n")
}

func renderHandRow(hand []domain.Card, selected int, mask []bool, active bool) string {
	if len(hand) == 0 {
		return fg(clrSubtle).Render("(no cards)")
	}
	const cardH = 5
	rows := make([][]string, cardH)
	for i, c := range hand {
		valid := !active || i >= len(mask) || mask[i]
		lines := strings.Split(renderCard(c, active && i == selected, valid), "\n")
		for r := 0; r < cardH && r < len(lines); r++ {
			rows[r] = append(rows[r], lines[r])
		}
	}
	out := make([]string, cardH)
	for i, row := range rows {
		out[i] = strings.Join(row, " ")
	}
	return strings.Join(out, "\n")
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenMode:
		return m.viewMode()
	case screenDifficulty:
		return m.viewDifficulty()
	case screenName:
		return m.viewName()
	case screenGame:
		if m.showScores {
			return m.viewRoundResult()
		}
		if m.state.Phase == domain.PhaseBidding {
			return m.viewBidding()
		}
		return m.viewGame()
	case screenGameOver:
		return m.viewGameOver()
	}
	return ""
}

func (m Model) renderHeader(title string) string {
	left := bold(clrGold).Render("♠ SPADES")
	right := fg(clrSubtle).Render("ESC Menu · Ctrl+C Quit")
	innerW := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 6
	if innerW < 0 {
		innerW = 0
	}
	mid := bold(clrWhite).Width(innerW).Align(lipgloss.Center).Render(title)
	return lipgloss.NewStyle().
		BorderBottom(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(clrBorder).
		Width(m.width-2).Padding(0, 1).
		Render(left + "  " + mid + "  " + right)
}

func (m Model) renderBanner() string {
	return lipgloss.NewStyle().
		BorderTop(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(clrBorder).
		Foreground(clrYellow).
		Width(m.width-2).Padding(0, 2).
		Render(m.banner)
}

func (m Model) bidLabel(pos domain.Position) string {
	bid, ok := m.state.BidOf(pos)
	if !ok {
		return "-"
	}
	return bid.String()
}

func (m Model) seatLabel(pos domain.Position) string {
	p := m.state.PlayerAt(pos)
	won := 0
	for _, trick := range m.state.Tricks {
		if domain.TrickWinner(trick) == pos {
			won++
		}
	}
	label := fmt.Sprintf("%s  bid:%s won:%d", p.Name, m.bidLabel(pos), won)
	if domain.Position(m.state.CurrentPlayer) == pos && !m.showTrick {
		return bold(clrGold).Render("▶ " + label)
	}
	return fg(clrSubtle).Render("  " + label)
}

func (m Model) renderSidePanel(w int) string {
	var sb strings.Builder

	sb.WriteString(bold(clrGold).Render("SCORES") + "\n")
	sb.WriteString(fg(clrBorder).Render(strings.Repeat("─", w-4)) + "\n")
	for i := range m.state.Teams {
		team := &m.state.Teams[i]
		scClr := clrSubtle
		if team.Score > 0 {
			scClr = clrGreen
		} else if team.Score < 0 {
			scClr = clrRed
		}
		sb.WriteString(fg(clrWhite).Render(fmt.Sprintf("%-10s", team.Name)) +
			fg(scClr).Render(fmt.Sprintf("%+d", team.Score)) + "\n")
		sb.WriteString(fg(clrSubtle).Render(fmt.Sprintf("  bags:%d  %d/%d tricks",
			team.Bags, team.TricksWon, team.Bid)) + "\n")
	}

	sb.WriteString("\n" + bold(clrGold).Render("BIDS") + "\n")
	sb.WriteString(fg(clrBorder).Render(strings.Repeat("─", w-4)) + "\n")
	for _, pos := range []domain.Position{domain.South, domain.West, domain.North, domain.East} {
		p := m.state.PlayerAt(pos)
		sb.WriteString("  " + fg(clrWhite).Render(fmt.Sprintf("%-8s", p.Name)) +
			fg(clrSubtle).Render(m.bidLabel(pos)) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fg(clrSubtle).Render(fmt.Sprintf("  Round  %d", m.state.Round)) + "\n")
	sb.WriteString(fg(clrSubtle).Render(fmt.Sprintf("  Trick  %d/13", len(m.state.Tricks)+1)) + "\n")
	broken := fg(clrSubtle).Render("not broken")
	if m.state.SpadesBroken {
		broken = bold(clrGreen).Render("broken")
	}
	sb.WriteString("\n" + fg(clrSubtle).Render("  Spades: ") + broken)

	return box(sb.String(), w, clrBorder)
}

// tableTrick is the trick currently on display, the frozen one during the
// trick-won pause.
func (m Model) tableTrick() domain.Trick {
	if m.showTrick {
		return m.lastTrick
	}
	return m.state.CurrentTrick
}

func (m Model) trickCard(pos domain.Position) domain.Card {
	for _, play := range m.tableTrick() {
		if play.Player == pos {
			return play.Card
		}
	}
	return domain.Card{}
}

func (m Model) renderTableArea(w int) string {
	north := strings.Split(renderTableCard(m.trickCard(domain.North)), "\n")
	west := strings.Split(renderTableCard(m.trickCard(domain.West)), "\n")
	east := strings.Split(renderTableCard(m.trickCard(domain.East)), "\n")
	south := strings.Split(renderTableCard(m.trickCard(domain.South)), "\n")

	const cardW = 5
	center := []string{"     ", "  ┌─┐", "  │♠│", "  └─┘", "     "}

	padW := (w - cardW) / 2
	if padW < 0 {
		padW = 0
	}
	pad := strings.Repeat(" ", padW)

	top := make([]string, len(north))
	for i, l := range north {
		top[i] = pad + l
	}

	sideGap := (w - cardW*2 - 11) / 2
	if sideGap < 0 {
		sideGap = 0
	}
	sp := strings.Repeat(" ", sideGap)
	mid := make([]string, len(center))
	for i := range center {
		mid[i] = sp + west[i] + "  " + fg(clrSubtle).Render(center[i]) + "  " + east[i]
	}

	bot := make([]string, len(south))
	for i, l := range south {
		bot[i] = pad + l
	}

	all := append(top, "")
	all = append(all, mid...)
	all = append(all, "")
	all = append(all, bot...)
	return strings.Join(all, "\n")
}

func (m Model) viewGame() string {
	if m.width < 40 {
		return "Terminal too narrow (min 40 cols)"
	}
	const sideW = 26
	wide := m.width >= 80

	centerW := m.width - 4
	if wide {
		centerW = m.width - sideW - 5
	}
	if centerW < 30 {
		centerW = 30
	}

	header := m.renderHeader(fmt.Sprintf("Round %d  ·  Trick %d/13  ·  Trump: %s",
		m.state.Round, len(m.state.Tricks)+1, bold(clrGreen).Render("♠")))

	northSection := padCenter(m.seatLabel(domain.North), centerW)
	westCol := lipgloss.NewStyle().Width(18).Align(lipgloss.Center).Render(m.seatLabel(domain.West))
	eastCol := lipgloss.NewStyle().Width(18).Align(lipgloss.Center).Render(m.seatLabel(domain.East))

	tableW := centerW - 40
	if tableW < 20 {
		tableW = 20
	}
	midSection := joinCols(joinCols(westCol, m.renderTableArea(tableW), 1), eastCol, 1)

	active := m.humanTurn() && m.state.Phase == domain.PhasePlaying
	southSection := m.seatLabel(domain.South) + "\n" +
		renderHandRow(m.human().Hand, m.selected, m.legalMask(), active)

	centerBox := box(strings.Join([]string{
		northSection, "", midSection, "", southSection,
	}, "\n"), centerW, clrBorder)

	body := centerBox
	if wide {
		body = joinCols(centerBox, m.renderSidePanel(sideW), 2)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, centerBox, m.renderSidePanel(centerW))
	}

	return strings.Join([]string{header, body, m.renderBanner()}, "\n")
}

func (m Model) viewBidding() string {
	header := m.renderHeader(fmt.Sprintf("Round %d  ·  BIDDING", m.state.Round))

	const sideW = 26
	centerW := m.width - sideW - 5
	if centerW < 30 {
		centerW = 30
	}

	hand := m.human().Hand
	var suitHint string
	for s := domain.Spades; s <= domain.Clubs; s++ {
		n := 0
		for _, c := range hand {
			if c.Suit == s {
				n++
			}
		}
		suitHint += fg(suitColors[s]).Render(fmt.Sprintf("%s:%d  ", s.Symbol(), n))
	}
	handBox := box(
		bold(clrSubtle).Render("Your Hand\n")+suitHint+"\n\n"+
			renderHandRow(hand, -1, nil, false),
		centerW, clrBorder)

	bidStr := fmt.Sprintf("   %d   ", m.humanBid)
	if m.bidNil {
		bidStr = "  Nil  "
	}
	widget := strings.Join([]string{
		padCenter(fg(clrSubtle).Render("[ ↑ ]"), 20),
		padCenter(bold(clrGold).Render(bidStr), 20),
		padCenter(fg(clrSubtle).Render("[ ↓ ]"), 20),
		"",
		padCenter(fg(clrSubtle).Render("[ N ] Nil"), 20),
		padCenter(fg(clrGreen).Render("[ ENTER ] Confirm"), 20),
	}, "\n")
	bidBox := box(bold(clrGold).Render("YOUR BID\n\n")+widget, 22, clrGold)

	main := joinCols(handBox, bidBox, 2)
	if centerW < 60 {
		main = lipgloss.JoinVertical(lipgloss.Center, handBox, bidBox)
	}

	var body string
	if m.width >= 80 {
		body = joinCols(main, m.renderSidePanel(sideW), 2)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, main, m.renderSidePanel(m.width-4))
	}

	return strings.Join([]string{header, body, m.renderBanner()}, "\n")
}

func (m Model) viewMenu() string {
	w := m.width
	if w < 40 {
		w = 40
	}

	banner := strings.Join([]string{
		bold(clrGold).Render("╔══════════════════════════╗"),
		bold(clrGold).Render("║  ♠  ") + bold(clrWhite).Render(" S P A D E S ") + bold(clrGold).Render("    ♠  ║"),
		bold(clrGold).Render("╚══════════════════════════╝"),
	}, "\n")

	suits := fg(suitColors[domain.Spades]).Render("♠") + "  " +
		fg(suitColors[domain.Hearts]).Render("♥") + "  " +
		fg(suitColors[domain.Diamonds]).Render("♦") + "  " +
		fg(suitColors[domain.Clubs]).Render("♣")

	rules := []string{
		"♠ Spades are always trump",
		"Follow the lead suit if you can",
		"Bid the tricks you expect to win",
		"Made bid: 10×bid + 1 per overtrick",
		"Missed bid: −10×bid",
		"Nil: +100 made, −100 missed",
		"10 bags cost 100 points",
		"First to 500 wins (−200 loses)",
	}
	rLines := make([]string, len(rules))
	for i, r := range rules {
		rLines[i] = "  " + fg(clrSubtle).Render(r)
	}
	rulesBox := box(
		bold(clrGold).Render("RULES\n")+
			fg(clrBorder).Render(strings.Repeat("─", 34))+"\n"+
			strings.Join(rLines, "\n"),
		38, clrBorder)

	start := bold(clrGreen).Render("[ ENTER ]  Play") +
		"    " + fg(clrSubtle).Render("[ Q ]  Quit")

	content := strings.Join([]string{
		"", banner, "", padCenter(suits, 28), "", rulesBox, "", start, "",
	}, "\n")
	return padCenter(content, w)
}

func (m Model) viewMode() string {
	w := m.width
	if w < 40 {
		w = 40
	}
	items := []struct {
		mode domain.Mode
		desc string
	}{
		{domain.ModePartnership, "You and North against West and East"},
		{domain.ModeIndividual, "Every seat for itself"},
	}
	var lines []string
	for _, it := range items {
		label := fmt.Sprintf("%-12s %s", it.mode, fg(clrSubtle).Render(it.desc))
		if it.mode == m.mode {
			lines = append(lines, bold(clrGold).Render("▶ ")+bold(clrWhite).Render(label))
		} else {
			lines = append(lines, fg(clrSubtle).Render("  "+label))
		}
	}
	content := strings.Join([]string{
		"", bold(clrTitle).Render("GAME MODE"), "",
		strings.Join(lines, "\n"), "",
		fg(clrSubtle).Render("↑/↓ select · ENTER confirm · ESC back"), "",
	}, "\n")
	return padCenter(content, w)
}

func (m Model) viewDifficulty() string {
	w := m.width
	if w < 40 {
		w = 40
	}
	var lines []string
	for d := domain.Easy; d <= domain.Hard; d++ {
		if d == m.difficulty {
			lines = append(lines, bold(clrGold).Render("▶ ")+bold(clrWhite).Render(d.String()))
		} else {
			lines = append(lines, fg(clrSubtle).Render("  "+d.String()))
		}
	}
	content := strings.Join([]string{
		"", bold(clrTitle).Render("AI DIFFICULTY"), "",
		strings.Join(lines, "\n"), "",
		fg(clrSubtle).Render("↑/↓ select · ENTER confirm · ESC back"), "",
	}, "\n")
	return padCenter(content, w)
}

func (m Model) viewName() string {
	w := m.width
	if w < 40 {
		w = 40
	}
	content := strings.Join([]string{
		"", bold(clrTitle).Render("YOUR NAME"), "",
		m.nameInput.View(), "",
		fg(clrSubtle).Render("ENTER start · ESC back"), "",
	}, "\n")
	return padCenter(content, w)
}

func (m Model) viewRoundResult() string {
	w := m.width
	header := m.renderHeader(fmt.Sprintf("Round %d Complete", m.state.Round))

	var sb strings.Builder
	sb.WriteString(bold(clrGold).Render(
		fmt.Sprintf("%-10s %4s %4s %7s %6s %7s\n", "Team", "Bid", "Won", "Delta", "Bags", "Total")))
	sb.WriteString(fg(clrBorder).Render(strings.Repeat("─", 46)) + "\n")
	for _, r := range m.results {
		team := m.state.TeamOf(r.Team)
		dClr := clrGreen
		if r.Delta < 0 {
			dClr = clrRed
		}
		tClr := clrWhite
		if team.Score > 0 {
			tClr = clrGreen
		} else if team.Score < 0 {
			tClr = clrRed
		}
		sb.WriteString(fmt.Sprintf("%-10s %4d %4d %s %6d %s\n",
			r.Team, r.Bid, r.TricksWon,
			fg(dClr).Render(fmt.Sprintf("%+7d", r.Delta)),
			team.Bags,
			fg(tClr).Render(fmt.Sprintf("%+7d", team.Score))))
		for _, n := range r.Nils {
			outcome := fg(clrGreen).Render("nil made +100")
			if !n.Made {
				outcome = fg(clrRed).Render("nil failed −100")
			}
			sb.WriteString("  " + fg(clrSubtle).Render(m.state.PlayerAt(n.Player).Name+": ") + outcome + "\n")
		}
	}
	sb.WriteString("\n" + fg(clrSubtle).Render("Next round starting shortly…"))

	return strings.Join([]string{
		header, "",
		padCenter(box(sb.String(), 54, clrBorder), w),
		"",
	}, "\n")
}

func (m Model) viewGameOver() string {
	w := m.width
	header := m.renderHeader("GAME OVER")

	winner := m.state.LeadingTeam()
	result := fg(clrRed).Render(winner.Name + " wins this time!")
	for _, pos := range winner.Players {
		if pos == domain.South {
			result = bold(clrGold).Render("YOU WIN!  Well played!")
		}
	}

	var sb strings.Builder
	sb.WriteString(bold(clrGold).Render(fmt.Sprintf("%-14s %8s %6s\n", "Team", "Score", "Bags")))
	sb.WriteString(fg(clrBorder).Render(strings.Repeat("─", 32)) + "\n")
	for i := range m.state.Teams {
		team := &m.state.Teams[i]
		crown := "  "
		if team.Name == winner.Name {
			crown = fg(clrGold).Render("* ")
		}
		c := clrWhite
		if team.Score > 0 {
			c = clrGreen
		} else if team.Score < 0 {
			c = clrRed
		}
		sb.WriteString(crown + fg(clrWhite).Render(fmt.Sprintf("%-14s", team.Name)) +
			fg(c).Render(fmt.Sprintf("%+8d", team.Score)) +
			fg(clrSubtle).Render(fmt.Sprintf("%6d", team.Bags)) + "\n")
	}

	return strings.Join([]string{
		header, "",
		padCenter(result, w),
		"",
		padCenter(box(sb.String(), 40, clrBorder), w),
		"",
		padCenter(fg(clrSubtle).Render("[ R / ENTER ] Play again    [ M ] Menu    [ Q ] Quit"), w),
	}, "\n")
}
