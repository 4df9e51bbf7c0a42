package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/treasure-hunter/pkg/game"
	"github.com/jwebster45206/treasure-hunter/pkg/shop"
	"github.com/muesli/reflow/wordwrap"
)

const (
	TownName        = "Town"
	PlaceHolderText = "Type a command (b, s, t, f, d, l, x) or /help..."
)

// entry is one line of the adventure log.
type entry struct {
	speaker string // empty for the player
	text    string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	game         *game.Game
	log          []entry
	logViewport  viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error

	// Quit confirmation state
	showQuitModal bool
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(g *game.Game) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		game:         g,
		log:          []entry{{speaker: TownName, text: g.Intro()}},
		textarea:     ta,
		logViewport:  logVp,
		metaViewport: metaVp,
	}
}

// command maps player input to a game action. While the shop counter is
// open, any input that isn't a command names the item to trade.
func (m ConsoleUI) command(input string) (game.Action, string, bool) {
	switch strings.ToLower(input) {
	case "b", "buy":
		return game.ActionBuy, "", true
	case "s", "sell":
		return game.ActionSell, "", true
	case "t", "trouble":
		return game.ActionTrouble, "", true
	case "f", "find", "treasure":
		return game.ActionTreasure, "", true
	case "d", "dig":
		return game.ActionDig, "", true
	case "l", "leave":
		return game.ActionLeave, "", true
	case "x", "status":
		return game.ActionStatus, "", true
	}
	if m.game.Shop().Counter() != shop.IntentNone {
		return game.ActionTrade, input, true
	}
	return "", "", false
}

func writeMetadata(g *game.Game) string {
	h := g.Hunter()
	t := g.Town()

	var content strings.Builder
	content.WriteString(titleStyle.Render("HUNTER") + "\n\n")
	content.WriteString(h.Name() + "\n")
	content.WriteString(goldStyle.Render(fmt.Sprintf("%d gold", h.Gold())) + "\n")
	content.WriteString(fmt.Sprintf("HP %d  AC %d\n\n", h.Actor().HP(), h.Actor().AC()))

	content.WriteString("Kit:\n")
	if kit := h.Kit(); len(kit) > 0 {
		for _, item := range kit {
			content.WriteString("• " + item + "\n")
		}
	} else {
		content.WriteString("Empty\n")
	}

	content.WriteString("\nTreasures:\n")
	if found := h.Treasures(); len(found) > 0 {
		for _, tr := range found {
			content.WriteString("• " + tr + "\n")
		}
	} else {
		content.WriteString("None yet\n")
	}

	content.WriteString("\n" + titleStyle.Render("TOWN") + fmt.Sprintf(" #%d\n\n", g.TownsVisited()))
	content.WriteString(fmt.Sprintf("Terrain: %s\n", t.Terrain()))
	content.WriteString(fmt.Sprintf("Rough: %v\n", t.Tough()))
	content.WriteString(fmt.Sprintf("Searched: %v\n", t.Searched()))
	content.WriteString(fmt.Sprintf("Dug: %v\n", t.Dug()))

	content.WriteString("\nCommands:\n")
	content.WriteString("• b/s: Buy/Sell\n")
	content.WriteString("• t: Trouble\n")
	content.WriteString("• f: Find treasure\n")
	content.WriteString("• d: Dig\n")
	content.WriteString("• l: Leave town\n")
	content.WriteString("• x: Status\n")
	content.WriteString("• Esc: Quit\n")

	return content.String()
}

// writeLogContent rebuilds the adventure log for the current viewport width
func (m *ConsoleUI) writeLogContent() {
	logWidth := m.logViewport.Width - 6 // Account for left(3) + right(3) padding
	if logWidth < 20 {
		logWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("TREASURE HUNTER") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", logWidth)) + "\n\n")

	for _, e := range m.log {
		if e.speaker == "" {
			content.WriteString(userStyle.Render("> ") + wordwrap.String(e.text, logWidth-2) + "\n\n")
			continue
		}
		content.WriteString(speakerStyle.Render(e.speaker+":") + "\n")
		content.WriteString(wordwrap.String(e.text, logWidth) + "\n\n")
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - logWidth - 6

		m.logViewport.Width = logWidth - 2
		m.logViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(logWidth - 4)

		m.ready = true
		m.writeLogContent()
		m.metaViewport.SetContent(writeMetadata(m.game))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}
			return m.play(input), nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// play runs one game turn for the player's input
func (m ConsoleUI) play(input string) ConsoleUI {
	m.err = nil
	m.log = append(m.log, entry{text: input})

	if m.game.Over() {
		m.log = append(m.log, entry{speaker: TownName, text: "The hunt is over. Press Esc to quit."})
		m.writeLogContent()
		return m
	}

	action, arg, ok := m.command(input)
	if !ok {
		m.log = append(m.log, entry{speaker: TownName, text: "Yeah... that's not an option. Type /help for commands."})
		m.writeLogContent()
		return m
	}

	turn, err := m.game.Act(action, arg)
	if err != nil {
		m.err = err
	} else {
		m.log = append(m.log, entry{speaker: TownName, text: turn.Message})
	}

	m.writeLogContent()
	m.metaViewport.SetContent(writeMetadata(m.game))
	return m
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))

	switch cmd {
	case "/help":
		helpText := `Commands:
• b - Buy something at the shop
• s - Sell something at the shop
• t - Look for trouble!
• f - Look for treasure
• d - Dig for gold (needs a shovel)
• l - Leave town, if you can cross the terrain
• x - Describe yourself and the town
• /copy - Copy the latest news to the clipboard
• Esc - Quit game

Find all three treasures to win. Fall into debt and you lose.`
		m.log = append(m.log, entry{speaker: "Help", text: helpText})

	case "/copy":
		if err := clipboard.WriteAll(m.latestNews()); err != nil {
			m.err = fmt.Errorf("failed to copy to clipboard: %w", err)
		} else {
			m.log = append(m.log, entry{speaker: "Help", text: "Copied the latest news to the clipboard."})
		}

	default:
		m.log = append(m.log, entry{speaker: "Help", text: "Unknown command " + cmd + ". Try /help."})
	}

	m.writeLogContent()
	return m, nil
}

func (m ConsoleUI) latestNews() string {
	for i := len(m.log) - 1; i >= 0; i-- {
		if m.log[i].speaker == TownName {
			return m.log[i].text
		}
	}
	return ""
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to give up the hunt?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - logWidth - 6

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", logWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}
