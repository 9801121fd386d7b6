// Package tui is the interactive front end: a length prompt, pattern
// inputs and the ranked candidate view, all driven by one bubbletea
// model over a session.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/kzon94/torn-cracking-tool/internal/config"
	"github.com/kzon94/torn-cracking-tool/internal/session"
	"github.com/kzon94/torn-cracking-tool/pkg/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

type mode int

const (
	modeLength mode = iota
	modeBrowse
	modeKnown
	modeForbidden
	modeSearch
)

// Model is the bubbletea model for one user's session.
type Model struct {
	cfg  config.Config
	dict []string
	sess *session.Session

	mode   mode
	input  textinput.Model
	query  string // active fuzzy filter over the current candidates
	notice string
	fatal  bool // notice is an error, not a warning

	width  int
	height int
}

func New(cfg config.Config, dict []string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "5"
	ti.CharLimit = 64
	ti.Focus()
	return Model{cfg: cfg, dict: dict, mode: modeLength, input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeBrowse {
			return m.updateBrowse(msg)
		}
		return m.updateInput(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "a":
		return m.enterInput(modeKnown), textinput.Blink
	case "d":
		return m.enterInput(modeForbidden), textinput.Blink
	case "/":
		return m.enterInput(modeSearch), textinput.Blink
	case "r":
		m.sess = nil
		m.query = ""
		m.notice = ""
		return m.enterInput(modeLength), textinput.Blink
	}
	return m, nil
}

func (m Model) enterInput(target mode) Model {
	m.mode = target
	m.input.Reset()
	switch target {
	case modeLength:
		m.input.Placeholder = "5"
	case modeKnown, modeForbidden:
		m.input.Placeholder = strings.Repeat(".", m.sess.Length)
	case modeSearch:
		m.input.SetValue(m.query)
		m.input.Placeholder = "type to filter"
	}
	m.input.Focus()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.mode == modeLength && m.sess == nil {
			return m, tea.Quit
		}
		if m.mode == modeSearch {
			m.query = ""
		}
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		return m.commit(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch {
		m.query = m.input.Value()
	}
	return m, cmd
}

func (m Model) commit() Model {
	switch m.mode {
	case modeLength:
		return m.commitLength()
	case modeKnown:
		return m.commitKnown()
	case modeForbidden:
		return m.commitForbidden()
	case modeSearch:
		m.mode = modeBrowse
		m.input.Blur()
	}
	return m
}

func (m Model) commitLength() Model {
	raw := strings.TrimSpace(m.input.Value())
	length, err := strconv.Atoi(raw)
	if err != nil {
		m.notice, m.fatal = fmt.Sprintf("not a number: %q", raw), true
		return m
	}
	if length < 1 || length > m.cfg.MaxLength {
		m.notice, m.fatal = fmt.Sprintf("length must be between 1 and %d", m.cfg.MaxLength), true
		return m
	}

	sess, err := session.New(m.dict, length)
	if err != nil {
		m.notice, m.fatal = err.Error(), false
		return m
	}

	m.sess = sess
	m.query = ""
	m.notice, m.fatal = "", false
	m.mode = modeBrowse
	m.input.Blur()
	return m
}

func (m Model) commitKnown() Model {
	conflicts, err := m.sess.ApplyKnown(m.input.Value())
	if err != nil {
		m.notice, m.fatal = err.Error(), true
		return m
	}
	var warnings []string
	for _, c := range conflicts {
		warnings = append(warnings, c.String())
	}
	m.notice, m.fatal = strings.Join(warnings, "\n"), false
	m.mode = modeBrowse
	m.input.Blur()
	return m
}

func (m Model) commitForbidden() Model {
	if err := m.sess.ApplyForbidden(m.input.Value()); err != nil {
		m.notice, m.fatal = err.Error(), true
		return m
	}
	m.notice, m.fatal = "", false
	m.mode = modeBrowse
	m.input.Blur()
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔐 Torn Cracking Tool"))
	b.WriteString("\n\n")

	if m.sess == nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Password length (1-%d):", m.cfg.MaxLength)))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		m.writeNotice(&b)
		b.WriteString(helpStyle.Render("enter: start search • esc: quit"))
		return b.String()
	}

	b.WriteString(m.renderConstraints())
	b.WriteString("\n\n")

	switch m.mode {
	case modeKnown:
		b.WriteString(labelStyle.Render("Known positions pattern (-a):"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeForbidden:
		b.WriteString(labelStyle.Render("Forbidden positions pattern (-d):"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeSearch:
		b.WriteString(labelStyle.Render("Filter candidates:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	m.writeNotice(&b)

	if m.sess.Empty() {
		b.WriteString(errorStyle.Render("No possible passwords remain with these constraints."))
	} else {
		b.WriteString(m.renderCandidates())
		b.WriteString("\n")
		b.WriteString(m.renderFrequencies())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) writeNotice(b *strings.Builder) {
	if m.notice == "" {
		return
	}
	style := warnStyle
	if m.fatal {
		style = errorStyle
	}
	b.WriteString(style.Render(m.notice))
	b.WriteString("\n")
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeBrowse:
		return "a: known pattern • d: forbidden pattern • /: filter • r: reset • q: quit"
	default:
		return "enter: apply • esc: back"
	}
}

func (m Model) renderConstraints() string {
	content := fmt.Sprintf(
		"%s %s\n%s %s\n%s %s",
		labelStyle.Render("Known pattern (-a):    "),
		patternStyle.Render(m.sess.Cons.KnownPattern()),
		labelStyle.Render("Forbidden map (-d):    "),
		patternStyle.Render(m.sess.Cons.ForbiddenPattern()),
		labelStyle.Render("Current candidates:    "),
		valueStyle.Render(strconv.Itoa(len(m.sess.Current))),
	)
	return boxStyle.Render(content)
}

func (m Model) renderCandidates() string {
	var b strings.Builder

	shown := m.sess.Current
	if m.query != "" {
		matches := fuzzy.Find(m.query, m.sess.Current)
		shown = make([]string, 0, len(matches))
		for _, match := range matches {
			shown = append(shown, match.Str)
		}
		if len(shown) == 0 {
			return labelStyle.Render(fmt.Sprintf("No candidates match filter %q.", m.query))
		}
	}

	scored := engine.ScoreCandidates(shown)
	limit := min(m.cfg.TopCandidates, len(scored))

	b.WriteString(labelStyle.Render(fmt.Sprintf("Showing top %d options:", limit)))
	b.WriteString("\n")

	width := max(m.sess.Length, len("password"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-*s  %12s", width, "password", "score (%)")))
	b.WriteString("\n")
	for _, s := range scored[:limit] {
		b.WriteString(fmt.Sprintf("  %-*s  %12.5f", width, s.Password, s.Value*100))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFrequencies() string {
	freqs, err := engine.PositionFrequencies(m.sess.Current)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	total := len(m.sess.Current)
	var lines []string
	for idx, freq := range freqs {
		if m.sess.Cons.Must[idx] != 0 {
			continue
		}
		top := engine.TopLetters(freq, m.cfg.TopLetters)
		parts := make([]string, 0, len(top))
		for _, lc := range top {
			parts = append(parts, fmt.Sprintf("%s (%.1f%%)",
				patternStyle.Render(string(lc.Letter)),
				float64(lc.Count)/float64(total)*100))
		}
		lines = append(lines, fmt.Sprintf("  Pos %d: %s", idx+1, strings.Join(parts, ", ")))
	}

	if len(lines) == 0 {
		return labelStyle.Render("All positions are already fixed.")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Letter frequencies by position:"))
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	return b.String()
}
