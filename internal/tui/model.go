// Package tui implements the interactive shell: a prompt over the
// already-built catalog so repeated inspections and queries skip the
// load-and-link phase. A file watcher feeds staleness notices into the
// session when the underlying data files change on disk.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/preset"
	"github.com/papapumpkin/perihelion/internal/watch"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	styleStale = lipgloss.NewStyle().
			Background(lipgloss.Color("220")).
			Foreground(lipgloss.Color("16")).
			Padding(0, 1)

	styleFaint = lipgloss.NewStyle().Faint(true)

	stylePrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// transcriptMax bounds how many transcript lines the model retains.
const transcriptMax = 500

// changeMsg reports a watched data file changed on disk.
type changeMsg watch.Change

// Model is the bubbletea model for the interactive shell.
type Model struct {
	cat     *catalog.Catalog
	presets map[string]preset.Preset
	changes <-chan watch.Change

	input      textinput.Model
	transcript []string
	width      int
	height     int

	// stale is set when the watcher reports a data file edit; the
	// in-memory catalog keeps serving the old view.
	stale     bool
	staleFile string

	// aggressive makes a data file edit end the session instead of
	// just flagging it.
	aggressive bool

	quitting bool
}

// New creates the shell model. changes may be nil when no watcher is
// running.
func New(cat *catalog.Catalog, presets map[string]preset.Preset, changes <-chan watch.Change, aggressive bool) Model {
	ti := textinput.New()
	ti.Prompt = "neo> "
	ti.PromptStyle = stylePrompt
	ti.Placeholder = "inspect Eros | query --max-distance 0.1 | help"
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		cat:        cat,
		presets:    presets,
		changes:    changes,
		input:      ti,
		aggressive: aggressive,
	}
}

// Init starts cursor blinking and the watcher pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

// waitForChange returns a command that blocks on the watcher channel
// and delivers the next change as a message.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg(c)
	}
}

// Update handles key input and watcher notices.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 2
		return m, nil

	case changeMsg:
		m.stale = true
		m.staleFile = msg.Path
		if m.aggressive {
			m.appendLines("data file changed on disk: "+msg.Path,
				"aggressive mode: ending session.")
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			m.appendLines(stylePrompt.Render("neo> ") + line)
			out, quit := m.runLine(line)
			if out != "" {
				m.appendLines(strings.Split(out, "\n")...)
			}
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the title, staleness banner, transcript tail, and the
// prompt line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("perihelion interactive"))
	b.WriteString(styleFaint.Render(fmt.Sprintf("  (%d NEOs, %d approaches)",
		m.cat.NumBodies(), m.cat.NumApproaches())))
	b.WriteByte('\n')

	if m.stale {
		b.WriteString(styleStale.Render("data file changed on disk — results reflect the old data: " + m.staleFile))
		b.WriteByte('\n')
	}

	// Show the transcript tail that fits the terminal, leaving room
	// for the header and prompt.
	visible := m.transcript
	if m.height > 4 && len(visible) > m.height-4 {
		visible = visible[len(visible)-(m.height-4):]
	}
	for _, line := range visible {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(styleFaint.Render("ctrl+c or quit to exit"))
	return b.String()
}

func (m *Model) appendLines(lines ...string) {
	m.transcript = append(m.transcript, lines...)
	if len(m.transcript) > transcriptMax {
		m.transcript = m.transcript[len(m.transcript)-transcriptMax:]
	}
}

// sortedStrings returns a sorted copy of names.
func sortedStrings(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
