// Package tui provides the interactive word lookup view.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/phonics/internal/clipboard"
	"github.com/f3rmion/phonics/internal/ipa"
	"github.com/f3rmion/phonics/internal/phonics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	ipaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	syllableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1).
			Margin(0, 1).
			Align(lipgloss.Center)

	readingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(12)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the lookup view model.
type Model struct {
	input  textinput.Model
	svc    *phonics.Service
	result *phonics.Result
	err    error
	copied bool
	width  int
}

// New creates the lookup model over an analysis service.
func New(svc *phonics.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter an English word..."
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return Model{input: ti, svc: svc}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.result, m.err = m.svc.Analyze(m.input.Value())
			m.copied = false
			return m, nil
		case "ctrl+y":
			if m.result != nil && clipboard.Available() {
				if err := clipboard.Write(fullIPA(m.result)); err == nil {
					m.copied = true
					return m, clearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("phonics"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(m.renderResult(m.result))
	}

	b.WriteString("\n")
	help := "Enter: analyze • ctrl+y: copy IPA • esc: quit"
	if m.copied {
		help += "  " + copiedStyle.Render("Copied!")
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m Model) renderResult(r *phonics.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Word:"))
	b.WriteString(" ")
	b.WriteString(wordStyle.Render(r.Word))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("IPA:"))
	b.WriteString(" ")
	b.WriteString(ipaStyle.Render("/" + fullIPA(r) + "/"))
	b.WriteString("\n\n")

	// One box per syllable: spelling on top, phonemes underneath, padded
	// so the box stays as wide as its widest row.
	var boxes []string
	for _, syl := range r.Syllables {
		phon := strings.Join(ipa.Render(syl.Phonemes), " ")
		width := runewidth.StringWidth(syl.Text)
		if w := runewidth.StringWidth(phon); w > width {
			width = w
		}
		content := padCenter(syl.Text, width) + "\n" + padCenter(phon, width)
		boxes = append(boxes, syllableStyle.Render(content))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, boxes...))
	b.WriteString("\n\n")

	var parts []string
	for _, unit := range r.Reading {
		phon := strings.Join(ipa.Render(unit.Phonemes), "")
		if phon == "" {
			parts = append(parts, unit.Text)
			continue
		}
		parts = append(parts, unit.Text+"("+phon+")")
	}
	b.WriteString(labelStyle.Render("Reading:"))
	b.WriteString(" ")
	b.WriteString(readingStyle.Render(strings.Join(parts, " ")))
	b.WriteString("\n")

	return b.String()
}

func fullIPA(r *phonics.Result) string {
	return strings.Join(ipa.Render(r.Phonemes), "")
}

func padCenter(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Run starts the interactive lookup program.
func Run(svc *phonics.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
