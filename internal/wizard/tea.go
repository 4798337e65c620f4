package wizard

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// TeaPrompter asks each question in a small bubbletea program.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) Ask(ctx context.Context, q Question) (string, error) {
	prog := tea.NewProgram(newPromptModel(q),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}

	m := final.(promptModel)
	if m.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(m.buf), nil
}

type promptModel struct {
	q       Question
	buf     string
	done    bool
	aborted bool
}

func newPromptModel(q Question) promptModel {
	return promptModel{q: q}
}

func (m promptModel) Init() tea.Cmd { return nil }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.buf); len(r) > 0 {
			m.buf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.buf += " "
	case tea.KeyRunes:
		m.buf += string(key.Runes)
	}
	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder

	if m.q.Err != "" && !m.done {
		b.WriteString(red.Render("! "+m.q.Err) + "\n")
	}
	b.WriteString(cyan.Render(m.q.Prompt) + "\n")
	for _, opt := range m.q.Options {
		b.WriteString("  " + dim.Render(opt) + "\n")
	}

	if m.done || m.aborted {
		b.WriteString(dim.Render("> ") + white.Render(m.buf) + "\n")
		return b.String()
	}

	b.WriteString(cyan.Render("▸ ") + magenta.Render(m.buf) + dim.Render("█"))
	if m.buf == "" && m.q.Default != "" {
		b.WriteString(dim.Render(" " + m.q.Default))
	}
	b.WriteString("\n")
	return b.String()
}
