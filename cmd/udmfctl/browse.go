package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/udmf/udt"
)

// listHeight is the number of type ids shown at once.
const listHeight = 16

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !isTerminal(cmd.OutOrStdout()) {
			return errors.New("browse needs an interactive terminal")
		}
		p := tea.NewProgram(newBrowseModel(lib.Catalog().IDs()), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

type browseModel struct {
	err      error
	detail   *descriptorView
	ids      []string
	matches  []string
	filter   textinput.Model
	selected int
}

type detailMsg struct {
	err  error
	view *descriptorView
}

func newBrowseModel(ids []string) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Width = 30
	ti.Focus()

	m := &browseModel{ids: ids, filter: ti}
	m.refilter()
	return m
}

func (m *browseModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.describeSelected())
}

func (m *browseModel) refilter() {
	q := strings.ToLower(m.filter.Value())
	m.matches = m.matches[:0]
	for _, id := range m.ids {
		if q == "" || strings.Contains(id, q) {
			m.matches = append(m.matches, id)
		}
	}
	if m.selected >= len(m.matches) {
		m.selected = max(len(m.matches)-1, 0)
	}
}

func (m *browseModel) current() (string, bool) {
	if len(m.matches) == 0 {
		return "", false
	}
	return m.matches[m.selected], true
}

func (m *browseModel) describeSelected() tea.Cmd {
	id, ok := m.current()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		v, err := describe(udt.Parse(id))
		return detailMsg{view: v, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
				return m, m.describeSelected()
			}
			return m, nil

		case "down":
			if m.selected < len(m.matches)-1 {
				m.selected++
				return m, m.describeSelected()
			}
			return m, nil
		}

	case detailMsg:
		m.detail = msg.view
		m.err = msg.err
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refilter()
		return m, tea.Batch(cmd, m.describeSelected())
	}
	return m, cmd
}

func (m *browseModel) View() string {
	var list strings.Builder
	list.WriteString(m.filter.View())
	list.WriteString("\n\n")

	start := 0
	if m.selected >= listHeight {
		start = m.selected - listHeight + 1
	}
	end := min(start+listHeight, len(m.matches))
	for i := start; i < end; i++ {
		if i == m.selected {
			list.WriteString(selectedStyle.Render("> " + m.matches[i]))
		} else {
			list.WriteString("  " + m.matches[i])
		}
		list.WriteString("\n")
	}
	if len(m.matches) == 0 {
		list.WriteString(helpStyle.Render("  no matching types"))
		list.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("UDMF Types"))
	b.WriteString(fmt.Sprintf(" %d of %d\n\n", len(m.matches), len(m.ids)))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(48).Render(list.String()),
		m.detailView()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • esc quit"))
	return b.String()
}

func (m *browseModel) detailView() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.detail == nil {
		return ""
	}
	d := m.detail

	var b strings.Builder
	b.WriteString(typeStyle.Render(d.TypeID))
	b.WriteString("\n")
	b.WriteString(d.Description)
	b.WriteString("\n\n")
	line := func(label string, items []string) {
		b.WriteString(labelStyle.Render(label + ": "))
		if len(items) == 0 {
			b.WriteString("-")
		} else {
			b.WriteString(strings.Join(items, ", "))
		}
		b.WriteString("\n")
	}
	line("MIME", d.MimeTypes)
	line("Extensions", d.FilenameExtensions)
	line("Belongs to", d.BelongingTo)
	if d.ReferenceURL != "" {
		line("Reference", []string{d.ReferenceURL})
	}
	return b.String()
}
