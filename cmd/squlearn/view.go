package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MHagelueken/squlearn/circuit"
	"github.com/MHagelueken/squlearn/internal/render"
	"github.com/MHagelueken/squlearn/pauli"
)

// viewer tabs.
const (
	tabCircuit = iota
	tabQASM
	tabObservable
	numTabs
)

var tabNames = [numTabs]string{"Circuit", "QASM", "Observable"}

var (
	viewerFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#7aa2f7")).
				Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	tabDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

type viewerModel struct {
	vp      viewport.Model
	content [numTabs]string
	tab     int
	ready   bool
}

func newViewerModel(c *circuit.Circuit, obs *pauli.Observable) viewerModel {
	var m viewerModel
	m.content[tabCircuit] = render.CircuitStyled(c)
	m.content[tabQASM] = c.ToQASM()

	var sb strings.Builder
	for _, t := range obs.Terms() {
		fmt.Fprintf(&sb, "%s  %g\n", t.Paulis, t.Weight)
	}
	m.content[tabObservable] = sb.String()
	return m
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width-4, msg.Height-4)
			m.ready = true
		} else {
			m.vp.Width = msg.Width - 4
			m.vp.Height = msg.Height - 4
		}
		m.vp.SetContent(m.content[m.tab])
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % numTabs
			m.vp.SetContent(m.content[m.tab])
			m.vp.GotoTop()
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + numTabs - 1) % numTabs
			m.vp.SetContent(m.content[m.tab])
			m.vp.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var tabs []string
	for i, name := range tabNames {
		if i == m.tab {
			tabs = append(tabs, tabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, tabDimStyle.Render(name))
		}
	}
	header := strings.Join(tabs, "  ")
	help := tabDimStyle.Render("tab Switch  ↑↓ Scroll  q Quit")

	return header + "\n" + viewerFrameStyle.Render(m.vp.View()) + "\n" + help
}

func runViewer(c *circuit.Circuit, obs *pauli.Observable) error {
	p := tea.NewProgram(newViewerModel(c, obs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
