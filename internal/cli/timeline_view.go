package cli

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcollado/lodestar/internal/cli/formatter"
)

// timelineModel is a read-only scrollable view of one goal's timeline.
type timelineModel struct {
	vp      viewport.Model
	content string
	ready   bool
}

func newTimelineModel(content string) timelineModel {
	return timelineModel{content: content}
}

func (m timelineModel) Init() tea.Cmd {
	return nil
}

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-footerHeight)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m timelineModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.vp.View() + "\n" + formatter.Dim("↑/↓ scroll · q quit")
}
