package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/orgplant/internal/cli/formatter"
)

// pagerModel displays one block of prerendered text in a scrollable
// viewport. It exists for previews taller than the terminal.
type pagerModel struct {
	title    string
	content  string
	vp       viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = pagerKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return pagerModel{title: title, content: content, vp: vp}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Title block is two lines, footer one.
		height := msg.Height - 3
		if height < 1 {
			height = 1
		}
		m.vp.Width = msg.Width
		m.vp.Height = height
		m.vp.SetContent(m.content)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		if isPagerScrollKey(msg) {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m pagerModel) View() string {
	if m.quitting || !m.ready {
		return ""
	}
	footer := scrollIndicator(m.vp) + formatter.Dim("  q to close")
	return formatter.Header(m.title) + "\n" + m.vp.View() + "\n" + footer
}

// runPager shows content in an alt-screen pager until the user closes it.
func runPager(title, content string) error {
	p := tea.NewProgram(newPagerModel(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// pagerKeyMap returns a restricted keymap: only arrow/page keys scroll, so
// letter keys stay free for quitting.
func pagerKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// isPagerScrollKey reports whether the key should reach the viewport.
func isPagerScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD, tea.KeySpace:
		return true
	}
	switch msg.String() {
	case "j", "k":
		return true
	}
	return false
}

// scrollIndicator returns a dim scroll position string for the footer.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}
