// Package tui is a terminal preview of the portfolio page built on Bubble
// Tea. Terminal input drives the same presentation state as the browser.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rajrishis/portfolio/internal/models"
	"github.com/rajrishis/portfolio/internal/state"
)

// LineHeight converts viewport lines into the pixel offsets the scroll
// threshold is defined in.
const LineHeight = 16

// Content supplies the current content snapshot.
type Content interface {
	Snapshot() *models.Portfolio
}

// ContentChangedMsg tells the program the content snapshot was replaced.
type ContentChangedMsg struct {
	Version string
}

// Model is the Bubble Tea model. Terminal events are turned into state
// events and dispatched on a bus the state holder is mounted on.
type Model struct {
	content Content
	bus     *state.Bus
	holder  *state.Holder
	release func()

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	styles   styles
	restyles int // style sheet rebuilds after New
	quitting bool
}

// New creates a model and mounts its state holder. Close releases it.
func New(content Content) (*Model, error) {
	bus := state.NewBus()
	h := state.NewHolder()
	release, err := state.Mount(h, bus)
	if err != nil {
		return nil, err
	}
	m := &Model{
		content: content,
		bus:     bus,
		holder:  h,
		release: release,
		styles:  newStyles(h.Snapshot().Dark),
	}
	dark := h.Snapshot().Dark
	h.OnChange(func(s state.Snapshot) {
		if s.Dark != dark {
			dark = s.Dark
			m.styles = newStyles(dark)
			m.restyles++
		}
	})
	return m, nil
}

// State returns the current presentation state.
func (m *Model) State() state.Snapshot {
	return m.holder.Snapshot()
}

// Close releases the event subscriptions and closes the bus.
func (m *Model) Close() {
	m.release()
	m.bus.Close()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case ContentChangedMsg:
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "t":
		m.holder.ToggleTheme()
		m.refresh()
		return m, nil
	}
	return m.scrollViewport(msg)
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionMotion {
		m.bus.Dispatch(state.PointerEvent(float64(msg.X), float64(msg.Y)))
		return m, nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		return m.scrollViewport(msg)
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	h := max(msg.Height-m.chromeHeight(), 1)
	if !m.ready {
		m.viewport = viewport.New(msg.Width, h)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = h
	}
	m.refresh()
	return m, nil
}

// scrollViewport lets the viewport handle msg and reports the resulting
// offset as a scroll event.
func (m *Model) scrollViewport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.bus.Dispatch(state.ScrollEvent(float64(m.viewport.YOffset * LineHeight)))
	}
	return m, cmd
}

// chromeHeight is the number of rows taken by the navbar and status line.
func (m *Model) chromeHeight() int {
	return 3
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderBody(m.styles, m.content.Snapshot(), m.width))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}
	s := m.holder.Snapshot()
	theme := "light"
	if s.Dark {
		theme = "dark"
	}
	status := m.styles.StatusLine.Render(fmt.Sprintf(
		"%s · pointer %g,%g · t theme · q quit", theme, s.Pointer.X, s.Pointer.Y))

	return m.styles.Page.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		renderNav(m.styles, m.content.Snapshot(), s.Scrolled, m.width),
		m.viewport.View(),
		status,
	))
}

// Run starts the program and blocks until it exits or ctx is cancelled.
// Each value received on updates triggers a content refresh.
func Run(ctx context.Context, m *Model, updates <-chan string) error {
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case v, ok := <-updates:
				if !ok {
					return
				}
				p.Send(ContentChangedMsg{Version: v})
			case <-done:
				return
			}
		}
	}()

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
