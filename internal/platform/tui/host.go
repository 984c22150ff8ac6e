package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/jerry/internal/core"
	"github.com/vovakirdan/jerry/internal/session"
)

// Host runs phase loops as Bubble Tea programs.
type Host struct {
	keys   KeyMap
	width  int
	height int
	opts   []tea.ProgramOption
}

// NewHost creates a host using the default key bindings. Extra program
// options are passed to every program it starts.
func NewHost(opts ...tea.ProgramOption) *Host {
	return &Host{keys: DefaultKeyMap(), opts: opts}
}

// Size returns the last known terminal size, querying the terminal when
// none is known yet. It falls back to the 80x24 reference terminal.
func (h *Host) Size() (int, int) {
	if h.width > 0 && h.height > 0 {
		return h.width, h.height
	}
	if w, ht, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && ht > 0 {
		return w, ht
	}
	ref := core.DefaultConfig()
	return ref.ScreenW, ref.ScreenH
}

// Run opens a window for spec and steps loop until it reports done.
func (h *Host) Run(spec session.WindowSpec, loop session.Loop) error {
	w, ht := h.Size()
	model := newLoopModel(spec, loop, h.keys, w, ht)

	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, h.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(loopModel); ok {
		h.width, h.height = m.screen.Width(), m.screen.Height()
	}
	return nil
}

// loopModel adapts a session.Loop to Bubble Tea. Keys collect into the
// input frame between ticks; every tick steps the loop once.
type loopModel struct {
	spec   session.WindowSpec
	loop   session.Loop
	mapper *KeyMapper
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	frame  core.InputFrame
	done   bool
}

func newLoopModel(spec session.WindowSpec, loop session.Loop, keys KeyMap, w, h int) loopModel {
	frame := core.NewInputFrame()
	frame.Width, frame.Height = w, h
	hm := help.New()
	hm.Width = w
	return loopModel{
		spec:   spec,
		loop:   loop,
		mapper: NewKeyMapper(keys),
		keys:   keys,
		help:   hm,
		screen: core.NewScreen(w, h),
		frame:  frame,
	}
}

// Init sets the window title and starts ticking.
func (m loopModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.spec.Title), tickCmd(m.spec.Delay))
}

// Update handles messages and steps the loop.
func (m loopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keys accumulate until the next tick consumes the frame
		m.mapper.MapKeyToFrame(msg, &m.frame)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.frame.Width, m.frame.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// A tick already in flight may arrive after quitting
		if m.done {
			return m, nil
		}
		if m.loop.Step(m.frame, m.screen) {
			m.done = true
			return m, tea.Quit
		}
		m.frame.Clear()
		return m, tickCmd(m.spec.Delay)
	}

	return m, nil
}

// View presents the screen buffer, with the help line on the bottom row
// when the window asks for it.
func (m loopModel) View() string {
	if m.done {
		return ""
	}
	lines := RenderScreen(m.screen)
	if m.spec.ShowHelp && len(lines) > 0 {
		// The help line replaces the last row instead of growing the view
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		lines[len(lines)-1] = style.Render(m.help.View(m.keys))
	}
	return strings.Join(lines, "\n")
}
