package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/cuoral/internal/launcher"
	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/session"
	"github.com/muurk/cuoral/internal/surface"
)

// PageLoader fetches an address for the terminal surface
type PageLoader interface {
	Load(ctx context.Context, address string, emit surface.Emitter) (*surface.Page, error)
}

// loadResultMsg carries the outcome of one surface load back to Update.
// Events are delivered through the overlay, which drops them if the
// session has been closed since.
type loadResultMsg struct {
	sessionID string
	seq       int
	events    []session.Event
	page      *surface.Page
}

// AppModel is the terminal host for the launcher overlay
type AppModel struct {
	Overlay *launcher.Overlay
	Loader  PageLoader

	// Surface state of the live session
	CurrentURL string
	Page       *surface.Page
	Cursor     int
	Notice     string

	// Public key editor
	Editing  bool
	KeyInput textinput.Model

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model
	Help    help.Model

	ClosedKeys closedKeyMap
	ModalKeys  modalKeyMap
	EditKeys   editKeyMap

	theme      theme
	cancelLoad context.CancelFunc
	loadSeq    int
}

// NewAppModel creates the launcher screen for overlay
func NewAppModel(overlay *launcher.Overlay, loader PageLoader) AppModel {
	th := newTheme(overlay.State())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = th.spinner

	input := textinput.New()
	input.Prompt = "Public key: "
	input.Placeholder = "your widget key"
	input.CharLimit = 128
	input.Width = 40

	return AppModel{
		Overlay:    overlay,
		Loader:     loader,
		KeyInput:   input,
		Width:      MinWidth,
		Height:     MinHeight,
		Spinner:    s,
		Help:       help.New(),
		ClosedKeys: newClosedKeyMap(),
		ModalKeys:  newModalKeyMap(),
		EditKeys:   newEditKeyMap(),
		theme:      th,
	}
}

// Minimum layout size used before the first WindowSizeMsg
const (
	MinWidth  = 60
	MinHeight = 20
)

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.Editing {
			return m.updateEditing(msg)
		}
		if m.Overlay.State().ModalOpen {
			return m.updateModal(msg)
		}
		return m.updateClosed(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case loadResultMsg:
		return m.applyLoadResult(msg), nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	if m.Editing {
		var cmd tea.Cmd
		m.KeyInput, cmd = m.KeyInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) updateClosed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ClosedKeys.Quit):
		return m.quit()
	case key.Matches(msg, m.ClosedKeys.Open):
		return m.openModal()
	case key.Matches(msg, m.ClosedKeys.Edit):
		return m.startEditing()
	}
	return m, nil
}

func (m AppModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ModalKeys.Quit):
		return m.quit()
	case key.Matches(msg, m.ModalKeys.Close):
		m.Overlay.Close()
		return m.afterClose(), nil
	case key.Matches(msg, m.ModalKeys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.ModalKeys.Down):
		if m.Page != nil && m.Cursor < len(m.Page.Links)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.ModalKeys.Follow):
		return m.followLink()
	case key.Matches(msg, m.ModalKeys.Reload):
		return m.reload()
	case key.Matches(msg, m.ModalKeys.Edit):
		return m.startEditing()
	}
	return m, nil
}

func (m AppModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.EditKeys.Cancel):
		m.Editing = false
		m.KeyInput.Blur()
		return m, nil

	case key.Matches(msg, m.EditKeys.Confirm):
		m.Editing = false
		m.KeyInput.Blur()

		identity := m.Overlay.Options().Identity
		identity.PublicKey = m.KeyInput.Value()
		m.Overlay.SetIdentity(identity)

		// A live session was reset in place and needs a fresh load
		if s := m.Overlay.Session(); s != nil {
			return m.loadCurrent(s)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.KeyInput, cmd = m.KeyInput.Update(msg)
	return m, cmd
}

func (m AppModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	hit := m.hitTest(msg.X, msg.Y)
	logging.Debug("Mouse press", zap.Int("x", msg.X), zap.Int("y", msg.Y), zap.Stringer("region", hit))

	switch hit {
	case regionLauncher:
		return m.openModal()
	case regionClose:
		m.Overlay.Close()
		return m.afterClose(), nil
	case regionBackground:
		m.Overlay.TapBackground()
		return m.afterClose(), nil
	case regionContent:
		m.Overlay.TapContent()
	}
	return m, nil
}

// hitTest maps a screen cell to the launcher element drawn there
func (m AppModel) hitTest(x, y int) region {
	st := m.Overlay.State()
	if !st.Visible {
		return regionNone
	}

	if st.ModalOpen {
		box := modalRect(m.Width, m.Height)
		switch {
		case closeRect(box).contains(x, y):
			return regionClose
		case box.contains(x, y):
			return regionContent
		case y < stageHeight(m.Height):
			return regionBackground
		}
		return regionNone
	}

	if m.fabRect().contains(x, y) {
		return regionLauncher
	}
	return regionNone
}

func (m AppModel) fabRect() rect {
	st := m.Overlay.State()
	fab := m.theme.renderFAB(st.Icon)
	return launcherRect(st.Position, widthOf(fab), heightOf(fab), m.Width, m.Height)
}

func (m AppModel) openModal() (tea.Model, tea.Cmd) {
	if m.Overlay.State().ModalOpen {
		return m, nil
	}
	s := m.Overlay.TapLauncher()
	if s == nil {
		return m, nil
	}
	return m.loadCurrent(s)
}

// loadCurrent starts loading the session's own address. Sessions that
// failed validation have no address and stay in their error state.
func (m AppModel) loadCurrent(s *session.Controller) (tea.Model, tea.Cmd) {
	m.Page = nil
	m.Cursor = 0
	m.Notice = ""
	if s.Address() == "" {
		m.stopLoad()
		m.loadSeq++
		m.CurrentURL = ""
		return m, nil
	}
	return m.startLoad(s, s.Address().String())
}

func (m AppModel) reload() (tea.Model, tea.Cmd) {
	s := m.Overlay.Session()
	if s == nil {
		return m, nil
	}
	if m.CurrentURL == "" {
		return m.loadCurrent(s)
	}
	return m.startLoad(s, m.CurrentURL)
}

func (m AppModel) followLink() (tea.Model, tea.Cmd) {
	s := m.Overlay.Session()
	if s == nil || m.Page == nil || m.Cursor >= len(m.Page.Links) {
		return m, nil
	}

	target := m.Page.Links[m.Cursor].URL
	if !m.Overlay.RequestNavigation(s.ID(), target) {
		m.Notice = "Opened in your browser: " + target
		return m, nil
	}
	return m.startLoad(s, target)
}

// startLoad reports LoadStarted to the session right away and fetches the
// address in a command; the loader's own LoadStarted is not delivered again.
// Any load still running is abandoned.
func (m AppModel) startLoad(s *session.Controller, address string) (tea.Model, tea.Cmd) {
	m.stopLoad()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel
	m.loadSeq++
	seq := m.loadSeq
	m.CurrentURL = address
	m.Page = nil
	m.Cursor = 0
	m.Notice = ""

	id := s.ID()
	m.Overlay.Deliver(id, session.LoadStarted{})

	loader := m.Loader
	fetch := func() tea.Msg {
		var events []session.Event
		page, _ := loader.Load(ctx, address, func(ev session.Event) {
			if _, started := ev.(session.LoadStarted); started {
				return
			}
			events = append(events, ev)
		})
		return loadResultMsg{sessionID: id, seq: seq, events: events, page: page}
	}

	return m, tea.Batch(fetch, m.Spinner.Tick)
}

// applyLoadResult delivers a finished load. Results of superseded loads
// are discarded.
func (m AppModel) applyLoadResult(msg loadResultMsg) AppModel {
	if msg.seq != m.loadSeq {
		return m
	}
	m.stopLoad()
	for _, ev := range msg.events {
		m.Overlay.Deliver(msg.sessionID, ev)
	}
	if !m.Overlay.IsLive(msg.sessionID) {
		return m
	}
	m.Page = msg.page
	m.Cursor = 0
	return m
}

func (m *AppModel) stopLoad() {
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
}

// afterClose clears surface state once the overlay dropped its session
func (m AppModel) afterClose() AppModel {
	if m.Overlay.State().ModalOpen {
		return m
	}
	m.stopLoad()
	m.CurrentURL = ""
	m.Page = nil
	m.Cursor = 0
	m.Notice = ""
	return m
}

func (m AppModel) startEditing() (tea.Model, tea.Cmd) {
	m.Editing = true
	m.KeyInput.SetValue(m.Overlay.Options().Identity.PublicKey)
	m.KeyInput.CursorEnd()
	return m, m.KeyInput.Focus()
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.stopLoad()
	return m, tea.Quit
}

func (m AppModel) loading() bool {
	s := m.Overlay.Session()
	return s != nil && s.State().Phase == session.PhaseLoading
}

// Run starts the full-screen launcher and blocks until the user quits
func Run(overlay *launcher.Overlay, loader PageLoader) error {
	p := tea.NewProgram(
		NewAppModel(overlay, loader),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
