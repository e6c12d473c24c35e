package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/cuoral/internal/launcher"
	"github.com/muurk/cuoral/internal/session"
	"github.com/muurk/cuoral/internal/surface"
	"github.com/muurk/cuoral/internal/widget"
)

type fakeLoader struct {
	calls  []string
	events []session.Event
	page   *surface.Page
}

func (f *fakeLoader) Load(_ context.Context, address string, emit surface.Emitter) (*surface.Page, error) {
	f.calls = append(f.calls, address)
	emit(session.LoadStarted{})
	for _, ev := range f.events {
		emit(ev)
	}
	return f.page, nil
}

type recordingOpener struct {
	opened []string
}

func (r *recordingOpener) OpenURL(url string) error {
	r.opened = append(r.opened, url)
	return nil
}

func testPage() *surface.Page {
	return &surface.Page{
		URL:     "https://js.cuoral.com/mobile.html",
		Title:   "Support",
		Summary: "We reply fast.",
		Links: []surface.Link{
			{Text: "Conversation", URL: "https://js.cuoral.com/chat/1"},
			{Text: "Help centre", URL: "https://example.com/help"},
		},
	}
}

func newTestApp(t *testing.T, opts launcher.Options) (AppModel, *fakeLoader, *recordingOpener) {
	t.Helper()
	loader := &fakeLoader{events: []session.Event{session.LoadFinished{}}, page: testPage()}
	opener := &recordingOpener{}
	m := NewAppModel(launcher.NewOverlay(opts, opener), loader)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, loader, opener
}

func defaultOpts() launcher.Options {
	opts := launcher.DefaultOptions()
	opts.Identity = widget.IdentityConfig{PublicKey: "abc"}
	return opts
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// runCmd executes cmd and any batched commands, dropping spinner ticks
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	case nil:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

func settle(m AppModel, cmd tea.Cmd) AppModel {
	for _, msg := range runCmd(cmd) {
		m, _ = update(m, msg)
	}
	return m
}

func TestOpenLoadsWidget(t *testing.T) {
	m, loader, _ := newTestApp(t, defaultOpts())

	m, cmd := update(m, keyPress("enter"))
	require.True(t, m.Overlay.State().ModalOpen)
	s := m.Overlay.Session()
	require.NotNil(t, s)
	assert.Equal(t, session.PhaseLoading, s.State().Phase)
	assert.Contains(t, m.View(), "Loading chat")

	m = settle(m, cmd)
	assert.Equal(t, []string{"https://js.cuoral.com/mobile.html?auto_display=true&key=abc"}, loader.calls)
	assert.Equal(t, session.PhaseLoaded, s.State().Phase)
	require.NotNil(t, m.Page)

	view := m.View()
	assert.Contains(t, view, "Support")
	assert.Contains(t, view, "Conversation")
	assert.Contains(t, view, CloseGlyph)
}

func TestLateResultAfterCloseIsDropped(t *testing.T) {
	m, _, _ := newTestApp(t, defaultOpts())

	m, cmd := update(m, keyPress("enter"))
	m, _ = update(m, keyPress("x"))
	require.False(t, m.Overlay.State().ModalOpen)

	m = settle(m, cmd)
	assert.False(t, m.Overlay.State().ModalOpen)
	assert.Nil(t, m.Overlay.Session())
	assert.Nil(t, m.Page)
}

func TestSupersededLoadIsDiscarded(t *testing.T) {
	m, loader, _ := newTestApp(t, defaultOpts())

	m, first := update(m, keyPress("enter"))
	m, second := update(m, keyPress("r"))

	m = settle(m, second)
	require.Equal(t, session.PhaseLoaded, m.Overlay.Session().State().Phase)

	// The abandoned fetch reports cancellation after the reload finished
	loader.events = []session.Event{session.LoadFailed{Description: "context canceled", Code: surface.CodeCanceled}}
	loader.page = nil
	m = settle(m, first)

	assert.Equal(t, session.PhaseLoaded, m.Overlay.Session().State().Phase)
	assert.NotNil(t, m.Page)
}

func TestFollowLinks(t *testing.T) {
	m, loader, opener := newTestApp(t, defaultOpts())
	m, cmd := update(m, keyPress("enter"))
	m = settle(m, cmd)

	// External link goes to the browser, the surface stays put
	m, _ = update(m, keyPress("down"))
	m, cmd = update(m, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"https://example.com/help"}, opener.opened)
	assert.Contains(t, m.Notice, "https://example.com/help")
	assert.Equal(t, session.PhaseLoaded, m.Overlay.Session().State().Phase)

	// Trusted link loads inside
	m, _ = update(m, keyPress("k"))
	m, cmd = update(m, keyPress("enter"))
	assert.Equal(t, session.PhaseLoading, m.Overlay.Session().State().Phase)
	m = settle(m, cmd)
	assert.Equal(t, "https://js.cuoral.com/chat/1", loader.calls[len(loader.calls)-1])
	assert.Equal(t, "https://js.cuoral.com/chat/1", m.CurrentURL)
	assert.Len(t, opener.opened, 1)
}

func TestHTTPErrorShowsReason(t *testing.T) {
	m, loader, _ := newTestApp(t, defaultOpts())
	loader.events = []session.Event{session.HTTPError{StatusCode: 500, Description: "Internal Server Error"}}
	loader.page = nil

	m, cmd := update(m, keyPress("enter"))
	m = settle(m, cmd)

	assert.Equal(t, session.Failed("HTTP Error: 500 - Internal Server Error"), m.Overlay.Session().State())
	assert.Contains(t, m.View(), "HTTP Error: 500")

	// Reload retries the same address
	loader.events = []session.Event{session.LoadFinished{}}
	loader.page = testPage()
	m, cmd = update(m, keyPress("r"))
	assert.Equal(t, session.PhaseLoading, m.Overlay.Session().State().Phase)
	m = settle(m, cmd)
	assert.Equal(t, session.PhaseLoaded, m.Overlay.Session().State().Phase)
	assert.Len(t, loader.calls, 2)
	assert.Equal(t, loader.calls[0], loader.calls[1])
}

func TestInvalidIdentityThenEditKey(t *testing.T) {
	m, loader, _ := newTestApp(t, launcher.DefaultOptions())

	m, cmd := update(m, keyPress("enter"))
	assert.Nil(t, runCmd(cmd))
	assert.Empty(t, loader.calls)
	assert.Equal(t, session.Failed(widget.ErrMsgEmptyPublicKey), m.Overlay.Session().State())
	assert.Contains(t, m.View(), widget.ErrMsgEmptyPublicKey)

	id := m.Overlay.Session().ID()

	m, _ = update(m, keyPress("e"))
	require.True(t, m.Editing)
	m.KeyInput.SetValue("pk_new")
	m, cmd = update(m, keyPress("enter"))
	assert.False(t, m.Editing)

	s := m.Overlay.Session()
	assert.Equal(t, id, s.ID())
	m = settle(m, cmd)
	require.Len(t, loader.calls, 1)
	assert.Contains(t, loader.calls[0], "key=pk_new")
	assert.Equal(t, session.PhaseLoaded, s.State().Phase)
}

func TestMouseHitTesting(t *testing.T) {
	m, _, _ := newTestApp(t, defaultOpts())

	fab := m.fabRect()
	assert.Equal(t, 80-marginCols-fab.w, fab.x)
	assert.Equal(t, 23-marginRows-fab.h, fab.y)

	assert.Equal(t, regionNone, m.hitTest(0, 0))
	m, cmd := update(m, click(fab.x, fab.y))
	require.True(t, m.Overlay.State().ModalOpen)
	m = settle(m, cmd)

	box := modalRect(m.Width, m.Height)
	m, _ = update(m, click(box.x+box.w/2, box.y+box.h/2))
	assert.True(t, m.Overlay.State().ModalOpen, "tapping content must not close")

	m, _ = update(m, click(0, 0))
	assert.False(t, m.Overlay.State().ModalOpen, "tapping background closes")

	m, _ = update(m, click(fab.x+1, fab.y+1))
	require.True(t, m.Overlay.State().ModalOpen)
	closeBtn := closeRect(box)
	assert.Equal(t, regionClose, m.hitTest(closeBtn.x, closeBtn.y))
	m, _ = update(m, click(closeBtn.x+1, closeBtn.y))
	assert.False(t, m.Overlay.State().ModalOpen)
}

func TestLauncherCorners(t *testing.T) {
	for _, pos := range []launcher.Position{launcher.TopLeft, launcher.TopRight, launcher.BottomLeft, launcher.BottomRight} {
		t.Run(pos.String(), func(t *testing.T) {
			opts := defaultOpts()
			opts.Position = pos
			m, _, _ := newTestApp(t, opts)

			r := m.fabRect()
			if pos.IsLeft() {
				assert.Equal(t, marginCols, r.x)
			} else {
				assert.Equal(t, m.Width-marginCols-r.w, r.x)
			}
			if pos.IsTop() {
				assert.Equal(t, marginRows, r.y)
			}

			lines := strings.Split(m.View(), "\n")
			require.Greater(t, len(lines), r.y+1)
			assert.Contains(t, lines[r.y+1], launcher.DefaultIconText)
		})
	}
}

func TestModalRectCentered(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {81, 25}, {40, 12}, {200, 60}} {
		box := modalRect(size[0], size[1])
		stage := stageHeight(size[1])
		assert.Equal(t, size[0]-box.w-box.x, box.x, "horizontal gap for %v", size)
		assert.Equal(t, stage-box.h-box.y, box.y, "vertical gap for %v", size)
		assert.LessOrEqual(t, box.w, maxModalWidth)
	}
}

func TestModalRendersAtComputedSize(t *testing.T) {
	m, _, _ := newTestApp(t, defaultOpts())
	m, cmd := update(m, keyPress("enter"))
	m = settle(m, cmd)

	box := modalRect(m.Width, m.Height)
	modal := m.renderModal()
	assert.Equal(t, box.w, widthOf(modal))
	assert.Equal(t, box.h, heightOf(modal))
}

func TestHiddenLauncherIgnoresInput(t *testing.T) {
	opts := defaultOpts()
	opts.Visible = false
	m, loader, _ := newTestApp(t, opts)

	m, cmd := update(m, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.False(t, m.Overlay.State().ModalOpen)
	assert.Equal(t, regionNone, m.hitTest(78, 20))
	assert.Empty(t, loader.calls)
	assert.NotContains(t, m.View(), launcher.DefaultIconText)
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestApp(t, defaultOpts())
	_, cmd := update(m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestInvalidKeyAbandonsPendingLoad(t *testing.T) {
	m, _, _ := newTestApp(t, defaultOpts())

	m, pending := update(m, keyPress("enter"))
	m, _ = update(m, keyPress("e"))
	m.KeyInput.SetValue("   ")
	m, cmd := update(m, keyPress("enter"))
	assert.Nil(t, runCmd(cmd))
	require.Equal(t, session.Failed(widget.ErrMsgEmptyPublicKey), m.Overlay.Session().State())

	// The fetch for the old key finishes afterwards and must not land
	m = settle(m, pending)
	assert.Nil(t, m.Page)
	assert.Empty(t, m.CurrentURL)
	assert.Equal(t, session.Failed(widget.ErrMsgEmptyPublicKey), m.Overlay.Session().State())
}

func TestLoadStartedDeliveredOnce(t *testing.T) {
	m, _, _ := newTestApp(t, defaultOpts())

	_, cmd := update(m, keyPress("enter"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	result, ok := msgs[0].(loadResultMsg)
	require.True(t, ok)
	assert.Equal(t, []session.Event{session.LoadFinished{}}, result.events)
}
