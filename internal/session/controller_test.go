package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/cuoral/internal/widget"
)

var validIdentity = widget.IdentityConfig{PublicKey: "abc123", Email: "a@b.com"}

func TestNew_ValidIdentity(t *testing.T) {
	c := New(validIdentity)

	assert.Equal(t, Loading(), c.State())
	assert.Equal(t,
		widget.WidgetAddress("https://js.cuoral.com/mobile.html?auto_display=true&key=abc123&email=a%40b.com"),
		c.Address())
	assert.NotEmpty(t, c.ID())
	assert.Nil(t, c.Err())
}

func TestNew_EmptyKey(t *testing.T) {
	c := New(widget.IdentityConfig{PublicKey: ""})

	assert.Equal(t, Failed("publicKey must not be empty"), c.State())
	assert.Empty(t, c.Address(), "no address may be constructed for an invalid identity")
	require.NotNil(t, c.Err())
	assert.True(t, widget.IsValidationError(c.Err()))
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(validIdentity)
	b := New(validIdentity)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestApply_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		events   []Event
		expected State
	}{
		{
			name:     "load finished",
			events:   []Event{LoadFinished{}},
			expected: Loaded(),
		},
		{
			name:     "load started keeps loading",
			events:   []Event{LoadStarted{}},
			expected: Loading(),
		},
		{
			name:     "load failed with code",
			events:   []Event{LoadFailed{Description: "offline", Code: "-1009"}},
			expected: Failed("Error loading widget: offline (Code: -1009)"),
		},
		{
			name:     "load failed without code",
			events:   []Event{LoadFailed{Description: "offline"}},
			expected: Failed("Error loading widget: offline (Code: unknown)"),
		},
		{
			name:     "http error",
			events:   []Event{HTTPError{StatusCode: 404, Description: "Not Found"}},
			expected: Failed("HTTP Error: 404 - Not Found"),
		},
		{
			name:     "load end after failure keeps the failure",
			events:   []Event{LoadFailed{Description: "offline", Code: "1"}, LoadFinished{}},
			expected: Failed("Error loading widget: offline (Code: 1)"),
		},
		{
			name:     "retry after error",
			events:   []Event{HTTPError{StatusCode: 500, Description: "Internal Server Error"}, LoadStarted{}},
			expected: Loading(),
		},
		{
			name:     "retry after loaded",
			events:   []Event{LoadFinished{}, LoadStarted{}},
			expected: Loading(),
		},
		{
			name:     "retry then success",
			events:   []Event{LoadFailed{Description: "x"}, LoadStarted{}, LoadFinished{}},
			expected: Loaded(),
		},
		{
			name:     "failure while loaded is ignored",
			events:   []Event{LoadFinished{}, HTTPError{StatusCode: 500, Description: "late"}},
			expected: Loaded(),
		},
		{
			name:     "second failure while in error is ignored",
			events:   []Event{HTTPError{StatusCode: 404, Description: "Not Found"}, LoadFailed{Description: "later"}},
			expected: Failed("HTTP Error: 404 - Not Found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(validIdentity)
			for _, ev := range tt.events {
				c.Apply(ev)
			}
			assert.Equal(t, tt.expected, c.State())
		})
	}
}

func TestApply_LoadFailedReasonContainsDescriptionAndCode(t *testing.T) {
	cases := []LoadFailed{
		{Description: "The request timed out.", Code: "-1001"},
		{Description: "net::ERR_NAME_NOT_RESOLVED", Code: "-2"},
		{Description: "weird (parens) & symbols", Code: "E_42"},
	}

	for _, ev := range cases {
		c := New(validIdentity)
		require.True(t, c.Apply(ev))

		st := c.State()
		assert.Equal(t, PhaseError, st.Phase)
		assert.Contains(t, st.Reason, ev.Description)
		assert.Contains(t, st.Reason, ev.Code)
		require.NotNil(t, c.Err())
		assert.True(t, widget.IsLoadError(c.Err()))

		// A subsequent load-started always returns to Loading and clears the reason
		c.Apply(LoadStarted{})
		assert.Equal(t, Loading(), c.State())
		assert.Empty(t, c.State().Reason)
		assert.Nil(t, c.Err())
	}
}

func TestApply_ReportsChange(t *testing.T) {
	c := New(validIdentity)

	assert.False(t, c.Apply(LoadStarted{}), "loading -> loading is not a change")
	assert.True(t, c.Apply(LoadFinished{}))
	assert.False(t, c.Apply(LoadFinished{}), "no transition from loaded on load-finished")
}

func TestApply_ValidationErrorIsTerminal(t *testing.T) {
	c := New(widget.IdentityConfig{PublicKey: "   "})
	before := c.State()

	for _, ev := range []Event{LoadStarted{}, LoadFinished{}, LoadFailed{Description: "x"}, HTTPError{StatusCode: 500}} {
		assert.False(t, c.Apply(ev))
		assert.Equal(t, before, c.State())
	}
}

func TestReconfigure(t *testing.T) {
	t.Run("invalid to valid", func(t *testing.T) {
		c := New(widget.IdentityConfig{})
		id := c.ID()
		require.Equal(t, PhaseError, c.State().Phase)

		c.Reconfigure(validIdentity)

		assert.Equal(t, Loading(), c.State())
		assert.NotEmpty(t, c.Address())
		assert.Equal(t, id, c.ID())
		assert.Equal(t, validIdentity, c.Identity())
	})

	t.Run("loaded to invalid", func(t *testing.T) {
		c := New(validIdentity)
		c.Apply(LoadFinished{})

		c.Reconfigure(widget.IdentityConfig{PublicKey: ""})

		assert.Equal(t, Failed(widget.ErrMsgEmptyPublicKey), c.State())
		assert.Empty(t, c.Address())
	})

	t.Run("error to new identity resets", func(t *testing.T) {
		c := New(validIdentity)
		c.Apply(HTTPError{StatusCode: 404, Description: "Not Found"})

		c.Reconfigure(widget.IdentityConfig{PublicKey: "other"})

		assert.Equal(t, Loading(), c.State())
		assert.Nil(t, c.Err())
		assert.Contains(t, c.Address().String(), "key=other")
	})
}

func TestNewHidden(t *testing.T) {
	c := NewHidden()

	assert.Equal(t, Idle(), c.State())
	assert.Empty(t, c.Address())

	for _, ev := range []Event{LoadStarted{}, LoadFinished{}, LoadFailed{Description: "x"}, HTTPError{StatusCode: 404}} {
		assert.False(t, c.Apply(ev))
	}
	assert.Equal(t, Idle(), c.State())
	assert.Nil(t, c.Err())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", Loading().String())
	assert.Equal(t, "error{boom}", Failed("boom").String())
	assert.Equal(t, "unknown", Phase(99).String())
}
