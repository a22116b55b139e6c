package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/taruca/internal/card"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func newTestModel(t *testing.T) (*Model, *card.Store, *quartz.Mock) {
	t.Helper()
	store := card.NewStore()
	clock := quartz.NewMock(t)
	m := NewModelWithOptions(store, quietLogger(), Options{
		Clock:     clock,
		NoticeTTL: 5 * time.Second,
		Renderer:  colorRenderer(),
		TestMode:  true,
	})
	return m, store, clock
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingUpdatesStore(t *testing.T) {
	m, store, _ := newTestModel(t)
	before := store.Record()

	send(m, runes(" Jr."))

	after := store.Record()
	assert.Equal(t, "John Doe Jr.", after.Name)
	before.Name = after.Name
	assert.Equal(t, before, after, "only the name changes")

	t.Run("tab moves to the next field", func(t *testing.T) {
		send(m, keyMsg(tea.KeyTab), runes("!"))
		assert.Equal(t, "Software Engineer!", store.Record().Title)
		assert.Equal(t, "John Doe Jr.", store.Record().Name)
	})

	t.Run("enter also advances", func(t *testing.T) {
		send(m, keyMsg(tea.KeyEnter), runes("?"))
		assert.Equal(t, "Tech Solutions Inc.?", store.Record().Company)
	})

	t.Run("fields can be emptied", func(t *testing.T) {
		send(m, keyMsg(tea.KeyCtrlU))
		assert.Equal(t, "", store.Record().Company)
	})
}

func TestLongValuesAreNotCut(t *testing.T) {
	m, store, _ := newTestModel(t)
	long := strings.Repeat("a", 120)

	t.Run("pasted", func(t *testing.T) {
		send(m, keyMsg(tea.KeyCtrlU), runes(long))
		assert.Equal(t, long, store.Record().Name)
		assert.Equal(t, long, m.inputs[0].Value())
	})

	t.Run("typed one rune at a time", func(t *testing.T) {
		send(m, keyMsg(tea.KeyCtrlU))
		for i := 0; i < 120; i++ {
			send(m, runes("b"))
		}
		assert.Equal(t, strings.Repeat("b", 120), store.Record().Name)
	})

	t.Run("existing long value loads intact", func(t *testing.T) {
		store := card.NewStore()
		require.NoError(t, store.UpdateField(card.FieldCompany, long))
		m := NewModelWithOptions(store, quietLogger(), Options{Clock: quartz.NewMock(t), TestMode: true})
		assert.Equal(t, long, m.inputs[2].Value())
	})
}

func TestPreviewFollowsRecord(t *testing.T) {
	m, _, _ := newTestModel(t)
	initial := m.Preview()
	assert.Contains(t, initial, "John Doe")

	send(m, runes("X"))
	assert.Contains(t, m.Preview(), "John DoeX")
	assert.NotEqual(t, initial, m.Preview())
}

func TestSchemePicker(t *testing.T) {
	m, store, _ := newTestModel(t)
	m.setFocus(m.schemeFocus())
	before := store.Record()

	t.Run("digit applies directly", func(t *testing.T) {
		send(m, runes("3"))
		r := store.Record()
		assert.Equal(t, "#000000", r.BackgroundColor)
		assert.Equal(t, "#ffffff", r.TextColor)
		assert.Equal(t, "#fbbf24", r.AccentColor)
		assert.Equal(t, before.Name, r.Name)
		assert.Equal(t, before.FontFamily, r.FontFamily)
		assert.Equal(t, 2, m.schemeCursor)
	})

	t.Run("arrows move without applying", func(t *testing.T) {
		send(m, keyMsg(tea.KeyRight))
		assert.Equal(t, "#000000", store.Record().BackgroundColor)
		assert.Equal(t, 3, m.schemeCursor)

		send(m, keyMsg(tea.KeyEnter))
		assert.True(t, card.Schemes()[3].Matches(store.Record()))
	})

	t.Run("reapplying is idempotent", func(t *testing.T) {
		once := store.Record()
		send(m, keyMsg(tea.KeyEnter))
		assert.Equal(t, once, store.Record())
	})

	t.Run("cursor wraps", func(t *testing.T) {
		m.schemeCursor = 0
		send(m, keyMsg(tea.KeyLeft))
		assert.Equal(t, len(card.Schemes())-1, m.schemeCursor)
	})

	t.Run("out of range digit is ignored", func(t *testing.T) {
		once := store.Record()
		send(m, runes("9"))
		assert.Equal(t, once, store.Record())
	})
}

func TestFontPicker(t *testing.T) {
	m, store, _ := newTestModel(t)
	m.setFocus(m.fontFocus())
	before := store.Record()
	rendered := m.Preview()

	send(m, keyMsg(tea.KeyRight), keyMsg(tea.KeyEnter))

	after := store.Record()
	assert.Equal(t, card.FontSerif, after.FontFamily)
	before.FontFamily = card.FontSerif
	assert.Equal(t, before, after)
	assert.NotEqual(t, rendered, m.Preview(), "next render reflects the font")

	send(m, runes("3"))
	assert.Equal(t, card.FontMono, store.Record().FontFamily)
	assert.Contains(t, m.Preview(), "J o h n")
}

func TestDownload(t *testing.T) {
	t.Run("shortcut from any field", func(t *testing.T) {
		m, store, _ := newTestModel(t)
		before := store.Record()

		cmd := send(m, keyMsg(tea.KeyCtrlD))
		require.NotNil(t, cmd)

		notice, ok := m.ActiveNotice()
		require.True(t, ok)
		assert.Equal(t, card.DownloadMessage, notice.Message)
		assert.Equal(t, before, store.Record(), "ctrl+d must not edit the focused input")
		assert.Equal(t, []string{card.DownloadMessage}, m.GetCapturedLog())
	})

	t.Run("button", func(t *testing.T) {
		m, store, _ := newTestModel(t)
		before := store.Record()
		m.setFocus(m.downloadFocus())

		send(m, keyMsg(tea.KeyEnter))

		_, ok := m.ActiveNotice()
		assert.True(t, ok)
		assert.Equal(t, before, store.Record())
	})

	t.Run("notice expires", func(t *testing.T) {
		ctx := context.Background()
		m, _, clock := newTestModel(t)

		send(m, keyMsg(tea.KeyCtrlD))
		seq := m.noticeSeq

		clock.Advance(2 * time.Second).MustWait(ctx)
		send(m, noticeExpiredMsg{seq: seq})
		_, ok := m.ActiveNotice()
		assert.True(t, ok, "still within its time")

		clock.Advance(3 * time.Second).MustWait(ctx)
		send(m, noticeExpiredMsg{seq: seq})
		_, ok = m.ActiveNotice()
		assert.False(t, ok)
	})

	t.Run("stale timer leaves a newer notice alone", func(t *testing.T) {
		ctx := context.Background()
		m, _, clock := newTestModel(t)

		send(m, keyMsg(tea.KeyCtrlD))
		first := m.noticeSeq
		clock.Advance(4 * time.Second).MustWait(ctx)
		send(m, keyMsg(tea.KeyCtrlD))
		clock.Advance(1 * time.Second).MustWait(ctx)

		send(m, noticeExpiredMsg{seq: first})
		_, ok := m.ActiveNotice()
		assert.True(t, ok)
		assert.Len(t, m.GetCapturedLog(), 2)
	})
}

func TestFocusCycle(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, 0, m.focus)

	send(m, keyMsg(tea.KeyShiftTab))
	assert.Equal(t, m.downloadFocus(), m.focus)

	send(m, keyMsg(tea.KeyTab))
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.inputs[0].Focused())

	for i := 0; i < len(m.inputs); i++ {
		send(m, keyMsg(tea.KeyTab))
	}
	assert.Equal(t, m.schemeFocus(), m.focus)
	for _, in := range m.inputs {
		assert.False(t, in.Focused())
	}
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, "Loading...", m.View())

	send(m, tea.WindowSizeMsg{Width: 140, Height: 50})
	view := m.View()

	for _, want := range []string{
		"Business Card Designer",
		"Personal Information",
		"Full Name",
		"Color Schemes",
		"Creative Purple",
		"Typography",
		"Live Preview",
		"Download Business Card",
		"89mm × 51mm",
		"Tips for Great Business Cards",
		"Text contrast",
	} {
		assert.Contains(t, view, want)
	}

	send(m, keyMsg(tea.KeyCtrlD))
	assert.Contains(t, m.View(), "ⓘ Download: Download functionality")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := send(m, keyMsg(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, m.View())
}

func TestProductionModeDoesNotCapture(t *testing.T) {
	m := NewModel(card.NewStore(), quietLogger())
	assert.False(t, m.IsTestMode())

	send(m, keyMsg(tea.KeyCtrlD))
	assert.Nil(t, m.GetCapturedLog())
	_, ok := m.ActiveNotice()
	assert.True(t, ok)
}
