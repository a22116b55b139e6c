// Package tui is the interactive card editor: a form on the left, a live
// preview on the right, driven by Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/taruca/internal/card"
	"github.com/lox/taruca/internal/preview"
)

const defaultNoticeTTL = 5 * time.Second

var tips = []string{
	"Keep it simple and readable - avoid cluttering with too much information",
	"Use high contrast colors for better readability",
	"Include only essential contact information",
	"Choose fonts that reflect your professional image",
}

// Options configures the editor model.
type Options struct {
	Clock         quartz.Clock
	NoticeTTL     time.Duration
	PreviewWidth  int
	PreviewHeight int

	// Renderer overrides the lipgloss renderer used for the card preview.
	Renderer *lipgloss.Renderer

	TestMode bool
}

// Model is the Bubble Tea model for the card editor.
type Model struct {
	store  *card.Store
	logger *log.Logger
	clock  quartz.Clock
	keys   keyMap

	// Form
	fields []card.Field
	inputs []textinput.Model
	focus  int

	// Pickers
	schemes      []card.ColorScheme
	schemeCursor int
	fonts        []card.FontOption
	fontCursor   int

	// Preview, re-rendered by the store observer
	previewOpts []preview.Option
	rendered    string

	notice    *activeNotice
	noticeTTL time.Duration
	noticeSeq int

	width    int
	height   int
	quitting bool

	testMode    bool
	capturedLog []string
}

type activeNotice struct {
	card.Notice
	expires time.Time
	seq     int
}

// noticeExpiredMsg is delivered when a notice's timer fires.
type noticeExpiredMsg struct {
	seq int
}

// NewModel creates an editor bound to store.
func NewModel(store *card.Store, logger *log.Logger) *Model {
	return NewModelWithOptions(store, logger, Options{})
}

// NewModelWithOptions creates an editor with explicit options.
func NewModelWithOptions(store *card.Store, logger *log.Logger, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = defaultNoticeTTL
	}
	if opts.PreviewWidth == 0 {
		opts.PreviewWidth = preview.DefaultWidth
	}
	if opts.PreviewHeight == 0 {
		opts.PreviewHeight = preview.DefaultHeight
	}

	m := &Model{
		store:       store,
		logger:      logger.WithPrefix("tui"),
		clock:       opts.Clock,
		keys:        defaultKeyMap(),
		fields:      card.ContactFields(),
		schemes:     card.Schemes(),
		fonts:       card.Fonts(),
		noticeTTL:   opts.NoticeTTL,
		previewOpts: []preview.Option{preview.WithSize(opts.PreviewWidth, opts.PreviewHeight)},
		testMode:    opts.TestMode,
		capturedLog: []string{},
	}
	if opts.Renderer != nil {
		m.previewOpts = append(m.previewOpts, preview.WithRenderer(opts.Renderer))
	}

	record := store.Record()
	for _, f := range m.fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder()
		ti.CharLimit = 0
		ti.Width = 36
		ti.Prompt = "> "
		ti.PromptStyle = lipgloss.NewStyle().Foreground(focusColor).Bold(true)
		ti.SetValue(record.Get(f))
		ti.CursorEnd()
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].Focus()

	for i, s := range m.schemes {
		if s.Matches(record) {
			m.schemeCursor = i
		}
	}
	for i, f := range m.fonts {
		if f.Family == record.FontFamily {
			m.fontCursor = i
		}
	}

	m.onRecord(record)
	store.Subscribe(m.onRecord)

	return m
}

func (m *Model) onRecord(r card.Record) {
	m.rendered = preview.Render(r, m.previewOpts...)
}

func (m *Model) schemeFocus() int   { return len(m.inputs) }
func (m *Model) fontFocus() int     { return len(m.inputs) + 1 }
func (m *Model) downloadFocus() int { return len(m.inputs) + 2 }
func (m *Model) focusCount() int    { return len(m.inputs) + 3 }

// Init initializes the editor
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the editor
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeExpiredMsg:
		m.expireNotice(msg.seq)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Download):
			return m, m.download()
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		}

		switch m.focus {
		case m.schemeFocus():
			m.updateSchemePicker(msg)
			return m, nil
		case m.fontFocus():
			m.updateFontPicker(msg)
			return m, nil
		case m.downloadFocus():
			if key.Matches(msg, m.keys.Select) {
				return m, m.download()
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.Submit) {
			return m, m.setFocus(m.focus + 1)
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.syncInput(m.focus)
		return m, cmd
	}
	return m, nil
}

// syncInput pushes an input's value into the store when it changed.
func (m *Model) syncInput(i int) {
	field := m.fields[i]
	value := m.inputs[i].Value()
	if value == m.store.Record().Get(field) {
		return
	}
	if err := m.store.UpdateField(field, value); err != nil {
		m.logger.Error("Failed to update field", "field", field, "error", err)
	}
}

func (m *Model) setFocus(next int) tea.Cmd {
	n := m.focusCount()
	next = (next%n + n) % n

	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *Model) download() tea.Cmd {
	notice := m.store.Download()

	m.noticeSeq++
	m.notice = &activeNotice{
		Notice:  notice,
		expires: m.clock.Now().Add(m.noticeTTL),
		seq:     m.noticeSeq,
	}
	if m.testMode {
		m.capturedLog = append(m.capturedLog, notice.Message)
	}

	seq, clock, ttl := m.noticeSeq, m.clock, m.noticeTTL
	return func() tea.Msg {
		timer := clock.NewTimer(ttl, "notice")
		<-timer.C
		return noticeExpiredMsg{seq: seq}
	}
}

// expireNotice clears the notice if it is the one the timer was set for and
// its time is up. A newer notice restarts the clock.
func (m *Model) expireNotice(seq int) {
	if m.notice == nil || m.notice.seq != seq {
		return
	}
	if m.clock.Now().Before(m.notice.expires) {
		return
	}
	m.notice = nil
}

// ActiveNotice returns the notice currently on screen, if any.
func (m *Model) ActiveNotice() (card.Notice, bool) {
	if m.notice == nil {
		return card.Notice{}, false
	}
	return m.notice.Notice, true
}

// Preview returns the most recent card rendering.
func (m *Model) Preview() string {
	return m.rendered
}

// View renders the editor
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render("Taruca - Business Card Designer") + "\n" +
		SubtitleStyle.Render("Create professional business cards in minutes")

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderForm(),
		m.renderSchemePicker(),
		m.renderFontPicker(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPreviewPane(),
		m.renderTips(),
	)

	// Two columns when they fit, stacked otherwise.
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if lipgloss.Width(body) > m.width {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		m.renderNotice(),
		m.renderHelp(),
	)
}

func (m *Model) renderForm() string {
	var content strings.Builder
	for i, f := range m.fields {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(LabelStyle.Render(f.Label()))
		content.WriteString("\n")
		content.WriteString(m.inputs[i].View())
	}
	return renderPanel("Personal Information", content.String(), m.focus < len(m.inputs))
}

func (m *Model) renderPreviewPane() string {
	button := ButtonStyle.Render("⬇ Download Business Card")
	if m.focus == m.downloadFocus() {
		button = FocusedButtonStyle.Render("⬇ Download Business Card")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.rendered,
		"",
		button,
		InfoStyle.Render(preview.Caption()),
	)
	return renderPanel("Live Preview", content, m.focus == m.downloadFocus())
}

func (m *Model) renderTips() string {
	var content strings.Builder
	for _, tip := range tips {
		content.WriteString(TipBulletStyle.Render("• "))
		content.WriteString(tip)
		content.WriteString("\n")
	}

	if ratio, ok := preview.Contrast(m.store.Record()); ok {
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Text contrast %.1f:1", ratio)))
	} else {
		content.WriteString(InfoStyle.Render("Text contrast n/a"))
	}
	return renderPanel("Tips for Great Business Cards", content.String(), false)
}

func (m *Model) renderNotice() string {
	if m.notice == nil {
		return ""
	}
	width := max(m.width-2, 20)
	return NoticeStyle.Width(width).Render("ⓘ " + m.notice.Title + ": " + m.notice.Message)
}

func (m *Model) renderHelp() string {
	var parts []string
	for _, b := range m.keys.helpBindings() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return InfoStyle.Render(strings.Join(parts, " • "))
}

// GetCapturedLog returns the notices shown so far (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the editor is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
