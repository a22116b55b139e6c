package card

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// DownloadMessage is shown whenever the user asks for a download.
const DownloadMessage = "Download functionality would be implemented here. " +
	"This would generate a high-quality PDF or image file of your business card."

// Notice is an informational message for the user.
type Notice struct {
	Title   string
	Message string
}

// Store owns the session's Record. It is not safe for concurrent use; all
// mutations are expected to run on the UI event loop.
type Store struct {
	record    Record
	observers []func(Record)
	logger    *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for mutation tracing.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger.WithPrefix("card")
	}
}

// NewStore creates a store holding DefaultRecord.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		record: DefaultRecord(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record returns a snapshot of the current record.
func (s *Store) Record() Record {
	return s.record
}

// Subscribe registers fn to be called with the new record after every
// mutation.
func (s *Store) Subscribe(fn func(Record)) {
	s.observers = append(s.observers, fn)
}

// UpdateField replaces exactly one field. Any value is accepted, including
// the empty string.
func (s *Store) UpdateField(field Field, value string) error {
	if !s.record.set(field, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	s.logger.Debug("Field updated", "field", field, "value", value)
	s.notify()
	return nil
}

// ApplyScheme replaces the three color fields together.
func (s *Store) ApplyScheme(scheme ColorScheme) {
	s.record.BackgroundColor = scheme.Background
	s.record.TextColor = scheme.Text
	s.record.AccentColor = scheme.Accent
	s.logger.Debug("Scheme applied", "scheme", scheme.Label)
	s.notify()
}

// SetFont replaces the font family.
func (s *Store) SetFont(font FontOption) {
	s.record.FontFamily = font.Family
	s.logger.Debug("Font selected", "font", font.Label)
	s.notify()
}

// Download is a placeholder for card export. It leaves the record untouched
// and returns the notice to show the user.
func (s *Store) Download() Notice {
	s.logger.Info("Download requested")
	return Notice{Title: "Download", Message: DownloadMessage}
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn(s.record)
	}
}
