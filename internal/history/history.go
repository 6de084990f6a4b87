// Package history keeps the bounded, durable log of previously delivered
// items. It is the single source of truth for "have we shown this before":
// loaded once at the start of a run, appended to and persisted once at the
// end.
package history

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMaxSize caps how many records survive a save; the oldest are
// trimmed from the front.
const DefaultMaxSize = 1000

// Record is one previously delivered item. Time is the capture instant in
// epoch milliseconds, set when the record is written, not the item's
// original publish time. Records are appended once per run in finished
// order, so Time is non-decreasing across the file.
type Record struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Time    int64  `json:"time"`
	Score   int    `json:"score"`
	Summary string `json:"summary,omitempty"`
	Source  string `json:"source,omitempty"`
	Region  string `json:"region,omitempty"`
}

// CaptureTime returns the record's capture instant.
func (r Record) CaptureTime() time.Time {
	return time.UnixMilli(r.Time)
}

// Store persists records as a single human-readable JSON document.
type Store struct {
	path    string
	maxSize int
	log     zerolog.Logger
}

func NewStore(path string, maxSize int, log zerolog.Logger) *Store {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Store{path: path, maxSize: maxSize, log: log}
}

// Load reads the history file. A missing or unparsable file yields an empty
// history, never an error: losing history degrades dedup for one day, it
// must not abort the run.
func (s *Store) Load() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("history read failed, starting empty")
		}
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("history unreadable, starting empty")
		return nil
	}
	return records
}

// Save writes the records, keeping only the most recent maxSize entries in
// their original relative order.
func (s *Store) Save(records []Record) error {
	if len(records) > s.maxSize {
		records = records[len(records)-s.maxSize:]
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
