// sink.go appends live activity entries as JSON lines to
// .leadtrack/activity.jsonl so transitions survive the session for audit.
// The in-memory log is still rebuilt from persisted dates on cold start;
// the sink is never read back into the log.
package activity

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SinkEvent is the JSONL record written per live entry.
type SinkEvent struct {
	Time    time.Time `json:"time"`
	Session string    `json:"session,omitempty"`
	Message string    `json:"message"`
}

// Sink writes append-only JSONL events to a file under dir/.leadtrack.
type Sink struct {
	path    string
	session string
	mu      sync.Mutex
}

// NewSink creates a Sink writing to .leadtrack/activity.jsonl inside dir,
// tagging every event with sessionID. Creates the .leadtrack/ directory
// if it does not already exist. Does not truncate an existing file.
func NewSink(dir, sessionID string) (*Sink, error) {
	stateDir := filepath.Join(dir, ".leadtrack")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("create .leadtrack directory: %w", err)
	}
	return &Sink{
		path:    filepath.Join(stateDir, "activity.jsonl"),
		session: sessionID,
	}, nil
}

// Append writes a single entry as one JSON line. Thread-safe via mutex.
func (s *Sink) Append(e Entry) error {
	event := SinkEvent{Time: e.Timestamp, Session: s.session, Message: e.Message}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal activity event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open activity file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write activity event: %w", err)
	}
	return nil
}

// ReadAll reads and parses every event written so far. Returns an empty
// slice (not an error) if the file does not exist.
func (s *Sink) ReadAll() ([]SinkEvent, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []SinkEvent{}, nil
		}
		return nil, fmt.Errorf("open activity file: %w", err)
	}
	defer f.Close()

	var events []SinkEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event SinkEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse activity line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read activity file: %w", err)
	}
	return events, nil
}
