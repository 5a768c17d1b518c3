package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/venuebook/server/internal/domain/events"
	"github.com/venuebook/server/internal/metrics"
)

// Store persists the full event collection as one JSON array in one
// file. A missing file reads as an empty collection; any other I/O
// failure propagates to the caller.
//
// All operations are serialized by a per-store mutex so read-modify-write
// cycles cannot interleave, and every rewrite goes through a temp file
// plus rename so a crash mid-write leaves the previous collection intact.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by file inside dir. The directory is
// created on first write if absent.
func New(dir, file string) *Store {
	return &Store{path: filepath.Join(dir, file)}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) List(ctx context.Context) ([]events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	metrics.ObserveStoreOp("list", err)
	return records, err
}

func (s *Store) Get(ctx context.Context, id string) (*events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		metrics.ObserveStoreOp("get", err)
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			metrics.ObserveStoreOp("get", nil)
			record := records[i]
			return &record, nil
		}
	}
	metrics.ObserveStoreOp("get", nil)
	return nil, events.ErrNotFound
}

func (s *Store) Insert(ctx context.Context, event events.Event) (*events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err == nil {
		records = append(records, event)
		err = s.save(records)
	}
	metrics.ObserveStoreOp("insert", err)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Store) Update(ctx context.Context, id string, fields map[string]any) (*events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		metrics.ObserveStoreOp("update", err)
		return nil, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		merged := events.ApplyPatch(records[i], fields, time.Now().UTC())
		records[i] = merged
		err = s.save(records)
		metrics.ObserveStoreOp("update", err)
		if err != nil {
			return nil, err
		}
		return &merged, nil
	}

	metrics.ObserveStoreOp("update", nil)
	return nil, events.ErrNotFound
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err == nil {
		kept := records[:0]
		for _, record := range records {
			if record.ID != id {
				kept = append(kept, record)
			}
		}
		err = s.save(kept)
	}
	metrics.ObserveStoreOp("delete", err)
	return err
}

// Ready reports whether the store can serve requests: the backing file
// must be loadable (or absent) and its directory creatable.
func (s *Store) Ready(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	if _, err := s.load(); err != nil {
		return fmt.Errorf("backing file: %w", err)
	}
	return nil
}

func (s *Store) load() ([]events.Event, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []events.Event
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return records, nil
}

func (s *Store) save(records []events.Event) error {
	if records == nil {
		records = []events.Event{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".events-*.json")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	metrics.StoreEvents.Set(float64(len(records)))
	metrics.StoreFileBytes.Set(float64(len(data)))
	return nil
}
