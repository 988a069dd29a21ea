package models

import (
	"sync"

	"github.com/google/uuid"
)

// CatchStore is the in-memory ordered collection of catch records.
// Records are append-only: there is no update or delete. Thread-safe.
type CatchStore struct {
	mu      sync.RWMutex
	records []CatchRecord
}

func NewCatchStore() *CatchStore {
	return &CatchStore{
		records: make([]CatchRecord, 0),
	}
}

// Add builds a record from a validated creation payload, assigns its id
// and appends it. Insertion order is preserved.
func (s *CatchStore) Add(in *CatchInput) (CatchRecord, error) {
	date, err := ParseDate(in.DateCaught)
	if err != nil {
		return CatchRecord{}, err
	}

	rec := CatchRecord{
		Id:         uuid.NewString(),
		Species:    in.Species,
		Location:   in.Location,
		DateCaught: date,
		TimeOfDay:  TimeOfDay(in.TimeOfDay),
		Weather:    Weather(in.Weather),
		Bait:       in.Bait,
		Notes:      in.Notes,
	}
	if in.Weight != nil {
		rec.Weight = *in.Weight
	}
	if in.Length != nil {
		l := *in.Length
		rec.Length = &l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return rec, nil
}

// List returns a copy of all records in insertion order. Never nil.
func (s *CatchStore) List() []CatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CatchRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *CatchStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// PutData replaces the collection wholesale. Used on snapshot restore.
func (s *CatchStore) PutData(records []CatchRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]CatchRecord, len(records))
	copy(s.records, records)
}
