package testutil

import (
	"sync"
	"time"

	"catchlog/internal/models"
	"catchlog/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCatchService implements services.CatchServiceInterface.
type MockCatchService struct {
	mu        sync.Mutex
	AddCalls  []*models.CatchInput
	AddResult models.CatchRecord
	AddErr    error
	Records   []models.CatchRecord
	PutCalls  []*models.StorageV1
}

func (m *MockCatchService) AddCatch(in *models.CatchInput) (models.CatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = append(m.AddCalls, in)
	if m.AddErr != nil {
		return models.CatchRecord{}, m.AddErr
	}
	return m.AddResult, nil
}

func (m *MockCatchService) GetCatches() []models.CatchRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Records == nil {
		return make([]models.CatchRecord, 0)
	}
	return m.Records
}

func (m *MockCatchService) GetSummary() models.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.Summarize(m.Records)
}

func (m *MockCatchService) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records)
}

func (m *MockCatchService) GetSnapshot() *models.StorageV1 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &models.StorageV1{Version: models.SnapshotVersion, Records: m.Records}
}

func (m *MockCatchService) PutSnapshot(storage *models.StorageV1) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, storage)
	if storage != nil {
		m.Records = storage.Records
	}
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	RequestCalls     int
	DurationCalls    int
	CacheHits        int
	CacheMisses      int
	PersistenceCalls int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCalls++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DurationCalls++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceCalls++
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
