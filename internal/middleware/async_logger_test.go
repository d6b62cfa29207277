package middleware

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmlab/suppository-service/internal/domain/model"
)

// countingLoggingService records stored entries for assertions.
type countingLoggingService struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *countingLoggingService) CreateLog(_ context.Context, entry *model.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *countingLoggingService) CreateLogs(_ context.Context, entries []*model.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *countingLoggingService) LogCalculation(context.Context, string, model.Formulation, model.CalculationResult) error {
	return nil
}

func (s *countingLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]*model.LogEntry, error) {
	return nil, nil
}

func (s *countingLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func (s *countingLoggingService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// TestAsyncLogger tests buffered background log writes.
func TestAsyncLogger(t *testing.T) {
	t.Run("writes enqueued entries", func(t *testing.T) {
		sink := &countingLoggingService{}
		al := NewAsyncLogger(sink, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 2, WriteTimeout: time.Second})
		require.NotNil(t, al)

		for i := 0; i < 5; i++ {
			assert.True(t, al.Log(&model.LogEntry{Message: "entry"}))
		}
		al.Stop()

		assert.Equal(t, 5, sink.count())
		enqueued, dropped, written, errs := al.Stats()
		assert.Equal(t, int64(5), enqueued)
		assert.Zero(t, dropped)
		assert.Equal(t, int64(5), written)
		assert.Zero(t, errs)
	})

	t.Run("drops entries when the buffer is full", func(t *testing.T) {
		sink := &countingLoggingService{}
		// No workers: the buffer fills and stays full.
		al := &AsyncLogger{
			loggingService: sink,
			entryCh:        make(chan *model.LogEntry, 1),
			stopCh:         make(chan struct{}),
			writeTimeout:   time.Second,
		}

		assert.True(t, al.Log(&model.LogEntry{Message: "kept"}))
		assert.False(t, al.Log(&model.LogEntry{Message: "dropped"}))

		_, dropped, _, _ := al.Stats()
		assert.Equal(t, int64(1), dropped)
	})

	t.Run("nil logging service yields nil logger", func(t *testing.T) {
		assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))
	})
}

// TestGlobalAsyncLogger tests the singleton lifecycle.
func TestGlobalAsyncLogger(t *testing.T) {
	assert.Nil(t, GetAsyncLogger())

	sink := &countingLoggingService{}
	InitAsyncLogger(sink, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1, WriteTimeout: time.Second})
	require.NotNil(t, GetAsyncLogger())

	GetAsyncLogger().Log(&model.LogEntry{Message: "via singleton"})
	StopAsyncLogger()

	assert.Nil(t, GetAsyncLogger())
	assert.Equal(t, 1, sink.count())
}
