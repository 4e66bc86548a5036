package transfer_feed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

const (
	DefaultHistorySize = 1024
	incomingBuffer     = 256
	subscriberBuffer   = 64
)

// Manager fans committed outbound transfers out to subscribers and keeps a
// bounded history of the most recent ones.
type Manager struct {
	logger *zap.Logger

	history     []types.TransferRecord
	historySize int
	published   uint64
	dropped     uint64

	subscribers map[uint64]chan types.TransferRecord
	nextID      uint64
	mu          sync.RWMutex

	incoming chan types.TransferRecord

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Stats summarizes the feed state.
type Stats struct {
	Published   uint64 `json:"published"`
	Dropped     uint64 `json:"dropped"`
	Buffered    int    `json:"buffered"`
	Subscribers int    `json:"subscribers"`
}

func NewManager(historySize int, logger *zap.Logger) *Manager {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Manager{
		logger:      logger.Named("transfer_feed"),
		historySize: historySize,
		subscribers: make(map[uint64]chan types.TransferRecord),
		incoming:    make(chan types.TransferRecord, incomingBuffer),
		stopChan:    make(chan struct{}),
	}
}

// Start launches the dispatch loop.
func (m *Manager) Start(ctx context.Context) error {
	m.logger.Info("Starting transfer feed", zap.Int("history_size", m.historySize))

	m.wg.Add(1)
	go m.dispatch(ctx)

	return nil
}

// Stop stops the dispatch loop and closes every subscriber channel.
func (m *Manager) Stop() error {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping transfer feed")
		close(m.stopChan)
		m.wg.Wait()

		m.mu.Lock()
		for _, ch := range m.subscribers {
			close(ch)
		}
		clear(m.subscribers)
		m.mu.Unlock()
	})
	return nil
}

// Publish queues a record for delivery. It never blocks the caller; when
// the queue is full the record is dropped.
func (m *Manager) Publish(record types.TransferRecord) {
	select {
	case m.incoming <- record:
	default:
		m.mu.Lock()
		m.dropped++
		m.mu.Unlock()
		m.logger.Warn("Transfer feed is full, dropping record",
			zap.String("transfer_nonce", record.TransferNonce.String()))
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called once the subscriber is done reading.
func (m *Manager) Subscribe() (<-chan types.TransferRecord, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan types.TransferRecord, subscriberBuffer)
	m.subscribers[id] = ch

	return ch, func() { m.unsubscribe(id) }
}

func (m *Manager) unsubscribe(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.subscribers[id]; ok {
		close(ch)
		delete(m.subscribers, id)
	}
}

// History returns up to limit of the most recent records, oldest first.
// A non-positive limit returns everything retained.
func (m *Manager) History(limit int) []types.TransferRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	if limit > 0 && limit < len(m.history) {
		start = len(m.history) - limit
	}
	out := make([]types.TransferRecord, len(m.history)-start)
	copy(out, m.history[start:])
	return out
}

func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Published:   m.published,
		Dropped:     m.dropped,
		Buffered:    len(m.history),
		Subscribers: len(m.subscribers),
	}
}

func (m *Manager) dispatch(ctx context.Context) {
	defer m.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopChan:
			return
		case record := <-m.incoming:
			m.deliver(record)
		}
	}
}

func (m *Manager) deliver(record types.TransferRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.published++
	m.history = append(m.history, record)
	if over := len(m.history) - m.historySize; over > 0 {
		m.history = append(m.history[:0:0], m.history[over:]...)
	}

	for id, ch := range m.subscribers {
		select {
		case ch <- record:
		default:
			m.dropped++
			m.logger.Warn("Subscriber is lagging, dropping record",
				zap.Uint64("subscriber", id),
				zap.String("transfer_nonce", record.TransferNonce.String()))
		}
	}
}
