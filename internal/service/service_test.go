package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

// fakeGateway scripts the gateway calls the services make and records the
// arguments they were called with.
type fakeGateway struct {
	sender string

	bulkReport *jawaly.BulkReport
	bulkErr    error
	lastSender string
	bulkCalls  int

	balance     *jawaly.BalanceResponse
	balanceErr  error
	balanceGets int

	senders     *jawaly.SenderNamesResponse
	sendersErr  error
	sendersGets int
}

func (f *fakeGateway) SendBulkAs(ctx context.Context, message, sender string, numbers []string) (*jawaly.BulkReport, error) {
	f.bulkCalls++
	f.lastSender = sender
	return f.bulkReport, f.bulkErr
}

func (f *fakeGateway) GetBalance(ctx context.Context) (*jawaly.BalanceResponse, error) {
	f.balanceGets++
	return f.balance, f.balanceErr
}

func (f *fakeGateway) GetSenders(ctx context.Context) (*jawaly.SenderNamesResponse, error) {
	f.sendersGets++
	return f.senders, f.sendersErr
}

func (f *fakeGateway) Sender() string { return f.sender }

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu       sync.Mutex
	values   map[string]string
	counters map[string]int64
}

func newMemCache() *memCache {
	return &memCache{
		values:   map[string]string{},
		counters: map[string]int64{},
	}
}

func (m *memCache) Ping(ctx context.Context) error { return nil }

func (m *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func (m *memCache) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memCache) Incr(ctx context.Context, key string) (int64, error) {
	return m.IncrBy(ctx, key, 1)
}

func (m *memCache) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key] += delta
	return m.counters[key], nil
}
