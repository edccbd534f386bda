package studystate

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/munhak/internal/store"
)

// memKV is an in-memory store.KV with fault injection.
type memKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	sets   map[string]int
	getErr map[string]error
	setErr error

	// beforeSet, when set, runs before each Set outside the lock.
	beforeSet func(key string)
}

func newMemKV() *memKV {
	return &memKV{
		data:   make(map[string][]byte),
		sets:   make(map[string]int),
		getErr: make(map[string]error),
	}
}

func (k *memKV) Get(_ context.Context, key string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.getErr[key]; err != nil {
		return nil, err
	}
	v, ok := k.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (k *memKV) Set(_ context.Context, key string, value []byte) error {
	k.mu.Lock()
	hook := k.beforeSet
	k.mu.Unlock()
	if hook != nil {
		hook(key)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.sets[key]++
	if k.setErr != nil {
		return k.setErr
	}
	k.data[key] = append([]byte(nil), value...)
	return nil
}

func (k *memKV) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.data, key)
	return nil
}

func (k *memKV) Keys(_ context.Context) ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	keys := make([]string, 0, len(k.data))
	for key := range k.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (k *memKV) put(t *testing.T, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	k.mu.Lock()
	k.data[key] = raw
	k.mu.Unlock()
}

func (k *memKV) putRaw(key, raw string) {
	k.mu.Lock()
	k.data[key] = []byte(raw)
	k.mu.Unlock()
}

func (k *memKV) decode(t *testing.T, key string, dst any) {
	t.Helper()
	k.mu.Lock()
	raw, ok := k.data[key]
	k.mu.Unlock()
	require.Truef(t, ok, "key %s not persisted", key)
	require.NoError(t, json.Unmarshal(raw, dst))
}

func (k *memKV) setCount(key string) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.sets[key]
}

// clock is a settable time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(t time.Time) *clock { return &clock{t: t} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *clock) AddDays(n int) {
	c.mu.Lock()
	c.t = c.t.AddDate(0, 0, n)
	c.mu.Unlock()
}

func kst(y int, mo time.Month, d, h, mi int) time.Time {
	return time.Date(y, mo, d, h, mi, 0, 0, DefaultLocation)
}

func newTestManager(t *testing.T, kv *memKV, clk *clock, opts ...Option) (*Manager, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	opts = append([]Option{WithClock(clk.Now), WithLogger(log)}, opts...)
	m := Open(context.Background(), kv, opts...)
	t.Cleanup(func() { _ = m.Close(context.Background()) })
	return m, hook
}

func flush(t *testing.T, m *Manager) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.Flush(ctx))
}

func entriesWith(hook *test.Hook, level logrus.Level, msg string) []*logrus.Entry {
	var out []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == level && e.Message == msg {
			out = append(out, e)
		}
	}
	return out
}
