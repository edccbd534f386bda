package studystate

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterCoalescesPendingValues(t *testing.T) {
	kv := newMemKV()
	m, _ := newTestManager(t, kv, newClock(day0))
	flush(t, m)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	kv.mu.Lock()
	kv.beforeSet = func(key string) {
		if key != KeyLearningTime {
			return
		}
		once.Do(func() {
			close(started)
			<-release
		})
	}
	kv.mu.Unlock()

	m.AddLearningTime(1)
	<-started
	for range 5 {
		m.AddLearningTime(1)
	}
	close(release)
	flush(t, m)

	assert.Equal(t, 2, kv.setCount(KeyLearningTime), "pending writes coalesce behind the in-flight one")
	var stored LearningTimeRecord
	kv.decode(t, KeyLearningTime, &stored)
	assert.Equal(t, 6, stored.Seconds)
}

func TestWriterKeepsPerKeyOrder(t *testing.T) {
	kv := newMemKV()
	m, _ := newTestManager(t, kv, newClock(day0))

	for i := range 50 {
		m.AddCompletedWork(string(rune('a' + i%26)))
		m.AddLearningTime(1)
	}
	flush(t, m)

	var works []string
	kv.decode(t, KeyCompletedWorks, &works)
	assert.Equal(t, m.CompletedWorks(), works)

	var lt LearningTimeRecord
	kv.decode(t, KeyLearningTime, &lt)
	assert.Equal(t, 50, lt.Seconds)
}

func TestFlushHonorsContext(t *testing.T) {
	kv := newMemKV()
	m, _ := newTestManager(t, kv, newClock(day0))
	flush(t, m)

	release := make(chan struct{})
	kv.mu.Lock()
	kv.beforeSet = func(string) { <-release }
	kv.mu.Unlock()
	defer close(release)

	m.AddCompletedWork("jindallae")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.Flush(ctx), context.DeadlineExceeded)
}

func TestTimedOutFlushDoesNotLeakWaiters(t *testing.T) {
	kv := newMemKV()
	m, _ := newTestManager(t, kv, newClock(day0))
	flush(t, m)

	release := make(chan struct{})
	kv.mu.Lock()
	kv.beforeSet = func(string) { <-release }
	kv.mu.Unlock()

	m.AddCompletedWork("jindallae")
	base := runtime.NumGoroutine()
	for range 20 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		assert.ErrorIs(t, m.Flush(ctx), context.DeadlineExceeded)
		cancel()
	}
	assert.Eventually(t, func() bool { return runtime.NumGoroutine() <= base },
		time.Second, 10*time.Millisecond, "waiters outlived their flush calls")

	close(release)
	flush(t, m)
	assert.Equal(t, 1, kv.setCount(KeyCompletedWorks))
}

func TestWritesAfterCloseGoStraightThrough(t *testing.T) {
	kv := newMemKV()
	m, _ := newTestManager(t, kv, newClock(day0))
	require.NoError(t, m.Close(context.Background()))

	m.AddCompletedWork("jindallae")

	var works []string
	kv.decode(t, KeyCompletedWorks, &works)
	assert.Equal(t, []string{"jindallae"}, works)
	require.NoError(t, m.Flush(context.Background()))
}

func TestConcurrentMutations(t *testing.T) {
	kv := newMemKV()
	m, _ := newTestManager(t, kv, newClock(day0))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				m.AddLearningTime(1)
				m.AddBookmark(sampleBookmark("q1"))
			}
		}()
	}
	wg.Wait()
	flush(t, m)

	assert.Equal(t, 200, m.LearningTime())
	assert.Len(t, m.Bookmarks(), 1)
	var lt LearningTimeRecord
	kv.decode(t, KeyLearningTime, &lt)
	assert.Equal(t, 200, lt.Seconds)
}
