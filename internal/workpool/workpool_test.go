package workpool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := New(4)
	var n int64
	const total = 100
	for i := 0; i < total; i++ {
		p.Submit(func() { atomic.AddInt64(&n, 1) })
	}
	p.Close()
	require.Equal(t, int64(total), atomic.LoadInt64(&n))
}

func TestPoolClampsToOneWorker(t *testing.T) {
	p := New(0)
	done := make(chan struct{})
	p.Submit(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
	p.Close()
}

func TestPoolSubmitAfterCloseIsNoop(t *testing.T) {
	p := New(2)
	p.Close()
	require.NotPanics(t, func() {
		p.Submit(func() {})
	})
	require.Equal(t, 0, p.Queued())
}
