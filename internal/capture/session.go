package capture

import (
	"sync"
	"time"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/logutil"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Session records range events for the duration of one decode run. The model
// runtime may emit from several worker threads; each thread's events are
// buffered in emission order under its thread id. Ordering across threads is
// not preserved.
type Session struct {
	id      string
	mu      sync.Mutex
	open    bool
	start   time.Time
	buffers map[uint32][]types.Event
}

func Start() *Session {
	s := &Session{
		id:      uuid.NewString(),
		open:    true,
		start:   time.Now(),
		buffers: make(map[uint32][]types.Event),
	}
	logutil.GetLogger().Debug("capture session opened", zap.String("session", s.id))
	return s
}

func (s *Session) ID() string { return s.id }

// CurrentThread returns the id used for events emitted by the calling OS
// thread. Runtimes that track their own worker ids can pass those instead.
func CurrentThread() uint32 {
	return uint32(unix.Gettid())
}

// RangeStart records the opening of a named range on the given thread.
func (s *Session) RangeStart(tid uint32, name string, shapes [][]int64) {
	s.emit(tid, types.Event{Kind: types.RangeStart, Name: name, Shapes: shapes})
}

// RangeEnd records the close of the most recently opened range on the thread.
func (s *Session) RangeEnd(tid uint32, name string) {
	s.emit(tid, types.Event{Kind: types.RangeEnd, Name: name})
}

func (s *Session) emit(tid uint32, ev types.Event) {
	ev.TS = time.Since(s.start).Microseconds()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.buffers[tid] = append(s.buffers[tid], ev)
}

// Close seals the session and yields the per-thread event sequences. Events
// emitted after Close are dropped.
func (s *Session) Close() map[uint32][]types.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false

	total := 0
	for _, events := range s.buffers {
		total += len(events)
	}
	logutil.GetLogger().Debug("capture session closed",
		zap.String("session", s.id),
		zap.Int("threads", len(s.buffers)),
		zap.Int("events", total))
	return s.buffers
}
