package resource

import (
	"context"
	"errors"
	"sync"
)

// errSuperseded 同一查询键发起了更新的请求
var errSuperseded = errors.New("query superseded by a newer request")

// Tracker 按查询键登记进行中的列表请求，新请求会取消同键的旧请求
type Tracker struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]*Ticket
}

// NewTracker 创建请求登记表
func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[string]*Ticket)}
}

// Ticket 一次登记
type Ticket struct {
	tracker *Tracker
	key     string
	seq     uint64
	ctx     context.Context
	cancel  context.CancelCauseFunc
}

// Begin 登记请求并返回可被取代的 context
func (t *Tracker) Begin(parent context.Context, key string) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancelCause(parent)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	if prev, ok := t.inflight[key]; ok {
		prev.cancel(errSuperseded)
	}
	tk := &Ticket{tracker: t, key: key, seq: t.seq, ctx: ctx, cancel: cancel}
	t.inflight[key] = tk
	return ctx, tk
}

// Superseded 是否已被同键的新请求取代
func (tk *Ticket) Superseded() bool {
	return errors.Is(context.Cause(tk.ctx), errSuperseded)
}

// Done 结束登记
func (tk *Ticket) Done() {
	t := tk.tracker
	t.mu.Lock()
	if cur, ok := t.inflight[tk.key]; ok && cur == tk {
		delete(t.inflight, tk.key)
	}
	t.mu.Unlock()
	tk.cancel(nil)
}

// Inflight 进行中的请求数
func (t *Tracker) Inflight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight)
}
