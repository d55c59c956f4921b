package main

import (
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
)

// TickTock 按随机间隔轮流触发一组事件名称的发射器
//
// 负载为触发时刻（clk.Now()）。done 关闭后停止，不再触发。
type TickTock struct {
	clk         clock.Clock
	emitter     pkgif.EventEmitter
	names       []string
	maxInterval time.Duration
	rnd         *rand.Rand
}

// NewTickTock 创建发射器
//
// 间隔在 (0, maxInterval] 内均匀分布；seed 固定时序列可复现。
func NewTickTock(clk clock.Clock, emitter pkgif.EventEmitter, names []string, maxInterval time.Duration, seed int64) *TickTock {
	if clk == nil {
		clk = clock.New()
	}
	if maxInterval <= 0 {
		maxInterval = time.Second
	}
	return &TickTock{
		clk:         clk,
		emitter:     emitter,
		names:       names,
		maxInterval: maxInterval,
		rnd:         rand.New(rand.NewSource(seed)), //nolint:gosec // 非加密场景
	}
}

// Run 运行直到 done 关闭，返回触发次数
func (tt *TickTock) Run(done <-chan struct{}) int {
	emitted := 0
	for {
		timer := tt.clk.Timer(tt.interval())
		select {
		case <-done:
			timer.Stop()
			logger.Debug("发射器停止", "emitted", emitted)
			return emitted
		case now := <-timer.C:
			name := tt.names[emitted%len(tt.names)]
			tt.emitter.Emit(name, now)
			emitted++
		}
	}
}

func (tt *TickTock) interval() time.Duration {
	return time.Duration(tt.rnd.Int63n(int64(tt.maxInterval))) + 1
}
