// Package testutil 提供测试辅助函数
package testutil

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/dep2p/go-eventiter/pkg/types"
)

// WaitForCondition 等待条件满足或超时
//
// 返回：条件是否满足（超时返回 false）
func WaitForCondition(t *testing.T, timeout time.Duration, interval time.Duration, condition func() bool) bool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// 立即检查一次
	if condition() {
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if condition() {
				return true
			}
		}
	}
}

// Eventually 在指定时间内重试条件检查，超时则 fail 测试
//
// 示例:
//
//	testutil.Eventually(t, time.Second, func() bool {
//	    return bus.ListenerCount("tick") == 1
//	}, "回调应该已注册")
func Eventually(t *testing.T, timeout time.Duration, condition func() bool, msg string) {
	t.Helper()
	if !WaitForCondition(t, timeout, 5*time.Millisecond, condition) {
		t.Fatalf("等待超时: %s", msg)
	}
}

// Consumer 在后台 goroutine 中消费事件序列
type Consumer struct {
	// Events 收到的事件（缓冲足够大，不阻塞消费循环）
	Events chan types.Event

	done chan struct{}
}

// Consume 启动后台消费
//
// body 在每个事件交付后调用，返回 false 时提前退出循环。
func Consume(seq iter.Seq[types.Event], body func(types.Event) bool) *Consumer {
	c := &Consumer{
		Events: make(chan types.Event, 1024),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		for ev := range seq {
			c.Events <- ev
			if body != nil && !body(ev) {
				return
			}
		}
	}()
	return c
}

// Done 返回消费循环结束时关闭的 channel
func (c *Consumer) Done() <-chan struct{} {
	return c.done
}

// Next 读取下一个事件，超时则 fail 测试
func (c *Consumer) Next(t *testing.T, timeout time.Duration) types.Event {
	t.Helper()
	select {
	case ev := <-c.Events:
		return ev
	case <-time.After(timeout):
		t.Fatalf("等待事件超时")
		return types.Event{}
	}
}

// WaitDone 等待消费循环结束，超时则 fail 测试
func (c *Consumer) WaitDone(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(timeout):
		t.Fatalf("等待消费循环结束超时")
	}
}

// Drain 返回已收到但未读取的全部事件（应在 WaitDone 之后调用）
func (c *Consumer) Drain() []types.Event {
	var out []types.Event
	for {
		select {
		case ev := <-c.Events:
			out = append(out, ev)
		default:
			return out
		}
	}
}
