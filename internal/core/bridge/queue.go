package bridge

import "github.com/dep2p/go-eventiter/pkg/types"

// compactThreshold 头部空洞超过该值且过半时整理底层数组
const compactThreshold = 64

// queue 无界先进先出事件队列
//
// 不是并发安全的，调用方必须持有 Bridge.mu。
type queue struct {
	items []types.Event
	head  int
}

func (q *queue) push(ev types.Event) {
	q.items = append(q.items, ev)
}

func (q *queue) pop() (types.Event, bool) {
	if q.head >= len(q.items) {
		return types.Event{}, false
	}

	ev := q.items[q.head]
	q.items[q.head] = types.Event{}
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return ev, true
}

func (q *queue) len() int {
	return len(q.items) - q.head
}

func (q *queue) reset() {
	clear(q.items)
	q.items = nil
	q.head = 0
}
