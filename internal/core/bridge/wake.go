package bridge

// gate 二值唤醒闸门
//
// 最多保留一个待处理的唤醒：release 在已有唤醒未被消费时是空操作，
// 不会阻塞也不会累积；acquire 阻塞直到有唤醒可用。
type gate struct {
	ch chan struct{}
}

func newGate() *gate {
	return &gate{ch: make(chan struct{}, 1)}
}

// release 发出唤醒
func (g *gate) release() {
	select {
	case g.ch <- struct{}{}:
	default:
	}
}

// acquire 等待唤醒
func (g *gate) acquire() {
	<-g.ch
}
