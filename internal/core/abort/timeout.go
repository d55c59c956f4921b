// Package abort 提供一次性取消信号
package abort

import (
	"time"

	"github.com/benbjohnson/clock"
)

// NewTimeout 创建超时自动中止的控制器
//
// 经过 d 后以 ErrTimeout 触发；提前 Abort 会停止定时器。
// clk 为 nil 时使用真实时钟，测试中可传入 clock.NewMock()。
func NewTimeout(clk clock.Clock, d time.Duration) *Controller {
	if clk == nil {
		clk = clock.New()
	}

	c := NewController()
	c.mu.Lock()
	c.timer = clk.AfterFunc(d, func() {
		c.Abort(ErrTimeout)
	})
	c.mu.Unlock()

	return c
}
