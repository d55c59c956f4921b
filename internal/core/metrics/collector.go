package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/types"
)

// DefaultNamespace 默认指标名前缀
const DefaultNamespace = "eventiter"

// ============================================================================
// Collector 实现
// ============================================================================

// Collector 桥接器指标收集器
//
// 实现 pkgif.BridgeRecorder，把桥接器的生命周期和队列流量记录为
// Prometheus 指标；同时实现 prometheus.Collector，可直接注册到 Registry。
//
// 指标（以默认前缀为例）：
//   - eventiter_bridges_opened_total       已开始迭代的桥接器总数
//   - eventiter_bridges_active             正在迭代的桥接器数
//   - eventiter_events_enqueued_total      入队事件数（按事件名称）
//   - eventiter_events_yielded_total       交付事件数（按事件名称）
//   - eventiter_events_discarded_total     停止时丢弃的事件数
type Collector struct {
	opened    prometheus.Counter
	active    prometheus.Gauge
	enqueued  *prometheus.CounterVec
	yielded   *prometheus.CounterVec
	discarded prometheus.Counter
}

// NewCollector 创建指标收集器
//
// namespace 为空时使用 DefaultNamespace。
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Collector{
		opened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bridges_opened_total",
			Help:      "Number of bridges that started iterating.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bridges_active",
			Help:      "Number of bridges currently iterating.",
		}),
		enqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_enqueued_total",
			Help:      "Number of events appended to bridge queues.",
		}, []string{"event"}),
		yielded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_yielded_total",
			Help:      "Number of events delivered to consumers.",
		}, []string{"event"}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_discarded_total",
			Help:      "Number of queued events dropped when a bridge stopped.",
		}),
	}
}

// ============================================================================
// BridgeRecorder 实现
// ============================================================================

// BridgeOpened 记录桥接器开始迭代
func (c *Collector) BridgeOpened() {
	c.opened.Inc()
	c.active.Inc()
}

// BridgeClosed 记录桥接器完成清理
func (c *Collector) BridgeClosed() {
	c.active.Dec()
}

// EventEnqueued 记录事件入队
func (c *Collector) EventEnqueued(name types.EventName) {
	c.enqueued.WithLabelValues(types.FormatEventName(name)).Inc()
}

// EventYielded 记录事件交付
func (c *Collector) EventYielded(name types.EventName) {
	c.yielded.WithLabelValues(types.FormatEventName(name)).Inc()
}

// EventsDiscarded 记录丢弃事件数
func (c *Collector) EventsDiscarded(n int) {
	if n > 0 {
		c.discarded.Add(float64(n))
	}
}

// ============================================================================
// prometheus.Collector 实现
// ============================================================================

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.opened.Describe(ch)
	c.active.Describe(ch)
	c.enqueued.Describe(ch)
	c.yielded.Describe(ch)
	c.discarded.Describe(ch)
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.opened.Collect(ch)
	c.active.Collect(ch)
	c.enqueued.Collect(ch)
	c.yielded.Collect(ch)
	c.discarded.Collect(ch)
}

var (
	_ pkgif.BridgeRecorder = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)
