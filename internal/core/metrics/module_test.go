package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-eventiter/config"
	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Load 测试模块加载
func TestModule_Load(t *testing.T) {
	var (
		recorder pkgif.BridgeRecorder
		gatherer prometheus.Gatherer
	)

	app := fxtest.New(t,
		Module,
		fx.Populate(&recorder, &gatherer),
	)
	defer app.RequireStart().RequireStop()

	require.IsType(t, &Collector{}, recorder)

	recorder.BridgeOpened()
	families, err := gatherer.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "eventiter_bridges_opened_total" {
			found = true
			assert.Equal(t, 1.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found, "opened counter not gathered")
}

// TestModule_Disabled 测试关闭指标时提供空实现
func TestModule_Disabled(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Metrics.Enabled = false

	var (
		recorder  pkgif.BridgeRecorder
		collector *Collector
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		Module,
		fx.Populate(&recorder, &collector),
	)
	defer app.RequireStart().RequireStop()

	assert.Nil(t, collector)
	assert.Equal(t, pkgif.NopRecorder{}, recorder)
}

// TestModule_UnregisterOnStop 测试停止时注销
func TestModule_UnregisterOnStop(t *testing.T) {
	var (
		reg       *prometheus.Registry
		collector *Collector
	)
	app := fxtest.New(t,
		Module,
		fx.Populate(&reg, &collector),
	)
	app.RequireStart()
	app.RequireStop()

	// 已注销，可以再次注册
	assert.NoError(t, reg.Register(collector))
}

// TestConfigFromUnified 测试配置转换
func TestConfigFromUnified(t *testing.T) {
	assert.Equal(t, DefaultConfig(), ConfigFromUnified(nil))

	cfg := config.NewConfig()
	cfg.Metrics.Namespace = "custom"
	got := ConfigFromUnified(cfg)
	assert.True(t, got.Enabled)
	assert.Equal(t, "custom", got.Namespace)
}
