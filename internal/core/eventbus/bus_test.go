package eventbus

import (
	"reflect"
	"testing"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/types"
)

// ============================================================================
// 接口契约测试
// ============================================================================

// TestBus_ImplementsInterface 验证 Bus 实现接口
func TestBus_ImplementsInterface(t *testing.T) {
	var _ pkgif.EventSource = (*Bus)(nil)
	var _ pkgif.EventEmitter = (*Bus)(nil)
}

// ============================================================================
// 基础功能测试
// ============================================================================

// TestBus_NewBus 测试创建事件总线
func TestBus_NewBus(t *testing.T) {
	bus := NewBus()

	if bus == nil {
		t.Fatal("NewBus() returned nil")
	}
	if bus.nodes == nil {
		t.Error("NewBus() nodes map is nil")
	}
}

// TestBus_EmitAndReceive 测试事件触发和接收
func TestBus_EmitAndReceive(t *testing.T) {
	bus := NewBus()

	var got []any
	id := bus.AddListener("tick", func(args ...any) {
		got = append(got, args...)
	})
	if id.IsZero() {
		t.Fatal("AddListener() returned zero id")
	}

	if n := bus.Emit("tick", 1, "a"); n != 1 {
		t.Errorf("Emit() called %d listeners, want 1", n)
	}
	if !reflect.DeepEqual(got, []any{1, "a"}) {
		t.Errorf("listener received %v", got)
	}
}

// TestBus_EmitUnknownName 测试触发无回调的名称
func TestBus_EmitUnknownName(t *testing.T) {
	bus := NewBus()
	bus.AddListener("tick", func(...any) { t.Error("wrong listener called") })

	if n := bus.Emit("tock"); n != 0 {
		t.Errorf("Emit() = %d, want 0", n)
	}
}

// TestBus_RegistrationOrder 测试回调按注册顺序调用
func TestBus_RegistrationOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		bus.AddListener("evt", func(...any) { order = append(order, i) })
	}

	bus.Emit("evt")
	if !reflect.DeepEqual(order, []int{1, 2, 3}) {
		t.Errorf("order = %v", order)
	}
}

// TestBus_RemoveListener 测试移除回调
func TestBus_RemoveListener(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.AddListener("tick", func(...any) { calls++ })
	bus.RemoveListener("tick", id)

	bus.Emit("tick")
	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}
	if bus.ListenerCount("tick") != 0 {
		t.Errorf("ListenerCount() = %d, want 0", bus.ListenerCount("tick"))
	}
	if len(bus.EventNames()) != 0 {
		t.Errorf("empty node not dropped: %v", bus.EventNames())
	}
}

// TestBus_RemoveTwice 测试重复移除
func TestBus_RemoveTwice(t *testing.T) {
	bus := NewBus()

	keep := bus.AddListener("tick", func(...any) {})
	drop := bus.AddListener("tick", func(...any) {})

	bus.RemoveListener("tick", drop)
	bus.RemoveListener("tick", drop)
	bus.RemoveListener("tock", keep)
	bus.RemoveListener("tick", types.NoListener)

	if bus.ListenerCount("tick") != 1 {
		t.Errorf("ListenerCount() = %d, want 1", bus.ListenerCount("tick"))
	}
}

// TestBus_Once 测试一次性回调
func TestBus_Once(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Once("ready", func(...any) { calls++ })

	bus.Emit("ready")
	bus.Emit("ready")

	if calls != 1 {
		t.Errorf("once listener called %d times, want 1", calls)
	}
	if bus.ListenerCount("ready") != 0 {
		t.Error("once listener not removed")
	}
}

// TestBus_RemoveDuringEmit 测试回调内移除回调
func TestBus_RemoveDuringEmit(t *testing.T) {
	bus := NewBus()

	var second types.ListenerID
	secondCalls := 0
	bus.AddListener("evt", func(...any) {
		bus.RemoveListener("evt", second)
	})
	second = bus.AddListener("evt", func(...any) { secondCalls++ })

	// 本次触发使用快照，仍会调用第二个回调
	bus.Emit("evt")
	bus.Emit("evt")

	if secondCalls != 1 {
		t.Errorf("second listener called %d times, want 1", secondCalls)
	}
}

// TestBus_ListenerPanic 测试回调 panic 隔离
func TestBus_ListenerPanic(t *testing.T) {
	bus := NewBus()

	called := false
	bus.AddListener("evt", func(...any) { panic("boom") })
	bus.AddListener("evt", func(...any) { called = true })

	if n := bus.Emit("evt"); n != 2 {
		t.Errorf("Emit() = %d, want 2", n)
	}
	if !called {
		t.Error("listener after panicking listener not called")
	}
}

// TestBus_InvalidName 测试不可比较的名称
func TestBus_InvalidName(t *testing.T) {
	bus := NewBus()

	id := bus.AddListener([]string{"x"}, func(...any) {})
	if !id.IsZero() {
		t.Errorf("AddListener(slice) = %v, want zero", id)
	}
	if n := bus.Emit(map[string]int{}); n != 0 {
		t.Errorf("Emit(map) = %d, want 0", n)
	}
	if bus.AddListener("x", nil) != types.NoListener {
		t.Error("AddListener(nil fn) should return zero id")
	}
}

// TestBus_SymbolNames 测试 Symbol 名称与字符串隔离
func TestBus_SymbolNames(t *testing.T) {
	bus := NewBus()
	sym := types.NewSymbol("tick")

	symCalls, strCalls := 0, 0
	bus.AddListener(sym, func(...any) { symCalls++ })
	bus.AddListener("tick", func(...any) { strCalls++ })

	bus.Emit(sym)
	if symCalls != 1 || strCalls != 0 {
		t.Errorf("symCalls=%d strCalls=%d", symCalls, strCalls)
	}
}

// TestBus_Close 测试关闭总线
func TestBus_Close(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.AddListener("tick", func(...any) { calls++ })

	if err := bus.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}

	bus.Emit("tick")
	if calls != 0 {
		t.Error("listener called after Close()")
	}
	if id := bus.AddListener("tick", func(...any) {}); !id.IsZero() {
		t.Error("AddListener() after Close() should return zero id")
	}
}
