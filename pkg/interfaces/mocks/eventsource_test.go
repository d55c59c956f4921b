package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockEventSource_RemoveKeepsFire(t *testing.T) {
	src := NewMockEventSource()

	var got []any
	id := src.AddListener("tick", func(args ...any) { got = append(got, args...) })

	assert.Equal(t, 1, src.Emit("tick", 1))
	assert.Equal(t, 0, src.Emit("tock", 2))

	src.RemoveListener("tick", id)
	assert.Equal(t, 0, src.Active())
	assert.Equal(t, 0, src.Emit("tick", 3))
	assert.Equal(t, 1, src.Fire("tick", 4))

	assert.Equal(t, []any{1, 4}, got)

	added, removed := src.Calls()
	assert.Equal(t, []ListenerCall{{Name: "tick", ID: id}}, added)
	assert.Equal(t, []ListenerCall{{Name: "tick", ID: id}}, removed)
}

func TestMockEventSource_RemoveWrongName(t *testing.T) {
	src := NewMockEventSource()
	id := src.AddListener("tick", func(...any) {})

	src.RemoveListener("tock", id)
	assert.Equal(t, 1, src.Active())
}
