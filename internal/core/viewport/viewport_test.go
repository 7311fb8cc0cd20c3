package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMode(t *testing.T) {
	tests := []struct {
		width int
		want  Mode
	}{
		{0, Compact},
		{320, Compact},
		{767, Compact},
		{768, Expanded},
		{1920, Expanded},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComputeMode(tt.width), "width %d", tt.width)
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "compact", Compact.String())
	assert.Equal(t, "expanded", Expanded.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestColumnsToUnits(t *testing.T) {
	assert.Equal(t, 768, ColumnsToUnits(96, 8))
	assert.Equal(t, 760, ColumnsToUnits(95, 8))
	assert.Equal(t, 800, ColumnsToUnits(100, 0), "non-positive cell width uses default")
}

func TestSelector_CustomBreakpoint(t *testing.T) {
	s := NewSelector(100)

	assert.Equal(t, Compact, s.ComputeMode(99))
	assert.Equal(t, Expanded, s.ComputeMode(100))
	assert.Equal(t, DefaultBreakpoint, NewSelector(0).Breakpoint())
}

func TestSelector_FirstUpdateNotifies(t *testing.T) {
	s := NewSelector(DefaultBreakpoint)
	var calls [][2]Mode
	s.Subscribe(func(prev, next Mode) { calls = append(calls, [2]Mode{prev, next}) })

	mode, changed := s.Update(1024)

	assert.Equal(t, Expanded, mode)
	assert.True(t, changed)
	assert.Equal(t, [][2]Mode{{Expanded, Expanded}}, calls)
}

func TestSelector_NotifiesOnlyOnChange(t *testing.T) {
	s := NewSelector(DefaultBreakpoint)
	var modes []Mode
	s.Subscribe(func(_, next Mode) { modes = append(modes, next) })

	s.Update(1024)
	s.Update(900)
	s.Update(767)
	s.Update(500)
	s.Update(768)

	assert.Equal(t, []Mode{Expanded, Compact, Expanded}, modes)
	assert.Equal(t, Expanded, s.Mode())
	assert.Equal(t, 768, s.Width())
}

func TestSelector_SubscribersInOrder(t *testing.T) {
	s := NewSelector(DefaultBreakpoint)
	var order []string
	s.Subscribe(func(_, _ Mode) { order = append(order, "first") })
	s.Subscribe(func(_, _ Mode) { order = append(order, "second") })

	s.Update(10)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSelector_Unsubscribe(t *testing.T) {
	s := NewSelector(DefaultBreakpoint)
	calls := 0
	unsubscribe := s.Subscribe(func(_, _ Mode) { calls++ })

	s.Update(10)
	unsubscribe()
	s.Update(2000)

	assert.Equal(t, 1, calls)
}
