package testing

import (
	"testing"
	"time"

	"github.com/go-drift/transition/pkg/animation"
	"github.com/stretchr/testify/assert"
)

func TestHarness_Advance(t *testing.T) {
	h := NewHarness(t)
	start := animation.Now()

	h.Advance(100 * time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, animation.Now().Sub(start))
	assert.Equal(t, 100*time.Millisecond, h.Elapsed())
}

func TestHarness_Frames(t *testing.T) {
	h := NewHarness(t)

	var ticks int
	ticker := animation.NewTicker(func(time.Duration) { ticks++ })
	ticker.Start()
	defer ticker.Stop()

	h.Frames(100*time.Millisecond, 0)
	// 6 full frames of 16ms plus a final 4ms step
	assert.Equal(t, 7, ticks)
	assert.Equal(t, 100*time.Millisecond, h.Elapsed())
}

func TestHarness_Settle(t *testing.T) {
	h := NewHarness(t)

	fired := false
	animation.Frames.Schedule(250*time.Millisecond, func() { fired = true })
	h.Settle(time.Second)

	assert.True(t, fired)
	assert.False(t, animation.HasActiveTickers())
}

func TestHarness_RestoresClock(t *testing.T) {
	var inner time.Time
	t.Run("inner", func(t *testing.T) {
		NewHarness(t)
		inner = animation.Now()
	})
	assert.Equal(t, Epoch, inner)
	assert.NotEqual(t, Epoch, animation.Now())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Hook(OnStart)(recordWithKey("a"))
	r.Hook(OnShow)(recordWithKey("a"))
	r.Hook(OnShow)(recordWithKey("b"))

	assert.Equal(t, []string{OnStart, OnShow, OnShow}, r.Names())
	assert.Equal(t, 2, r.Count(OnShow))
	last, ok := r.Last(OnShow)
	assert.True(t, ok)
	assert.Equal(t, "b", last.Key)

	r.Reset()
	assert.Empty(t, r.Calls())
	_, ok = r.Last(OnHide)
	assert.False(t, ok)
}
