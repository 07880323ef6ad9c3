package transition

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-drift/transition/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestMergeKeys(t *testing.T) {
	tests := []struct {
		name       string
		prev, next []string
		want       []string
	}{
		{"empty", nil, nil, []string{}},
		{"all new", nil, []string{"a", "b"}, []string{"a", "b"}},
		{"removed middle", []string{"a", "b", "c"}, []string{"a", "c"}, []string{"a", "b", "c"}},
		{"removed tail", []string{"a", "b"}, []string{"a"}, []string{"a", "b"}},
		{"removed head", []string{"a", "b"}, []string{"b"}, []string{"a", "b"}},
		{"replaced", []string{"a", "b"}, []string{"c"}, []string{"c", "a", "b"}},
		{"reordered", []string{"a", "b", "c"}, []string{"c", "a"}, []string{"b", "c", "a"}},
		{"insert before removed", []string{"a", "b", "c"}, []string{"a", "x", "c"}, []string{"a", "x", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, nextSet := childMapping(keyed(tt.next...))
			assert.Equal(t, tt.want, mergeKeys(tt.prev, tt.next, nextSet))
		})
	}
}

func TestChildMapping(t *testing.T) {
	keys, mapping := childMapping([]Child{
		{Key: "b"},
		{},
		{Key: "a"},
		{Key: "b", Props: Props{Animation: "scale"}},
	})
	assert.Equal(t, []string{"b", ".1", "a"}, keys)
	assert.Equal(t, "scale", mapping["b"].Props.Animation)
	assert.Equal(t, ".1", mapping[".1"].Key)
}

func TestClassNames(t *testing.T) {
	tests := []struct {
		own, animation string
		status         Status
		want           string
	}{
		{"", "fade", StatusUnmounted, ""},
		{"a  b", "fade", StatusEntered, "a b"},
		{"a", "fade", StatusExited, "a"},
		{"a", "fade", StatusEntering, "a fade animating in"},
		{"", "fade down", StatusExiting, "fade down animating out"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classNames(tt.own, tt.animation, tt.status), "%s/%s", tt.own, tt.status)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0ms", formatDuration(0))
	assert.Equal(t, "500ms", formatDuration(500*time.Millisecond))
	assert.Equal(t, "1500ms", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "1ms", formatDuration(1500*time.Microsecond), "sub-millisecond part is truncated")
	assert.Equal(t, "0ms", formatDuration(999*time.Microsecond))
}

func TestPendingTransitionString(t *testing.T) {
	assert.Equal(t, "none", pendingNone.String())
	assert.Equal(t, "entering-requested", pendingEnter.String())
	assert.Equal(t, "exiting-requested", pendingExit.String())
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(logger.New(&buf, logger.DebugLevel))

	obs.StatusChanged("leaf", StatusExited, StatusEntering)
	obs.TransitionStarted("leaf", StatusEntering, 300*time.Millisecond)
	obs.TransitionSuperseded("leaf", StatusEntering)

	out := buf.String()
	assert.Contains(t, out, "transition")
	assert.Contains(t, out, "status changed")
	assert.Contains(t, out, `"to": "entering"`)
	assert.Contains(t, out, `"duration": "300ms"`)
	assert.Contains(t, out, "transition superseded")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewController(Props{Animation: "fade"}, WithLogger(logger.New(&buf, logger.DebugLevel)), WithKey("k"))
	assert.NoError(t, err)
	defer c.Dispose()

	c.SetInto(true)
	c.Update()
	assert.Contains(t, buf.String(), `"key": "k"`)
	assert.Contains(t, buf.String(), `"to": "entered"`)
}

func keyed(keys ...string) []Child {
	out := make([]Child, len(keys))
	for i, k := range keys {
		out[i] = Child{Key: k}
	}
	return out
}
