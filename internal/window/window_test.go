package window_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/ringqueue/internal/window"
)

type block struct {
	hash   string
	parent string
}

func linkedBlocks(prev, next block) bool {
	return next.parent == prev.hash
}

func feed[T any](items []T) <-chan T {
	in := make(chan T, len(items))
	for item := range slices.Values(items) {
		in <- item
	}
	close(in)
	return in
}

func collect[T any](t *testing.T, out <-chan T) []T {
	t.Helper()
	var got []T
	timeout := time.After(time.Second)
	for {
		select {
		case item, ok := <-out:
			if !ok {
				return got
			}
			got = append(got, item)
		case <-timeout:
			require.FailNow(t, "timed out waiting for the window to close")
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := map[string]struct {
		depth           uint
		in              []block
		linked          bool
		expected        []string
		expectedDropped int
	}{
		"fewer items than depth": {
			depth:    3,
			in:       []block{{"a", ""}, {"b", "a"}},
			linked:   true,
			expected: nil,
		},
		"linear chain": {
			depth:    2,
			in:       []block{{"a", ""}, {"b", "a"}, {"c", "b"}, {"d", "c"}},
			linked:   true,
			expected: []string{"a", "b"},
		},
		"reorg drops the newest held item": {
			depth: 2,
			in: []block{
				{"a", ""}, {"b", "a"}, {"c", "b"},
				{"c2", "b"}, // replaces c
				{"d", "c2"},
			},
			linked:          true,
			expected:        []string{"a", "b"},
			expectedDropped: 1,
		},
		"unlinked item empties the window": {
			depth:           3,
			in:              []block{{"a", ""}, {"b", "a"}, {"x", "?"}, {"y", "x"}, {"z", "y"}, {"w", "z"}},
			linked:          true,
			expected:        []string{"x"},
			expectedDropped: 2,
		},
		"no link check": {
			depth:    1,
			in:       []block{{"a", ""}, {"x", "?"}, {"y", "?"}},
			expected: []string{"a", "x"},
		},
		"zero depth behaves as one": {
			depth:    0,
			in:       []block{{"a", ""}, {"b", "a"}},
			linked:   true,
			expected: []string{"a"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			var linked window.LinkFunc[block]
			if test.linked {
				linked = linkedBlocks
			}
			out := window.Confirm(context.Background(), logger, feed(test.in), test.depth, linked)

			var got []string
			for b := range slices.Values(collect(t, out)) {
				got = append(got, b.hash)
			}
			assert.Equal(t, test.expected, got)

			var warnings int
			for entry := range slices.Values(hook.AllEntries()) {
				if entry.Level == logrus.WarnLevel {
					warnings++
				}
			}
			assert.Equal(t, test.expectedDropped, warnings)
		})
	}
}

func TestConfirm_ContextCancelled(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan int)
	out := window.Confirm(ctx, logger, in, 1, nil)
	in <- 1
	in <- 2 // 1 is now confirmed but nobody reads out
	cancel()

	select {
	case _, ok := <-out:
		if ok {
			// the send may win the race against cancellation; the channel must still close
			_, ok = <-out
		}
		assert.False(t, ok)
	case <-time.After(time.Second):
		require.FailNow(t, "window did not stop after context cancellation")
	}
}
