package ringbuffer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer_PushBack(t *testing.T) {
	tests := map[string]struct {
		capacity      uint
		push          []int
		expectedErrAt int
		expected      []int
	}{
		"partially filled": {
			capacity:      3,
			push:          []int{1, 2},
			expectedErrAt: -1,
			expected:      []int{1, 2},
		},
		"exactly full": {
			capacity:      3,
			push:          []int{1, 2, 3},
			expectedErrAt: -1,
			expected:      []int{1, 2, 3},
		},
		"one past capacity is rejected": {
			capacity:      3,
			push:          []int{1, 2, 3, 4},
			expectedErrAt: 3,
			expected:      []int{1, 2, 3},
		},
		"zero capacity falls back to one": {
			capacity:      0,
			push:          []int{7, 8},
			expectedErrAt: 1,
			expected:      []int{7},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			rb := New[int](test.capacity)
			for i, v := range test.push {
				err := rb.PushBack(v)
				if i == test.expectedErrAt {
					require.ErrorIs(t, err, ErrBufferFull)
					continue
				}
				require.NoError(t, err)
				back, err := rb.Back()
				require.NoError(t, err)
				assert.Equal(t, v, back)
			}
			assert.Equal(t, test.expected, rb.Values())
			assert.Equal(t, len(test.expected), rb.Size())
		})
	}
}

func TestRingBuffer_EmptyAccess(t *testing.T) {
	rb := New[string](4)
	assert.True(t, rb.Empty())
	assert.False(t, rb.Full())

	_, err := rb.Front()
	assert.ErrorIs(t, err, ErrBufferEmpty)
	_, err = rb.Back()
	assert.ErrorIs(t, err, ErrBufferEmpty)
	_, err = rb.PopFront()
	assert.ErrorIs(t, err, ErrBufferEmpty)
	assert.ErrorIs(t, rb.DropBack(), ErrBufferEmpty)

	// failed calls must not touch the state
	assert.Equal(t, 0, rb.begin)
	assert.Equal(t, 0, rb.count)
}

func TestRingBuffer_Wrap(t *testing.T) {
	rb := New[int](3)
	for v := range slices.Values([]int{1, 2, 3}) {
		require.NoError(t, rb.PushBack(v))
	}
	assert.True(t, rb.Full())

	front, err := rb.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	require.NoError(t, rb.PushBack(4))
	assert.Equal(t, []int{2, 3, 4}, slices.Collect(rb.All()))
	// 4 took the slot freed by 1
	assert.Equal(t, []int{4, 2, 3}, rb.Dump())

	front, err = rb.Front()
	require.NoError(t, err)
	assert.Equal(t, 2, front)
	back, err := rb.Back()
	require.NoError(t, err)
	assert.Equal(t, 4, back)
}

func TestRingBuffer_PopClearsSlot(t *testing.T) {
	rb := New[*int](2)
	v := 42
	require.NoError(t, rb.PushBack(&v))
	_, err := rb.PopFront()
	require.NoError(t, err)
	assert.Equal(t, []*int{nil, nil}, rb.Dump())
}

func TestRingBuffer_DropBack(t *testing.T) {
	rb := New[int](3)
	for v := range slices.Values([]int{1, 2, 3}) {
		require.NoError(t, rb.PushBack(v))
	}
	_, err := rb.PopFront()
	require.NoError(t, err)
	require.NoError(t, rb.PushBack(4))

	// newest element sits at physical index 0 after the wrap
	require.NoError(t, rb.DropBack())
	assert.Equal(t, []int{2, 3}, rb.Values())
	back, err := rb.Back()
	require.NoError(t, err)
	assert.Equal(t, 3, back)

	require.NoError(t, rb.PushBack(5))
	assert.Equal(t, []int{2, 3, 5}, rb.Values())
}

func TestRingBuffer_Reset(t *testing.T) {
	rb := New[int](3)
	require.NoError(t, rb.PushBack(1))
	require.NoError(t, rb.PushBack(2))
	_, err := rb.PopFront()
	require.NoError(t, err)

	rb.Reset()
	assert.True(t, rb.Empty())
	assert.Equal(t, 0, rb.begin)
	assert.Equal(t, []int{0, 0, 0}, rb.Dump())
	assert.Equal(t, 3, rb.Cap())
}

func TestRingBuffer_Dump(t *testing.T) {
	rb := New[int](6)
	for i := range 7 {
		_ = rb.PushBack(i + 1)
	}
	_, err := rb.PopFront()
	require.NoError(t, err)

	// Dump shows the cleared slot of the popped element too
	assert.Equal(t, []int{0, 2, 3, 4, 5, 6}, rb.Dump())
	assert.Equal(t, []int{2, 3, 4, 5, 6}, rb.Values())
}

func TestRingBuffer_AllStopsEarly(t *testing.T) {
	rb := New[int](4)
	for v := range slices.Values([]int{1, 2, 3, 4}) {
		require.NoError(t, rb.PushBack(v))
	}

	var got []int
	for v := range rb.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestRingBuffer_AllStopsOnMutation(t *testing.T) {
	rb := New[int](4)
	for v := range slices.Values([]int{1, 2, 3}) {
		require.NoError(t, rb.PushBack(v))
	}

	var got []int
	for v := range rb.All() {
		got = append(got, v)
		_, _ = rb.PopFront()
	}
	assert.Equal(t, []int{1}, got)
}

func TestRingBuffer_WalkReportsMutation(t *testing.T) {
	rb := New[int](4)
	for v := range slices.Values([]int{1, 2, 3}) {
		require.NoError(t, rb.PushBack(v))
	}

	it := rb.Begin()
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = rb.PopFront()
	require.NoError(t, err)
	assert.ErrorIs(t, it.Next(), ErrIteratorInvalidated)
	_, err = it.Value()
	assert.ErrorIs(t, err, ErrIteratorInvalidated)
}
