package ringbuffer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestRingBuffer_Model runs random operation sequences against a plain slice model.
func TestRingBuffer_Model(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 8).Draw(t, "capacity")
		rb := New[int](uint(capacity))
		var model []int

		t.Repeat(map[string]func(*rapid.T){
			"push": func(t *rapid.T) {
				v := rapid.Int().Draw(t, "value")
				err := rb.PushBack(v)
				if len(model) == capacity {
					require.ErrorIs(t, err, ErrBufferFull)
					return
				}
				require.NoError(t, err)
				model = append(model, v)
			},
			"pop": func(t *rapid.T) {
				v, err := rb.PopFront()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrBufferEmpty)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, model[0], v)
				model = model[1:]
			},
			"drop back": func(t *rapid.T) {
				err := rb.DropBack()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrBufferEmpty)
					return
				}
				require.NoError(t, err)
				model = model[:len(model)-1]
			},
			"": func(t *rapid.T) {
				require.GreaterOrEqual(t, rb.begin, 0)
				require.Less(t, rb.begin, capacity)
				require.GreaterOrEqual(t, rb.count, 0)
				require.LessOrEqual(t, rb.count, capacity)

				assert.Equal(t, len(model), rb.Size())
				assert.Equal(t, len(model) == 0, rb.Empty())
				assert.Equal(t, len(model) == capacity, rb.Full())
				for i, v := range model {
					assert.Equal(t, v, rb.buf[(rb.begin+i)%capacity])
				}
				assert.Equal(t, nilIfEmpty(model), nilIfEmpty(slices.Collect(rb.All())))

				if len(model) > 0 {
					front, err := rb.Front()
					require.NoError(t, err)
					assert.Equal(t, model[0], front)
					back, err := rb.Back()
					require.NoError(t, err)
					assert.Equal(t, model[len(model)-1], back)
				}
			},
		})
	})
}

// TestRingBuffer_FIFOOrder checks that any k <= N pushed values iterate back in push order.
func TestRingBuffer_FIFOOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 16).Draw(t, "capacity")
		values := rapid.SliceOfN(rapid.Int(), 0, capacity).Draw(t, "values")
		// rotate the start so that traversal crosses the end of the storage
		shift := rapid.IntRange(0, capacity-1).Draw(t, "shift")

		rb := New[int](uint(capacity))
		for range shift {
			require.NoError(t, rb.PushBack(0))
			_, err := rb.PopFront()
			require.NoError(t, err)
		}
		for _, v := range values {
			require.NoError(t, rb.PushBack(v))
		}

		var got []int
		end := rb.End()
		for it := rb.Begin(); !it.Equal(end); {
			v, err := it.Value()
			require.NoError(t, err)
			got = append(got, v)
			require.NoError(t, it.Next())
		}
		assert.Equal(t, len(values), len(got))
		assert.Equal(t, nilIfEmpty(values), nilIfEmpty(got))
	})
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
