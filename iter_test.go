package bufview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRecords yields length-n records until fewer than n bytes remain.
func fixedRecords(n int) LengthFunc {
	return func(rem View) (int, bool) {
		if rem.Len() < n {
			return 0, false
		}
		return n, true
	}
}

func TestIterFixedRecords(t *testing.T) {
	v := viewOf(t, "aaabbbcccd") // 10 bytes, three records of 3, 1 leftover

	it := NewIter(v, fixedRecords(3))
	var got [][]byte
	for it.Next() {
		require.Equal(t, 3, it.View().Len())
		got = append(got, it.View().ByteSlice())
	}
	require.NoError(t, it.Err())
	require.Equal(t, [][]byte{[]byte("aaa"), []byte("bbb"), []byte("ccc")}, got)

	// exhausted iterator stays exhausted
	require.False(t, it.Next())
}

// A length function that keeps asking for 3 bytes when only 1 remains must
// surface a record-indexed bounds error instead of reading past the window.
func TestIterOverrunningLengthFunc(t *testing.T) {
	v := viewOf(t, "aaabbbcccd")

	it := NewIter(v, func(View) (int, bool) { return 3, true })
	n := 0
	for it.Next() {
		n++
	}
	require.Equal(t, 3, n)

	var ierr *IterError
	require.ErrorAs(t, it.Err(), &ierr)
	assert.Equal(t, 4, ierr.Record)
	require.ErrorIs(t, it.Err(), ErrOutOfBounds)
}

func TestIterNegativeLength(t *testing.T) {
	v := viewOf(t, "abc")
	it := NewIter(v, func(View) (int, bool) { return -1, true })
	require.False(t, it.Next())

	var ierr *IterError
	require.ErrorAs(t, it.Err(), &ierr)
	assert.Equal(t, 1, ierr.Record)
}

func TestIterEmptyView(t *testing.T) {
	it := NewIter(Create(0), func(View) (int, bool) {
		t.Fatal("length function must not run on an empty window")
		return 0, false
	})
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestIterZeroLengthRecordsTerminatedByFunc(t *testing.T) {
	v := viewOf(t, "ab")
	calls := 0
	it := NewIter(v, func(rem View) (int, bool) {
		calls++
		if calls > 1 {
			return 0, false
		}
		return 0, true
	})
	require.True(t, it.Next())
	require.Equal(t, 0, it.View().Len())
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestIterVarintStyleLengths(t *testing.T) {
	// each record is 1 length byte + payload
	v := FromBytes([]byte{2, 'h', 'i', 0, 3, 'y', 'o', 'u'})
	it := NewIter(v, func(rem View) (int, bool) {
		n, err := rem.Uint8(0)
		if err != nil {
			return 0, false
		}
		return 1 + int(n), true
	})
	var got []string
	for it.Next() {
		payload, err := it.View().Shift(1)
		require.NoError(t, err)
		got = append(got, string(payload.ByteSlice()))
	}
	require.NoError(t, it.Err())
	require.Equal(t, []string{"hi", "", "you"}, got)
}

func TestFold(t *testing.T) {
	v := viewOf(t, "aaabbbcccd")

	total, err := Fold(NewIter(v, fixedRecords(3)), 0, func(acc int, rec View) int {
		return acc + rec.Len()
	})
	require.NoError(t, err)
	require.Equal(t, 9, total)

	_, err = Fold(NewIter(v, func(View) (int, bool) { return 4, true }), 0, func(acc int, rec View) int {
		return acc + rec.Len()
	})
	var ierr *IterError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 3, ierr.Record)
}
