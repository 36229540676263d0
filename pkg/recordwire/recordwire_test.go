package recordwire

import (
	"errors"
	"hash/crc32"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/rawbytedev/bufview"
)

func makeRecords() [][]byte {
	return [][]byte{
		[]byte("Hello I'm Test 1"),
		{},
		[]byte("Hello I'm Test Comp+10"),
		{0x00, 0x01, 0x02, 0xFF},
	}
}

func TestRoundTrip(t *testing.T) {
	var e Encoder
	var d Decoder

	frame, err := e.Encode(makeRecords(), 0)
	assert.NilError(t, err)

	got, flags, err := d.Decode(frame)
	assert.NilError(t, err)
	assert.Equal(t, byte(0), flags)
	assert.DeepEqual(t, makeRecords(), got)
}

func TestRoundTripZstd(t *testing.T) {
	var e Encoder
	var d Decoder

	frame, err := e.Encode(makeRecords(), FlagZstd)
	assert.NilError(t, err)

	got, flags, err := d.Decode(frame)
	assert.NilError(t, err)
	assert.Equal(t, byte(FlagZstd), flags&FlagZstd)
	assert.DeepEqual(t, makeRecords(), got)
}

func TestEmptyFrame(t *testing.T) {
	var e Encoder
	var d Decoder

	frame, err := e.Encode(nil, 0)
	assert.NilError(t, err)
	assert.Equal(t, HeaderSize+TrailerSize, len(frame))

	got, _, err := d.Decode(frame)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(got, 0))
}

func TestBadMagic(t *testing.T) {
	var e Encoder
	var d Decoder
	frame, err := e.Encode(makeRecords(), 0)
	assert.NilError(t, err)

	frame[0] ^= 0xFF
	_, _, err = d.Decode(frame)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestBadFrameType(t *testing.T) {
	var e Encoder
	var d Decoder
	frame, err := e.Encode(makeRecords(), 0)
	assert.NilError(t, err)

	frame[2] = 0x7E
	_, _, err = d.Decode(frame)
	assert.ErrorIs(t, err, ErrBadFrameType)
}

func TestLengthMismatch(t *testing.T) {
	var e Encoder
	var d Decoder
	frame, err := e.Encode(makeRecords(), 0)
	assert.NilError(t, err)

	_, _, err = d.Decode(frame[:len(frame)-1])
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestChecksumFailure(t *testing.T) {
	var e Encoder
	var d Decoder
	frame, err := e.Encode(makeRecords(), 0)
	assert.NilError(t, err)

	frame[HeaderSize] ^= 0x01
	_, _, err = d.Decode(frame)
	assert.ErrorIs(t, err, ErrChecksum)
}

// A record whose declared length runs past the frame body surfaces the
// substrate's record-indexed bounds error.
func TestOversizedRecordLength(t *testing.T) {
	var e Encoder
	frame, err := e.Encode([][]byte{[]byte("ab")}, 0)
	assert.NilError(t, err)

	// bump the varint record length from 2 to 9, then re-seal the CRC so
	// only the record length is wrong
	frame[HeaderSize] = 9
	reseal(t, frame)

	var d Decoder
	_, _, err = d.Decode(frame)
	var ierr *bufview.IterError
	assert.Assert(t, errors.As(err, &ierr))
	assert.Equal(t, 1, ierr.Record)
}

func TestTruncatedBody(t *testing.T) {
	var e Encoder
	frame, err := e.Encode([][]byte{[]byte("abcd")}, 0)
	assert.NilError(t, err)

	// drop one payload byte and re-seal header length + CRC
	frame = append(frame[:len(frame)-TrailerSize-1], frame[len(frame)-TrailerSize:]...)
	sealLength(t, frame)
	reseal(t, frame)

	var d Decoder
	_, _, err = d.Decode(frame)
	var ierr *bufview.IterError
	assert.Assert(t, errors.As(err, &ierr))
}

func sealLength(t *testing.T, frame []byte) {
	t.Helper()
	v := bufview.FromBytes(frame)
	assert.NilError(t, bufview.LE.PutUint32(v, 3, uint32(len(frame))))
}

func reseal(t *testing.T, frame []byte) {
	t.Helper()
	v := bufview.FromBytes(frame)
	covered, err := v.Copy(2, v.Len()-2-TrailerSize)
	assert.NilError(t, err)
	assert.NilError(t, bufview.LE.PutUint32(v, v.Len()-TrailerSize, crc32.ChecksumIEEE(covered)))
}
