package recordwire

import (
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/bufview"
	"github.com/rawbytedev/bufview/internal/common"
)

// Decoder parses data frames. The zero value is ready to use; the zstd
// reader is created lazily and reused.
type Decoder struct {
	zr *zstd.Decoder
}

// Decode validates one frame and returns its record payloads and flags.
// Record payloads are fresh copies and do not alias the frame.
func (d *Decoder) Decode(frame []byte) ([][]byte, byte, error) {
	v := bufview.FromBytes(frame)

	magic, err := bufview.LE.Uint16(v, 0)
	if err != nil {
		return nil, 0, err
	}
	if magic != MagicV1 {
		return nil, 0, ErrBadMagic
	}
	typ, err := v.Uint8(2)
	if err != nil {
		return nil, 0, err
	}
	if typ != TypeData {
		return nil, 0, ErrBadFrameType
	}
	total, err := bufview.LE.Uint32(v, 3)
	if err != nil {
		return nil, 0, err
	}
	if int(total) != v.Len() {
		return nil, 0, ErrLengthMismatch
	}
	flags, err := v.Uint8(7)
	if err != nil {
		return nil, 0, err
	}

	want, err := bufview.LE.Uint32(v, v.Len()-TrailerSize)
	if err != nil {
		return nil, 0, err
	}
	covered, err := v.Copy(2, v.Len()-2-TrailerSize)
	if err != nil {
		return nil, 0, err
	}
	if crc32.ChecksumIEEE(covered) != want {
		return nil, 0, ErrChecksum
	}

	_, rest, err := v.Split(HeaderSize)
	if err != nil {
		return nil, 0, err
	}
	body, err := rest.WithLength(rest.Len() - TrailerSize)
	if err != nil {
		return nil, 0, err
	}

	if flags&FlagZstd != 0 {
		if d.zr == nil {
			zr, err := zstd.NewReader(nil)
			if err != nil {
				return nil, 0, err
			}
			d.zr = zr
		}
		raw, err := d.zr.DecodeAll(body.ByteSlice(), nil)
		if err != nil {
			return nil, 0, err
		}
		body = bufview.FromBytes(raw)
	}

	var records [][]byte
	it := bufview.NewIter(body, recordLength)
	for it.Next() {
		rec := it.View()
		head, err := rec.Copy(0, min(rec.Len(), 10))
		if err != nil {
			return nil, 0, err
		}
		_, w := common.ReadVarUint(head)
		payload, err := rec.Shift(w)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, payload.ByteSlice())
	}
	if err := it.Err(); err != nil {
		return nil, 0, err
	}
	return records, flags, nil
}

// recordLength reads the varint prefix at the front of the remaining body
// and reports the full record length, prefix included. A truncated prefix
// deliberately requests past the remaining window so the iterator surfaces
// it as a record-indexed bounds error; the CRC has already passed, so a
// short prefix means a corrupt encoder, not a damaged frame.
func recordLength(rem bufview.View) (int, bool) {
	head, err := rem.Copy(0, min(rem.Len(), 10))
	if err != nil {
		return 0, false
	}
	n, w := common.ReadVarUint(head)
	if w == 0 {
		return rem.Len() + 1, true
	}
	return w + int(n), true
}
