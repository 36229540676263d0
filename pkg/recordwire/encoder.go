package recordwire

import (
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/bufview"
	"github.com/rawbytedev/bufview/internal/common"
)

// Encoder builds data frames. The zero value is ready to use; buffers and
// the zstd writer are reused across calls.
type Encoder struct {
	body []byte
	zw   *zstd.Encoder
}

// Encode serializes the records into one frame. With FlagZstd set the body
// is compressed before framing.
func (e *Encoder) Encode(records [][]byte, flags byte) ([]byte, error) {
	e.body = e.body[:0]
	for _, rec := range records {
		e.body = common.WriteVarUint(e.body, uint64(len(rec)))
		e.body = append(e.body, rec...)
	}

	body := e.body
	if flags&FlagZstd != 0 {
		if e.zw == nil {
			zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
			if err != nil {
				return nil, err
			}
			e.zw = zw
		}
		body = e.zw.EncodeAll(body, nil)
	}

	total := HeaderSize + len(body) + TrailerSize
	v := bufview.Create(total)
	// Header fields are in-bounds by construction of v.
	_ = bufview.LE.PutUint16(v, 0, MagicV1)
	_ = v.SetUint8(2, TypeData)
	_ = bufview.LE.PutUint32(v, 3, uint32(total))
	_ = v.SetUint8(7, flags)
	if err := bufview.BlitFromBytes(body, 0, v, HeaderSize, len(body)); err != nil {
		return nil, err
	}

	// CRC covers everything between magic and trailer.
	covered, err := v.Copy(2, total-2-TrailerSize)
	if err != nil {
		return nil, err
	}
	_ = bufview.LE.PutUint32(v, total-TrailerSize, crc32.ChecksumIEEE(covered))
	return v.ByteSlice(), nil
}
