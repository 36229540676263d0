// Package recordwire frames sequences of variable-length records on top of
// the bufview substrate. A frame is a fixed little-endian header, a body of
// varint-length-prefixed records packed back-to-back, and a CRC32 trailer.
// The body may optionally be zstd-compressed.
//
// Layout:
//
//	magic   u16   0x5752 "RW"
//	type    u8
//	length  u32   total frame size, magic through CRC
//	flags   u8
//	body    ...   records: varint payload length + payload
//	crc     u32   CRC32-IEEE over everything between magic and CRC
package recordwire

import "errors"

const (
	MagicV1  = 0x5752
	TypeData = 0x01

	FlagZstd = 0x01 // body is zstd-compressed

	HeaderSize  = 8
	TrailerSize = 4
)

var (
	ErrBadMagic       = errors.New("recordwire: bad magic")
	ErrBadFrameType   = errors.New("recordwire: unknown frame type")
	ErrLengthMismatch = errors.New("recordwire: frame length mismatch")
	ErrChecksum       = errors.New("recordwire: crc mismatch")
)
