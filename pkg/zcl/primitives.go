package zcl

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// readUint reads an n-byte little-endian unsigned integer starting at
// off, the same way zcl.go's BuildMoveToLevelCommand/
// ParseReadAttributesResponse read/write LE fields with
// binary.LittleEndian.PutUint16/Uint16 rather than a hand-rolled shift
// loop.
func readUint(data []byte, off, n int) (uint64, int, error) {
	if off < 0 || off+n > len(data) {
		return 0, off, fmt.Errorf("read %d-byte uint at offset %d: %w", n, off, ErrMalformed)
	}
	switch n {
	case 1:
		return uint64(data[off]), off + 1, nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(data[off : off+2])), off + 2, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(data[off : off+4])), off + 4, nil
	case 8:
		return binary.LittleEndian.Uint64(data[off : off+8]), off + 8, nil
	default:
		return 0, off, fmt.Errorf("unsupported %d-byte width at offset %d: %w", n, off, ErrMalformed)
	}
}

// writeUint appends an n-byte little-endian unsigned integer to buf.
func writeUint(buf []byte, v uint64, n int) []byte {
	switch n {
	case 1:
		return append(buf, byte(v))
	case 2:
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], uint16(v))
		return append(buf, tmp[:]...)
	case 4:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(v))
		return append(buf, tmp[:]...)
	case 8:
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], v)
		return append(buf, tmp[:]...)
	default:
		panic(fmt.Sprintf("writeUint: unsupported %d-byte width", n))
	}
}

func decodeUint8(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 1)
	return uint8(v), off, err
}

func decodeUint16(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 2)
	return uint16(v), off, err
}

func decodeUint32(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 4)
	return uint32(v), off, err
}

func decodeUint64(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 8)
	return v, off, err
}

func decodeInt8(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 1)
	return int8(v), off, err
}

func decodeInt16(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 2)
	return int16(v), off, err
}

func decodeInt32(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 4)
	return int32(v), off, err
}

func decodeInt64(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 8)
	return int64(v), off, err
}

func encodeUintValue(buf []byte, v any, n int) ([]byte, error) {
	u, err := toUint64(v)
	if err != nil {
		return nil, err
	}
	return writeUint(buf, u, n), nil
}

// toUint64 coerces the numeric Go types this package hands callers
// (uint8/16/32/64, int8/16/32/64, int) into a plain uint64 bit pattern
// suitable for little-endian serialization.
func toUint64(v any) (uint64, error) {
	switch x := v.(type) {
	case DataType:
		return uint64(x), nil
	case Status:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case int8:
		return uint64(uint8(x)), nil
	case int16:
		return uint64(uint16(x)), nil
	case int32:
		return uint64(uint32(x)), nil
	case int64:
		return uint64(x), nil
	case int:
		return uint64(x), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not an integer: %w", v, v, ErrMalformed)
	}
}

// decodeString reads a one-byte length prefix followed by that many
// bytes of UTF-8 content.
func decodeString(data []byte, off int) (any, int, error) {
	if off < 0 || off >= len(data) {
		return nil, off, fmt.Errorf("read string length at offset %d: %w", off, ErrMalformed)
	}
	n := int(data[off])
	start := off + 1
	if start+n > len(data) {
		return nil, off, fmt.Errorf("read %d-byte string body at offset %d: %w", n, start, ErrMalformed)
	}
	return string(data[start : start+n]), start + n, nil
}

// encodeString emits a one-byte length prefix followed by the UTF-8
// bytes of the value. An empty string encodes as a single 0x00 byte.
func encodeString(buf []byte, v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("value %v (%T) is not a string: %w", v, v, ErrMalformed)
	}
	if len(s) > 0xFF {
		return nil, fmt.Errorf("string of %d bytes exceeds 255-byte limit: %w", len(s), ErrMalformed)
	}
	buf = append(buf, byte(len(s)))
	return append(buf, s...), nil
}

// decodeStatus8 reverse-looks-up an 8-bit status code through the
// Status table. Unknown codes fail decoding outright; no fallback
// value is substituted.
func decodeStatus8(data []byte, off int) (any, int, error) {
	raw, next, err := readUint(data, off, 1)
	if err != nil {
		return nil, off, err
	}
	s, ok := statusByCode[uint8(raw)]
	if !ok {
		return nil, off, fmt.Errorf("status code 0x%02X: %w", raw, ErrUnknownStatus)
	}
	return s, next, nil
}

// encodeStatus8 emits the one-byte code for a Status value.
func encodeStatus8(buf []byte, v any) ([]byte, error) {
	s, ok := v.(Status)
	if !ok {
		return nil, fmt.Errorf("value %v (%T) is not a Status: %w", v, v, ErrMalformed)
	}
	if _, ok := statusByCode[uint8(s)]; !ok {
		return nil, fmt.Errorf("status %v: %w", s, ErrUnknownStatus)
	}
	return append(buf, uint8(s)), nil
}

// decodeEUI64 reads an 8-byte little-endian integer; wire-identical to
// decodeUint64, kept distinct so the codec can tell the two concepts
// apart in field descriptors and in the DataType table.
func decodeEUI64(data []byte, off int) (any, int, error) {
	v, off, err := readUint(data, off, 8)
	return v, off, err
}

// encodeEUI64 accepts either a uint64 or a 16-hex-digit string.
func encodeEUI64(buf []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		raw, err := hex.DecodeString(x)
		if err != nil || len(raw) != 8 {
			return nil, fmt.Errorf("EUI-64 hex string %q: %w", x, ErrMalformed)
		}
		var u uint64
		for i := 7; i >= 0; i-- {
			u = u<<8 | uint64(raw[i])
		}
		return writeUint(buf, u, 8), nil
	default:
		u, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		return writeUint(buf, u, 8), nil
	}
}
