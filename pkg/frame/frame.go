// Package frame wraps messages in 0x7E flag framing with byte stuffing and
// a CRC trailer, as used by GDL90 and HDLC-like serial links.
package frame

import (
	"fmt"

	"github.com/JoseAmador95/libcrc/pkg/crc"
)

const (
	flagByte   = 0x7E
	escapeByte = 0x7D
	escapeXor  = 0x20
)

// Frame appends the CRC of message under v, applies byte stuffing, and
// wraps the result in 0x7E flags.
//
// The CRC is appended little-endian (low byte first) in v.Width()/8 bytes.
func Frame(v crc.Variant, message []byte) []byte {
	sum := v.Checksum64(message)
	n := v.Width() / 8

	withCRC := make([]byte, 0, len(message)+n)
	withCRC = append(withCRC, message...)
	for i := 0; i < n; i++ {
		withCRC = append(withCRC, byte(sum>>(8*uint(i))))
	}

	out := make([]byte, 0, 2+len(withCRC)*2)
	out = append(out, flagByte)
	for _, b := range withCRC {
		if b == flagByte || b == escapeByte {
			out = append(out, escapeByte, b^escapeXor)
			continue
		}
		out = append(out, b)
	}
	out = append(out, flagByte)
	return out
}

// Unframe reverses Frame: it validates the flags, removes byte stuffing and
// checks the CRC trailer.
//
// It returns the message without the CRC, whether the CRC matched, and an
// error for malformed frames.
func Unframe(v crc.Variant, frame []byte) (msg []byte, crcOK bool, err error) {
	n := v.Width() / 8
	if len(frame) < 3+n {
		return nil, false, fmt.Errorf("frame too short: %d", len(frame))
	}
	if frame[0] != flagByte || frame[len(frame)-1] != flagByte {
		return nil, false, fmt.Errorf("missing start/end flags")
	}

	// De-escape and strip flags.
	raw := make([]byte, 0, len(frame))
	for i := 1; i < len(frame)-1; i++ {
		b := frame[i]
		if b == escapeByte {
			i++
			if i >= len(frame)-1 {
				return nil, false, fmt.Errorf("truncated escape at end of frame")
			}
			raw = append(raw, frame[i]^escapeXor)
			continue
		}
		if b == flagByte {
			return nil, false, fmt.Errorf("unescaped flag at offset %d", i)
		}
		raw = append(raw, b)
	}
	if len(raw) < 1+n {
		return nil, false, fmt.Errorf("unescaped payload too short: %d", len(raw))
	}

	msg = raw[:len(raw)-n]
	var got uint64
	for i, b := range raw[len(raw)-n:] {
		got |= uint64(b) << (8 * uint(i))
	}
	return msg, got == v.Checksum64(msg), nil
}
