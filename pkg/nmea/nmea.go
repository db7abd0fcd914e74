// Package nmea computes and checks the XOR checksum carried by NMEA 0183
// sentences ("$GPGGA,...*47").
package nmea

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingDollar    = errors.New("nmea: missing '$'")
	ErrMissingChecksum  = errors.New("nmea: missing checksum")
	ErrBadChecksum      = errors.New("nmea: bad checksum")
	ErrChecksumMismatch = errors.New("nmea: checksum mismatch")
)

const hexDigits = "0123456789ABCDEF"

// Sum returns the XOR of every byte in data.
func Sum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum ^= b
	}
	return sum
}

// Checksum returns Sum(data) as two uppercase hex digits.
func Checksum(data []byte) string {
	return render(Sum(data))
}

// SentenceChecksum returns the checksum of a sentence's payload: a leading
// '$' is skipped and the payload ends at the first '*', CR or LF.
func SentenceChecksum(line string) string {
	line = strings.TrimPrefix(line, "$")
	if i := strings.IndexAny(line, "*\r\n"); i != -1 {
		line = line[:i]
	}
	return render(Sum([]byte(line)))
}

// Format renders payload as a complete sentence, "$payload*HH".
func Format(payload string) string {
	return "$" + payload + "*" + render(Sum([]byte(payload)))
}

// Verify checks that line is a "$payload*HH" sentence whose checksum
// matches its payload. Trailing whitespace is ignored and the hex digits
// may be either case.
func Verify(line string) error {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$") {
		return ErrMissingDollar
	}
	star := strings.LastIndexByte(line, '*')
	if star == -1 {
		return ErrMissingChecksum
	}
	ck := strings.TrimSpace(line[star+1:])
	if len(ck) < 2 {
		return ErrBadChecksum
	}
	want, err := hex.DecodeString(ck[:2])
	if err != nil || len(want) != 1 {
		return ErrBadChecksum
	}
	got := Sum([]byte(line[1:star]))
	if got != want[0] {
		return fmt.Errorf("%w: got %s want %s", ErrChecksumMismatch, render(got), render(want[0]))
	}
	return nil
}

func render(sum byte) string {
	return string([]byte{hexDigits[sum>>4], hexDigits[sum&0x0F]})
}
