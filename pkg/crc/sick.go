package crc

import (
	"hash"
	"math/bits"
)

// The Sick CRC is not table driven: each step shifts the register once and
// mixes in the current byte together with the byte before it. Its result
// is byte-swapped so the low byte comes first.

// UpdateSick advances a Sick register by byte c. prev is the byte that was
// folded in before c, or 0 for the first byte.
func UpdateSick(crc uint16, c, prev byte) uint16 {
	if crc&0x8000 != 0 {
		crc = (crc << 1) ^ PolySick
	} else {
		crc <<= 1
	}
	return crc ^ (uint16(c) | uint16(prev)<<8)
}

// FinalizeSick turns a running Sick register into the visible checksum.
func FinalizeSick(crc uint16) uint16 { return bits.ReverseBytes16(crc) }

// SumSick returns the Sick CRC of data.
func SumSick(data []byte) uint16 {
	d := NewSick()
	d.Write(data)
	return d.Value()
}

var _ hash.Hash64 = (*SickDigest)(nil)

// SickDigest is the streaming state of a Sick CRC: the register and the
// last byte written.
type SickDigest struct {
	reg  uint16
	prev byte
}

func NewSick() *SickDigest { return &SickDigest{reg: StartSick} }

func (d *SickDigest) Size() int { return 2 }

func (d *SickDigest) BlockSize() int { return 1 }

func (d *SickDigest) Reset() { *d = SickDigest{reg: StartSick} }

func (d *SickDigest) Write(b []byte) (int, error) {
	for _, c := range b {
		d.reg = UpdateSick(d.reg, c, d.prev)
		d.prev = c
	}
	return len(b), nil
}

func (d *SickDigest) WriteByte(c byte) error {
	d.reg = UpdateSick(d.reg, c, d.prev)
	d.prev = c
	return nil
}

func (d *SickDigest) Value() uint16 { return FinalizeSick(d.reg) }

func (d *SickDigest) Sum64() uint64 { return uint64(d.Value()) }

func (d *SickDigest) Sum(b []byte) []byte {
	v := d.Value()
	return append(b, byte(v>>8), byte(v))
}

type sickVariant struct{}

func (sickVariant) String() string { return "sick" }

func (sickVariant) Width() int { return 16 }

func (sickVariant) Checksum64(data []byte) uint64 { return uint64(SumSick(data)) }

func (sickVariant) NewHash() hash.Hash64 { return NewSick() }
