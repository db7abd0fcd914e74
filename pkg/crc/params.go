package crc

import (
	"errors"
	"fmt"
	"hash"
)

// ErrInvalidArgument reports a buffer whose declared length does not fit
// the data actually supplied.
var ErrInvalidArgument = errors.New("crc: invalid argument")

// Params describes one CRC variant. The register width is the bit size of T.
//
// Poly is stored in the bit order the table expects: reversed for
// reflected variants (0xEDB88320 for CRC-32, 0xA001 for CRC-16). Init is
// the register value before the first byte and is not reversed.
type Params[T Register] struct {
	Name       string
	Poly       T
	Init       T
	ReflectIn  bool
	ReflectOut bool
	XorOut     T

	// fold, when set, replaces the table loop in UpdateBytes. It must give
	// results identical to the table loop.
	fold func(reg T, data []byte) T
}

// Width returns the register width in bits.
func (p *Params[T]) Width() int { return int(width[T]()) }

func (p *Params[T]) String() string { return p.Name }

// Table returns the shared lookup table for p.
func (p *Params[T]) Table() *Table[T] {
	return tableFor(p.Poly, p.ReflectIn)
}

// Update advances reg by one byte. It applies neither Init nor the final
// reflect/xor step; see Finalize.
func (p *Params[T]) Update(reg T, c byte) T {
	return step(p.Table(), p.ReflectIn, reg, c)
}

// UpdateBytes advances reg over every byte of data, in order.
func (p *Params[T]) UpdateBytes(reg T, data []byte) T {
	if p.fold != nil {
		return p.fold(reg, data)
	}
	tab := p.Table()
	for _, c := range data {
		reg = step(tab, p.ReflectIn, reg, c)
	}
	return reg
}

// Finalize turns a running register into the visible checksum.
func (p *Params[T]) Finalize(reg T) T {
	if p.ReflectOut != p.ReflectIn {
		reg = reverse(reg)
	}
	return reg ^ p.XorOut
}

// Checksum computes the CRC of data.
func (p *Params[T]) Checksum(data []byte) T {
	return p.Finalize(p.UpdateBytes(p.Init, data))
}

// ChecksumN computes the CRC of the first n bytes of data. It fails with
// ErrInvalidArgument when n is negative or larger than len(data), which
// covers a nil buffer with a non-zero length.
func (p *Params[T]) ChecksumN(data []byte, n int) (T, error) {
	if n < 0 || n > len(data) {
		return 0, fmt.Errorf("%w: %s length %d with %d bytes of data", ErrInvalidArgument, p.Name, n, len(data))
	}
	return p.Checksum(data[:n]), nil
}

// Checksum64 is Checksum widened to uint64, for callers holding a Variant.
func (p *Params[T]) Checksum64(data []byte) uint64 {
	return uint64(p.Checksum(data))
}

// NewHash returns p.New() as a hash.Hash64.
func (p *Params[T]) NewHash() hash.Hash64 { return p.New() }

func step[T Register](tab *Table[T], reflected bool, reg T, c byte) T {
	if reflected {
		return tab[byte(reg)^c] ^ (reg >> 8)
	}
	return tab[byte(reg>>(width[T]()-8))^c] ^ (reg << 8)
}
