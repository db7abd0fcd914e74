package crc

import "hash"

var _ hash.Hash64 = (*Digest[uint16])(nil)

// Digest is the running state of a streaming checksum. It holds only the
// register; bytes are folded in as they are written.
//
// A Digest is not safe for concurrent use.
type Digest[T Register] struct {
	p   *Params[T]
	reg T
}

// New returns a Digest for p, primed with p.Init.
func (p *Params[T]) New() *Digest[T] {
	return &Digest[T]{p: p, reg: p.Init}
}

func (d *Digest[T]) Size() int { return d.p.Width() / 8 }

func (d *Digest[T]) BlockSize() int { return 1 }

func (d *Digest[T]) Reset() { d.reg = d.p.Init }

func (d *Digest[T]) Write(b []byte) (int, error) {
	d.reg = d.p.UpdateBytes(d.reg, b)
	return len(b), nil
}

func (d *Digest[T]) WriteByte(c byte) error {
	d.reg = d.p.Update(d.reg, c)
	return nil
}

// Value returns the checksum of everything written so far. It does not
// change the running state.
func (d *Digest[T]) Value() T { return d.p.Finalize(d.reg) }

func (d *Digest[T]) Sum64() uint64 { return uint64(d.Value()) }

// Sum appends the checksum to b, most significant byte first.
func (d *Digest[T]) Sum(b []byte) []byte {
	v := uint64(d.Value())
	for shift := d.p.Width() - 8; shift >= 0; shift -= 8 {
		b = append(b, byte(v>>uint(shift)))
	}
	return b
}
