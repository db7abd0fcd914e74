package crc

import (
	"math/bits"
	"sync"
)

// Register is the set of unsigned types a CRC register can be held in.
// The register width is the bit size of the type.
type Register interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Table is a 256-entry lookup table, one entry per leading byte value.
type Table[T Register] [256]T

func width[T Register]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// MakeTable builds the lookup table for poly. Reflected tables consume
// bits LSB-first and expect poly in reversed bit order.
func MakeTable[T Register](poly T, reflected bool) *Table[T] {
	t := new(Table[T])
	w := width[T]()
	top := T(1) << (w - 1)
	for i := 0; i < 256; i++ {
		var crc T
		if reflected {
			crc = T(i)
			for bit := 0; bit < 8; bit++ {
				if crc&1 != 0 {
					crc = (crc >> 1) ^ poly
				} else {
					crc >>= 1
				}
			}
		} else {
			crc = T(i) << (w - 8)
			for bit := 0; bit < 8; bit++ {
				if crc&top != 0 {
					crc = (crc << 1) ^ poly
				} else {
					crc <<= 1
				}
			}
		}
		t[i] = crc
	}
	return t
}

type tableKey struct {
	typ       any // zero value of the register type
	width     uint
	poly      uint64
	reflected bool
}

// Tables are built on first use and never modified afterwards. Reads go
// through tables without locking; tablesMu serializes construction so a
// key is built once.
var (
	tables   sync.Map // tableKey -> any (*Table[T])
	tablesMu sync.Mutex
)

func tableFor[T Register](poly T, reflected bool) *Table[T] {
	key := tableKey{typ: T(0), width: width[T](), poly: uint64(poly), reflected: reflected}
	if v, ok := tables.Load(key); ok {
		return v.(*Table[T])
	}

	tablesMu.Lock()
	defer tablesMu.Unlock()
	if v, ok := tables.Load(key); ok {
		return v.(*Table[T])
	}
	t := MakeTable(poly, reflected)
	tables.Store(key, t)
	return t
}

func reverse[T Register](v T) T {
	switch width[T]() {
	case 8:
		return T(bits.Reverse8(uint8(v)))
	case 16:
		return T(bits.Reverse16(uint16(v)))
	case 32:
		return T(bits.Reverse32(uint32(v)))
	default:
		return T(bits.Reverse64(uint64(v)))
	}
}
