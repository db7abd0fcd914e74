package crc

import (
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"
)

// ErrUnknownVariant is returned by Lookup for names it does not know.
var ErrUnknownVariant = errors.New("crc: unknown variant")

// Variant is a width-erased CRC variant, for code that picks the variant
// at run time. Results are widened to uint64.
type Variant interface {
	String() string
	Width() int
	Checksum64(data []byte) uint64
	NewHash() hash.Hash64
}

var (
	_ Variant = (*Params[uint8])(nil)
	_ Variant = sickVariant{}
)

// Sick is the Variant form of SumSick and NewSick.
var Sick Variant = sickVariant{}

var variants = func() map[string]Variant {
	m := map[string]Variant{}
	for _, v := range []Variant{
		CRC8,
		CRC16, Modbus,
		CCITT1D0F, CCITTFFFF, XModem,
		DNP, Kermit, Sick,
		CRC32,
		CRC64ECMA, CRC64WE,
	} {
		m[v.String()] = v
	}
	return m
}()

// Lookup returns the variant registered under name. Matching ignores
// case, and "_" is accepted in place of "-".
func Lookup(name string) (Variant, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	v, ok := variants[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Names returns every registered variant name, sorted.
func Names() []string {
	out := make([]string, 0, len(variants))
	for name := range variants {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
