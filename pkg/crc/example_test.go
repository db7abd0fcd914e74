package crc_test

import (
	"fmt"

	"github.com/JoseAmador95/libcrc/pkg/crc"
)

func ExampleSum32() {
	fmt.Printf("%08X\n", crc.Sum32([]byte("123456789")))
	// Output: CBF43926
}

func Example_streaming() {
	reg := crc.Modbus.Init
	for _, c := range []byte("123456789") {
		reg = crc.Modbus.Update(reg, c)
	}
	fmt.Printf("%04X\n", crc.Modbus.Finalize(reg))
	// Output: 4B37
}

func ExampleLookup() {
	v, err := crc.Lookup("xmodem")
	if err != nil {
		panic(err)
	}
	h := v.NewHash()
	h.Write([]byte("1234"))
	h.Write([]byte("56789"))
	fmt.Printf("%s %04X\n", v, h.Sum64())
	// Output: xmodem 31C3
}
