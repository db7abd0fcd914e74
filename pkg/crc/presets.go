package crc

import "github.com/klauspost/crc32"

// Polynomials, in the bit order their variant's table expects.
const (
	Poly8      = 0x07
	Poly16     = 0xA001
	Poly32     = 0xEDB88320
	Poly64     = 0x42F0E1EBA9EA3693
	PolyCCITT  = 0x1021
	PolyDNP    = 0xA6BC
	PolyKermit = 0x8408
	PolySick   = 0x8005
)

// Initial register values.
const (
	Start8         = 0x00
	Start16        = 0x0000
	StartModbus    = 0xFFFF
	StartXModem    = 0x0000
	StartCCITT1D0F = 0x1D0F
	StartCCITTFFFF = 0xFFFF
	StartKermit    = 0x0000
	StartSick      = 0x0000
	StartDNP       = 0x0000
	Start32        = 0xFFFFFFFF
	Start64ECMA    = 0x0000000000000000
	Start64WE      = 0xFFFFFFFFFFFFFFFF
)

var (
	CRC8 = &Params[uint8]{Name: "crc-8", Poly: Poly8, Init: Start8}

	CRC16  = &Params[uint16]{Name: "crc-16", Poly: Poly16, Init: Start16, ReflectIn: true, ReflectOut: true}
	Modbus = &Params[uint16]{Name: "modbus", Poly: Poly16, Init: StartModbus, ReflectIn: true, ReflectOut: true}

	CCITT1D0F = &Params[uint16]{Name: "ccitt-1d0f", Poly: PolyCCITT, Init: StartCCITT1D0F}
	CCITTFFFF = &Params[uint16]{Name: "ccitt-ffff", Poly: PolyCCITT, Init: StartCCITTFFFF}
	XModem    = &Params[uint16]{Name: "xmodem", Poly: PolyCCITT, Init: StartXModem}

	DNP    = &Params[uint16]{Name: "dnp", Poly: PolyDNP, Init: StartDNP, ReflectIn: true, ReflectOut: true, XorOut: 0xFFFF}
	Kermit = &Params[uint16]{Name: "kermit", Poly: PolyKermit, Init: StartKermit, ReflectIn: true, ReflectOut: true}

	// CRC32 is the IEEE 802.3 CRC. Its byte loop runs through
	// klauspost/crc32, which uses hardware support where available.
	CRC32 = &Params[uint32]{
		Name:       "crc-32",
		Poly:       Poly32,
		Init:       Start32,
		ReflectIn:  true,
		ReflectOut: true,
		XorOut:     0xFFFFFFFF,
		fold:       foldIEEE,
	}

	CRC64ECMA = &Params[uint64]{Name: "crc-64-ecma", Poly: Poly64, Init: Start64ECMA}
	CRC64WE   = &Params[uint64]{Name: "crc-64-we", Poly: Poly64, Init: Start64WE, XorOut: 0xFFFFFFFFFFFFFFFF}
)

// crc32.Update complements the register on entry and exit.
func foldIEEE(reg uint32, data []byte) uint32 {
	return ^crc32.Update(^reg, crc32.IEEETable, data)
}

// Sum8 returns the CRC-8 of data.
func Sum8(data []byte) uint8 { return CRC8.Checksum(data) }

// Update8 advances a CRC-8 register by one byte.
func Update8(crc uint8, c byte) uint8 { return CRC8.Update(crc, c) }

// Sum16 returns the CRC-16 (ARC) of data.
func Sum16(data []byte) uint16 { return CRC16.Checksum(data) }

// SumModbus returns the Modbus CRC-16 of data.
func SumModbus(data []byte) uint16 { return Modbus.Checksum(data) }

// Update16 advances a CRC-16 or Modbus register by one byte.
func Update16(crc uint16, c byte) uint16 { return CRC16.Update(crc, c) }

func SumCCITT1D0F(data []byte) uint16 { return CCITT1D0F.Checksum(data) }

func SumCCITTFFFF(data []byte) uint16 { return CCITTFFFF.Checksum(data) }

func SumXModem(data []byte) uint16 { return XModem.Checksum(data) }

// UpdateCCITT advances a register of any of the CCITT variants by one byte.
// The variants differ only in their start value.
func UpdateCCITT(crc uint16, c byte) uint16 { return XModem.Update(crc, c) }

func SumDNP(data []byte) uint16 { return DNP.Checksum(data) }

// UpdateDNP advances a DNP register by one byte. The final complement is
// left to DNP.Finalize.
func UpdateDNP(crc uint16, c byte) uint16 { return DNP.Update(crc, c) }

func SumKermit(data []byte) uint16 { return Kermit.Checksum(data) }

func UpdateKermit(crc uint16, c byte) uint16 { return Kermit.Update(crc, c) }

// Sum32 returns the IEEE CRC-32 of data.
func Sum32(data []byte) uint32 { return CRC32.Checksum(data) }

// Update32 advances a raw CRC-32 register by one byte. Start from Start32
// and pass the result through CRC32.Finalize to get the checksum.
func Update32(crc uint32, c byte) uint32 { return CRC32.Update(crc, c) }

func Sum64ECMA(data []byte) uint64 { return CRC64ECMA.Checksum(data) }

func Sum64WE(data []byte) uint64 { return CRC64WE.Checksum(data) }

// Update64ECMA advances a CRC-64 register by one byte. CRC-64/WE shares
// the step and differs only in Init and XorOut.
func Update64ECMA(crc uint64, c byte) uint64 { return CRC64ECMA.Update(crc, c) }
