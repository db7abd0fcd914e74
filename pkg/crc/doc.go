// Package crc computes the CRC-8, CRC-16, CRC-32 and CRC-64 variants used
// by common serial and storage protocols.
//
// A single table-driven engine serves every variant. A variant is a Params
// value; the named presets (CRC32, Modbus, XModem, ...) and the Sum* and
// Update* functions are thin wrappers over it. Lookup tables are built on
// first use and shared by every variant with the same width, polynomial
// and bit order.
//
// Streaming callers either hold a Digest, or thread a register through
// Update themselves:
//
//	reg := crc.Modbus.Init
//	for _, c := range frame {
//		reg = crc.Modbus.Update(reg, c)
//	}
//	sum := crc.Modbus.Finalize(reg)
//
// None of the checksums here offer any protection against deliberate
// tampering.
package crc
