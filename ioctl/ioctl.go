// Package ioctl computes Linux ioctl(2) request identifiers.
//
// An identifier packs four fields (call number, type byte, payload size and
// direction) into one unsigned integer. The field widths, the shift of the
// size field and the numeric direction values differ per architecture family,
// so all arithmetic goes through a Profile. Native is the profile of the
// build target.
//
// The packing rules are those of include/uapi/asm-generic/ioctl.h and the
// per-architecture overrides in arch/*/include/uapi/asm/ioctl.h.
package ioctl

import "unsafe"

// NrBits and TypeBits are identical on all architectures.
const (
	NrBits   = 8
	TypeBits = 8

	NrShift   = 0
	TypeShift = NrShift + NrBits
)

// Read is the direction value for calls that read data. Unlike None and
// Write it is the same on all architectures.
const Read uintptr = 2

// Profile describes how one architecture family packs the identifier fields.
// A Profile is fixed per build target and is never modified at runtime.
type Profile struct {
	// SizeBits is the width of the payload size field (13 or 14).
	SizeBits uint

	// DirBits is the width of the direction field (2 or 3).
	DirBits uint

	// SizeShift is the bit position of the size field.
	SizeShift uint

	// None is the direction value for calls that transfer no data.
	None uintptr

	// Write is the direction value for calls that write data.
	Write uintptr
}

// Generic covers x86, ARM, RISC-V and every other architecture that uses the
// asm-generic packing.
var Generic = Profile{
	SizeBits:  14,
	DirBits:   2,
	SizeShift: TypeShift + TypeBits,
	None:      0,
	Write:     1,
}

// MIPSPowerPC covers the MIPS and PowerPC families, which use a 13 bit size
// field and a 3 bit direction field.
var MIPSPowerPC = Profile{
	SizeBits:  13,
	DirBits:   3,
	SizeShift: TypeShift + TypeBits,
	None:      1,
	Write:     4,
}

// SPARC keeps the 14 bit size field but needs a 3 bit direction field, so the
// size field starts one bit early and shares its lowest bit with the top bit
// of the type field.
var SPARC = Profile{
	SizeBits:  14,
	DirBits:   3,
	SizeShift: TypeShift + TypeBits - 1,
	None:      1,
	Write:     4,
}

// DirShift returns the bit position of the direction field.
func (p Profile) DirShift() uint {
	return p.SizeShift + p.SizeBits
}

// IOC packs the four fields into an identifier. Like the C _IOC() macro it
// does not range check its arguments; the caller must keep each field within
// its width.
func (p Profile) IOC(dir, typ, nr, size uintptr) uintptr {
	return dir<<p.DirShift() |
		size<<p.SizeShift |
		typ<<TypeShift |
		nr<<NrShift
}

// IO returns the identifier for a call that transfers no data (_IO).
func (p Profile) IO(typ, nr uintptr) uintptr {
	return p.IOC(p.None, typ, nr, 0)
}

// IOR returns the identifier for a call that reads size payload bytes (_IOR).
func (p Profile) IOR(typ, nr, size uintptr) uintptr {
	return p.IOC(Read, typ, nr, size)
}

// IOW returns the identifier for a call that writes size payload bytes (_IOW).
func (p Profile) IOW(typ, nr, size uintptr) uintptr {
	return p.IOC(p.Write, typ, nr, size)
}

// IOWR returns the identifier for a call that both reads and writes (_IOWR).
func (p Profile) IOWR(typ, nr, size uintptr) uintptr {
	return p.IOC(Read|p.Write, typ, nr, size)
}

// Dir extracts the direction field from an identifier (_IOC_DIR).
func (p Profile) Dir(code uintptr) uintptr {
	return (code >> p.DirShift()) & (1<<p.DirBits - 1)
}

// Type extracts the type byte from an identifier (_IOC_TYPE).
func (p Profile) Type(code uintptr) uintptr {
	return (code >> TypeShift) & (1<<TypeBits - 1)
}

// Nr extracts the call number from an identifier (_IOC_NR).
func (p Profile) Nr(code uintptr) uintptr {
	return (code >> NrShift) & (1<<NrBits - 1)
}

// Size extracts the payload size from an identifier (_IOC_SIZE).
func (p Profile) Size(code uintptr) uintptr {
	return (code >> p.SizeShift) & (1<<p.SizeBits - 1)
}

// IO returns the native identifier for a call that transfers no data.
func IO(typ, nr uintptr) uintptr {
	return Native.IO(typ, nr)
}

// IOR returns the native identifier for a call that reads a T.
func IOR[T any](typ, nr uintptr) uintptr {
	var v T
	return Native.IOR(typ, nr, unsafe.Sizeof(v))
}

// IOW returns the native identifier for a call that writes a T.
func IOW[T any](typ, nr uintptr) uintptr {
	var v T
	return Native.IOW(typ, nr, unsafe.Sizeof(v))
}

// IOWR returns the native identifier for a call that reads and writes a T.
func IOWR[T any](typ, nr uintptr) uintptr {
	var v T
	return Native.IOWR(typ, nr, unsafe.Sizeof(v))
}

// Dir extracts the direction field using the native profile.
func Dir(code uintptr) uintptr {
	return Native.Dir(code)
}

// Type extracts the type byte using the native profile.
func Type(code uintptr) uintptr {
	return Native.Type(code)
}

// Nr extracts the call number using the native profile.
func Nr(code uintptr) uintptr {
	return Native.Nr(code)
}

// Size extracts the payload size using the native profile.
func Size(code uintptr) uintptr {
	return Native.Size(code)
}
