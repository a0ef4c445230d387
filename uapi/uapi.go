// Package uapi mirrors the GPIO character device structures of the v2
// interface in <linux/gpio.h>, together with the ioctl identifiers that
// operate on them. The byte layout of these records must match the kernel
// exactly, see uapi_test.go.
package uapi

import (
	"encoding/binary"

	"github.com/BertoldVdb/go-gpioinfo/ioctl"
)

const (
	// MaxNameSize is the length of the fixed name, label and consumer buffers.
	MaxNameSize = 32

	// LinesMax is the maximum number of lines in one request.
	LinesMax = 64

	// LineNumAttrsMax is the number of attribute slots in LineInfo.
	LineNumAttrsMax = 10
)

// Attribute IDs selecting the interpretation of LineAttribute.Value.
const (
	LineAttrIDFlags        uint32 = 1
	LineAttrIDOutputValues uint32 = 2
	LineAttrIDDebounce     uint32 = 3
)

// The ioctl type byte shared by all GPIO calls.
const gpioIoctlType = 0xB4

var (
	// GetChipInfoIoctl reads a ChipInfo (GPIO_GET_CHIPINFO_IOCTL).
	GetChipInfoIoctl = ioctl.IOR[ChipInfo](gpioIoctlType, 0x01)

	// GetLineInfoIoctl fills a LineInfo for the line selected by its Offset
	// field (GPIO_V2_GET_LINEINFO_IOCTL).
	GetLineInfoIoctl = ioctl.IOWR[LineInfo](gpioIoctlType, 0x05)

	// WatchLineInfoIoctl and UnwatchLineInfoIoctl are defined for protocol
	// completeness. Nothing in this module issues them.
	WatchLineInfoIoctl   = ioctl.IOWR[LineInfo](gpioIoctlType, 0x06)
	UnwatchLineInfoIoctl = ioctl.IOWR[uint32](gpioIoctlType, 0x0C)
)

// ChipInfo is struct gpiochip_info.
type ChipInfo struct {
	Name  [MaxNameSize]byte
	Label [MaxNameSize]byte
	Lines uint32
}

// LineAttribute is struct gpio_v2_line_attribute. Value is a union in the
// kernel header; ID selects which of the accessors below is valid.
type LineAttribute struct {
	ID      uint32
	Padding uint32
	Value   [8]byte
}

// Value64 returns the 64 bit union member. Only valid when ID is
// LineAttrIDFlags or LineAttrIDOutputValues.
func (a *LineAttribute) Value64() uint64 {
	return binary.NativeEndian.Uint64(a.Value[:])
}

// Value32 returns the 32 bit union member. Only valid when ID is
// LineAttrIDDebounce.
func (a *LineAttribute) Value32() uint32 {
	return binary.NativeEndian.Uint32(a.Value[:4])
}

// LineInfo is struct gpio_v2_line_info.
type LineInfo struct {
	Name     [MaxNameSize]byte
	Consumer [MaxNameSize]byte
	Offset   uint32
	NumAttrs uint32
	Flags    uint64
	Attrs    [LineNumAttrsMax]LineAttribute
	Padding  [4]uint32
}
