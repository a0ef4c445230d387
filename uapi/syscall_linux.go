package uapi

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// GetChipInfo issues GPIO_GET_CHIPINFO_IOCTL on an open GPIO character
// device and returns the populated record. On failure the errno reported by
// the kernel is returned unchanged.
func GetChipInfo(fd uintptr) (ChipInfo, error) {
	var ci ChipInfo

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, GetChipInfoIoctl, uintptr(unsafe.Pointer(&ci)))
	if errno != 0 {
		return ChipInfo{}, errno
	}

	return ci, nil
}

// GetLineInfo issues GPIO_V2_GET_LINEINFO_IOCTL for one line offset. All
// fields other than Offset are zeroed before the call. On failure the errno
// reported by the kernel is returned unchanged.
func GetLineInfo(fd uintptr, offset uint32) (LineInfo, error) {
	li := LineInfo{Offset: offset}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, GetLineInfoIoctl, uintptr(unsafe.Pointer(&li)))
	if errno != 0 {
		return LineInfo{}, errno
	}

	return li, nil
}
