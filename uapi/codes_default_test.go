//go:build 386 || amd64 || arm || arm64 || loong64 || riscv64 || s390x

package uapi

import "testing"

// Identifiers generated by a C program using the <linux/gpio.h> macros.
// These only hold for architectures using the asm-generic field packing.
func TestReferenceIdentifiers(t *testing.T) {
	refs := []struct {
		name string
		code uintptr
		want uintptr
	}{
		{"GPIO_GET_CHIPINFO_IOCTL", GetChipInfoIoctl, 0x8044B401},
		{"GPIO_V2_GET_LINEINFO_IOCTL", GetLineInfoIoctl, 0xC100B405},
		{"GPIO_V2_GET_LINEINFO_WATCH_IOCTL", WatchLineInfoIoctl, 0xC100B406},
		{"GPIO_GET_LINEINFO_UNWATCH_IOCTL", UnwatchLineInfoIoctl, 0xC004B40C},
	}

	for _, r := range refs {
		if r.code != r.want {
			t.Errorf("%s: got %#x, want %#x", r.name, r.code, r.want)
		}
	}
}
