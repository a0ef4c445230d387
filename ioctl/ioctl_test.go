package ioctl

import "testing"

var profiles = map[string]Profile{
	"generic":     Generic,
	"mipspowerpc": MIPSPowerPC,
	"sparc":       SPARC,
}

func TestShifts(t *testing.T) {
	if Generic.DirShift() != 30 {
		t.Error("Wrong generic direction shift", Generic.DirShift())
	}
	if MIPSPowerPC.DirShift() != 29 {
		t.Error("Wrong mips/powerpc direction shift", MIPSPowerPC.DirShift())
	}
	if SPARC.SizeShift != 15 || SPARC.DirShift() != 29 {
		t.Error("Wrong sparc shifts", SPARC.SizeShift, SPARC.DirShift())
	}
}

func TestRoundTrip(t *testing.T) {
	typs := []uintptr{0, 1, 0x42, 0x7f, 0xb4, 0xff}
	nrs := []uintptr{0, 1, 5, 0x0c, 0x80, 0xff}

	for name, p := range profiles {
		dirs := []uintptr{p.None, p.Write, Read, Read | p.Write}
		sizes := []uintptr{0, 1, 4, 68, 256, 1<<p.SizeBits - 1}

		for _, dir := range dirs {
			for _, typ := range typs {
				for _, nr := range nrs {
					for _, size := range sizes {
						if p.SizeShift < TypeShift+TypeBits && typ>>7 != size&1 {
							// The sparc size field shares a bit with the
							// type field, these combinations cannot be
							// represented.
							continue
						}

						code := p.IOC(dir, typ, nr, size)
						if p.Dir(code) != dir {
							t.Error(name, "direction did not survive", dir, code)
						}
						if p.Type(code) != typ {
							t.Error(name, "type did not survive", typ, code)
						}
						if p.Nr(code) != nr {
							t.Error(name, "number did not survive", nr, code)
						}
						if p.Size(code) != size {
							t.Error(name, "size did not survive", size, code)
						}
					}
				}
			}
		}
	}
}

func TestGenericReferenceCodes(t *testing.T) {
	// Values taken from a C program using the <linux/gpio.h> macros on amd64.
	ref := []struct {
		code uintptr
		want uintptr
	}{
		{Generic.IOR(0xB4, 0x01, 68), 0x8044B401},
		{Generic.IOWR(0xB4, 0x05, 256), 0xC100B405},
		{Generic.IOWR(0xB4, 0x06, 256), 0xC100B406},
		{Generic.IOWR(0xB4, 0x0C, 4), 0xC004B40C},
		{Generic.IO(0xB4, 0x00), 0xB400},
	}

	for _, r := range ref {
		if r.code != r.want {
			t.Errorf("Wrong identifier: got %#x, want %#x", r.code, r.want)
		}
	}
}

func TestNativeHelpers(t *testing.T) {
	code := IOWR[uint64](0xAB, 3)
	if Dir(code) != Read|Native.Write {
		t.Error("Wrong direction", Dir(code))
	}
	if Type(code) != 0xAB {
		t.Error("Wrong type", Type(code))
	}
	if Nr(code) != 3 {
		t.Error("Wrong number", Nr(code))
	}
	if Size(code) != 8 {
		t.Error("Wrong size", Size(code))
	}

	code = IO(0xAB, 4)
	if Dir(code) != Native.None || Size(code) != 0 {
		t.Error("IO must transfer no data", code)
	}

	if IOR[uint32](0xAB, 5) != Native.IOR(0xAB, 5, 4) {
		t.Error("IOR size was not derived from the payload type")
	}
	if IOW[uint32](0xAB, 5) != Native.IOW(0xAB, 5, 4) {
		t.Error("IOW size was not derived from the payload type")
	}
}
