package lvmp

import "testing"

func TestPackRecoversNibbles(t *testing.T) {
	for a := Code(0); a <= MaxCode; a++ {
		for b := Code(0); b <= MaxCode; b++ {
			p := Pack(a, b)
			if Code(p>>4) != a || Code(p&0x0F) != b {
				t.Fatalf("Pack(%d, %d) = 0x%02X", a, b, p)
			}
			hi, lo := Unpack(p)
			if hi != a || lo != b {
				t.Fatalf("Unpack(0x%02X) = (%d, %d), want (%d, %d)", p, hi, lo, a, b)
			}
		}
	}
}

func TestPackLast(t *testing.T) {
	for a := Code(0); a <= MaxCode; a++ {
		p := PackLast(a)
		if p&0x0F != 0 {
			t.Errorf("PackLast(%d) = 0x%02X, low nibble not zero", a, p)
		}
		if Code(p>>4) != a {
			t.Errorf("PackLast(%d) = 0x%02X, high nibble wrong", a, p)
		}
	}
}

func TestPackMasksInput(t *testing.T) {
	if got := Pack(0xF5, 0x3A); got != 0x5A {
		t.Errorf("Pack(0xF5, 0x3A) = 0x%02X, want 0x5A", got)
	}
}
