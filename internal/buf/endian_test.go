package buf

import "testing"

func TestUintRoundTrip(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := Uint(data[:2], LittleEndian); got != 0x2301 {
		t.Fatalf("Uint LE 2 = 0x%x, want 0x2301", got)
	}
	if got := Uint(data[:4], LittleEndian); got != 0x67452301 {
		t.Fatalf("Uint LE 4 = 0x%x, want 0x67452301", got)
	}
	if got := Uint(data, LittleEndian); got != 0xefcdab8967452301 {
		t.Fatalf("Uint LE 8 = 0x%x, want 0xefcdab8967452301", got)
	}
	if got := Uint(data[:4], BigEndian); got != 0x01234567 {
		t.Fatalf("Uint BE 4 = 0x%x, want 0x01234567", got)
	}

	buf := make([]byte, 8)
	PutUint(buf, 0xefcdab8967452301, LittleEndian)
	if Uint(buf, LittleEndian) != 0xefcdab8967452301 {
		t.Fatalf("PutUint/Uint LE round-trip mismatch")
	}
	PutUint(buf[:4], 0x01234567, BigEndian)
	if Uint(buf[:4], BigEndian) != 0x01234567 {
		t.Fatalf("PutUint/Uint BE round-trip mismatch")
	}
}

func TestSignExtend(t *testing.T) {
	cases := []struct {
		v    uint64
		bits uint
		want int64
	}{
		{0b1, 1, -1},
		{0b0, 1, 0},
		{0b0111, 4, 7},
		{0b1000, 4, -8},
		{0x7fffffff, 32, 0x7fffffff},
		{0x80000000, 32, -0x80000000},
	}
	for _, c := range cases {
		if got := SignExtend(c.v, c.bits); got != c.want {
			t.Fatalf("SignExtend(0x%x, %d) = %d, want %d", c.v, c.bits, got, c.want)
		}
	}
}

func TestIntSignedDecode(t *testing.T) {
	// -2 as a little-endian 2-byte two's complement value.
	data := []byte{0xfe, 0xff}
	if got := Int(data, LittleEndian); got != -2 {
		t.Fatalf("Int LE = %d, want -2", got)
	}
}
