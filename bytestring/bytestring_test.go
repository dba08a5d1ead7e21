package bytestring

import "testing"

func TestCompare_PrefixInversion(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"ball", "ballpark", 1},  // longer ("ballpark") compares less
		{"ballpark", "ball", -1},
		{"ball", "ball", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"", "a", 1}, // empty is the greatest prefix of any non-empty string
		{"a", "", -1},
		{"", "", 0},
		{"böfc", "böfc mufc", 1},
		{"böfc mufc", "böfc", -1},
	}
	for _, tt := range tests {
		got := FromString(tt.a).Compare(FromString(tt.b))
		if sign(got) != sign(tt.want) {
			t.Errorf("Compare(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestLess(t *testing.T) {
	if !FromString("ballpark").Less(FromString("ball")) {
		t.Error("expected \"ballpark\" < \"ball\" under the prefix-inverted order")
	}
	if FromString("ball").Less(FromString("ball")) {
		t.Error("a string must not be less than itself")
	}
}

func TestAt_PanicsOutOfBounds(t *testing.T) {
	s := FromString("ab")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-bounds At")
		}
	}()
	s.At(2)
}

func TestAt(t *testing.T) {
	s := FromString("ab")
	if s.At(0) != 'a' || s.At(1) != 'b' {
		t.Error("At returned wrong bytes")
	}
}

func TestIsValidUTF8(t *testing.T) {
	if !New([]byte("böfc")).IsValidUTF8() {
		t.Error("expected valid UTF-8")
	}
	if New([]byte{0xff, 0xfe}).IsValidUTF8() {
		t.Error("expected invalid UTF-8")
	}
}

func TestSlice(t *testing.T) {
	s := FromString("hello")
	if got := s.Slice(1, 3).String(); got != "el" {
		t.Errorf("Slice(1,3) = %q, want %q", got, "el")
	}
}

func TestEqual(t *testing.T) {
	if !FromString("x").Equal(New([]byte("x"))) {
		t.Error("expected equal strings to compare equal")
	}
}
