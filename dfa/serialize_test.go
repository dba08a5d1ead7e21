package dfa

import (
	"encoding/binary"
	"path/filepath"
	"testing"
)

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	aut := buildSimple()
	data := aut.Marshal()
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, input := range []string{"a", "ab", "abc", ""} {
		want, err := aut.Lookup([]byte(input))
		if err != nil {
			t.Fatalf("Lookup(%q) on original: %v", input, err)
		}
		gotLookup, err := got.Lookup([]byte(input))
		if err != nil {
			t.Fatalf("Lookup(%q) on round-tripped: %v", input, err)
		}
		if want != gotLookup {
			t.Errorf("Lookup(%q): original=%v round-tripped=%v", input, want, gotLookup)
		}
	}
}

func TestUnmarshal_TruncatedHeader(t *testing.T) {
	_, err := Unmarshal([]byte{1, 2, 3})
	if err != ErrInvalidFile {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}

func TestUnmarshal_BadMagic(t *testing.T) {
	data := buildSimple().Marshal()
	binary.LittleEndian.PutUint32(data[0:4], 0xDEADBEEF)
	_, err := Unmarshal(data)
	if err != ErrInvalidFile {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}

func TestUnmarshal_TruncatedBody(t *testing.T) {
	data := buildSimple().Marshal()
	_, err := Unmarshal(data[:len(data)-10])
	if err != ErrInvalidFile {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}

func TestUnmarshal_BadStart(t *testing.T) {
	data := buildSimple().Marshal()
	// start must satisfy 0 <= start <= L-256, so a negative start is invalid
	// whatever L is.
	negStart := int32(-1)
	binary.LittleEndian.PutUint32(data[8:12], uint32(negStart))
	_, err := Unmarshal(data)
	if err != ErrInvalidFile {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	aut := buildSimple()
	path := filepath.Join(t.TempDir(), "test.fsa")
	if err := aut.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ok, err := got.Lookup([]byte("ab"))
	if err != nil || !ok {
		t.Errorf("Lookup(\"ab\") on read-back automaton = %v, %v; want true, nil", ok, err)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.fsa"))
	if err == nil {
		t.Fatal("expected an error reading a missing file")
	}
}
