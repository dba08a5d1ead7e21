package dfa

import (
	"encoding/binary"
	"log"
	"os"
)

// magic identifies the on-disk automaton format. Fixed by the spec this
// package implements; changing it would break every existing .fsa file.
const magic uint32 = 0x62D80AB5

// headerSize is the byte length of the magic+L+start header.
const headerSize = 4 + 4 + 4

// Marshal encodes the automaton into its fixed binary layout:
//
//	offset  size  field
//	0       4     magic (0x62D80AB5, little-endian)
//	4       4     L, the number of slots (len(sym) == len(nxt))
//	8       4     start (start base, signed)
//	12      L     sym bytes
//	12+L    4*L   nxt ints, signed 32-bit little-endian
func (a *Automaton) Marshal() []byte {
	l := len(a.sym)
	buf := make([]byte, headerSize+l+4*l)
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	//nolint:gosec // G115: l is the length of an in-memory slice, well within uint32 range
	binary.LittleEndian.PutUint32(buf[4:8], uint32(l))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(a.start))
	copy(buf[headerSize:headerSize+l], a.sym)
	off := headerSize + l
	for i, v := range a.nxt {
		binary.LittleEndian.PutUint32(buf[off+4*i:off+4*i+4], uint32(v))
	}
	return buf
}

// Unmarshal decodes data into an Automaton, validating the header: magic
// must match and 0 <= start <= L-256 must hold. Any violation, including a
// truncated buffer, is reported as ErrInvalidFile.
func Unmarshal(data []byte) (*Automaton, error) {
	if len(data) < headerSize {
		return nil, ErrInvalidFile
	}
	if binary.LittleEndian.Uint32(data[0:4]) != magic {
		return nil, ErrInvalidFile
	}
	l := binary.LittleEndian.Uint32(data[4:8])
	//nolint:gosec // G115: file-declared length, bounds-checked against buf size below
	start := int32(binary.LittleEndian.Uint32(data[8:12]))

	want := headerSize + int(l) + 4*int(l)
	if want < 0 || len(data) != want {
		return nil, ErrInvalidFile
	}
	if start < 0 || int64(start) > int64(l)-256 {
		return nil, ErrInvalidFile
	}

	sym := make([]byte, l)
	copy(sym, data[headerSize:headerSize+int(l)])

	nxt := make([]int32, l)
	off := headerSize + int(l)
	for i := range nxt {
		nxt[i] = int32(binary.LittleEndian.Uint32(data[off+4*i : off+4*i+4]))
	}

	return &Automaton{sym: sym, nxt: nxt, start: start}, nil
}

// Write persists the automaton to path in the binary format above. The
// write is atomic on platforms where writeFileAtomic supports it (see
// serialize_unix.go / serialize_windows.go), so a crash mid-write never
// corrupts a pre-existing file at path.
func (a *Automaton) Write(path string) error {
	log.Printf("automata/dfa: writing automaton (%d slots) to %s", len(a.sym), path)
	if err := writeFileAtomic(path, a.Marshal()); err != nil {
		return ioError("write "+path, err)
	}
	return nil
}

// Read loads and validates an automaton previously written by Write.
func Read(path string) (*Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("read "+path, err)
	}
	aut, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	log.Printf("automata/dfa: read automaton (%d slots) from %s", len(aut.sym), path)
	return aut, nil
}
