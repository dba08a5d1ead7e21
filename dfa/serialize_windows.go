//go:build windows

package dfa

import "os"

// writeFileAtomic writes data to path directly. renameio is not available
// on Windows (see https://github.com/google/renameio/pull/20), so this
// falls back to a plain create-and-write; it is not atomic on this
// platform.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
