//go:build !windows

package dfa

import "github.com/google/renameio/v2"

// writeFileAtomic writes data to path by first writing a temporary file in
// the same directory, then atomically renaming it into place, so a crash or
// power loss mid-write can never leave a half-written .fsa file at path.
func writeFileAtomic(path string, data []byte) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if _, err := pf.Write(data); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
