package internal

import (
	"fmt"
	"os"
)

// EnsurePrivateDir creates dir accessible to the owner only, as required
// for runtime dirs like XDG_RUNTIME_DIR. An existing dir gets its mode
// tightened.
func EnsurePrivateDir(dir string) error {
	if err := ensureDirWithMode(dir, 0o700); err != nil {
		return err
	}

	return os.Chmod(dir, 0o700)
}

func ensureDirWithMode(dir string, mode os.FileMode) error {
	fi, err := os.Stat(dir)
	if err == nil {
		if !fi.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", dir)
		}
		return nil
	}

	if !os.IsNotExist(err) {
		return err
	}

	err = os.MkdirAll(dir, mode)
	if err == nil || !os.IsPermission(err) {
		return err
	}

	return MaybeRunWithSudo(fmt.Sprintf("mkdir -p %s", dir))
}
