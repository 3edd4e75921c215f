package debpkg

import (
	"fmt"
	"path/filepath"

	marecmd "github.com/femnad/mare/cmd"
	"github.com/gabriel-vasile/mimetype"

	"github.com/StrayDragon/guibot/internal"
)

const (
	buildCmd = "debuild -i -us -uc -b"
	debMime  = "application/vnd.debian.binary-package"
)

// Build runs debuild in the source tree. The binary package lands in the
// parent directory, which is also where Locate looks for it.
func Build(sourceDir string) error {
	internal.Log.Noticef("Building package in %s", sourceDir)

	input := marecmd.Input{Command: buildCmd, Pwd: sourceDir}
	return marecmd.RunNoOut(input)
}

// Locate finds the built artifact for meta under dir. Exactly one match is
// expected; none is a build failure surfaced late, several means a stale
// output directory.
func Locate(dir string, meta Metadata) (string, error) {
	pattern := filepath.Join(dir, meta.ArtifactGlob())
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("no artifact matching %s", pattern)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%d artifacts match %s, expected one", len(matches), pattern)
	}

	return matches[0], nil
}

// Verify checks that path is an actual Debian binary package and not a
// leftover from a broken build.
func Verify(path string) error {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return err
	}

	if !mime.Is(debMime) {
		return fmt.Errorf("%s has type %s, expected %s", path, mime.String(), debMime)
	}

	return nil
}
