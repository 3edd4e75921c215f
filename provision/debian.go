package provision

import (
	"path/filepath"

	"github.com/StrayDragon/guibot/debpkg"
	"github.com/StrayDragon/guibot/internal"
)

// artifactDir is where debuild leaves the binary package: the parent of
// the source tree.
func (p Provisioner) artifactDir() string {
	return filepath.Dir(p.sourceDir())
}

func (p Provisioner) buildPackage() error {
	sourceDir := p.sourceDir()

	meta, err := debpkg.ParseSourceTree(sourceDir)
	if err != nil {
		return err
	}
	internal.Log.Infof("Building %s", meta)

	if err = debpkg.Build(sourceDir); err != nil {
		return err
	}

	artifact, err := debpkg.Locate(p.artifactDir(), meta)
	if err != nil {
		return err
	}

	return debpkg.Verify(artifact)
}

func (p Provisioner) installPackage() error {
	meta, err := debpkg.ParseSourceTree(p.sourceDir())
	if err != nil {
		return err
	}

	artifact, err := debpkg.Locate(p.artifactDir(), meta)
	if err != nil {
		return err
	}

	installer, err := p.installer()
	if err != nil {
		return err
	}

	internal.Log.Infof("Installing %s", artifact)
	return installer.InstallLocal(artifact)
}
