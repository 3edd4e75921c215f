package provision

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"

	"github.com/StrayDragon/guibot/internal"
)

// sourceTree ensures the guibot source tree exists: keep an existing
// checkout, otherwise clone the configured repo or unpack the configured
// tarball.
func (p Provisioner) sourceTree() error {
	dir := p.sourceDir()

	_, err := os.Stat(dir)
	if err == nil {
		internal.Log.Debugf("Source tree %s already present", dir)
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	source := p.Config.Source
	switch {
	case source.Repo != "":
		internal.Log.Infof("Cloning %s into %s", source.Repo, dir)
		_, err = git.PlainClone(dir, false, &git.CloneOptions{URL: source.Repo})
		return err
	case source.Url != "":
		internal.Log.Infof("Fetching source archive %s into %s", source.Url, dir)
		return fetchTarball(source.Url, dir)
	default:
		return fmt.Errorf("source tree %s is missing and no source origin is configured", dir)
	}
}
