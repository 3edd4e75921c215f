package provision

import (
	"fmt"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/StrayDragon/guibot/internal"
)

func pipInstall(pipExec, requirement string) error {
	cmd := fmt.Sprintf("%s install %s", pipExec, requirement)
	_, err := marecmd.RunFmtErr(marecmd.Input{Command: cmd})
	return err
}

func (p Provisioner) pythonPackages() error {
	pipExec := p.Config.Settings.GetPipExec()

	for _, pkg := range p.Config.Python {
		internal.Log.Infof("Installing Python package %s", pkg.Requirement())
		if err := pipInstall(pipExec, pkg.Requirement()); err != nil {
			return fmt.Errorf("error installing pip package %s: %w", pkg.Name(), err)
		}
	}

	return nil
}
