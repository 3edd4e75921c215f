package provision

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/StrayDragon/guibot/entity"
	"github.com/StrayDragon/guibot/internal"
	"github.com/StrayDragon/guibot/packages"
)

func (p Provisioner) installer() (packages.Installer, error) {
	mgr, err := packages.ForDistro(p.Env.Distro)
	if err != nil {
		return packages.Installer{}, err
	}

	return packages.Installer{Pkg: mgr}, nil
}

func (p Provisioner) systemPackages() error {
	installer, err := p.installer()
	if err != nil {
		return err
	}

	if err = installer.Update(); err != nil {
		return err
	}

	return installer.Install(internal.SetFromList(p.Config.Packages.System))
}

// visionPlan resolves which vision packages to request: none on distro
// versions where OpenCV is disabled instead of installed.
func visionPlan(spec entity.PackageSpec, env entity.Environment) mapset.Set[string] {
	if env.DisableOpenCV() {
		return mapset.NewSet[string]()
	}

	return internal.SetFromList(spec.Vision)
}

func (p Provisioner) visionPackages() error {
	desired := visionPlan(p.Config.Packages, p.Env)
	if desired.Cardinality() == 0 {
		internal.Log.Infof("Not requesting vision packages on %s %s, tests will run with DISABLE_OPENCV=1",
			p.Env.Distro, p.Env.Version)
		return nil
	}

	installer, err := p.installer()
	if err != nil {
		return err
	}

	return installer.Install(desired)
}
