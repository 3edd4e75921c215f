package provision

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/StrayDragon/guibot/entity"
	"github.com/StrayDragon/guibot/internal"
)

// Provisioner sets up a disposable CI container for guibot and drives its
// build-and-test pipeline. Steps run strictly in order and the first
// failure aborts the whole run.
type Provisioner struct {
	Config entity.Config
	Env    entity.Environment
	// Only restricts the run to the named steps when non-empty.
	Only []string
}

type step struct {
	name string
	fn   func() error
}

func (p Provisioner) steps() []step {
	return []step{
		{"system-packages", p.systemPackages},
		{"vision-packages", p.visionPackages},
		{"python-packages", p.pythonPackages},
		{"source-tree", p.sourceTree},
		{"package-build", p.buildPackage},
		{"package-install", p.installPackage},
		{"virtual-display", p.virtualDisplay},
		{"unit-tests", p.runTests},
	}
}

func (p Provisioner) Apply() error {
	return apply(p.steps(), p.Only)
}

func apply(steps []step, only []string) error {
	for _, s := range steps {
		if len(only) > 0 && !internal.Contains(only, s.name) {
			internal.Log.Debugf("Skipping step %s", s.name)
			continue
		}

		internal.Log.Noticef("==> %s", stepTitle(s.name))
		if err := s.fn(); err != nil {
			return fmt.Errorf("error in step %s: %w", s.name, err)
		}
	}

	return nil
}

func stepTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func (p Provisioner) sourceDir() string {
	return internal.ExpandUser(p.Config.Settings.GetSourceDir())
}
