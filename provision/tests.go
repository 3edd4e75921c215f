package provision

import (
	"fmt"
	"path/filepath"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/StrayDragon/guibot/entity"
	"github.com/StrayDragon/guibot/internal"
)

// testEnv assembles the environment handed to the test runner. DISPLAY and
// XDG_RUNTIME_DIR point at the provisioned display and runtime dir,
// LIBPATH and COVERAGE are consumed by the runner script itself.
func testEnv(config entity.Config, env entity.Environment) map[string]string {
	settings := config.Settings
	out := map[string]string{
		"DISPLAY":         fmt.Sprintf(":%d", settings.GetDisplay()),
		"XDG_RUNTIME_DIR": settings.GetRuntimeDir(),
		"LIBPATH":         settings.GetLibPath(),
		"COVERAGE":        settings.GetCoverage(),
	}

	if env.DisableOpenCV() {
		out["DISABLE_OPENCV"] = "1"
	}

	return out
}

func (p Provisioner) runTests() error {
	settings := p.Config.Settings

	if err := internal.EnsurePrivateDir(settings.GetRuntimeDir()); err != nil {
		return err
	}

	testDir := internal.ExpandUser(settings.GetTestDir())
	runner := settings.GetTestRunner()
	if !filepath.IsAbs(runner) {
		runner = "./" + runner
	}

	internal.Log.Noticef("Running test suite via %s in %s", runner, testDir)

	input := marecmd.Input{
		Command: fmt.Sprintf("sh %s", runner),
		Pwd:     testDir,
		Env:     testEnv(p.Config, p.Env),
	}
	return marecmd.RunNoOut(input)
}
