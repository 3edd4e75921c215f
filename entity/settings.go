package entity

import "fmt"

const (
	defaultCoverage   = "python3-coverage"
	defaultDisplay    = 99
	defaultLibPath    = "../guibot/"
	defaultPipExec    = "pip3"
	defaultRuntimeDir = "/tmp/runtime-ci"
	defaultScreen     = "1024x768x24"
	defaultSourceDir  = "~/guibot"
	defaultTestRunner = "run_tests.sh"
)

type Settings struct {
	Coverage   string `yaml:"coverage,omitempty"`
	Display    int    `yaml:"display,omitempty"`
	LibPath    string `yaml:"lib_path,omitempty"`
	PipExec    string `yaml:"pip_exec,omitempty"`
	RuntimeDir string `yaml:"runtime_dir,omitempty"`
	Screen     string `yaml:"screen,omitempty"`
	SourceDir  string `yaml:"source_dir,omitempty"`
	TestDir    string `yaml:"test_dir,omitempty"`
	TestRunner string `yaml:"test_runner,omitempty"`
}

func (s Settings) GetCoverage() string {
	if s.Coverage != "" {
		return s.Coverage
	}

	return defaultCoverage
}

func (s Settings) GetLibPath() string {
	if s.LibPath != "" {
		return s.LibPath
	}

	return defaultLibPath
}

func (s Settings) GetDisplay() int {
	if s.Display != 0 {
		return s.Display
	}

	return defaultDisplay
}

func (s Settings) GetPipExec() string {
	if s.PipExec != "" {
		return s.PipExec
	}

	return defaultPipExec
}

func (s Settings) GetRuntimeDir() string {
	if s.RuntimeDir != "" {
		return s.RuntimeDir
	}

	return defaultRuntimeDir
}

func (s Settings) GetScreen() string {
	if s.Screen != "" {
		return s.Screen
	}

	return defaultScreen
}

func (s Settings) GetSourceDir() string {
	if s.SourceDir != "" {
		return s.SourceDir
	}

	return defaultSourceDir
}

func (s Settings) GetTestDir() string {
	if s.TestDir != "" {
		return s.TestDir
	}

	return fmt.Sprintf("%s/tests", s.GetSourceDir())
}

func (s Settings) GetTestRunner() string {
	if s.TestRunner != "" {
		return s.TestRunner
	}

	return defaultTestRunner
}
