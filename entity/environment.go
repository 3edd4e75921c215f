package entity

import "os"

const (
	defaultDistro  = "ubuntu"
	defaultVersion = "xenial"

	distroEnvKey  = "DISTRO"
	versionEnvKey = "VERSION"

	// Xenial ships OpenCV packages too old for the vision backends, so the
	// capability is disabled there instead of installed.
	noVisionVersion = "xenial"
)

// Environment holds the distro selectors for the provisioning run.
// Environment variables win over config file values, which win over
// the defaults.
type Environment struct {
	Distro  string
	Version string
}

func LoadEnvironment(config Config) Environment {
	return Environment{
		Distro:  firstNonEmpty(os.Getenv(distroEnvKey), config.Distro, defaultDistro),
		Version: firstNonEmpty(os.Getenv(versionEnvKey), config.Version, defaultVersion),
	}
}

func (e Environment) DisableOpenCV() bool {
	return e.Version == noVisionVersion
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
