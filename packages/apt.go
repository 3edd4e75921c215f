package packages

import "fmt"

type Apt struct {
}

func (Apt) ListPkgsHeader() string {
	return "Listing..."
}

func (Apt) PkgExec() string {
	return "apt-get"
}

func (Apt) ListExec() string {
	return "apt"
}

func (Apt) PkgEnv() map[string]string {
	return map[string]string{
		"DEBIAN_FRONTEND": "noninteractive",
		"DEBIAN_PRIORITY": "critical",
	}
}

func (Apt) PkgNameSeparator() string {
	return "/"
}

// ForDistro resolves the package manager for a distro ID. The CI
// containers are Debian-family only, so anything else is an error.
func ForDistro(distro string) (PkgManager, error) {
	switch distro {
	case "ubuntu", "debian":
		return Apt{}, nil
	default:
		return nil, fmt.Errorf("no package manager for distro %s", distro)
	}
}
