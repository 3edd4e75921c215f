package entity

import "fmt"

type PythonPkg struct {
	Pkg     string `yaml:"name"`
	Version string `yaml:"version"`
}

func (p PythonPkg) Name() string {
	return p.Pkg
}

// Requirement returns the pip requirement specifier, pinned when a
// version is given.
func (p PythonPkg) Requirement() string {
	if p.Version == "" {
		return p.Pkg
	}

	return fmt.Sprintf("%s==%s", p.Pkg, p.Version)
}
