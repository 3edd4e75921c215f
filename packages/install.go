package packages

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	marecmd "github.com/femnad/mare/cmd"

	"github.com/StrayDragon/guibot/internal"
)

type PkgManager interface {
	ListPkgsHeader() string
	ListExec() string
	PkgExec() string
	PkgEnv() map[string]string
	PkgNameSeparator() string
}

type Installer struct {
	Pkg PkgManager
}

func setToSlice[T comparable](set mapset.Set[T]) []T {
	var items []T
	set.Each(func(t T) bool {
		items = append(items, t)
		return false
	})

	return items
}

func (i Installer) runWithPkgEnv(cmds ...string) error {
	isRoot, err := internal.IsUserRoot()
	if err != nil {
		return err
	}

	cmd := strings.Join(cmds, " ")
	input := marecmd.Input{Command: cmd, Env: i.Pkg.PkgEnv(), Sudo: !isRoot}
	return marecmd.RunNoOut(input)
}

func (i Installer) Install(desired mapset.Set[string]) error {
	available, err := i.installedPackages()
	if err != nil {
		return err
	}

	missing := desired.Difference(available)
	missingPkgs := setToSlice(missing)

	if len(missingPkgs) == 0 {
		return nil
	}

	sort.Strings(missingPkgs)
	internal.Log.Infof("Packages to install: %s", strings.Join(missingPkgs, " "))

	installCmd := []string{i.Pkg.PkgExec(), "install", "-y"}
	installCmd = append(installCmd, missingPkgs...)
	return i.runWithPkgEnv(installCmd...)
}

// InstallLocal installs a package archive from the filesystem, letting the
// package manager resolve its dependencies.
func (i Installer) InstallLocal(path string) error {
	if !strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}

	return i.runWithPkgEnv(i.Pkg.PkgExec(), "install", "-y", path)
}

func (i Installer) Update() error {
	return i.runWithPkgEnv(i.Pkg.PkgExec(), "update")
}

func (i Installer) installedPackages() (mapset.Set[string], error) {
	listCmd := fmt.Sprintf("%s list --installed", i.Pkg.ListExec())
	out, err := marecmd.RunFmtErr(marecmd.Input{Command: listCmd})
	if err != nil {
		return nil, err
	}

	return parseInstalled(out.Stdout, i.Pkg)
}

func parseInstalled(output string, pkg PkgManager) (mapset.Set[string], error) {
	installedPackages := mapset.NewSet[string]()
	for _, line := range strings.Split(output, "\n") {
		if line == "" || line == pkg.ListPkgsHeader() {
			continue
		}

		fields := strings.Split(line, " ")
		pkgAndVers := fields[0]
		pkgFields := strings.SplitN(pkgAndVers, pkg.PkgNameSeparator(), 2)
		if pkgFields[0] == "" {
			return nil, fmt.Errorf("unexpected package list line: %s", line)
		}

		installedPackages.Add(pkgFields[0])
	}

	return installedPackages, nil
}
