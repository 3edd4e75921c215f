package debpkg

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	controlFile   = "debian/control"
	changelogFile = "debian/changelog"
	packageField  = "Package:"
)

var (
	ErrNoPackageField      = errors.New("control file has no Package field")
	ErrMalformedChangelog  = errors.New("changelog has no parseable entry")
	ErrPackageNameMismatch = errors.New("control and changelog disagree on package name")

	// Matches the head line of a changelog entry: `name (version-revision) suite; ...`.
	// The revision starts after the last hyphen, upstream versions may contain hyphens.
	changelogEntryRegex = regexp.MustCompile(`^(\S+) \(([^)]+)-([^-)]+)\)`)
)

// Metadata is the packaging identity extracted from a Debian source tree,
// enough to predict the built artifact's filename.
type Metadata struct {
	Package  string
	Upstream string
	Revision string
}

// ArtifactGlob returns the glob matching the binary package debuild will
// produce, leaving architecture and revision suffixes open.
func (m Metadata) ArtifactGlob() string {
	return fmt.Sprintf("%s_%s*.deb", m.Package, m.Upstream)
}

func (m Metadata) String() string {
	return fmt.Sprintf("%s %s-%s", m.Package, m.Upstream, m.Revision)
}

// ParseSourceTree extracts packaging metadata from the debian/ dir of a
// source tree and cross-checks the control and changelog names. An empty
// extraction is an error, never an empty Metadata.
func ParseSourceTree(sourceDir string) (Metadata, error) {
	var meta Metadata

	name, err := parseControl(filepath.Join(sourceDir, controlFile))
	if err != nil {
		return meta, err
	}

	meta, err = parseChangelog(filepath.Join(sourceDir, changelogFile))
	if err != nil {
		return meta, err
	}

	if meta.Package != name {
		return Metadata{}, fmt.Errorf("%w: control has %s, changelog has %s",
			ErrPackageNameMismatch, name, meta.Package)
	}

	return meta, nil
}

func parseControl(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, packageField) {
			continue
		}

		name := strings.TrimSpace(strings.TrimPrefix(line, packageField))
		if name == "" {
			return "", fmt.Errorf("%w: empty value in %s", ErrNoPackageField, path)
		}

		return name, nil
	}

	if err = scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%w: %s", ErrNoPackageField, path)
}

func parseChangelog(path string) (Metadata, error) {
	var meta Metadata

	file, err := os.Open(path)
	if err != nil {
		return meta, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		// The first non-empty line must be the most recent entry.
		matches := changelogEntryRegex.FindStringSubmatch(line)
		if matches == nil {
			return meta, fmt.Errorf("%w: unexpected head line %q in %s", ErrMalformedChangelog, line, path)
		}

		return Metadata{Package: matches[1], Upstream: matches[2], Revision: matches[3]}, nil
	}

	if err = scanner.Err(); err != nil {
		return meta, err
	}

	return meta, fmt.Errorf("%w: %s is empty", ErrMalformedChangelog, path)
}
