package provision

import (
	"archive/tar"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/StrayDragon/guibot/remote"
)

const dirMode = 0o755

func getReader(body io.Reader, url string) (io.Reader, error) {
	switch {
	case strings.HasSuffix(url, ".tar"):
		return body, nil
	case strings.HasSuffix(url, ".tar.gz"), strings.HasSuffix(url, ".tgz"):
		return gzip.NewReader(body)
	case strings.HasSuffix(url, ".tar.bz2"):
		return bzip2.NewReader(body), nil
	case strings.HasSuffix(url, ".tar.xz"):
		return xz.NewReader(body)
	}

	return nil, fmt.Errorf("unable to determine tar reader for URL %s", url)
}

// stripComponent drops the tarball's top-level directory so the tree roots
// at the target, as release tarballs wrap their content in name-version/.
func stripComponent(name string) string {
	name = strings.TrimPrefix(name, "./")
	fields := strings.SplitN(name, "/", 2)
	if len(fields) < 2 {
		return ""
	}

	return fields[1]
}

func fetchTarball(url, target string) error {
	body, err := remote.ReadResponseBody(url)
	if err != nil {
		return err
	}
	defer body.Close()

	reader, err := getReader(body, url)
	if err != nil {
		return err
	}

	tarReader := tar.NewReader(reader)
	var extracted int
	for {
		header, err := tarReader.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}

		relPath := stripComponent(header.Name)
		if relPath == "" {
			continue
		}

		outputPath := filepath.Join(target, relPath)
		info := header.FileInfo()

		switch header.Typeflag {
		case tar.TypeDir:
			if err = os.MkdirAll(outputPath, info.Mode()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err = os.MkdirAll(filepath.Dir(outputPath), dirMode); err != nil {
				return err
			}
			if err = os.Symlink(header.Linkname, outputPath); err != nil {
				return err
			}
		case tar.TypeReg:
			if err = writeEntry(outputPath, info.Mode(), tarReader); err != nil {
				return err
			}
		default:
			continue
		}

		extracted++
	}

	// A tarball without a wrapping top-level directory strips to nothing;
	// surface that here instead of failing later on a missing debian/ dir.
	if extracted == 0 {
		return fmt.Errorf("no entries extracted from %s, expected content under a top-level directory", url)
	}

	return nil
}

func writeEntry(outputPath string, mode os.FileMode, content io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), dirMode); err != nil {
		return err
	}

	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}

	if _, err = io.Copy(file, content); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
