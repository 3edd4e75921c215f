package debpkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSourceTree(t *testing.T, control, changelog string) string {
	t.Helper()

	dir := t.TempDir()
	debianDir := filepath.Join(dir, "debian")
	if err := os.MkdirAll(debianDir, 0o755); err != nil {
		t.Fatalf("error creating debian dir: %v", err)
	}

	files := map[string]string{"control": control, "changelog": changelog}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(debianDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("error writing %s: %v", name, err)
		}
	}

	return dir
}

func TestParseSourceTree(t *testing.T) {
	tests := []struct {
		name      string
		control   string
		changelog string
		want      Metadata
		wantErr   error
	}{
		{
			name:      "Basic package",
			control:   "Source: guibot\nPackage: guibot\nArchitecture: all\n",
			changelog: "guibot (0.1-1) xenial; urgency=low\n\n  * Initial release\n",
			want:      Metadata{Package: "guibot", Upstream: "0.1", Revision: "1"},
		},
		{
			name:      "Hyphenated upstream version",
			control:   "Package: guibot\n",
			changelog: "guibot (1.0-rc1-2) bionic; urgency=low\n",
			want:      Metadata{Package: "guibot", Upstream: "1.0-rc1", Revision: "2"},
		},
		{
			name:      "Only most recent entry considered",
			control:   "Package: guibot\n",
			changelog: "guibot (0.2-1) bionic; urgency=low\n\nguibot (0.1-1) xenial; urgency=low\n",
			want:      Metadata{Package: "guibot", Upstream: "0.2", Revision: "1"},
		},
		{
			name:      "Missing package field",
			control:   "Source: guibot\nArchitecture: all\n",
			changelog: "guibot (0.1-1) xenial; urgency=low\n",
			wantErr:   ErrNoPackageField,
		},
		{
			name:      "Empty package field",
			control:   "Package:   \n",
			changelog: "guibot (0.1-1) xenial; urgency=low\n",
			wantErr:   ErrNoPackageField,
		},
		{
			name:      "Empty changelog",
			control:   "Package: guibot\n",
			changelog: "",
			wantErr:   ErrMalformedChangelog,
		},
		{
			name:      "Malformed changelog head",
			control:   "Package: guibot\n",
			changelog: "guibot 0.1-1 xenial\n",
			wantErr:   ErrMalformedChangelog,
		},
		{
			name:      "Name mismatch",
			control:   "Package: guibot\n",
			changelog: "gui-bender (0.1-1) xenial; urgency=low\n",
			wantErr:   ErrPackageNameMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeSourceTree(t, tt.control, tt.changelog)
			got, err := ParseSourceTree(dir)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSourceTree() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSourceTree() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSourceTree() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArtifactGlob(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
		want string
	}{
		{
			name: "Basic glob",
			meta: Metadata{Package: "guibot", Upstream: "0.1", Revision: "1"},
			want: "guibot_0.1*.deb",
		},
		{
			name: "Revision not part of glob",
			meta: Metadata{Package: "guibot", Upstream: "0.2", Revision: "3"},
			want: "guibot_0.2*.deb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.ArtifactGlob(); got != tt.want {
				t.Errorf("ArtifactGlob() got = %v, want %v", got, tt.want)
			}
		})
	}
}
