package packages

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
)

func TestParseInstalled(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    []string
		wantErr bool
	}{
		{
			name: "Apt list output",
			output: `Listing...
devscripts/xenial,now 2.16.2ubuntu3 amd64 [installed]
equivs/xenial,now 2.0.9 all [installed]
`,
			want: []string{"devscripts", "equivs"},
		},
		{
			name:   "Header only",
			output: "Listing...\n",
		},
		{
			name:    "Malformed line",
			output:  "Listing...\n/xenial,now 1.0 all [installed]\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInstalled(tt.output, Apt{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseInstalled() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			want := mapset.NewSet[string]()
			for _, pkg := range tt.want {
				want.Add(pkg)
			}
			if !got.Equal(want) {
				t.Errorf("parseInstalled() got = %v, want %v", got, want)
			}
		})
	}
}

func TestForDistro(t *testing.T) {
	tests := []struct {
		name    string
		distro  string
		wantErr bool
	}{
		{
			name:   "Ubuntu resolves to apt",
			distro: "ubuntu",
		},
		{
			name:   "Debian resolves to apt",
			distro: "debian",
		},
		{
			name:    "Unknown distro",
			distro:  "fedora",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ForDistro(tt.distro)
			if (err != nil) != tt.wantErr {
				t.Errorf("ForDistro() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
