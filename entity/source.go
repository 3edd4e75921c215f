package entity

// Source describes where the guibot source tree comes from when it isn't
// already checked out: a git repo to clone or a tarball URL to unpack.
// An empty Source means the tree is expected to exist.
type Source struct {
	Repo string `yaml:"repo"`
	Url  string `yaml:"url"`
}
