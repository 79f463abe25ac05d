package paths

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ID names the on-disk state of one build: name-version-release.
type ID string

func NewID(name, version, release string) ID {
	return ID(fmt.Sprintf("%s-%s-%s", name, version, release))
}

func (id ID) String() string {
	return string(id)
}

// Mapping pairs a directory on the host with where it appears in the
// sandbox. Host is empty for guest-only directories.
type Mapping struct {
	Name  string
	Host  string
	Guest string
}

// Paths resolves every directory a build job uses, on both sides of the
// sandbox.
type Paths struct {
	id        ID
	hostRoot  string
	guestRoot string
	recipeDir string
}

// New canonicalizes the roots, resolves the recipe directory and makes sure
// the host side of every per-job directory exists.
func New(id ID, recipePath, hostRoot, guestRoot string) (*Paths, error) {
	recipeDir, err := canonicalize(filepath.Dir(recipePath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipe directory: %w", err)
	}
	if err := os.MkdirAll(hostRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create host root: %w", err)
	}
	root, err := canonicalize(hostRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve host root: %w", err)
	}

	p := Layout(id, recipeDir, root, guestRoot)
	for _, m := range []Mapping{p.Rootfs(), p.Artefacts(), p.Build(), p.Ccache(), p.Upstreams()} {
		if err := os.MkdirAll(m.Host, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", m.Name, err)
		}
	}
	return p, nil
}

// Layout computes the paths without touching the filesystem. Roots are used
// as given.
func Layout(id ID, recipeDir, hostRoot, guestRoot string) *Paths {
	return &Paths{
		id:        id,
		hostRoot:  filepath.Clean(hostRoot),
		guestRoot: path.Clean(guestRoot),
		recipeDir: filepath.Clean(recipeDir),
	}
}

func canonicalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func (p *Paths) ID() ID {
	return p.id
}

func (p *Paths) Rootfs() Mapping {
	return Mapping{
		Name:  "rootfs",
		Host:  filepath.Join(p.hostRoot, "root", string(p.id)),
		Guest: "/",
	}
}

func (p *Paths) Artefacts() Mapping {
	return Mapping{
		Name:  "artefacts",
		Host:  filepath.Join(p.hostRoot, "artefacts", string(p.id)),
		Guest: path.Join(p.guestRoot, "artefacts"),
	}
}

func (p *Paths) Build() Mapping {
	return Mapping{
		Name:  "build",
		Host:  filepath.Join(p.hostRoot, "build", string(p.id)),
		Guest: path.Join(p.guestRoot, "build"),
	}
}

// Ccache is shared between jobs.
func (p *Paths) Ccache() Mapping {
	return Mapping{
		Name:  "ccache",
		Host:  filepath.Join(p.hostRoot, "ccache"),
		Guest: path.Join(p.guestRoot, "ccache"),
	}
}

// Upstreams is shared between jobs.
func (p *Paths) Upstreams() Mapping {
	return Mapping{
		Name:  "upstreams",
		Host:  filepath.Join(p.hostRoot, "upstreams"),
		Guest: path.Join(p.guestRoot, "sourcedir"),
	}
}

func (p *Paths) Recipe() Mapping {
	return Mapping{
		Name:  "recipe",
		Host:  p.recipeDir,
		Guest: path.Join(p.guestRoot, "recipe"),
	}
}

// Install only exists inside the sandbox.
func (p *Paths) Install() Mapping {
	return Mapping{
		Name:  "install",
		Guest: path.Join(p.guestRoot, "install"),
	}
}

// All returns every mapping in display order.
func (p *Paths) All() []Mapping {
	return []Mapping{p.Rootfs(), p.Artefacts(), p.Build(), p.Ccache(), p.Upstreams(), p.Recipe(), p.Install()}
}

// Mounts returns the mappings that are bind mounted into the sandbox: every
// mapping with a host side, except the root filesystem itself.
func (p *Paths) Mounts() []Mapping {
	var mounts []Mapping
	for _, m := range p.All() {
		if m.Host == "" || m.Guest == "/" {
			continue
		}
		mounts = append(mounts, m)
	}
	return mounts
}

// GuestHostPath returns where the guest side of m lives on the host, inside
// the job's root filesystem. For a rootfs of /var/cache/tuirun/root/nano-8.0-1
// and a guest path of /mason/build it is
// /var/cache/tuirun/root/nano-8.0-1/mason/build.
func (p *Paths) GuestHostPath(m Mapping) string {
	relative := strings.TrimPrefix(m.Guest, "/")
	return filepath.Join(p.Rootfs().Host, filepath.FromSlash(relative))
}
