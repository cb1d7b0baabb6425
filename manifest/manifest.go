// Package manifest discovers the name of the plugin a logger belongs to by
// reading the plugin's plugin.yml descriptor.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileName is the descriptor file looked up by a Discoverer
const FileName = "plugin.yml"

// EnvDir names the directory Default() reads the descriptor from
const EnvDir = "PLUGINLOG_MANIFEST_DIR"

// ErrNoName is returned for a descriptor without a usable name
var ErrNoName = errors.New("manifest: name is missing")

// Manifest is the subset of plugin.yml the logging layer cares about
type Manifest struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Main        string   `yaml:"main"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Authors     []string `yaml:"authors"`
}

// Parse decodes a plugin descriptor. A blank name is an error.
func Parse(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoName
		}
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return nil, ErrNoName
	}
	return &m, nil
}

// Discoverer reads the owner name from plugin.yml at most once.
// The outcome, success or failure, is cached for the life of the value.
type Discoverer struct {
	fsys fs.FS
	path string

	once sync.Once
	name string
	err  error
}

// New returns a Discoverer reading FileName from fsys.
func New(fsys fs.FS) *Discoverer {
	return &Discoverer{fsys: fsys, path: FileName}
}

// OwnerName returns the plugin name declared in the descriptor
func (d *Discoverer) OwnerName() (string, error) {
	d.once.Do(func() {
		d.name, d.err = d.load()
	})
	return d.name, d.err
}

func (d *Discoverer) load() (string, error) {
	if d.fsys == nil {
		return "", fmt.Errorf("manifest: no filesystem to read %s from", d.path)
	}
	f, err := d.fsys.Open(d.path)
	if err != nil {
		return "", fmt.Errorf("manifest: open %s: %w", d.path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.path, err)
	}
	return m.Name, nil
}

// Static is a discoverer for hosts that already know the owner name
type Static string

// OwnerName implements the discoverer contract
func (s Static) OwnerName() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", ErrNoName
	}
	return string(s), nil
}

var (
	defaultOnce       sync.Once
	defaultDiscoverer *Discoverer
)

// Default returns the process discoverer. It reads plugin.yml from the
// directory in $PLUGINLOG_MANIFEST_DIR, or the working directory.
func Default() *Discoverer {
	defaultOnce.Do(func() {
		dir := os.Getenv(EnvDir)
		if dir == "" {
			dir = "."
		}
		defaultDiscoverer = New(os.DirFS(dir))
	})
	return defaultDiscoverer
}
