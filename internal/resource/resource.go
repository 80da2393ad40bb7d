// Package resource loads the images bundled with the binary.
package resource

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
)

// EyeIcon is the logical name of the icon shown in the right-hand tree.
const EyeIcon = "eye.png"

//go:embed assets
var assets embed.FS

// Bundle returns the embedded assets rooted at the assets directory.
func Bundle() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Image is a decoded-and-validated image resource. Data keeps the encoded
// bytes so each frontend can build its own native representation.
type Image struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}

// LoadError reports a missing, unreadable or corrupt resource.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load resource %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader resolves logical names against FS. When Override is set it is read
// from disk instead, whatever name is asked for.
type Loader struct {
	FS       fs.FS
	Override string
}

func NewLoader(override string) *Loader {
	return &Loader{FS: Bundle(), Override: override}
}

func (l *Loader) Load(name string) (*Image, error) {
	data, source, err := l.read(name)
	if err != nil {
		return nil, &LoadError{Name: source, Err: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Name: source, Err: err}
	}

	return &Image{
		Name:   source,
		Data:   data,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func (l *Loader) read(name string) ([]byte, string, error) {
	if l.Override != "" {
		data, err := os.ReadFile(l.Override)
		return data, l.Override, err
	}
	if l.FS == nil {
		return nil, name, fs.ErrNotExist
	}
	data, err := fs.ReadFile(l.FS, name)
	return data, name, err
}
