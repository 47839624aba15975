// Package asset resolves named images for the renderer. Missing or broken
// files are not errors: the renderer draws a placeholder instead.
package asset

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register decoders for image.Decode
	_ "image/png"
	"io"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// extensions are tried in order for a bare image name
var extensions = []string{".png", ".jpg"}

// Provider loads images lazily by name and remembers failures so a missing
// file is looked up only once
type Provider struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	missing map[string]bool
	logger  *log.Logger

	toImage func(image.Image) *ebiten.Image
}

// NewProvider creates a provider over fsys. A nil fsys serves no images.
func NewProvider(fsys fs.FS, logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Provider{
		fsys:    fsys,
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
		logger:  logger,
		toImage: ebiten.NewImageFromImage,
	}
}

// Image returns the named image and whether it is ready to draw
func (p *Provider) Image(name string) (*ebiten.Image, bool) {
	if name == "" || p.fsys == nil || p.missing[name] {
		return nil, false
	}
	if img, ok := p.images[name]; ok {
		return img, true
	}

	src, err := p.decode(name)
	if err != nil {
		p.logger.Debug("asset not ready, using fallback", "name", name, "err", err)
		p.missing[name] = true
		return nil, false
	}

	img := p.toImage(src)
	p.images[name] = img
	return img, true
}

// Ready reports whether the named image can be drawn
func (p *Provider) Ready(name string) bool {
	_, ok := p.Image(name)
	return ok
}

func (p *Provider) decode(name string) (image.Image, error) {
	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range extensions {
			candidates = append(candidates, name+ext)
		}
	}

	var lastErr error
	for _, c := range candidates {
		f, err := p.fsys.Open(c)
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", c, err)
		}
		return img, nil
	}
	return nil, lastErr
}
