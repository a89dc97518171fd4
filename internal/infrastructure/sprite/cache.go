// Package sprite loads character sheets and resolves animation frames to
// drawable images.
package sprite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cache loads images from a filesystem and keeps them by path until unloaded
type Cache struct {
	fsys   fs.FS
	images map[string]*ebiten.Image
}

// NewCache creates an empty cache reading from fsys
func NewCache(fsys fs.FS) *Cache {
	return &Cache{
		fsys:   fsys,
		images: make(map[string]*ebiten.Image),
	}
}

// Load returns the image at path, decoding it on first use
func (c *Cache) Load(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	if img, ok := c.images[path]; ok {
		return img, nil
	}

	data, err := fs.ReadFile(c.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	c.images[path] = img
	return img, nil
}

// IsLoaded returns true if path is cached
func (c *Cache) IsLoaded(path string) bool {
	_, ok := c.images[path]
	return ok
}

// Unload drops the image at path. Unloading a path that is not loaded is a
// no-op.
func (c *Cache) Unload(path string) {
	img, ok := c.images[path]
	if !ok {
		log.Printf("sprite: not loaded, nothing to unload: %s", path)
		return
	}
	img.Deallocate()
	delete(c.images, path)
}

// Len returns the number of cached images
func (c *Cache) Len() int {
	return len(c.images)
}
