// Package capture saves rendered frames as PNG screenshots.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// Capturer writes screenshots into a directory.
type Capturer struct {
	fs     afero.Fs
	dir    string
	prefix string
	now    func() time.Time
}

// New creates a capturer writing prefix_<timestamp>.png files under dir.
func New(fs afero.Fs, dir, prefix string) *Capturer {
	return &Capturer{fs: fs, dir: dir, prefix: prefix, now: time.Now}
}

// Dir returns the output directory.
func (c *Capturer) Dir() string {
	return c.dir
}

// FromPixels builds an image from bottom-up RGBA rows as returned by
// glReadPixels, flipping it so row 0 is the top.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SavePixels flips and saves raw frame buffer pixels.
func (c *Capturer) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.Save(img)
}

// Save encodes img as PNG and returns the file path.
func (c *Capturer) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := c.Filename()
	f, err := c.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}

// Filename returns the path the next screenshot would be written to.
func (c *Capturer) Filename() string {
	name := fmt.Sprintf("%s_%s.png", c.prefix, c.now().Format("2006-01-02_15-04-05"))
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}
