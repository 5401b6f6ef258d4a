package postprocess

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used by Resize.
type Filter string

const (
	// Nearest keeps hard pixel edges; use it to enlarge small renders.
	Nearest Filter = "nearest"
	// Bilinear is a cheap smooth filter.
	Bilinear Filter = "bilinear"
	// CatmullRom approximates Lanczos; use it for thumbnails.
	CatmullRom Filter = "catmullrom"
)

// ParseFilter maps a config or flag value to a Filter. Empty means Nearest.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if _, err := f.scaler(); err != nil {
		return "", err
	}
	if f == "" {
		f = Nearest
	}
	return f, nil
}

func (f Filter) scaler() (draw.Scaler, error) {
	switch f {
	case Nearest, "":
		return draw.NearestNeighbor, nil
	case Bilinear:
		return draw.BiLinear, nil
	case CatmullRom:
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("postprocess: unknown filter %q", f)
}

// Resize returns img scaled to w×h. The source is returned unchanged when
// it already has that size.
func Resize(img *image.NRGBA, w, h int, f Filter) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("postprocess: invalid size %dx%d", w, h)
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img, nil
	}

	s, err := f.scaler()
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	s.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// Scale resizes img by an integer or fractional factor.
func Scale(img *image.NRGBA, factor float64, f Filter) (*image.NRGBA, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("postprocess: invalid scale %v", factor)
	}
	b := img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Resize(img, w, h, f)
}
