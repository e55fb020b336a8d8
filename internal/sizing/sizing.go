// Package sizing estimates the rendered width of a marquee sequence on the server, so
// the first paint already mounts enough copies before the browser measures for real.
package sizing

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/marquee"
)

// Estimator measures items: text with a fixed-metric font scaled to the item height,
// images from their encoded dimensions.
type Estimator struct {
	assets  fs.FS
	face    font.Face
	faceH   float64
	workers int
}

// New returns an estimator resolving image sources against assets. assets may be nil,
// in which case every image is sized as a square.
func New(assets fs.FS) *Estimator {
	return &Estimator{
		assets:  assets,
		face:    basicfont.Face7x13,
		faceH:   float64(basicfont.Face7x13.Height),
		workers: 4,
	}
}

// TextWidth is the width of s set at height px.
func (e *Estimator) TextWidth(s string, height float64) float64 {
	adv := font.MeasureString(e.face, s)
	return float64(adv.Ceil()) * height / e.faceH
}

// ImageSize decodes the dimensions of the image at src. Sources outside the asset
// tree, such as absolute URLs, report an error.
func (e *Estimator) ImageSize(src string) (w, h int, err error) {
	if e.assets == nil || strings.Contains(src, "://") || strings.HasPrefix(src, "//") {
		return 0, 0, fmt.Errorf("image %q is not a local asset", src)
	}
	name := strings.TrimPrefix(src, "/")
	f, err := e.assets.Open(name)
	if err != nil {
		return 0, 0, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", name, err)
	}
	return cfg.Width, cfg.Height, nil
}

// ItemWidths returns each item's width at height px. Images are probed concurrently;
// an image that cannot be read settles as a square, the same way a failed load still
// releases the browser's measurement.
func (e *Estimator) ItemWidths(ctx context.Context, items []marquee.Item, height float64) ([]float64, error) {
	widths := make([]float64, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, it := range items {
		if !it.IsImage() {
			widths[i] = e.TextWidth(it.Node, height)
			continue
		}
		if it.Width > 0 && it.Height > 0 {
			widths[i] = float64(it.Width) * height / float64(it.Height)
			continue
		}
		i, it := i, it
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, h, err := e.ImageSize(it.Src)
			if err != nil || h == 0 {
				widths[i] = height
				return nil
			}
			widths[i] = float64(w) * height / float64(h)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return widths, nil
}

// SequenceWidth is the width of one pass of items, each followed by gap.
func (e *Estimator) SequenceWidth(ctx context.Context, items []marquee.Item, height, gap float64) (float64, error) {
	widths, err := e.ItemWidths(ctx, items, height)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, w := range widths {
		total += w + gap
	}
	return total, nil
}

type staticSurface struct {
	container, sequence float64
}

func (s staticSurface) ContainerWidth() float64 { return s.container }
func (s staticSurface) SequenceWidth() float64  { return s.sequence }

// Layout estimates the loop's layout for a container of the given width.
func (e *Estimator) Layout(ctx context.Context, items []marquee.Item, cfg marquee.Config, containerWidth float64) (marquee.Layout, error) {
	seq, err := e.SequenceWidth(ctx, items, cfg.LogoHeight, cfg.Gap)
	if err != nil {
		return marquee.Layout{}, err
	}
	l, _ := marquee.NewMeasurer(staticSurface{container: containerWidth, sequence: seq}).Measure()
	return l, nil
}
