package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
)

// frameSink persists matched frames. target is the frame's position in the
// target list and names the output file; source is the frame's true position
// in the video.
type frameSink interface {
	Write(target, source int, img image.Image) error
}

// pngSink writes frames as frame_NNNN.png files inside a directory.
type pngSink struct {
	dir      string
	annotate bool
}

func newPNGSink(dir string, annotate bool) (*pngSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}
	return &pngSink{dir: dir, annotate: annotate}, nil
}

func (s *pngSink) Write(target, source int, img image.Image) error {
	imgCtx := gg.NewContextForImage(img)
	if s.annotate {
		stampSourcePosition(imgCtx, source)
	}
	name := filepath.Join(s.dir, fmt.Sprintf("frame_%04d.png", target))
	return gg.SavePNG(name, imgCtx.Image())
}

// stampSourcePosition draws the frame's video position in the bottom-left
// corner, green on a dark box so it reads on any content.
func stampSourcePosition(imgCtx *gg.Context, source int) {
	label := "frame " + strconv.Itoa(source)
	w, h := imgCtx.MeasureString(label)
	x := 8.0
	y := float64(imgCtx.Height()) - 8

	imgCtx.SetColor(color.RGBA{0, 0, 0, 180})
	imgCtx.DrawRectangle(x-4, y-h-4, w+8, h+8)
	imgCtx.Fill()

	imgCtx.SetColor(color.RGBA{50, 205, 50, 255})
	imgCtx.DrawStringAnchored(label, x, y, 0, 0)
}
