package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPNGSink_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := newPNGSink(dir, false)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewPNGSink_ExistingDirectory(t *testing.T) {
	_, err := newPNGSink(t.TempDir(), false)
	assert.NoError(t, err)
}

func TestPNGSink_WritesZeroPaddedNames(t *testing.T) {
	dir := t.TempDir()
	sink, err := newPNGSink(dir, false)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, sink.Write(0, 0, img))
	require.NoError(t, sink.Write(7, 123, img))

	for _, name := range []string{"frame_0000.png", "frame_0007.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err, name)
		_, err = png.Decode(f)
		f.Close()
		assert.NoError(t, err, name)
	}
}

func TestPNGSink_Annotate(t *testing.T) {
	dir := t.TempDir()
	sink, err := newPNGSink(dir, true)
	require.NoError(t, err)

	// A fully zeroed image; any non-zero pixel after the round trip came
	// from the stamp.
	require.NoError(t, sink.Write(0, 42, image.NewRGBA(image.Rect(0, 0, 64, 64))))

	f, err := os.Open(filepath.Join(dir, "frame_0000.png"))
	require.NoError(t, err)
	defer f.Close()
	out, err := png.Decode(f)
	require.NoError(t, err)

	stamped := false
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !stamped; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, g, b, a := out.At(x, y).RGBA(); r|g|b|a != 0 {
				stamped = true
				break
			}
		}
	}
	assert.True(t, stamped, "annotation left no mark on the frame")
}

func TestPNGSink_NoAnnotationLeavesFrameUntouched(t *testing.T) {
	dir := t.TempDir()
	sink, err := newPNGSink(dir, false)
	require.NoError(t, err)

	require.NoError(t, sink.Write(0, 42, image.NewRGBA(image.Rect(0, 0, 16, 16))))

	f, err := os.Open(filepath.Join(dir, "frame_0000.png"))
	require.NoError(t, err)
	defer f.Close()
	out, err := png.Decode(f)
	require.NoError(t, err)

	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := out.At(x, y).RGBA()
			require.Zero(t, r|g|b|a, "pixel (%d,%d) was modified", x, y)
		}
	}
}
