package yolo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cyclopcam/voc2yolo/pkg/voc"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	// A 40x60 box at (10,20) in a 100x200 image.
	b := Encode(voc.Box{Xmin: 10, Ymin: 20, Xmax: 50, Ymax: 80}, 2, 100, 200)
	require.Equal(t, 2, b.Class)
	require.Equal(t, 0.3, b.XCenter)
	require.Equal(t, 0.25, b.YCenter)
	require.Equal(t, 0.4, b.Width)
	require.Equal(t, 0.3, b.Height)
	require.Equal(t, "2 0.3 0.25 0.4 0.3", b.String())
}

// Rescaling the encoded box by the image dimensions must recover the
// original pixel coordinates.
func TestRoundTrip(t *testing.T) {
	boxes := []voc.Box{
		{Xmin: 0, Ymin: 0, Xmax: 1, Ymax: 1},
		{Xmin: 3, Ymin: 7, Xmax: 640, Ymax: 480},
		{Xmin: 123, Ymin: 45, Xmax: 511, Ymax: 333},
	}
	imgW, imgH := 640, 480
	for _, src := range boxes {
		enc := Encode(src, 0, imgW, imgH)
		xmin := (enc.XCenter - enc.Width/2) * float64(imgW)
		xmax := (enc.XCenter + enc.Width/2) * float64(imgW)
		ymin := (enc.YCenter - enc.Height/2) * float64(imgH)
		ymax := (enc.YCenter + enc.Height/2) * float64(imgH)
		require.InDelta(t, float64(src.Xmin), xmin, 1e-9)
		require.InDelta(t, float64(src.Xmax), xmax, 1e-9)
		require.InDelta(t, float64(src.Ymin), ymin, 1e-9)
		require.InDelta(t, float64(src.Ymax), ymax, 1e-9)
	}
}

func TestWriteLabels(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "labels.txt")
	boxes := []Box{
		{Class: 0, XCenter: 0.5, YCenter: 0.5, Width: 0.25, Height: 0.125},
		{Class: 3, XCenter: 0.1, YCenter: 0.2, Width: 0.3, Height: 0.4},
	}
	require.NoError(t, WriteLabels(filename, boxes))
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Equal(t, "0 0.5 0.5 0.25 0.125\n3 0.1 0.2 0.3 0.4\n", string(content))

	// Overwrite with zero boxes leaves an empty file, not the old content.
	require.NoError(t, WriteLabels(filename, nil))
	content, err = os.ReadFile(filename)
	require.NoError(t, err)
	require.Equal(t, "", string(content))
}
