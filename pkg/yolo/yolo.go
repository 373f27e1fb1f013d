// Package yolo encodes absolute pixel boxes into YOLO label format:
// one line per object, "class x_center y_center width height", with the
// four geometric values normalized to [0,1] by the image dimensions.
package yolo

import (
	"os"
	"strconv"
	"strings"

	"github.com/cyclopcam/voc2yolo/pkg/voc"
)

// Box is one encoded label line.
type Box struct {
	Class   int
	XCenter float64
	YCenter float64
	Width   float64
	Height  float64
}

// Encode converts an absolute pixel box into the relative center/size form:
//
//	x_center = (xmin + xmax) / 2 / image_width
//	y_center = (ymin + ymax) / 2 / image_height
//	width    = (xmax - xmin) / image_width
//	height   = (ymax - ymin) / image_height
//
// imageWidth and imageHeight must be positive; validating them is the
// caller's job. Degenerate boxes (xmax <= xmin) are passed through
// unvalidated, matching the leniency of the rest of the pipeline.
func Encode(b voc.Box, class, imageWidth, imageHeight int) Box {
	return Box{
		Class:   class,
		XCenter: float64(b.Xmin+b.Xmax) / 2 / float64(imageWidth),
		YCenter: float64(b.Ymin+b.Ymax) / 2 / float64(imageHeight),
		Width:   float64(b.Xmax-b.Xmin) / float64(imageWidth),
		Height:  float64(b.Ymax-b.Ymin) / float64(imageHeight),
	}
}

// String renders the label line. Floats use shortest round-trip formatting,
// so encoding the same box twice always yields identical bytes.
func (b Box) String() string {
	fields := []string{
		strconv.Itoa(b.Class),
		strconv.FormatFloat(b.XCenter, 'g', -1, 64),
		strconv.FormatFloat(b.YCenter, 'g', -1, 64),
		strconv.FormatFloat(b.Width, 'g', -1, 64),
		strconv.FormatFloat(b.Height, 'g', -1, 64),
	}
	return strings.Join(fields, " ")
}

// WriteLabels writes one line per box to filename, in slice order,
// overwriting any existing file. Zero boxes still writes an (empty) file,
// so a stale label file from a previous run can never survive a re-convert.
func WriteLabels(filename string, boxes []Box) error {
	sb := strings.Builder{}
	for _, b := range boxes {
		sb.WriteString(b.String())
		sb.WriteString("\n")
	}
	return os.WriteFile(filename, []byte(sb.String()), 0644)
}
