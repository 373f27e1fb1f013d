// Package voc reads Pascal VOC style annotation files: one XML file per
// image, declaring the image dimensions and zero or more labeled
// bounding boxes in absolute pixel coordinates.
package voc

import (
	"encoding/xml"
	"os"
)

// Box is an axis-aligned bounding box in absolute pixel coordinates.
// The VOC convention is xmin < xmax and ymin < ymax.
type Box struct {
	Xmin int `xml:"xmin"`
	Ymin int `xml:"ymin"`
	Xmax int `xml:"xmax"`
	Ymax int `xml:"ymax"`
}

// Object is one labeled region inside an annotation.
// Box is nil when the <bndbox> element is absent, so that a missing box is
// distinguishable from a box at the origin.
type Object struct {
	Name string `xml:"name"`
	Box  *Box   `xml:"bndbox"`
}

// Annotation is the parsed content of one VOC XML file.
type Annotation struct {
	XMLName xml.Name `xml:"annotation"`
	Width   int      `xml:"size>width"`
	Height  int      `xml:"size>height"`
	Objects []Object `xml:"object"`
}

// HasSize reports whether the annotation declares usable image dimensions.
// A missing <size> element decodes to zero, so callers that need geometry
// must check this before normalizing boxes.
func (a *Annotation) HasSize() bool {
	return a.Width > 0 && a.Height > 0
}

// ParseFile parses a single annotation file.
// The only failure mode is malformed XML (or an unreadable file); missing
// sub-elements are left as zero values for the caller to judge, because the
// vocabulary pass harvests labels from files even when <size> is absent.
func ParseFile(filename string) (*Annotation, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ann := &Annotation{}
	if err := xml.NewDecoder(f).Decode(ann); err != nil {
		return nil, err
	}
	return ann, nil
}
