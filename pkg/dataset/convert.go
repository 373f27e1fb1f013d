// Package dataset drives the VOC to YOLO conversion over a dataset root:
// discover partitions, build the class vocabulary, encode every annotation
// file, then write the data.yaml manifest.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cyclopcam/logs"
	"github.com/cyclopcam/voc2yolo/pkg/voc"
	"github.com/cyclopcam/voc2yolo/pkg/vocab"
	"github.com/cyclopcam/voc2yolo/pkg/yolo"
)

// Partitions are the fixed dataset subdirectories. A partition that does not
// exist on disk is skipped, but the manifest always lists all three.
var Partitions = []string{"train", "val", "test"}

// ErrRootMissing means the dataset root itself does not exist. Nothing is
// converted or written in this case.
var ErrRootMissing = errors.New("dataset root not found")

// ErrNoClasses means the vocabulary pass found no labels in any partition.
// Encoding and the manifest are skipped entirely, since a dataset with no
// classes cannot be trained on.
var ErrNoClasses = errors.New("no classes found in any partition")

// Stats summarizes one conversion run. Counters cover the encode pass;
// the vocabulary pass only logs.
type Stats struct {
	FilesScanned   int // annotation files discovered in the encode pass
	FilesConverted int // label files written
	FilesSkipped   int // files dropped (parse failure or missing size)
	ObjectsEncoded int // label lines written
	ObjectsSkipped int // objects dropped (missing name or unknown label)
}

// Converter converts one dataset root. Create it, call Run once, discard it.
type Converter struct {
	Log          logs.Log
	Root         string
	ManifestPath string // where data.yaml goes
}

func NewConverter(logger logs.Log, root, manifestPath string) *Converter {
	return &Converter{
		Log:          logger,
		Root:         root,
		ManifestPath: manifestPath,
	}
}

// Run executes the pipeline. The two fatal conditions are a missing dataset
// root (ErrRootMissing) and an empty vocabulary (ErrNoClasses); every other
// failure is scoped to a single file or object, logged, and skipped, so one
// bad annotation never aborts the run.
func (c *Converter) Run() (*Stats, error) {
	if st, err := os.Stat(c.Root); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %v", ErrRootMissing, c.Root)
	}

	// Partitions that actually exist under the root.
	parts := []string{}
	for _, p := range Partitions {
		dir := filepath.Join(c.Root, p)
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			c.Log.Warnf("Partition directory %v not found. Skipping.", dir)
			continue
		}
		parts = append(parts, p)
	}

	// Pass 1: harvest labels from every partition.
	builder := vocab.NewBuilder()
	for _, p := range parts {
		if err := c.scanLabels(filepath.Join(c.Root, p), builder); err != nil {
			return nil, err
		}
	}
	if builder.Len() == 0 {
		return nil, ErrNoClasses
	}
	v := builder.Freeze()
	c.Log.Infof("Classes: %v", strings.Join(v.Classes(), ", "))

	// Pass 2: encode. The vocabulary is frozen from here on.
	stats := &Stats{}
	for _, p := range parts {
		if err := c.encodeDir(filepath.Join(c.Root, p), v, stats); err != nil {
			return nil, err
		}
	}

	if err := WriteManifest(c.ManifestPath, c.Root, v.Classes()); err != nil {
		return nil, err
	}
	c.Log.Infof("Wrote manifest %v", c.ManifestPath)
	c.Log.Infof("Converted %v/%v files (%v skipped), %v objects encoded, %v objects skipped",
		stats.FilesConverted, stats.FilesScanned, stats.FilesSkipped, stats.ObjectsEncoded, stats.ObjectsSkipped)
	return stats, nil
}

// scanXML recursively finds annotation files under dir. Discovery order is
// whatever WalkDir yields; nothing downstream depends on it, because class
// indices come from sorting the label set.
func scanXML(dir string) ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".xml" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// scanLabels is the vocabulary pass over one partition.
func (c *Converter) scanLabels(dir string, builder *vocab.Builder) error {
	files, err := scanXML(dir)
	if err != nil {
		return err
	}
	c.Log.Infof("Scanning %v annotation files in %v", len(files), dir)
	for _, file := range files {
		ann, err := voc.ParseFile(file)
		if err != nil {
			c.Log.Errorf("Failed to parse %v: %v", file, err)
			continue
		}
		for _, obj := range ann.Objects {
			name := vocab.Normalize(obj.Name)
			if name == "" {
				c.Log.Warnf("Object without <name> in %v", file)
				continue
			}
			builder.Add(name)
			c.Log.Infof("Found class %v in %v", name, file)
		}
		// Annotations are expected to sit next to their image.
		img := strings.TrimSuffix(file, ".xml") + ".jpg"
		if _, err := os.Stat(img); err != nil {
			c.Log.Warnf("No matching image for %v", file)
		}
	}
	return nil
}

// encodeDir is the encode pass over one partition.
func (c *Converter) encodeDir(dir string, v *vocab.Vocabulary, stats *Stats) error {
	files, err := scanXML(dir)
	if err != nil {
		return err
	}
	for _, file := range files {
		stats.FilesScanned++
		ann, err := voc.ParseFile(file)
		if err != nil {
			c.Log.Errorf("Failed to parse %v: %v", file, err)
			stats.FilesSkipped++
			continue
		}
		if !ann.HasSize() {
			c.Log.Warnf("Missing image size in %v. Skipping file.", file)
			stats.FilesSkipped++
			continue
		}
		boxes := []yolo.Box{}
		for _, obj := range ann.Objects {
			name := vocab.Normalize(obj.Name)
			if name == "" {
				c.Log.Warnf("Object without <name> in %v", file)
				stats.ObjectsSkipped++
				continue
			}
			class, ok := v.Index(name)
			if !ok {
				// Can only happen if the file set changed between passes.
				c.Log.Warnf("Class %v in %v is not in the vocabulary. Skipping object.", name, file)
				stats.ObjectsSkipped++
				continue
			}
			if obj.Box == nil {
				c.Log.Warnf("Object %v in %v has no <bndbox>. Skipping object.", name, file)
				stats.ObjectsSkipped++
				continue
			}
			boxes = append(boxes, yolo.Encode(*obj.Box, class, ann.Width, ann.Height))
		}
		out := strings.TrimSuffix(file, ".xml") + ".txt"
		if err := yolo.WriteLabels(out, boxes); err != nil {
			return fmt.Errorf("error writing %v: %w", out, err)
		}
		stats.FilesConverted++
		stats.ObjectsEncoded += len(boxes)
	}
	return nil
}
