package dataset

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the data.yaml descriptor consumed by the trainer.
// The partition fields always name all three fixed partitions, whether or
// not the directory existed at conversion time, and Names is ordered by
// class index.
type Manifest struct {
	Path  string   `yaml:"path"`
	Train string   `yaml:"train"`
	Val   string   `yaml:"val"`
	Test  string   `yaml:"test"`
	Names []string `yaml:"names"`
}

// WriteManifest serializes the manifest to filename, overwriting any
// existing file. root is resolved to an absolute path so the manifest stays
// valid regardless of the trainer's working directory.
func WriteManifest(filename, root string, classes []string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	m := Manifest{
		Path:  abs,
		Train: "train",
		Val:   "val",
		Test:  "test",
		Names: classes,
	}
	b, err := yaml.Marshal(&m)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
