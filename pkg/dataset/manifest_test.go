package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readManifest(t *testing.T, filename string) *Manifest {
	t.Helper()
	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	m := &Manifest{}
	require.NoError(t, yaml.Unmarshal(b, m))
	return m
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "data.yaml")
	require.NoError(t, WriteManifest(filename, dir, []string{"bicycle", "car", "person"}))

	m := readManifest(t, filename)
	require.True(t, filepath.IsAbs(m.Path))
	require.Equal(t, "train", m.Train)
	require.Equal(t, "val", m.Val)
	require.Equal(t, "test", m.Test)
	// Position in the sequence is the class index.
	require.Equal(t, []string{"bicycle", "car", "person"}, m.Names)

	// Overwrites an existing manifest.
	require.NoError(t, WriteManifest(filename, dir, []string{"dog"}))
	require.Equal(t, []string{"dog"}, readManifest(t, filename).Names)
}
