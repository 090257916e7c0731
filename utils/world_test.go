package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelmaps/mapgen/npy"
	"github.com/voxelmaps/mapgen/voxel"
)

func TestRunGenerateWorld(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.npy")
	world := filepath.Join(dir, "world.npy")

	require.NoError(t, RunGenerateNodes(nodes))
	require.NoError(t, RunGenerateWorld(nodes, 42, world))

	shape, data, err := npy.LoadBool(world)
	require.NoError(t, err)
	assert.Equal(t, []int{voxel.SpaceW, voxel.SpaceH, voxel.SpaceD}, shape)
	assert.Len(t, data, voxel.SpaceW*voxel.SpaceH*voxel.SpaceD)
}

func TestRunGenerateWorldDeterministic(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.npy")
	require.NoError(t, RunGenerateNodes(nodes))

	a := filepath.Join(dir, "a.npy")
	b := filepath.Join(dir, "b.npy")
	require.NoError(t, RunGenerateWorld(nodes, 7, a))
	require.NoError(t, RunGenerateWorld(nodes, 7, b))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db, "same seed must yield the same world")
}

func TestRunGenerateWorldMissingNodes(t *testing.T) {
	dir := t.TempDir()
	err := RunGenerateWorld(filepath.Join(dir, "absent.npy"), 1, filepath.Join(dir, "w.npy"))
	assert.Error(t, err)
}

func TestLoadSpace(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.npy")
	world := filepath.Join(dir, "world.npy")
	require.NoError(t, RunGenerateNodes(nodes))
	require.NoError(t, RunGenerateWorld(nodes, 3, world))

	space, err := LoadSpace(world)
	require.NoError(t, err)

	_, data, err := npy.LoadBool(world)
	require.NoError(t, err)
	assert.Equal(t, data, space.Flatten())
}

func TestLoadSpaceRejectsWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.npy")
	require.NoError(t, npy.SaveBool(path, []int{12, 12}, make([]byte, 144)))

	_, err := LoadSpace(path)
	assert.Error(t, err)
}
