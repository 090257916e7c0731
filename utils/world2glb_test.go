package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWorld2GLB(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.npy")
	world := filepath.Join(dir, "world.npy")
	glb := filepath.Join(dir, "world.glb")

	require.NoError(t, RunGenerateNodes(nodes))
	require.NoError(t, RunGenerateWorld(nodes, 42, world))
	require.NoError(t, RunWorld2GLB(world, glb))

	data, err := os.ReadFile(glb)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "glTF", string(data[:4]))
}

func TestRunWorld2GLBMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := RunWorld2GLB(filepath.Join(dir, "absent.npy"), filepath.Join(dir, "out.glb"))
	assert.Error(t, err)
}
