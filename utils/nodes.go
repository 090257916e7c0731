package utils

import (
	"fmt"
	"os"

	"github.com/voxelmaps/mapgen/npy"
	"github.com/voxelmaps/mapgen/voxel"
)

// GenerateNodes expands the seed patterns, dedups the orbits and
// writes the node table as a (U, 3, 3, 3) bool .npy. It produces no
// output besides the file; the batch generator must stay silent on
// success.
func GenerateNodes(outPath string) (int, error) {
	table := voxel.NodeTable()
	shape := []int{len(table), voxel.Side, voxel.Side, voxel.Side}
	if err := npy.SaveBool(outPath, shape, voxel.FlattenCubes(table)); err != nil {
		return 0, fmt.Errorf("failed to save node table: %w", err)
	}
	return len(table), nil
}

// RunGenerateNodes is GenerateNodes with a result line for the
// operator CLI.
func RunGenerateNodes(outPath string) error {
	nodes, err := GenerateNodes(outPath)
	if err != nil {
		return err
	}
	report(outPath, nodes)
	return nil
}

// RunGenerateNodesZstd is RunGenerateNodes with a zstd-compressed
// container.
func RunGenerateNodesZstd(outPath string) error {
	table := voxel.NodeTable()
	shape := []int{len(table), voxel.Side, voxel.Side, voxel.Side}
	if err := npy.SaveBoolZstd(outPath, shape, voxel.FlattenCubes(table)); err != nil {
		return fmt.Errorf("failed to save node table: %w", err)
	}
	report(outPath, len(table))
	return nil
}

func report(path string, nodes int) {
	if fi, err := os.Stat(path); err == nil {
		fmt.Printf("node table saved: %d nodes (%d bytes)\n", nodes, fi.Size())
	} else {
		fmt.Printf("node table saved: %d nodes\n", nodes)
	}
}

// LoadNodeTable reads a (U, 3, 3, 3) bool .npy back into cubes.
func LoadNodeTable(path string) ([]voxel.Cube, error) {
	shape, data, err := npy.LoadBool(path)
	if err != nil {
		return nil, err
	}
	if len(shape) != 4 || shape[1] != voxel.Side || shape[2] != voxel.Side || shape[3] != voxel.Side {
		return nil, fmt.Errorf("unexpected node table shape %v", shape)
	}
	cubes := make([]voxel.Cube, shape[0])
	for i := range cubes {
		c, err := voxel.CubeFromBytes(data[i*voxel.PatternLen : (i+1)*voxel.PatternLen])
		if err != nil {
			return nil, err
		}
		cubes[i] = c
	}
	return cubes, nil
}
