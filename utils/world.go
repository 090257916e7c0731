package utils

import (
	"fmt"
	"math/rand"

	"github.com/voxelmaps/mapgen/npy"
	"github.com/voxelmaps/mapgen/voxel"
)

// RunGenerateWorld loads a node table, assembles a random 12x12x9
// world from it and writes the world as a bool .npy. The same seed
// always yields the same world.
func RunGenerateWorld(nodesPath string, seed int64, outPath string) error {
	table, err := LoadNodeTable(nodesPath)
	if err != nil {
		return fmt.Errorf("failed to load node table: %w", err)
	}
	if len(table) == 0 {
		return fmt.Errorf("node table %s is empty", nodesPath)
	}
	r := rand.New(rand.NewSource(seed))
	id := voxel.RandomMapID(table, r)
	space, err := voxel.Assemble(table, id)
	if err != nil {
		return err
	}
	shape := []int{voxel.SpaceW, voxel.SpaceH, voxel.SpaceD}
	if err := npy.SaveBool(outPath, shape, space.Flatten()); err != nil {
		return fmt.Errorf("failed to save world: %w", err)
	}
	fmt.Printf("world saved: %dx%dx%d from %d nodes (seed %d)\n",
		voxel.SpaceW, voxel.SpaceH, voxel.SpaceD, len(table), seed)
	return nil
}

// LoadSpace reads a (12, 12, 9) bool .npy back into a world space.
func LoadSpace(path string) (voxel.Space, error) {
	shape, data, err := npy.LoadBool(path)
	if err != nil {
		return voxel.Space{}, err
	}
	if len(shape) != 3 || shape[0] != voxel.SpaceW || shape[1] != voxel.SpaceH || shape[2] != voxel.SpaceD {
		return voxel.Space{}, fmt.Errorf("unexpected world shape %v", shape)
	}
	return voxel.SpaceFromBytes(data)
}
