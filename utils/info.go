package utils

import (
	"fmt"

	"github.com/voxelmaps/mapgen/npy"
)

// RunInfo prints the shape and fill of a stored bool array.
func RunInfo(path string) error {
	shape, data, err := npy.LoadBool(path)
	if err != nil {
		return err
	}
	filled := 0
	for _, b := range data {
		if b != 0 {
			filled++
		}
	}
	fmt.Printf("%s: bool %v, %d/%d filled\n", path, shape, filled, len(data))
	return nil
}
