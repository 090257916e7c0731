package voxel

import (
	"errors"
	"fmt"
	"math/rand"
)

// World dimensions: a 4x4x3 tiling of 3x3x3 nodes.
const (
	CellsX = 4
	CellsY = 4
	CellsZ = 3

	SpaceW = CellsX * Side
	SpaceH = CellsY * Side
	SpaceD = CellsZ * Side
)

// Space is one assembled world grid, indexed [x][y][z].
type Space [SpaceW][SpaceH][SpaceD]bool

// MapID selects one node per world cell, x-major then y then z.
type MapID [CellsX * CellsY * CellsZ]uint8

var (
	ErrNodeIndex   = errors.New("voxel: node index out of range")
	ErrSpaceLength = errors.New("voxel: space data must be 12*12*9 bytes")
)

// Assemble tiles the selected nodes into a world space.
func Assemble(table []Cube, id MapID) (Space, error) {
	var s Space
	for cx := 0; cx < CellsX; cx++ {
		for cy := 0; cy < CellsY; cy++ {
			for cz := 0; cz < CellsZ; cz++ {
				n := id[(cx*CellsY+cy)*CellsZ+cz]
				if int(n) >= len(table) {
					return s, fmt.Errorf("%w: %d (table holds %d)", ErrNodeIndex, n, len(table))
				}
				node := table[n]
				for x := 0; x < Side; x++ {
					for y := 0; y < Side; y++ {
						for z := 0; z < Side; z++ {
							s[cx*Side+x][cy*Side+y][cz*Side+z] = node[x][y][z]
						}
					}
				}
			}
		}
	}
	return s, nil
}

// RandomMapID picks a uniform node index for every cell. The table
// must be non-empty; MapID stores uint8 indices, so oversized tables
// are sampled from their first 256 entries only.
func RandomMapID(table []Cube, r *rand.Rand) MapID {
	n := len(table)
	if n > 256 {
		n = 256
	}
	var id MapID
	for i := range id {
		id[i] = uint8(r.Intn(n))
	}
	return id
}

// Flatten returns the row-major 0/1 bytes of the space, suitable for
// persistence as a (12, 12, 9) bool array.
func (s Space) Flatten() []byte {
	out := make([]byte, 0, SpaceW*SpaceH*SpaceD)
	for x := 0; x < SpaceW; x++ {
		for y := 0; y < SpaceH; y++ {
			for z := 0; z < SpaceD; z++ {
				if s[x][y][z] {
					out = append(out, 1)
				} else {
					out = append(out, 0)
				}
			}
		}
	}
	return out
}

// SpaceFromBytes is the inverse of Flatten; any nonzero byte counts as
// occupied.
func SpaceFromBytes(data []byte) (Space, error) {
	var s Space
	if len(data) != SpaceW*SpaceH*SpaceD {
		return s, fmt.Errorf("%w (got %d)", ErrSpaceLength, len(data))
	}
	i := 0
	for x := 0; x < SpaceW; x++ {
		for y := 0; y < SpaceH; y++ {
			for z := 0; z < SpaceD; z++ {
				s[x][y][z] = data[i] != 0
				i++
			}
		}
	}
	return s, nil
}
