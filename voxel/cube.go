package voxel

import (
	"errors"
	"fmt"
)

// Side is the edge length of a map node.
const Side = 3

// PatternLen is the length of a flattened node pattern.
const PatternLen = Side * Side * Side

// Cube is one 3x3x3 occupancy block, indexed [x][y][z] so that the
// row-major flattening matches the seed pattern strings (x outermost).
// Cubes are plain values; transforms return new cubes and never mutate
// their input.
type Cube [Side][Side][Side]bool

var (
	ErrPatternLength = errors.New("voxel: pattern must be 27 characters")
	ErrPatternDigit  = errors.New("voxel: pattern may contain only '0' and '1'")
	ErrCubeLength    = errors.New("voxel: cube data must be 27 bytes")
)

// ParseCube converts a 27-character '0'/'1' string into a cube.
func ParseCube(pattern string) (Cube, error) {
	var c Cube
	if len(pattern) != PatternLen {
		return c, fmt.Errorf("%w (got %d)", ErrPatternLength, len(pattern))
	}
	for i := 0; i < PatternLen; i++ {
		switch pattern[i] {
		case '0':
		case '1':
			c[i/9][(i/3)%3][i%3] = true
		default:
			return c, fmt.Errorf("%w (found %q at index %d)", ErrPatternDigit, pattern[i], i)
		}
	}
	return c, nil
}

// CubeFromBytes rebuilds a cube from 27 row-major bytes, treating any
// nonzero byte as occupied.
func CubeFromBytes(data []byte) (Cube, error) {
	var c Cube
	if len(data) != PatternLen {
		return c, fmt.Errorf("%w (got %d)", ErrCubeLength, len(data))
	}
	for i, b := range data {
		if b != 0 {
			c[i/9][(i/3)%3][i%3] = true
		}
	}
	return c, nil
}

func mustCube(pattern string) Cube {
	c, err := ParseCube(pattern)
	if err != nil {
		panic(err)
	}
	return c
}

// Bytes returns the row-major flattening as 0/1 bytes.
func (c Cube) Bytes() [PatternLen]byte {
	var out [PatternLen]byte
	for x := 0; x < Side; x++ {
		for y := 0; y < Side; y++ {
			for z := 0; z < Side; z++ {
				if c[x][y][z] {
					out[(x*Side+y)*Side+z] = 1
				}
			}
		}
	}
	return out
}

// Pattern is the inverse of ParseCube.
func (c Cube) Pattern() string {
	b := c.Bytes()
	out := make([]byte, PatternLen)
	for i, v := range b {
		out[i] = '0' + v
	}
	return string(out)
}

// Transform maps a cube to a new cube.
type Transform func(Cube) Cube

// Identity returns the cube unchanged.
func Identity(c Cube) Cube { return c }

// MirrorLR mirrors left-right (flips axis 1).
func MirrorLR(c Cube) Cube {
	var out Cube
	for x := 0; x < Side; x++ {
		for y := 0; y < Side; y++ {
			for z := 0; z < Side; z++ {
				out[x][y][z] = c[x][Side-1-y][z]
			}
		}
	}
	return out
}

// MirrorUD mirrors up-down (flips axis 0).
func MirrorUD(c Cube) Cube {
	var out Cube
	for x := 0; x < Side; x++ {
		for y := 0; y < Side; y++ {
			for z := 0; z < Side; z++ {
				out[x][y][z] = c[Side-1-x][y][z]
			}
		}
	}
	return out
}

// SwapYZ swaps axes 1 and 2.
func SwapYZ(c Cube) Cube {
	var out Cube
	for x := 0; x < Side; x++ {
		for y := 0; y < Side; y++ {
			for z := 0; z < Side; z++ {
				out[x][y][z] = c[x][z][y]
			}
		}
	}
	return out
}

// SwapXY swaps axes 0 and 1.
func SwapXY(c Cube) Cube {
	var out Cube
	for x := 0; x < Side; x++ {
		for y := 0; y < Side; y++ {
			for z := 0; z < Side; z++ {
				out[x][y][z] = c[y][x][z]
			}
		}
	}
	return out
}

// SwapXZ swaps axes 0 and 2.
func SwapXZ(c Cube) Cube {
	var out Cube
	for x := 0; x < Side; x++ {
		for y := 0; y < Side; y++ {
			for z := 0; z < Side; z++ {
				out[x][y][z] = c[z][y][x]
			}
		}
	}
	return out
}
