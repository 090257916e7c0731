package voxel

import xxhash "github.com/cespare/xxhash/v2"

// Nodes are the hand-authored seed patterns the node table grows from.
// Each string flattens a 3x3x3 occupancy block in row-major order.
var Nodes = [...]string{
	"000111000000111000000000000",
	"000111000000111000000111000",
	"000010000000111000000010000",
	"000110000000011000000000000",
	"010010010010010010010010010",
	"000111000010111010000111000",
}

// expansionSteps is the fixed branching sequence applied to every seed:
// 2 x 2 x 2 x 3 variants, up to 24 cubes per seed. It deliberately does
// not cover the full 24-element rotation group of the cube; published
// node tables were produced with exactly these operations, so the
// sequence must stay as-is.
var expansionSteps = [][]Transform{
	{Identity, MirrorLR},
	{Identity, MirrorUD},
	{Identity, SwapYZ},
	{Identity, SwapXY, SwapXZ},
}

// Expand returns the orbit of seed under the expansion sequence.
// Duplicates are kept; callers dedup across seeds with a Set.
func Expand(seed Cube) []Cube {
	cur := []Cube{seed}
	for _, ops := range expansionSteps {
		next := make([]Cube, 0, len(cur)*len(ops))
		for _, c := range cur {
			for _, op := range ops {
				next = append(next, op(c))
			}
		}
		cur = next
	}
	return cur
}

// Set deduplicates cubes by exact content. Entries are keyed by xxhash
// of the flattened bytes with equality verification on hash hits, and
// insertion order is preserved so table generation stays deterministic.
type Set struct {
	index map[uint64][]int
	cubes []Cube
}

func NewSet() *Set {
	return &Set{index: make(map[uint64][]int)}
}

// Add inserts c unless a byte-identical cube is already present and
// reports whether it was inserted.
func (s *Set) Add(c Cube) bool {
	b := c.Bytes()
	h := xxhash.Sum64(b[:])
	for _, i := range s.index[h] {
		if s.cubes[i] == c {
			return false
		}
	}
	s.index[h] = append(s.index[h], len(s.cubes))
	s.cubes = append(s.cubes, c)
	return true
}

func (s *Set) Len() int { return len(s.cubes) }

// Cubes returns the distinct cubes in insertion order.
func (s *Set) Cubes() []Cube {
	out := make([]Cube, len(s.cubes))
	copy(out, s.cubes)
	return out
}

// NodeTable expands every seed pattern and returns the deduplicated
// node table in deterministic order.
func NodeTable() []Cube {
	set := NewSet()
	for _, pattern := range Nodes {
		for _, c := range Expand(mustCube(pattern)) {
			set.Add(c)
		}
	}
	return set.Cubes()
}

// FlattenCubes stacks cubes along a new leading axis, yielding the
// row-major bytes of a (len(cubes), 3, 3, 3) array.
func FlattenCubes(cubes []Cube) []byte {
	out := make([]byte, 0, len(cubes)*PatternLen)
	for _, c := range cubes {
		b := c.Bytes()
		out = append(out, b[:]...)
	}
	return out
}
