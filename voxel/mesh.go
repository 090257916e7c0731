package voxel

// Vertex is one mesh corner.
type Vertex struct {
	Position [3]float32
}

// Mesh is an indexed triangle list built from unit quads.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *Mesh) addQuad(corners [4][3]float32) {
	base := uint32(len(m.Vertices))
	for _, p := range corners {
		m.Vertices = append(m.Vertices, Vertex{Position: p})
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// SurfaceMesh extracts the boundary quads of s. A quad is emitted
// wherever occupancy flips between a cell and its predecessor along an
// axis. Predecessor lookups wrap around: the world is toroidal, so a
// fully solid (or fully empty) space has no surface at all.
func SurfaceMesh(s Space) *Mesh {
	mesh := &Mesh{}
	for x := 0; x < SpaceW; x++ {
		for y := 0; y < SpaceH; y++ {
			for z := 0; z < SpaceD; z++ {
				occ := s[x][y][z]
				fx, fy, fz := float32(x), float32(y), float32(z)
				if s[(x+SpaceW-1)%SpaceW][y][z] != occ {
					mesh.addQuad([4][3]float32{
						{fx, fy, fz}, {fx, fy + 1, fz}, {fx, fy + 1, fz + 1}, {fx, fy, fz + 1},
					})
				}
				if s[x][(y+SpaceH-1)%SpaceH][z] != occ {
					mesh.addQuad([4][3]float32{
						{fx, fy, fz}, {fx + 1, fy, fz}, {fx + 1, fy, fz + 1}, {fx, fy, fz + 1},
					})
				}
				if s[x][y][(z+SpaceD-1)%SpaceD] != occ {
					mesh.addQuad([4][3]float32{
						{fx, fy, fz}, {fx + 1, fy, fz}, {fx + 1, fy + 1, fz}, {fx, fy + 1, fz},
					})
				}
			}
		}
	}
	return mesh
}
