package obj

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// Vec4 returns the homogeneous position.
func (p VertexPosition) Vec4() mgl.Vec4 {
	return mgl.Vec4{p.X, p.Y, p.Z, p.W}
}

// Vec3 returns the x, y, z components, ignoring the weight.
func (p VertexPosition) Vec3() mgl.Vec3 {
	return mgl.Vec3{p.X, p.Y, p.Z}
}

// Vec3 returns the normal as a vector. It is not normalized.
func (n VertexNormal) Vec3() mgl.Vec3 {
	return mgl.Vec3{n.I, n.J, n.K}
}

// Vec3 returns the texture coordinate as (u, v, w).
func (t VertexTextureCoordinate) Vec3() mgl.Vec3 {
	return mgl.Vec3{t.U, t.V, t.W}
}

// Stats holds record counts of a parsed file.
type Stats struct {
	Positions int
	Normals   int
	TexCoords int
	Faces     int
	Corners   int // total face corners
}

// String returns the counts in one line.
func (s Stats) String() string {
	return fmt.Sprintf("%d vertices, %d normals, %d uvs, %d faces (%d corners)",
		s.Positions, s.Normals, s.TexCoords, s.Faces, s.Corners)
}

// Stats returns record counts for the aggregate.
func (a *Aggregate) Stats() Stats {
	s := Stats{
		Positions: len(a.Positions),
		Normals:   len(a.Normals),
		TexCoords: len(a.TexCoords),
		Faces:     len(a.Faces),
	}
	for _, f := range a.Faces {
		s.Corners += len(f)
	}
	return s
}

// Bounds returns the axis-aligned bounding box of all positions.
// ok is false when there are no positions.
func (a *Aggregate) Bounds() (min, max mgl.Vec3, ok bool) {
	if len(a.Positions) == 0 {
		return mgl.Vec3{}, mgl.Vec3{}, false
	}
	min = a.Positions[0].Vec3()
	max = min
	for _, p := range a.Positions[1:] {
		v := p.Vec3()
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max, true
}
