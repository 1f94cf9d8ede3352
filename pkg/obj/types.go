// Package obj provides a parser for Wavefront OBJ mesh geometry.
package obj

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a parsed record.
type Kind int

// Record kinds, in the order the parser tries them.
const (
	KindPosition Kind = iota
	KindNormal
	KindTexCoord
	KindFace
)

// String returns the OBJ keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "v"
	case KindNormal:
		return "vn"
	case KindTexCoord:
		return "vt"
	case KindFace:
		return "f"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Record is one parsed OBJ statement. The set of implementations is closed:
// VertexPosition, VertexNormal, VertexTextureCoordinate and Face.
type Record interface {
	Kind() Kind
	isRecord()
}

// VertexPosition is a geometric vertex ("v x y z [w]").
type VertexPosition struct {
	X, Y, Z float32
	W       float32 // 1.0 when omitted
}

// VertexNormal is a vertex normal ("vn i j k").
type VertexNormal struct {
	I, J, K float32
}

// VertexTextureCoordinate is a texture vertex ("vt u [v [w]]").
type VertexTextureCoordinate struct {
	U float32
	V float32 // 0 when omitted
	W float32 // 0 when omitted
}

// FaceTriplet is one corner of a face. Zero means the index is absent;
// OBJ indices are 1-based.
type FaceTriplet struct {
	VertexIndex int
	UVIndex     int
	NormalIndex int
}

// Face is an ordered list of corners.
type Face []FaceTriplet

// Aggregate holds every record of a file partitioned by kind.
type Aggregate struct {
	Positions []VertexPosition
	Normals   []VertexNormal
	TexCoords []VertexTextureCoordinate
	Faces     []Face
}

func (VertexPosition) Kind() Kind          { return KindPosition }
func (VertexNormal) Kind() Kind            { return KindNormal }
func (VertexTextureCoordinate) Kind() Kind { return KindTexCoord }
func (Face) Kind() Kind                    { return KindFace }

func (VertexPosition) isRecord()          {}
func (VertexNormal) isRecord()            {}
func (VertexTextureCoordinate) isRecord() {}
func (Face) isRecord()                    {}

// String returns the position as "v(x, y, z, w)".
func (p VertexPosition) String() string {
	return fmt.Sprintf("v(%g, %g, %g, %g)", p.X, p.Y, p.Z, p.W)
}

// String returns the normal as "n(i, j, k)".
func (n VertexNormal) String() string {
	return fmt.Sprintf("n(%g, %g, %g)", n.I, n.J, n.K)
}

// String returns the texture coordinate as "uv(u, v, w)".
func (t VertexTextureCoordinate) String() string {
	return fmt.Sprintf("uv(%g, %g, %g)", t.U, t.V, t.W)
}

// String returns the corner as "(v, uv, n) ".
func (t FaceTriplet) String() string {
	return fmt.Sprintf("(%d, %d, %d) ", t.VertexIndex, t.UVIndex, t.NormalIndex)
}

// String returns the face as "f: " followed by its corners.
func (f Face) String() string {
	var b strings.Builder
	b.WriteString("f: ")
	for _, t := range f {
		b.WriteString(t.String())
	}
	return b.String()
}

// Len returns the total number of records in the aggregate.
func (a *Aggregate) Len() int {
	return len(a.Positions) + len(a.Normals) + len(a.TexCoords) + len(a.Faces)
}
