package obj

// Record rules. Each rule either consumes one complete record and returns
// true, or restores the cursor and returns false. A rule that matched its
// keyword but not the required fields records a structural fault.

// position parses "v x y z [w]".
func (s *scanner) position() (VertexPosition, bool) {
	start := s.pos
	if !s.literal("v") {
		s.pos = start
		return VertexPosition{}, false
	}

	var xyz [3]float32
	for i := range xyz {
		v, ok := s.float()
		if !ok {
			s.fail("position: expected 3 coordinates after 'v'")
			s.pos = start
			return VertexPosition{}, false
		}
		xyz[i] = v
	}

	p := VertexPosition{X: xyz[0], Y: xyz[1], Z: xyz[2], W: 1}
	if w, ok := s.optFloat(); ok {
		p.W = w
	}
	return p, true
}

// normal parses "vn i j k".
func (s *scanner) normal() (VertexNormal, bool) {
	start := s.pos
	if !s.literal("vn") {
		s.pos = start
		return VertexNormal{}, false
	}

	var ijk [3]float32
	for i := range ijk {
		v, ok := s.float()
		if !ok {
			s.fail("normal: expected 3 components after 'vn'")
			s.pos = start
			return VertexNormal{}, false
		}
		ijk[i] = v
	}
	return VertexNormal{I: ijk[0], J: ijk[1], K: ijk[2]}, true
}

// texCoord parses "vt u [v [w]]".
func (s *scanner) texCoord() (VertexTextureCoordinate, bool) {
	start := s.pos
	if !s.literal("vt") {
		s.pos = start
		return VertexTextureCoordinate{}, false
	}

	u, ok := s.float()
	if !ok {
		s.fail("texture coordinate: expected u after 'vt'")
		s.pos = start
		return VertexTextureCoordinate{}, false
	}

	t := VertexTextureCoordinate{U: u}
	if v, ok := s.optFloat(); ok {
		t.V = v
		if w, ok := s.optFloat(); ok {
			t.W = w
		}
	}
	return t, true
}

// face parses "f corner+".
func (s *scanner) face() (Face, bool) {
	start := s.pos
	if !s.literal("f") {
		s.pos = start
		return nil, false
	}

	var f Face
	for {
		t, ok := s.corner()
		if !ok {
			break
		}
		f = append(f, t)
	}

	if len(f) == 0 {
		s.skip()
		s.fail("face: expected at least one corner after 'f'")
		s.pos = start
		return nil, false
	}
	return f, true
}

// corner tries the triplet shape first and falls back to the duo shape.
// "8/8" has a single slash, so it can only match as a duo.
func (s *scanner) corner() (FaceTriplet, bool) {
	mark := s.pos
	if t, ok := s.triplet(); ok {
		return t, true
	}
	s.pos = mark
	if t, ok := s.duo(); ok {
		return t, true
	}
	s.pos = mark
	return FaceTriplet{}, false
}

// triplet parses "v/[uv]/n"; both slashes are required.
func (s *scanner) triplet() (FaceTriplet, bool) {
	v, ok := s.integer()
	if !ok || !s.literal("/") {
		return FaceTriplet{}, false
	}
	t := FaceTriplet{VertexIndex: v}
	mark := s.pos
	if uv, ok := s.integer(); ok {
		t.UVIndex = uv
	} else {
		s.pos = mark
	}
	if !s.literal("/") {
		return FaceTriplet{}, false
	}
	n, ok := s.integer()
	if !ok {
		return FaceTriplet{}, false
	}
	t.NormalIndex = n
	return t, true
}

// duo parses "v[/uv]".
func (s *scanner) duo() (FaceTriplet, bool) {
	v, ok := s.integer()
	if !ok {
		return FaceTriplet{}, false
	}
	t := FaceTriplet{VertexIndex: v}
	mark := s.pos
	if s.literal("/") {
		if uv, ok := s.integer(); ok {
			t.UVIndex = uv
			return t, true
		}
	}
	s.pos = mark
	return t, true
}

// optFloat reads a float if one is next, leaving the cursor untouched
// otherwise.
func (s *scanner) optFloat() (float32, bool) {
	mark := s.pos
	v, ok := s.float()
	if !ok {
		s.pos = mark
	}
	return v, ok
}
