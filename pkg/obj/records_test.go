package obj

import (
	"reflect"
	"testing"
)

func TestPositionRule(t *testing.T) {
	tests := []struct {
		input string
		want  VertexPosition
		ok    bool
	}{
		{"v 1.0 2.0 3.0", VertexPosition{1, 2, 3, 1}, true},
		{"v 1 2 3 0.5", VertexPosition{1, 2, 3, 0.5}, true},
		{"v  -1 -2 -3", VertexPosition{-1, -2, -3, 1}, true},
		{"v 1 2 3\nv 4 5 6", VertexPosition{1, 2, 3, 1}, true},
		{"v 1.0 2.0", VertexPosition{}, false},
		{"vn 1 2 3", VertexPosition{}, false},
		{"vt 1 2 3", VertexPosition{}, false},
		{"f 1 2 3", VertexPosition{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner([]byte(tt.input))
			got, ok := s.position()
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				if s.pos != 0 {
					t.Errorf("expected cursor restored to 0, got %d", s.pos)
				}
				return
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPositionRuleStopsAtNextRecord(t *testing.T) {
	s := newScanner([]byte("v 1 2 3\nv 4 5 6"))
	if _, ok := s.position(); !ok {
		t.Fatal("expected first position to parse")
	}
	if s.pos != 7 {
		t.Errorf("expected cursor at end of first line (7), got %d", s.pos)
	}
}

func TestNormalRule(t *testing.T) {
	s := newScanner([]byte("vn -0.5 0.25 1"))
	got, ok := s.normal()
	if !ok {
		t.Fatal("expected normal to parse")
	}
	want := VertexNormal{-0.5, 0.25, 1}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	s = newScanner([]byte("vn 1 2"))
	if _, ok := s.normal(); ok {
		t.Error("expected normal with two components to fail")
	}
	if s.faultMsg == "" {
		t.Error("expected a structural fault to be recorded")
	}
}

func TestTexCoordRule(t *testing.T) {
	tests := []struct {
		input string
		want  VertexTextureCoordinate
	}{
		{"vt 0.5", VertexTextureCoordinate{0.5, 0, 0}},
		{"vt 0.089608 0.023837", VertexTextureCoordinate{0.089608, 0.023837, 0}},
		{"vt 0.987654 0.246802 0.123456", VertexTextureCoordinate{0.987654, 0.246802, 0.123456}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner([]byte(tt.input))
			got, ok := s.texCoord()
			if !ok {
				t.Fatal("expected texture coordinate to parse")
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	s := newScanner([]byte("vt"))
	if _, ok := s.texCoord(); ok {
		t.Error("expected bare 'vt' to fail")
	}
}

func TestCornerShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FaceTriplet
		end   int
	}{
		{"vertex only", "5", FaceTriplet{5, 0, 0}, 1},
		{"duo", "8/8", FaceTriplet{8, 8, 0}, 3},
		{"triplet without uv", "1//1", FaceTriplet{1, 0, 1}, 4},
		{"full triplet", "11/11/11", FaceTriplet{11, 11, 11}, 8},
		{"spaced triplet", "1 / 2 / 3", FaceTriplet{1, 2, 3}, 9},
		{"negative", "-1/-2/-3", FaceTriplet{-1, -2, -3}, 8},
		{"dangling slash", "4/ x", FaceTriplet{4, 0, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScanner([]byte(tt.input))
			got, ok := s.corner()
			if !ok {
				t.Fatal("expected corner to parse")
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if s.pos != tt.end {
				t.Errorf("expected cursor %d, got %d", tt.end, s.pos)
			}
		})
	}
}

func TestFaceRule(t *testing.T) {
	tests := []struct {
		input string
		want  Face
	}{
		{"f 5 1 6", Face{{5, 0, 0}, {1, 0, 0}, {6, 0, 0}}},
		{"f 8/8 6/6 9/9", Face{{8, 8, 0}, {6, 6, 0}, {9, 9, 0}}},
		{"f 1//1 2//2 3//3", Face{{1, 0, 1}, {2, 0, 2}, {3, 0, 3}}},
		{"f 11/11/11 12/12/12 2/2/2", Face{{11, 11, 11}, {12, 12, 12}, {2, 2, 2}}},
		{"f 1 2/2 3//3 4/4/4", Face{{1, 0, 0}, {2, 2, 0}, {3, 0, 3}, {4, 4, 4}}},
		{"f 1 2 3\nv 0 0 0", Face{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner([]byte(tt.input))
			got, ok := s.face()
			if !ok {
				t.Fatal("expected face to parse")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFaceRuleRequiresCorner(t *testing.T) {
	s := newScanner([]byte("f\nv 1 2 3"))
	if _, ok := s.face(); ok {
		t.Fatal("expected face without corners to fail")
	}
	if s.pos != 0 {
		t.Errorf("expected cursor restored to 0, got %d", s.pos)
	}
	if s.faultPos != 2 {
		t.Errorf("expected fault at offset 2, got %d", s.faultPos)
	}
}

func TestRecordPriority(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"v 1 2 3", KindPosition},
		{"vn 1 2 3", KindNormal},
		{"vt 1 2 3", KindTexCoord},
		{"f 1 2 3", KindFace},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner([]byte(tt.input))
			r, ok := s.record()
			if !ok {
				t.Fatal("expected record to parse")
			}
			if r.Kind() != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, r.Kind())
			}
		})
	}
}
