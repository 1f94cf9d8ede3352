package encoding

import (
	"bytes"
	"testing"
)

func TestToUTF8_PlainPassthrough(t *testing.T) {
	data := []byte("v 1 2 3\n")
	out, err := ToUTF8(data)
	if err != nil {
		t.Fatalf("ToUTF8 failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("expected %q, got %q", data, out)
	}
}

func TestToUTF8_StripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, "vn 0 1 0\n"...)
	out, err := ToUTF8(data)
	if err != nil {
		t.Fatalf("ToUTF8 failed: %v", err)
	}
	if string(out) != "vn 0 1 0\n" {
		t.Errorf("expected BOM stripped, got %q", out)
	}
}

func TestToUTF8_UTF16LE(t *testing.T) {
	src := "# exported\nf 1 2 3\n"
	encoded, err := UTF8ToUTF16LE(src)
	if err != nil {
		t.Fatalf("UTF8ToUTF16LE failed: %v", err)
	}
	if !HasBOM(encoded) {
		t.Fatal("expected encoded data to carry a BOM")
	}

	out, err := ToUTF8(encoded)
	if err != nil {
		t.Fatalf("ToUTF8 failed: %v", err)
	}
	if string(out) != src {
		t.Errorf("expected %q, got %q", src, out)
	}
}

func TestToUTF8_UTF16BE(t *testing.T) {
	// "v" in UTF-16BE with BOM
	data := []byte{0xFE, 0xFF, 0x00, 'v', 0x00, ' ', 0x00, '1'}
	out, err := ToUTF8(data)
	if err != nil {
		t.Fatalf("ToUTF8 failed: %v", err)
	}
	if string(out) != "v 1" {
		t.Errorf("expected %q, got %q", "v 1", out)
	}
}

func TestHasBOM(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"plain", []byte("v 1 2 3"), false},
		{"utf8", []byte{0xEF, 0xBB, 0xBF, 'v'}, true},
		{"utf16be", []byte{0xFE, 0xFF}, true},
		{"utf16le", []byte{0xFF, 0xFE}, true},
		{"partial utf8", []byte{0xEF, 0xBB}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasBOM(tt.data); got != tt.want {
				t.Errorf("HasBOM(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
