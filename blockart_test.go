package blockart

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		want    string
		wantErr error
	}{
		{
			name: "single pixel",
			rows: []string{"1"},
			want: `__
/\\\_
 \///
 ____`,
		},
		{
			name: "single pixel top-left corner",
			rows: []string{"10", "00"},
			want: `____
/\\\__
 \///_
  ____`,
		},
		{
			name: "horizontal pair",
			rows: []string{"110", "000"},
			want: `______
/\\\\\__
 \/////_
  ______`,
		},
		{
			name: "two separated blocks",
			rows: []string{"100", "001"},
			want: `______
/\\\_/\\\
 \///\///
  _______`,
		},
		{
			name:    "vertical pair",
			rows:    []string{"10", "10"},
			wantErr: ErrInvalidAdjacency,
		},
		{
			name:    "diagonal pair",
			rows:    []string{"10", "01"},
			wantErr: ErrInvalidAdjacency,
		},
		{
			name:    "bad character",
			rows:    []string{"10A"},
			wantErr: ErrInvalidBitmap,
		},
		{
			name:    "no pixels",
			rows:    []string{"000"},
			wantErr: ErrInvalidBitmap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := Render(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Render(%v) error = %v, want %v", tt.rows, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render(%v) unexpected error: %v", tt.rows, err)
			}
			if art != tt.want {
				t.Errorf("Render(%v) =\n%s\nwant:\n%s", tt.rows, art, tt.want)
			}
		})
	}
}

func TestRenderValidateRoundtrip(t *testing.T) {
	bitmaps := [][]string{
		{"1"},
		{"1", "0"},
		{"01"},
		{"10", "00"},
		{"110", "000"},
		{"100", "001"},
		{"0110"},
		{"000", "010", "000"},
	}

	for _, rows := range bitmaps {
		art, err := Render(rows)
		if err != nil {
			t.Fatalf("Render(%v) unexpected error: %v", rows, err)
		}
		if got := strings.Count(art, "\n"); got != 3 {
			t.Errorf("Render(%v) has %d newlines, want 3", rows, got)
		}
		if err := ValidateArt(art, rows); err != nil {
			t.Errorf("ValidateArt rejected own rendering of %v: %v", rows, err)
		}
	}
}

func TestValidateArtRejectsTamperedArt(t *testing.T) {
	rows := []string{"1"}
	art, err := Render(rows)
	if err != nil {
		t.Fatalf("Render unexpected error: %v", err)
	}

	lines := strings.Split(art, "\n")
	lines[1] += "_"
	tampered := strings.Join(lines, "\n")

	if err := ValidateArt(tampered, rows); !errors.Is(err, ErrArtValidation) {
		t.Errorf("ValidateArt(tampered) error = %v, want ErrArtValidation", err)
	}
}

func TestValidateArtToleratesTrailingNewline(t *testing.T) {
	rows := []string{"1"}
	art, err := Render(rows)
	if err != nil {
		t.Fatalf("Render unexpected error: %v", err)
	}

	if err := ValidateArt(art+"\n", rows); err != nil {
		t.Errorf("ValidateArt(art+newline) = %v, want nil", err)
	}
	if err := ValidateArt(art+"\n\n", rows); !errors.Is(err, ErrArtValidation) {
		t.Errorf("ValidateArt(art+two newlines) error = %v, want ErrArtValidation", err)
	}
}

func TestValidateArtPropagatesBitmapErrors(t *testing.T) {
	if err := ValidateArt("x", []string{"10", "10"}); !errors.Is(err, ErrInvalidAdjacency) {
		t.Errorf("ValidateArt error = %v, want ErrInvalidAdjacency", err)
	}
	if err := ValidateArt("x", nil); !errors.Is(err, ErrInvalidBitmap) {
		t.Errorf("ValidateArt error = %v, want ErrInvalidBitmap", err)
	}
}

func TestReadBitmap(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "simple bitmap with final newline",
			input: "10\n00\n",
			want:  []string{"10", "00"},
		},
		{
			name:  "no final newline",
			input: "110\n000",
			want:  []string{"110", "000"},
		},
		{
			name:    "vertical pair rejected",
			input:   "10\n10\n",
			wantErr: ErrInvalidAdjacency,
		},
		{
			name:    "garbage rejected",
			input:   "hello\n",
			wantErr: ErrInvalidBitmap,
		},
		{
			name:    "empty file rejected",
			input:   "",
			wantErr: ErrInvalidBitmap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadBitmap(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadBitmap(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBitmap(%q) unexpected error: %v", tt.input, err)
			}
			if len(rows) != len(tt.want) {
				t.Fatalf("ReadBitmap(%q) = %v, want %v", tt.input, rows, tt.want)
			}
			for i := range rows {
				if rows[i] != tt.want[i] {
					t.Errorf("ReadBitmap(%q) row %d = %q, want %q", tt.input, i, rows[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadBitmapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"bitmaps/ok.txt":  {Data: []byte("10\n00\n")},
		"bitmaps/bad.txt": {Data: []byte("10\n10\n")},
	}

	rows, err := LoadBitmapFS(fsys, "bitmaps/ok.txt")
	if err != nil {
		t.Fatalf("LoadBitmapFS unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0] != "10" {
		t.Errorf("LoadBitmapFS rows = %v, want [10 00]", rows)
	}

	if _, err := LoadBitmapFS(fsys, "bitmaps/bad.txt"); !errors.Is(err, ErrInvalidAdjacency) {
		t.Errorf("LoadBitmapFS(bad) error = %v, want ErrInvalidAdjacency", err)
	}

	if _, err := LoadBitmapFS(fsys, "bitmaps/missing.txt"); err == nil {
		t.Error("LoadBitmapFS(missing) expected error, got nil")
	}

	if _, err := LoadBitmapFS(nil, "bitmaps/ok.txt"); err == nil {
		t.Error("LoadBitmapFS(nil fs) expected error, got nil")
	}
}

func TestCleanFSPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"simple path", "bitmaps/ok.txt", "bitmaps/ok.txt", false},
		{"empty path", "", "", true},
		{"absolute path", "/etc/passwd", "", true},
		{"backslash path", `bitmaps\ok.txt`, "", true},
		{"parent traversal", "../secret", "", true},
		{"dot path", ".", "", true},
		{"embedded traversal", "bitmaps/../../secret", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanFSPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("cleanFSPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("cleanFSPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
