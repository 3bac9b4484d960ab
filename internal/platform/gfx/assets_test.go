package gfx

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"
)

func writeBMP(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeBMP(t *testing.T) {
	dir := t.TempDir()
	writeBMP(t, dir, "digits/7.bmp", 30, 45)

	img, err := decodeBMP(os.DirFS(dir), "digits/7.bmp")
	if err != nil {
		t.Fatalf("decodeBMP() error = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(30, 45) {
		t.Errorf("size = %v, expected 30x45", got)
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0xffff {
		t.Error("pixel data should survive decoding")
	}
}

func TestDecodeBMPErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.bmp": &fstest.MapFile{Data: []byte("not a bitmap")},
	}

	if _, err := decodeBMP(fsys, "missing.bmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("decodeBMP(missing) error = %v, expected fs.ErrNotExist", err)
	}
	_, err := decodeBMP(fsys, "broken.bmp")
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Errorf("decodeBMP(broken) error = %v, expected a decode error", err)
	}
}

func TestManifest(t *testing.T) {
	files := manifest(800, 600, 16)

	// 8 screens and widgets, 3 buildings, 20 digits, 16 explosion frames
	if len(files) != 8+3+20+16 {
		t.Fatalf("len(manifest) = %d, expected 47", len(files))
	}
	seen := make(map[string]bool)
	for _, f := range files {
		if seen[f.path] {
			t.Errorf("duplicate asset path %q", f.path)
		}
		seen[f.path] = true
		if f.w <= 0 || f.h <= 0 {
			t.Errorf("%s has no placeholder size", f.path)
		}
	}
	for _, p := range []string{"background.bmp", "Explosion/00.bmp", "Explosion/15.bmp", "big_digits/9.bmp", "buildings/2.bmp"} {
		if !seen[p] {
			t.Errorf("manifest is missing %q", p)
		}
	}
}
