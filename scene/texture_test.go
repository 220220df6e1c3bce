package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// writeStripes writes a 2x3 PNG whose rows are red, green, blue from the top.
func writeStripes(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
	}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "stripes.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestDecodeImageFlipsRows(t *testing.T) {
	px, err := DecodeImage(writeStripes(t))
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if px.Width != 2 || px.Height != 3 || px.Channels != 4 {
		t.Fatalf("got %dx%dx%d, want 2x3x4", px.Width, px.Height, px.Channels)
	}
	if len(px.Data) != 2*3*4 {
		t.Fatalf("got %d bytes, want 24", len(px.Data))
	}

	stride := px.Width * 4
	// bottom row of the file (blue) comes first
	wantRows := [][4]byte{{0, 0, 255, 255}, {0, 255, 0, 255}, {255, 0, 0, 255}}
	for row, want := range wantRows {
		var got [4]byte
		copy(got[:], px.Data[row*stride:row*stride+4])
		if got != want {
			t.Errorf("row %d = %v, want %v", row, got, want)
		}
	}
}

func TestDecodeImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := DecodeImage(filepath.Join(dir, "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeImage(garbage); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestLoadTextureUploadsWithNearestRepeat(t *testing.T) {
	dev := newFakeDevice()
	tex := LoadTexture(dev, writeStripes(t), zap.NewNop())

	if got := dev.textures[tex]; got != (Sampling{Filter: FilterNearest, Wrap: WrapRepeat}) {
		t.Errorf("sampling = %+v, want nearest/repeat", got)
	}
	if px := dev.uploads[tex]; px == nil || px.Width != 2 || px.Height != 3 {
		t.Errorf("upload = %+v, want the 2x3 image", px)
	}
}

func TestLoadTextureMissingFileLogsAndContinues(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dev := newFakeDevice()
	path := filepath.Join(t.TempDir(), "missing.png")

	tex := LoadTexture(dev, path, zap.New(core))

	if tex == 0 {
		t.Error("texture handle not generated")
	}
	if _, ok := dev.uploads[tex]; ok {
		t.Error("missing file was uploaded")
	}
	entries := logs.FilterMessage("failed to load texture").All()
	if len(entries) != 1 {
		t.Fatalf("got %d warnings, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["path"]; got != path {
		t.Errorf("logged path = %v, want %s", got, path)
	}
}
