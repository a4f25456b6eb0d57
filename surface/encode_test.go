// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"jpeg", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				var ufe *UnknownFormatError
				if !errors.As(err, &ufe) {
					t.Fatalf("ParseFormat(%q) error = %v, want UnknownFormatError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(1, 1, color.RGBA{255, 0, 0, 255})
	return img
}

func TestEncode_RoundTrip(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG: func(b *bytes.Buffer) (image.Image, error) {
			img, _, err := image.Decode(b)
			return img, err
		},
		FormatBMP: func(b *bytes.Buffer) (image.Image, error) {
			return bmp.Decode(b)
		},
		FormatTIFF: func(b *bytes.Buffer) (image.Image, error) {
			return tiff.Decode(b)
		},
	}

	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testImage(), f); err != nil {
				t.Fatalf("Encode(%s) = %v", f, err)
			}
			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode %s: %v", f, err)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
				t.Errorf("decoded bounds = %v, want 4x3", img.Bounds())
			}
			r, g, _, a := img.At(1, 1).RGBA()
			if r>>8 != 255 || g != 0 || a>>8 != 255 {
				t.Errorf("decoded pixel = %v, want opaque red", img.At(1, 1))
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), Format(99)); err == nil {
		t.Error("Encode with unknown format should fail")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.png")
	if err := WriteFile(path, testImage()); err != nil {
		t.Fatalf("WriteFile = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("written file is empty")
	}

	if err := WriteFile(filepath.Join(dir, "out.gif"), testImage()); err == nil {
		t.Error("WriteFile with .gif should fail")
	}
}

func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.img")
	if err := EncodeFile(path, testImage(), FormatBMP); err != nil {
		t.Fatalf("EncodeFile = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Errorf("file starts with %q, want BMP header", data[:min(len(data), 4)])
	}

	if err := EncodeFile(filepath.Join(dir, "missing", "out.png"), testImage(), FormatPNG); err == nil {
		t.Error("EncodeFile into a missing directory should fail")
	}
	if err := EncodeFile(filepath.Join(dir, "bad.png"), testImage(), Format(99)); err == nil {
		t.Error("EncodeFile with unknown format should fail")
	}
}
