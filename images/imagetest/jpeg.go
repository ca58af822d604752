// Package imagetest builds small JPEG fixtures carrying an EXIF capture time.
package imagetest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"testing"
)

const (
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003
	typeASCII           = 2
	typeLong            = 4
)

// exifSegment returns a little endian TIFF structure with an Exif sub-IFD
// holding DateTimeOriginal.
func exifSegment(dateTimeOriginal string) []byte {
	var b bytes.Buffer
	le := binary.LittleEndian
	w := func(v any) { _ = binary.Write(&b, le, v) }

	value := append([]byte(dateTimeOriginal), 0)

	// header
	b.WriteString("II")
	w(uint16(42))
	w(uint32(8))

	// IFD0 at 8: a single pointer to the Exif IFD at 26
	w(uint16(1))
	w(uint16(tagExifIFDPointer))
	w(uint16(typeLong))
	w(uint32(1))
	w(uint32(26))
	w(uint32(0))

	// Exif IFD at 26: DateTimeOriginal stored at 44
	w(uint16(1))
	w(uint16(tagDateTimeOriginal))
	w(uint16(typeASCII))
	w(uint32(len(value)))
	w(uint32(44))
	w(uint32(0))

	b.Write(value)

	return b.Bytes()
}

// JPEG encodes a small image and inserts an APP1 segment with the given
// DateTimeOriginal right after the start-of-image marker. An empty date
// yields a JPEG without EXIF.
func JPEG(dateTimeOriginal string, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: 120, A: 255})
		}
	}

	var encoded bytes.Buffer
	_ = jpeg.Encode(&encoded, img, &jpeg.Options{Quality: 80})
	if dateTimeOriginal == "" {
		return encoded.Bytes()
	}

	payload := append([]byte("Exif\x00\x00"), exifSegment(dateTimeOriginal)...)

	var out bytes.Buffer
	out.Write(encoded.Bytes()[:2])
	out.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(&out, binary.BigEndian, uint16(len(payload)+2))
	out.Write(payload)
	out.Write(encoded.Bytes()[2:])

	return out.Bytes()
}

// WriteJPEG writes a JPEG fixture to path.
func WriteJPEG(t testing.TB, path string, dateTimeOriginal string) {
	t.Helper()
	if err := os.WriteFile(path, JPEG(dateTimeOriginal, 16, 12), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
