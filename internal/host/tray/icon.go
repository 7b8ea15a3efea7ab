package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"math"
	"runtime"
)

const iconSize = 22

// iconData is the tray icon, a white gamepad on transparent background,
// encoded the way the platform's tray expects it.
var iconData = mustIcon()

func mustIcon() []byte {
	data, err := encodeIcon(drawGamepad(), runtime.GOOS)
	if err != nil {
		panic(err)
	}
	return data
}

// drawGamepad renders the glyph with antialiased edges.
func drawGamepad() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			alpha := gamepadCoverage(fx, fy)
			if alpha <= 0 {
				continue
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Min(alpha, 1) * 255)})
		}
	}
	return img
}

// gamepadCoverage returns how much of the pixel centred at (x, y) the
// glyph covers, before the cut-outs for the d-pad and buttons.
func gamepadCoverage(x, y float64) float64 {
	alpha := 0.0

	// Body: a capsule from (6,11) to (16,11), radius 5.
	cx := math.Max(6, math.Min(16, x))
	alpha = math.Max(alpha, edge(math.Hypot(x-cx, y-11), 5))

	// Grips below each end.
	alpha = math.Max(alpha, edge(math.Hypot(x-5, y-15), 3))
	alpha = math.Max(alpha, edge(math.Hypot(x-17, y-15), 3))

	// D-pad cut-out on the left.
	if (x >= 4 && x <= 9 && y >= 10 && y <= 12) || (x >= 5.5 && x <= 7.5 && y >= 8.5 && y <= 13.5) {
		return 0
	}
	// Two buttons on the right.
	if math.Hypot(x-14.5, y-12) <= 1.2 || math.Hypot(x-17, y-9.5) <= 1.2 {
		return 0
	}
	return alpha
}

// edge is 1 inside radius r and fades to 0 over the next 0.8 pixels.
func edge(d, r float64) float64 {
	switch {
	case d <= r:
		return 1
	case d <= r+0.8:
		return (r + 0.8 - d) / 0.8
	default:
		return 0
	}
}

// encodeIcon encodes img as PNG, wrapped in an ICO container on Windows.
func encodeIcon(img image.Image, goos string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	if goos != "windows" {
		return buf.Bytes(), nil
	}
	return wrapICO(buf.Bytes(), img.Bounds().Dx(), img.Bounds().Dy()), nil
}

// wrapICO builds a single-image ICO file around PNG data.
func wrapICO(pngData []byte, w, h int) []byte {
	var out bytes.Buffer
	// ICONDIR: reserved, type 1 (icon), one image
	_ = binary.Write(&out, binary.LittleEndian, [3]uint16{0, 1, 1})
	// ICONDIRENTRY
	out.WriteByte(byte(w))
	out.WriteByte(byte(h))
	out.WriteByte(0) // palette
	out.WriteByte(0) // reserved
	_ = binary.Write(&out, binary.LittleEndian, uint16(1))  // planes
	_ = binary.Write(&out, binary.LittleEndian, uint16(32)) // bits per pixel
	_ = binary.Write(&out, binary.LittleEndian, uint32(len(pngData)))
	_ = binary.Write(&out, binary.LittleEndian, uint32(6+16)) // data offset
	out.Write(pngData)
	return out.Bytes()
}
