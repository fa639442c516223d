package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 64

var iconPalette = map[string]color.NRGBA{
	IconWork:   {R: 220, G: 53, B: 45, A: 255},
	IconBreak:  {R: 64, G: 168, B: 92, A: 255},
	IconPaused: {R: 140, G: 140, B: 140, A: 255},
}

var leafColor = color.NRGBA{R: 46, G: 125, B: 50, A: 255}

// renderTomato draws a round fruit with a small leaf on top.
func renderTomato(variant string) ([]byte, error) {
	body, ok := iconPalette[variant]
	if !ok {
		return nil, fmt.Errorf("unknown icon variant %q", variant)
	}

	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	centerX, centerY := float64(iconSize)/2, float64(iconSize)/2+4
	radius := float64(iconSize)/2 - 6

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, body)
			}
		}
	}

	for y := 4; y < 14; y++ {
		halfWidth := 7 - absInt(y-9)
		for x := iconSize/2 - halfWidth; x <= iconSize/2+halfWidth; x++ {
			img.SetNRGBA(x, y, leafColor)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
