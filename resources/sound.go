package resources

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Cue names, matching the timekeeper cue identifiers.
const (
	CueWorkComplete  = "work_complete"
	CueBreakComplete = "break_complete"
)

const sampleRate = 22050

type tone struct {
	frequency float64
	seconds   float64
}

// Work ends with a rising chime, break ends with a single low bell.
var cueTones = map[string][]tone{
	CueWorkComplete:  {{880, 0.18}, {0, 0.06}, {1175, 0.18}, {0, 0.06}, {1568, 0.35}},
	CueBreakComplete: {{523, 0.25}, {0, 0.08}, {392, 0.45}},
}

func renderCue(name string) ([]byte, error) {
	tones, ok := cueTones[name]
	if !ok {
		return nil, fmt.Errorf("unknown cue %q", name)
	}

	var samples []int16
	for _, t := range tones {
		count := int(t.seconds * sampleRate)
		for i := 0; i < count; i++ {
			if t.frequency == 0 {
				samples = append(samples, 0)
				continue
			}
			// Linear fade out avoids a click at the end of each tone.
			envelope := 1 - float64(i)/float64(count)
			value := math.Sin(2*math.Pi*t.frequency*float64(i)/sampleRate) * envelope * 0.6
			samples = append(samples, int16(value*math.MaxInt16))
		}
	}
	return encodeWAV(samples)
}

// encodeWAV writes 16-bit mono PCM in a RIFF container.
func encodeWAV(samples []int16) ([]byte, error) {
	dataSize := uint32(len(samples) * 2)
	var buf bytes.Buffer
	header := []any{
		[]byte("RIFF"),
		36 + dataSize,
		[]byte("WAVE"),
		[]byte("fmt "),
		uint32(16),
		uint16(1),
		uint16(1),
		uint32(sampleRate),
		uint32(sampleRate * 2),
		uint16(2),
		uint16(16),
		[]byte("data"),
		dataSize,
	}
	for _, field := range header {
		if err := binary.Write(&buf, binary.LittleEndian, field); err != nil {
			return nil, fmt.Errorf("encode wav header: %w", err)
		}
	}
	if err := binary.Write(&buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("encode wav samples: %w", err)
	}
	return buf.Bytes(), nil
}
