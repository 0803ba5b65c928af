package pattern

import (
	"bytes"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
)

const (
	HexLineLength   = 16
	MaxSampleLength = 16 << 20
)

// Generate just the first few rows of a run into memory. Used for the hex
// sample and the preview image, never for the real output.
func SampleRows(mode Mode, geometry Geometry, rows uint64) ([]byte, error) {
	if err := geometry.Validate(mode); err != nil {
		return nil, err
	}
	if rows > geometry.RowCount() {
		rows = geometry.RowCount()
	}
	if rows*geometry.BytesPerRow() > MaxSampleLength {
		return nil, fmt.Errorf("Sample too large! Max: %d bytes, asked for %d", MaxSampleLength, rows*geometry.BytesPerRow())
	}
	var buf bytes.Buffer
	_, err := writeRows(&buf, geometry, PatternFor(mode, geometry), 0, rows)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dump the first rows of a run as intel hex, starting at address 0 (the same
// offsets they'd have in the real file)
func WriteHexSample(w io.Writer, mode Mode, geometry Geometry, rows uint64) error {
	data, err := SampleRows(mode, geometry, rows)
	if err != nil {
		return err
	}
	mem := gohex.NewMemory()
	if err = mem.AddBinary(0, data); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, HexLineLength)
}
