package pattern

import (
	"io"
)

// Fills whole rows of records. Generators work a row at a time: the row
// buffer is prepared once, then each row only rewrites what changes.
type Pattern interface {
	Prepare(row []byte)
	Fill(row []byte, index uint32)
}

// Row and cycle stamping (layouts A and B)
type sequentialPattern struct {
	geometry Geometry
}

// Every record in the row gets its cycle number and the fixed reserved/filler
// bytes up front; those never change from row to row.
func (p *sequentialPattern) Prepare(row []byte) {
	size := p.geometry.BytesPerCycle
	for cycle := 0; cycle < p.geometry.CyclesPerRow; cycle++ {
		record := row[cycle*size : (cycle+1)*size]
		ResetStamp(record)
		// Cycles above 255 alias, same as the original one byte field
		StampFields(record, StampRecord{Cycle: uint8(cycle)})
	}
}

func (p *sequentialPattern) Fill(row []byte, index uint32) {
	size := p.geometry.BytesPerCycle
	for cycle := 0; cycle < p.geometry.CyclesPerRow; cycle++ {
		Write4ByteValue(index, row, cycle*size+StampRowIndex)
	}
}

// XOR/offset integrity words (layout C)
type integrityPattern struct {
	geometry Geometry
}

func (p *integrityPattern) Prepare(row []byte) {}

func (p *integrityPattern) Fill(row []byte, index uint32) {
	// The accumulator runs across every record of every row, so seed it from
	// the number of records before this row
	accumulator := IntegrityAccumulator(uint64(index) * uint64(p.geometry.CyclesPerRow))
	for cycle := 0; cycle < p.geometry.CyclesPerRow; cycle++ {
		putIntegrity(row[cycle*IntegrityRecordSize:(cycle+1)*IntegrityRecordSize], accumulator)
		accumulator += IntegrityStep
	}
}

// Get the row filler for the mode. The geometry must already be validated.
func PatternFor(mode Mode, geometry Geometry) Pattern {
	if mode == ModeIntegrity {
		return &integrityPattern{geometry: geometry}
	}
	return &sequentialPattern{geometry: geometry}
}

// What a generation pass produced
type Result struct {
	Rows    uint64
	Records uint64
	Length  uint64
}

// Write rows [first, first+count) of the pattern to the sink, in order
func writeRows(sink io.Writer, geometry Geometry, pattern Pattern, first uint64, count uint64) (*Result, error) {
	wep := NewWriteErrorPass(sink)
	row := make([]byte, geometry.BytesPerRow())
	pattern.Prepare(row)
	for index := first; index < first+count; index++ {
		pattern.Fill(row, uint32(index))
		wep.WritePass(row)
		if wep.IsPass() != nil {
			break
		}
	}
	result := Result{
		Rows:    wep.Written() / geometry.BytesPerRow(),
		Records: wep.Written() / uint64(geometry.BytesPerCycle),
		Length:  wep.Written(),
	}
	return &result, wep.IsPass()
}

// Generate the entire output for the given mode into the sink. Nothing is
// written if the geometry doesn't fit the mode.
func Generate(sink io.Writer, mode Mode, geometry Geometry) (*Result, error) {
	if err := geometry.Validate(mode); err != nil {
		return nil, err
	}
	return writeRows(sink, geometry, PatternFor(mode, geometry), 0, geometry.RowCount())
}

// Write every row, each made of CyclesPerRow stamped records carrying the row
// number (big endian) and cycle number.
func GenerateSequential(sink io.Writer, geometry Geometry) (*Result, error) {
	return Generate(sink, ModeSequential, geometry)
}

// Write every row as integrity records derived from a single running
// accumulator (+57 per record).
func GenerateIntegrity(sink io.Writer, geometry Geometry) (*Result, error) {
	return Generate(sink, ModeIntegrity, geometry)
}
