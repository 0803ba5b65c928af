package pattern

import (
	"fmt"
)

const (
	ReservedByte = 0xFF // Every reserved/dummy byte holds this before stamping

	LegacyRecordSize       = 32
	LegacyCyclesPerRow     = 64
	SequentialRecordSize   = 64
	SequentialCyclesPerRow = 32
	IntegrityRecordSize    = 64
	IntegrityCyclesPerRow  = 32

	// Stamped record layout (layouts A and B). Only the filler length differs.
	StampCycleIndex     = 0 // "Index into record for" cycle number (1 byte)
	StampReserved1Index = 1 // "" first reserved pair (2 bytes)
	StampRowIndex       = 3 // "" row number (4 bytes, big endian)
	StampReserved2Index = 7 // "" second reserved pair (2 bytes)
	StampFillerIndex    = 9 // "" incrementing filler (rest of record)
	StampHeaderLength   = StampFillerIndex

	// Integrity record layout (layout C)
	IntegrityWordCount  = 16
	IntegrityStep       = 57 // Odd, so the low bits walk through every residue
	IntegrityMaskInvert = 0xFFFFFFFF
	IntegrityMaskEven   = 0xAAAAAAAA
	IntegrityMaskOdd    = 0x55555555
)

// The fields stamped into a layout A/B record. Everything else in the record
// is fixed.
type StampRecord struct {
	Cycle uint8
	Row   uint32
}

// Set the reserved bytes to 0xFF and the filler to 0,1,2... This is the part of
// a stamped record that never changes between records.
func ResetStamp(record []byte) {
	for i := 0; i < StampFillerIndex && i < len(record); i++ {
		record[i] = ReservedByte
	}
	for i := StampFillerIndex; i < len(record); i++ {
		record[i] = byte(i - StampFillerIndex)
	}
}

// Write only the cycle and row fields into an already reset record
func StampFields(record []byte, stamp StampRecord) {
	record[StampCycleIndex] = stamp.Cycle
	Write4ByteValue(stamp.Row, record, StampRowIndex)
}

// Fully encode a stamped record into the given buffer. The buffer length is the
// record size.
func EncodeStamp(record []byte, stamp StampRecord) error {
	if len(record) < StampHeaderLength {
		return fmt.Errorf("Stamped record too small! Need at least %d bytes, got %d", StampHeaderLength, len(record))
	}
	ResetStamp(record)
	StampFields(record, stamp)
	return nil
}

func DecodeStamp(record []byte) (StampRecord, error) {
	if len(record) < StampHeaderLength {
		return StampRecord{}, fmt.Errorf("Stamped record too small! Need at least %d bytes, got %d", StampHeaderLength, len(record))
	}
	return StampRecord{
		Cycle: record[StampCycleIndex],
		Row:   Get4ByteValue(record, StampRowIndex),
	}, nil
}

// The value of the integrity accumulator after the given number of records
func IntegrityAccumulator(record uint64) uint32 {
	return uint32(record) * IntegrityStep
}

// The four distinct words derived from one accumulator value
func IntegrityValues(accumulator uint32) [4]uint32 {
	return [4]uint32{
		accumulator,
		accumulator ^ IntegrityMaskInvert,
		accumulator ^ IntegrityMaskEven,
		accumulator ^ IntegrityMaskOdd,
	}
}

// Encode a 64 byte integrity record: the four values repeated four times
func EncodeIntegrity(record []byte, accumulator uint32) error {
	if len(record) < IntegrityRecordSize {
		return fmt.Errorf("Integrity record too small! Need %d bytes, got %d", IntegrityRecordSize, len(record))
	}
	putIntegrity(record, accumulator)
	return nil
}

// EncodeIntegrity without the length check; record must hold 64 bytes
func putIntegrity(record []byte, accumulator uint32) {
	values := IntegrityValues(accumulator)
	for i := 0; i < IntegrityWordCount; i++ {
		Write4ByteValue(values[i&3], record, i*4)
	}
}

func DecodeIntegrity(record []byte) ([IntegrityWordCount]uint32, error) {
	var words [IntegrityWordCount]uint32
	if len(record) < IntegrityRecordSize {
		return words, fmt.Errorf("Integrity record too small! Need %d bytes, got %d", IntegrityRecordSize, len(record))
	}
	for i := range words {
		words[i] = Get4ByteValue(record, i*4)
	}
	return words, nil
}
