package pattern

import (
	"encoding/binary"
)

// Read a 4 byte big endian value in the middle of data
func Get4ByteValue(data []byte, index int) uint32 {
	return binary.BigEndian.Uint32(data[index : index+4])
}

// Write a 4 byte big endian value directly into the middle of data
func Write4ByteValue(value uint32, data []byte, index int) {
	binary.BigEndian.PutUint32(data[index:index+4], value)
}

// Fill the given buffer with the same incrementing sequence the stamped record
// filler uses, starting at the given value. Returns the next value.
func FillLinear(data []byte, start byte) byte {
	for i := range data {
		data[i] = start
		start++
	}
	return start
}
