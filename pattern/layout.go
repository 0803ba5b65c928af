package pattern

// One field of a record, as reported by the layout command
type FieldInfo struct {
	Name     string
	Offset   int
	Length   int
	Encoding string
}

// A description of what a run with this mode + geometry would produce
type LayoutInfo struct {
	Mode         string
	RecordSize   int
	CyclesPerRow int
	BytesPerRow  uint64
	Rows         uint64
	Records      uint64
	OutputSize   uint64
	Fields       []FieldInfo
}

func DescribeLayout(mode Mode, geometry Geometry) (*LayoutInfo, error) {
	if err := geometry.Validate(mode); err != nil {
		return nil, err
	}
	result := LayoutInfo{
		Mode:         mode.String(),
		RecordSize:   geometry.BytesPerCycle,
		CyclesPerRow: geometry.CyclesPerRow,
		BytesPerRow:  geometry.BytesPerRow(),
		Rows:         geometry.RowCount(),
		Records:      geometry.RecordCount(),
		OutputSize:   geometry.OutputSize(),
	}
	if mode.Stamped() {
		result.Fields = []FieldInfo{
			{"cycle", StampCycleIndex, 1, "uint8"},
			{"reserved", StampReserved1Index, 2, "0xFF"},
			{"row", StampRowIndex, 4, "uint32 big endian"},
			{"reserved", StampReserved2Index, 2, "0xFF"},
			{"filler", StampFillerIndex, geometry.BytesPerCycle - StampFillerIndex, "0,1,2..."},
		}
	} else {
		names := []string{"value", "value^FFFFFFFF", "value^AAAAAAAA", "value^55555555"}
		for i := 0; i < IntegrityWordCount; i++ {
			result.Fields = append(result.Fields, FieldInfo{names[i&3], i * 4, 4, "uint32 big endian"})
		}
	}
	return &result, nil
}
