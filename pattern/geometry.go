package pattern

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultTotalSize = uint64(1) << 32 // Every file targets exactly 4GB before row truncation
	DefaultFilename  = "bigdata.dat"
	MaxRowCount      = uint64(1) << 32 // The row field is only 4 bytes wide
	MaxBytesPerRow   = uint64(1) << 30 // A row is built in one buffer
)

var (
	ErrInvalidMode     = errors.New("invalid output type")
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Which generation algorithm (and thus which record layout) to use
type Mode int

const (
	ModeLegacy     Mode = 0 // 32 byte stamped records, 64 per row (the original single generator)
	ModeSequential Mode = 1 // 64 byte stamped records, 32 per row
	ModeIntegrity  Mode = 2 // 64 byte XOR integrity records, 32 per row
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeSequential:
		return "sequential"
	case ModeIntegrity:
		return "integrity"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Whether the records in this mode carry the row/cycle stamp
func (m Mode) Stamped() bool {
	return m == ModeLegacy || m == ModeSequential
}

// Parse a mode either by name or by number (0, 1, 2). Used by the profile and
// the tools, which can also select the legacy layout.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "0", "legacy":
		return ModeLegacy, nil
	case "1", "sequential":
		return ModeSequential, nil
	case "2", "integrity":
		return ModeIntegrity, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidMode, name)
}

// Parse the single numeric argument of the multi-mode front end. Only 1 and 2
// are accepted there; anything else is a user error.
func ParseModeArgument(arg string) (Mode, error) {
	value, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || (value != int(ModeSequential) && value != int(ModeIntegrity)) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMode, arg)
	}
	return Mode(value), nil
}

// The shape of the output: how big a record is, how many records share a row
// and how much data to aim for in total.
type Geometry struct {
	BytesPerCycle int    `toml:"bytes_per_cycle" help:"Size of one record in bytes (default: from mode)"`
	CyclesPerRow  int    `toml:"cycles_per_row" help:"Records sharing one row index (default: from mode)"`
	TotalSize     uint64 `toml:"total_size" help:"Target output size before row truncation (default: 4GB)"`
}

// The geometry each mode uses when nothing else is configured
func Preset(mode Mode) Geometry {
	switch mode {
	case ModeSequential:
		return Geometry{BytesPerCycle: SequentialRecordSize, CyclesPerRow: SequentialCyclesPerRow, TotalSize: DefaultTotalSize}
	case ModeIntegrity:
		return Geometry{BytesPerCycle: IntegrityRecordSize, CyclesPerRow: IntegrityCyclesPerRow, TotalSize: DefaultTotalSize}
	default:
		return Geometry{BytesPerCycle: LegacyRecordSize, CyclesPerRow: LegacyCyclesPerRow, TotalSize: DefaultTotalSize}
	}
}

// Fill any unset fields from the preset for the given mode
func (g *Geometry) ReasonableDefaults(mode Mode) {
	preset := Preset(mode)
	if g.BytesPerCycle == 0 {
		g.BytesPerCycle = preset.BytesPerCycle
	}
	if g.CyclesPerRow == 0 {
		g.CyclesPerRow = preset.CyclesPerRow
	}
	if g.TotalSize == 0 {
		g.TotalSize = preset.TotalSize
	}
}

func (g Geometry) BytesPerRow() uint64 {
	return uint64(g.BytesPerCycle) * uint64(g.CyclesPerRow)
}

// How many whole rows fit into the total size
func (g Geometry) RowCount() uint64 {
	bpr := g.BytesPerRow()
	if bpr == 0 {
		return 0
	}
	return g.TotalSize / bpr
}

func (g Geometry) RecordCount() uint64 {
	return g.RowCount() * uint64(g.CyclesPerRow)
}

// The exact number of bytes a full run writes
func (g Geometry) OutputSize() uint64 {
	return g.RowCount() * g.BytesPerRow()
}

// Check that this geometry can actually produce records for the given mode
func (g Geometry) Validate(mode Mode) error {
	if g.BytesPerCycle <= 0 || g.CyclesPerRow <= 0 {
		return fmt.Errorf("%w: bytes per cycle (%d) and cycles per row (%d) must be positive",
			ErrInvalidGeometry, g.BytesPerCycle, g.CyclesPerRow)
	}
	if uint64(g.BytesPerCycle) > math.MaxUint64/uint64(g.CyclesPerRow) || g.BytesPerRow() > MaxBytesPerRow {
		return fmt.Errorf("%w: rows of %d x %d bytes are larger than the %d byte maximum",
			ErrInvalidGeometry, g.BytesPerCycle, g.CyclesPerRow, MaxBytesPerRow)
	}
	switch mode {
	case ModeLegacy, ModeSequential:
		if g.BytesPerCycle < StampHeaderLength {
			return fmt.Errorf("%w: stamped records need at least %d bytes, got %d",
				ErrInvalidGeometry, StampHeaderLength, g.BytesPerCycle)
		}
	case ModeIntegrity:
		if g.BytesPerCycle != IntegrityRecordSize {
			return fmt.Errorf("%w: integrity records are always %d bytes, got %d",
				ErrInvalidGeometry, IntegrityRecordSize, g.BytesPerCycle)
		}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	rows := g.RowCount()
	if rows == 0 {
		return fmt.Errorf("%w: total size %d is smaller than one row (%d bytes)",
			ErrInvalidGeometry, g.TotalSize, g.BytesPerRow())
	}
	if rows > MaxRowCount {
		return fmt.Errorf("%w: %d rows don't fit in the 4 byte row field", ErrInvalidGeometry, rows)
	}
	return nil
}
