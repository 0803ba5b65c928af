package pattern

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// A saved run configuration, read from toml:
//
//	mode = "integrity"
//	output = "bigdata.dat"
//	workers = 1
//
//	[geometry]
//	bytes_per_cycle = 64
//	cycles_per_row = 32
//	total_size = 4294967296
type Profile struct {
	Mode     string   `toml:"mode"`
	Output   string   `toml:"output"`
	Workers  int      `toml:"workers"`
	Geometry Geometry `toml:"geometry"`
}

func ParseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := toml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("Couldn't parse profile: %w", err)
	}
	return &profile, nil
}

func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfile(data)
}

// Fill in everything the profile left out and return the parsed mode.
// Geometry defaults depend on the mode, so the mode is resolved first.
func (p *Profile) Resolve() (Mode, error) {
	if p.Mode == "" {
		p.Mode = ModeLegacy.String()
	}
	mode, err := ParseMode(p.Mode)
	if err != nil {
		return 0, err
	}
	if p.Output == "" {
		p.Output = DefaultFilename
	}
	if p.Workers < 1 {
		p.Workers = 1
	}
	p.Geometry.ReasonableDefaults(mode)
	return mode, nil
}
