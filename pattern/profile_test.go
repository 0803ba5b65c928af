package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProfile_Full(t *testing.T) {
	profile, err := ParseProfile([]byte(`
mode = "integrity"
output = "transfer.dat"
workers = 4

[geometry]
bytes_per_cycle = 64
cycles_per_row = 16
total_size = 1048576
`))
	require.NoError(t, err)
	mode, err := profile.Resolve()
	require.NoError(t, err)
	require.Equal(t, ModeIntegrity, mode)
	require.Equal(t, "transfer.dat", profile.Output)
	require.Equal(t, 4, profile.Workers)
	require.Equal(t, Geometry{BytesPerCycle: 64, CyclesPerRow: 16, TotalSize: 1048576}, profile.Geometry)
}

func TestParseProfile_Defaults(t *testing.T) {
	profile, err := ParseProfile([]byte(`mode = "1"`))
	require.NoError(t, err)
	mode, err := profile.Resolve()
	require.NoError(t, err)
	require.Equal(t, ModeSequential, mode)
	require.Equal(t, DefaultFilename, profile.Output)
	require.Equal(t, 1, profile.Workers)
	require.Equal(t, Preset(ModeSequential), profile.Geometry)

	profile, err = ParseProfile([]byte(""))
	require.NoError(t, err)
	mode, err = profile.Resolve()
	require.NoError(t, err)
	require.Equal(t, ModeLegacy, mode)
	require.Equal(t, Preset(ModeLegacy), profile.Geometry)
}

func TestParseProfile_Errors(t *testing.T) {
	_, err := ParseProfile([]byte("mode = "))
	require.Error(t, err)

	profile, err := ParseProfile([]byte(`mode = "random"`))
	require.NoError(t, err)
	_, err = profile.Resolve()
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte("[geometry]\ntotal_size = 4096\n"), 0644))
	profile, err := LoadProfile(path)
	require.NoError(t, err)
	require.Equal(t, uint64(4096), profile.Geometry.TotalSize)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
