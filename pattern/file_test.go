package pattern

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateFile_Sequential(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	g := smallGeometry(ModeSequential, 12)
	result, err := GenerateFile(path, ModeSequential, g, 1)
	require.NoError(t, err)
	require.Equal(t, path, result.Filename)
	require.Equal(t, "sequential", result.Mode)
	require.Equal(t, uint64(12), result.Rows)
	require.Equal(t, uint64(12*32), result.Records)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, g.OutputSize(), uint64(len(data)))
	sum := md5.Sum(data)
	require.Equal(t, hex.EncodeToString(sum[:]), result.MD5)
	checkStamped(t, data, g)
}

func TestGenerateFile_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.dat")
	require.NoError(t, os.WriteFile(path, make([]byte, 1<<16), 0644))
	g := smallGeometry(ModeIntegrity, 2)
	_, err := GenerateFile(path, ModeIntegrity, g, 1)
	require.NoError(t, err)
	stat, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(g.OutputSize()), stat.Size())
}

func TestGenerateFile_Parallel(t *testing.T) {
	dir := t.TempDir()
	g := smallGeometry(ModeLegacy, 20)
	single, err := GenerateFile(filepath.Join(dir, "single.dat"), ModeLegacy, g, 1)
	require.NoError(t, err)
	multi, err := GenerateFile(filepath.Join(dir, "multi.dat"), ModeLegacy, g, 3)
	require.NoError(t, err)
	require.Empty(t, multi.MD5)
	require.Equal(t, 3, multi.Workers)

	data, err := os.ReadFile(multi.Filename)
	require.NoError(t, err)
	sum := md5.Sum(data)
	require.Equal(t, single.MD5, hex.EncodeToString(sum[:]))
}

func TestGenerateFile_BadGeometryCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")
	_, err := GenerateFile(path, ModeIntegrity, Geometry{BytesPerCycle: 32, CyclesPerRow: 64, TotalSize: 1 << 20}, 1)
	require.ErrorIs(t, err, ErrInvalidGeometry)
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "file should not have been created")
}

func TestGenerateFile_CantCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "bigdata.dat")
	_, err := GenerateFile(path, ModeLegacy, smallGeometry(ModeLegacy, 1), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't create")
}

// Fails both kinds of writes past limit and remembers being closed
type failingFile struct {
	failingWriterAt
	written int64
	closed  bool
}

func (f *failingFile) Write(b []byte) (int, error) {
	n, err := f.WriteAt(b, f.written)
	f.written += int64(n)
	return n, err
}

func (f *failingFile) Close() error {
	f.closed = true
	return nil
}

func TestFillFile_SurfacesWriteFailure(t *testing.T) {
	for _, workers := range []int{1, 4} {
		g := smallGeometry(ModeIntegrity, 20)
		file := failingFile{failingWriterAt: failingWriterAt{limit: int64(5 * g.BytesPerRow())}}
		result, err := fillFile(&file, "broken.dat", ModeIntegrity, g, workers)
		require.ErrorIs(t, err, errDiskFull, "workers %d", workers)
		require.Contains(t, err.Error(), "broken.dat")
		require.Nil(t, result)
		require.True(t, file.closed, "workers %d: file left open", workers)
	}
}
