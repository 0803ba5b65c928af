package pattern

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	FileBufferSize = 1 << 20
)

// Everything worth reporting about a generated file
type FileResult struct {
	Filename string
	Mode     string
	Length   uint64
	Rows     uint64
	Records  uint64
	Workers  int
	MD5      string `json:",omitempty"` // Not computed for parallel runs
}

// What GenerateFile writes into. *os.File in practice.
type fileSink interface {
	io.Writer
	io.WriterAt
	io.Closer
}

// Create (or truncate) the file at path and fill it with the pattern. The
// geometry is checked before the file is touched. With more than one worker
// the rows are written in parallel at their final offsets.
func GenerateFile(path string, mode Mode, geometry Geometry, workers int) (*FileResult, error) {
	if err := geometry.Validate(mode); err != nil {
		return nil, err
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("Can't create %s: %w", path, err)
	}
	return fillFile(file, path, mode, geometry, workers)
}

// Write the whole run into file and close it. The file is closed on every path.
func fillFile(file fileSink, path string, mode Mode, geometry Geometry, workers int) (*FileResult, error) {
	if workers < 1 {
		workers = 1
	}
	log.Printf("Writing %d rows of %s data (%d bytes) to %s\n",
		geometry.RowCount(), mode, geometry.OutputSize(), path)

	var result *Result
	var err error
	hash := ""
	if workers > 1 {
		result, err = GenerateParallel(file, mode, geometry, workers)
	} else {
		hasher := md5.New()
		buffered := bufio.NewWriterSize(io.MultiWriter(file, hasher), FileBufferSize)
		result, err = Generate(buffered, mode, geometry)
		if err == nil {
			err = buffered.Flush()
		}
		hash = hex.EncodeToString(hasher.Sum(nil))
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("Couldn't write %s: %w", path, err)
	}
	if err = file.Close(); err != nil {
		return nil, fmt.Errorf("Couldn't close %s: %w", path, err)
	}
	log.Printf("Wrote %d records to %s\n", result.Records, path)

	return &FileResult{
		Filename: path,
		Mode:     mode.String(),
		Length:   result.Length,
		Rows:     result.Rows,
		Records:  result.Records,
		Workers:  workers,
		MD5:      hash,
	}, nil
}
