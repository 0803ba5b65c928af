package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/randomouscrap98/bigdata/pattern"
)

// Write length bytes of 0,1,2...255,0,1... to filename. The file is always
// closed, even when the write fails.
func writeLinear(filename string, length uint64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("can't create file: %w", err)
	}

	buffered := bufio.NewWriterSize(file, pattern.FileBufferSize)
	wep := pattern.NewWriteErrorPass(buffered)
	chunk := make([]byte, 4096)
	next := byte(0)
	for remaining := length; remaining > 0 && wep.IsPass() == nil; {
		size := uint64(len(chunk))
		if remaining < size {
			size = remaining
		}
		next = pattern.FillLinear(chunk[:size], next)
		wep.WritePass(chunk[:size])
		remaining -= size
	}
	if err = wep.IsPass(); err == nil {
		err = buffered.Flush()
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("can't write file: %w", err)
	}
	return file.Close()
}

// Writes just the filler half of the pattern: a run of 0,1,2...255,0,1...
// Useful when a consumer only needs to check byte ordering.
func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: lineardata <filename> <length>")
		os.Exit(1)
	}

	length, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		fmt.Println("Error: can't parse length: ", err)
		os.Exit(1)
	}

	filename := os.Args[1]
	if err = writeLinear(filename, length); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Println("Wrote file ", filename)
}
