package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/randomouscrap98/bigdata/pattern"
	"github.com/urfave/cli/v3"
)

// Writes the requested output type to filename. totalSize of 0 means the
// usual 4GB.
func generateAction(args cli.Args, filename string, totalSize uint64) (string, error) {
	mode := pattern.ModeLegacy
	multimode := args.Len() > 0
	if multimode {
		var err error
		mode, err = pattern.ParseModeArgument(args.First())
		if err != nil || args.Len() > 1 {
			return "", fmt.Errorf("Illegal output type '%s' (must be 1 or 2)", strings.Join(args.Slice(), " "))
		}
	}
	geometry := pattern.Preset(mode)
	if totalSize > 0 {
		geometry.TotalSize = totalSize
	}
	_, err := pattern.GenerateFile(filename, mode, geometry, 1)
	if err != nil {
		return "", err
	}
	if !multimode {
		return "", nil
	}
	return confirmation(mode, filename), nil
}

func newApp(filename string, totalSize uint64) *cli.Command {
	return &cli.Command{
		Name:  "bigdata",
		Usage: "Write a 4GB file of row/cycle stamped test data",
		Description: "With no arguments, writes 32 byte records (64 per row) stamped with their row and cycle " +
			"numbers. Output type 1 writes 64 byte stamped records (32 per row), output type 2 writes " +
			"64 byte XOR integrity-test records. The output always goes to " + filename + ".",
		ArgsUsage: "[1|2]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			message, err := generateAction(cmd.Args(), filename, totalSize)
			if err != nil {
				return err
			}
			if message != "" {
				fmt.Println(message)
			}
			return nil
		},
	}
}

func main() {
	if err := newApp(pattern.DefaultFilename, 0).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
