package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/randomouscrap98/bigdata/pattern"
)

const (
	AppVersion = "0.3.0"
)

// Quick way to fail on error, since most commands are "doing" something on
// behalf of something else.
func fatalIfErr(subject string, doing string, err error) {
	if err != nil {
		log.Fatalf("%s - Couldn't %s: %s", subject, doing, err)
	}
}

// Parse the mode (empty means legacy) and fill in the rest of the geometry
func resolveMode(name string, geometry *pattern.Geometry) pattern.Mode {
	if name == "" {
		name = pattern.ModeLegacy.String()
	}
	mode, err := pattern.ParseMode(name)
	fatalIfErr(name, "parse mode", err)
	geometry.ReasonableDefaults(mode)
	return mode
}

func forceCreate(fp string) *os.File {
	f, err := os.Create(fp)
	fatalIfErr(fp, "create write file", err)
	return f
}

// **********************************
// *       GENERATE COMMANDS        *
// **********************************

type GenerateCmd struct {
	Mode     string           `arg:"" optional:"" help:"Output type: legacy (0), sequential (1) or integrity (2)"`
	Outfile  string           `type:"path" short:"o" help:"Where to write the data (default: bigdata.dat)"`
	Config   string           `type:"existingfile" short:"c" help:"TOML profile with mode, output and geometry"`
	Workers  int              `short:"w" help:"Write rows in parallel with this many workers (default: 1)"`
	Geometry pattern.Geometry `embed:""`
}

func (c *GenerateCmd) Run() error {
	profile := &pattern.Profile{}
	if c.Config != "" {
		var err error
		profile, err = pattern.LoadProfile(c.Config)
		fatalIfErr(c.Config, "load profile", err)
		log.Printf("Loaded profile %s\n", c.Config)
	}
	// Command line always wins over the profile
	if c.Mode != "" {
		profile.Mode = c.Mode
	}
	if c.Outfile != "" {
		profile.Output = c.Outfile
	}
	if c.Workers > 0 {
		profile.Workers = c.Workers
	}
	if c.Geometry.BytesPerCycle > 0 {
		profile.Geometry.BytesPerCycle = c.Geometry.BytesPerCycle
	}
	if c.Geometry.CyclesPerRow > 0 {
		profile.Geometry.CyclesPerRow = c.Geometry.CyclesPerRow
	}
	if c.Geometry.TotalSize > 0 {
		profile.Geometry.TotalSize = c.Geometry.TotalSize
	}
	mode, err := profile.Resolve()
	fatalIfErr("generate", "resolve profile", err)
	result, err := pattern.GenerateFile(profile.Output, mode, profile.Geometry, profile.Workers)
	fatalIfErr("generate", "generate "+mode.String()+" data", err)
	PrintJson(result)
	return nil
}

type LayoutCmd struct {
	Mode     string           `arg:"" optional:"" help:"Output type: legacy (0), sequential (1) or integrity (2)"`
	Geometry pattern.Geometry `embed:""`
}

func (c *LayoutCmd) Run() error {
	mode := resolveMode(c.Mode, &c.Geometry)
	info, err := pattern.DescribeLayout(mode, c.Geometry)
	fatalIfErr("layout", "describe layout", err)
	PrintJson(info)
	return nil
}

// **********************************
// *       INSPECT COMMANDS         *
// **********************************

type SampleCmd struct {
	Mode     string           `arg:"" optional:"" help:"Output type: legacy (0), sequential (1) or integrity (2)"`
	Rows     uint64           `default:"2" help:"How many rows to dump"`
	Outfile  string           `type:"path" short:"o" help:"Write the hex here instead of stdout"`
	Geometry pattern.Geometry `embed:""`
}

func (c *SampleCmd) Run() error {
	mode := resolveMode(c.Mode, &c.Geometry)
	var out io.Writer = os.Stdout
	if c.Outfile != "" {
		file := forceCreate(c.Outfile)
		defer file.Close()
		out = file
	}
	err := pattern.WriteHexSample(out, mode, c.Geometry, c.Rows)
	fatalIfErr("sample", "write hex sample", err)
	if c.Outfile != "" {
		log.Printf("Wrote %d rows of %s data as hex to %s\n", c.Rows, mode, c.Outfile)
	}
	return nil
}

type PreviewCmd struct {
	Mode     string           `arg:"" optional:"" help:"Output type: legacy (0), sequential (1) or integrity (2)"`
	Rows     uint64           `default:"64" help:"How many rows to draw (one pixel line each)"`
	Outfile  string           `type:"path" short:"o"`
	Format   string           `enum:"png,gif,bmp,jpg" default:"png" help:"Image output format"`
	Low      string           `default:"#000000" help:"Color to use for byte value 0"`
	High     string           `default:"#FFFFFF" help:"Color to use for byte value 255"`
	Scale    int              `default:"1" help:"Pixel size of each byte"`
	Geometry pattern.Geometry `embed:""`
}

// Default image name, stamped so repeated previews don't clobber each other
func previewFilename(mode pattern.Mode, format string, now time.Time) string {
	return fmt.Sprintf("preview_%s_%s.%s", mode, now.Format("20060102-150405"), format)
}

func (c *PreviewCmd) Run() error {
	mode := resolveMode(c.Mode, &c.Geometry)
	if c.Outfile == "" {
		c.Outfile = previewFilename(mode, c.Format, time.Now())
	}
	imgfile := forceCreate(c.Outfile)
	defer imgfile.Close()
	err := pattern.RenderPreview(imgfile, mode, c.Geometry, c.Rows, pattern.PreviewOptions{
		Low:    c.Low,
		High:   c.High,
		Scale:  c.Scale,
		Format: c.Format,
	})
	fatalIfErr("preview", "render preview", err)
	stat, err := imgfile.Stat()
	fatalIfErr("preview", "get image file info", err)
	result := make(map[string]interface{})
	result["Outfile"] = c.Outfile
	result["Mode"] = mode.String()
	result["Rows"] = c.Rows
	result["ImageLength"] = stat.Size()
	PrintJson(result)
	return nil
}

// **********************************
// *        SCRIPT COMMANDS         *
// **********************************

type ScriptCmd struct {
	Infile    string   `arg:"" type:"existingfile" help:"The lua generator script to run"`
	Arguments []string `arg:"" optional:"" help:"Arguments passed to the script (see arguments())"`
	Dir       string   `type:"path" short:"d" help:"Folder generated files are relative to (optional)"`
}

func (c *ScriptCmd) Run() error {
	script, err := os.ReadFile(c.Infile)
	fatalIfErr(c.Infile, "read script", err)
	result, err := pattern.RunLuaGenerator(string(script), c.Arguments, c.Dir)
	fatalIfErr(c.Infile, "run script", err)
	log.Printf("Script %s generated %d files\n", c.Infile, len(result.Files))
	PrintJson(result)
	return nil
}

// **********************************
// *    ALL TOGETHER COMMANDS       *
// **********************************

var cli struct {
	Generate GenerateCmd      `cmd:"" help:"Generate a full test data file"`
	Layout   LayoutCmd        `cmd:"" help:"Describe the record layout and output size for a mode"`
	Sample   SampleCmd        `cmd:"" help:"Dump the first rows of a mode as intel hex"`
	Preview  PreviewCmd       `cmd:"" help:"Draw the first rows of a mode as an image"`
	Script   ScriptCmd        `cmd:"" help:"Run a lua script which generates one or more files"`
	Version  kong.VersionFlag `help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("bigdatatools"),
		kong.ShortUsageOnError(),
		kong.Description("Tools for generating large, predictable test data files"),
		kong.Vars{
			"version": AppVersion,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
