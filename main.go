package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"colorgram/extract"
	"colorgram/palette"
	"colorgram/parallel"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Images         []string `arg:"" help:"Images to extract colors from" type:"existingfile"`
	Colors         int      `short:"c" help:"Amount of colors to extract" default:"10"`
	Method         string   `help:"Clustering method" enum:"mediancut,kmeans" default:"mediancut"`
	AlphaThreshold uint8    `help:"Minimum alpha for a pixel to count" default:"16"`
	MaxDimension   int      `help:"Downscale images so their longest side does not exceed this before sampling. 0 keeps the original size." default:"0"`
	Format         string   `help:"Output format" enum:"text,json" default:"text"`
	Pal            string   `help:"Write the palette to a RIFF PAL file. Single image only." type:"path"`
	Jobs           int      `help:"Number of images to process in parallel, 0 uses all CPUs" default:"1"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Colors < 1 {
		return fmt.Errorf("invalid color amount: %d", c.Colors)
	}
	if c.MaxDimension < 0 {
		return fmt.Errorf("invalid max dimension: %d", c.MaxDimension)
	}
	if c.Pal != "" && len(c.Images) != 1 {
		return fmt.Errorf("PAL export needs exactly one image, got %d", len(c.Images))
	}
	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	opts := extract.Options{
		AlphaThreshold: c.AlphaThreshold,
		MaxDimension:   c.MaxDimension,
	}
	if c.Method == "kmeans" {
		opts.Method = extract.MethodKMeans
	}

	palettes := make([][]extract.Color, len(c.Images))
	errs := make([]error, len(c.Images))
	for i, path := range c.Images {
		pool.Do(func() {
			palettes[i], errs[i] = extract.ExtractWithOptions(path, c.Colors, opts)
		})
	}
	pool.Wait()

	var errCount int
	results := make([]imageResult, 0, len(c.Images))
	for i, path := range c.Images {
		if errs[i] != nil {
			errCount++
			slog.Error("could not extract colors", "file", path, "error", errs[i])
			continue
		}
		results = append(results, imageResult{File: path, Colors: palettes[i]})
	}

	if err := c.print(results); err != nil {
		return err
	}

	if c.Pal != "" && len(results) == 1 {
		if err := writePALFile(c.Pal, results[0].Colors); err != nil {
			return err
		}
	}

	if errCount > 0 {
		return fmt.Errorf("error processing %d images", errCount)
	}
	return nil
}

type imageResult struct {
	File   string          `json:"file"`
	Colors []extract.Color `json:"colors"`
}

func (c *CLICmd) print(results []imageResult) error {
	if c.Format == "json" {
		buf, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("could not encode results: %w", err)
		}
		fmt.Println(string(buf))
		return nil
	}

	for _, res := range results {
		if len(c.Images) > 1 {
			fmt.Printf("%s:\n", res.File)
		}
		for _, col := range res.Colors {
			// Swatch on the color itself, text in the inverted color.
			fmt.Printf("\x1b[1;38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm %6.2f%%  %-18s %-20s\x1b[0m\n",
				255-col.RGB.R, 255-col.RGB.G, 255-col.RGB.B,
				col.RGB.R, col.RGB.G, col.RGB.B,
				col.Proportion*100, col.RGB, col.HSL)
		}
	}
	return nil
}

func writePALFile(path string, colors []extract.Color) (err error) {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", path, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close palette file %q: %w", path, closeErr)
		}
	}()

	n, err := palette.WritePAL(outFile, colors)
	if err != nil {
		return fmt.Errorf("could not write palette file %q: %w", path, err)
	}

	slog.Info("palette written", "file", path, "colors", n)
	return nil
}

func main() {
	var cli CLICmd
	kctx := kong.Parse(&cli,
		kong.Name("colorgram"),
		kong.Description("Extract a weighted palette of dominant colors from images"))

	kctx.FatalIfErrorf(cli.Run(parallel.Start(cli.Jobs)))
}
