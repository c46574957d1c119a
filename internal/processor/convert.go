package processor

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/LayorX/video-ratio-tool/internal/config"
	ffmpegWrap "github.com/LayorX/video-ratio-tool/internal/ffmpeg"
	"github.com/LayorX/video-ratio-tool/internal/geometry"
	"github.com/pkg/errors"
)

// Summary reports what a conversion run did
type Summary struct {
	Converted int
	Failed    int
}

// Converter handles batch aspect-ratio conversion of a folder
type Converter struct {
	opts   *config.ConvertOptions
	ffmpeg *ffmpegWrap.Processor
}

// NewConverter creates a new folder converter
func NewConverter(opts *config.ConvertOptions) *Converter {
	return &Converter{
		opts:   opts,
		ffmpeg: ffmpegWrap.NewProcessor(opts.Verbose),
	}
}

// Process converts every video file in the input directory. Options are
// validated before any directory work happens; a failure on one file is
// logged and the remaining files are still processed.
func (c *Converter) Process() (*Summary, error) {
	ratio, err := geometry.ParseRatio(c.opts.TargetRatio)
	if err != nil {
		return nil, err
	}

	method, err := geometry.ParseMethod(c.opts.Method)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(c.opts.InputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("input directory does not exist: %s", c.opts.InputDir)
	}

	if err := ffmpegWrap.CheckAvailable(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %v", err)
	}

	entries, err := os.ReadDir(c.opts.InputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read input directory %s", c.opts.InputDir)
	}

	if c.opts.Verbose {
		log.Printf("Processing folder %s -> %s (ratio %s, method %s)\n",
			c.opts.InputDir, c.opts.OutputDir, ratio, method)
	}

	summary := &Summary{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsVideoFile(entry.Name()) {
			continue
		}

		if err := c.convertOne(entry.Name(), ratio, method); err != nil {
			log.Printf("Error processing %s: %v", entry.Name(), err)
			summary.Failed++
			continue
		}
		summary.Converted++
	}

	return summary, nil
}

func (c *Converter) convertOne(filename string, ratio geometry.Ratio, method geometry.Method) error {
	inputPath := filepath.Join(c.opts.InputDir, filename)

	metadata, err := c.ffmpeg.GetVideoMetadata(inputPath)
	if err != nil {
		return errors.Wrap(err, "failed to get video metadata")
	}

	src := geometry.Dimensions{Width: metadata.Width, Height: metadata.Height}
	outputPath := filepath.Join(c.opts.OutputDir, OutputFileName(filename, c.opts.OutputSuffix))

	switch method {
	case geometry.MethodCrop:
		plan := geometry.CropDimensions(src, ratio)
		if c.opts.Verbose {
			log.Printf("Cropping %s: %dx%d -> %dx%d at (%d,%d)\n",
				filename, src.Width, src.Height, plan.Width, plan.Height, plan.X, plan.Y)
		}
		if err := c.ffmpeg.Crop(inputPath, outputPath, plan, metadata); err != nil {
			return err
		}

	case geometry.MethodLetterbox:
		plan := geometry.LetterboxDimensions(src, ratio)
		if c.opts.Verbose {
			log.Printf("Letterboxing %s: %dx%d -> %dx%d canvas, frame at (%d,%d)\n",
				filename, src.Width, src.Height, plan.Width, plan.Height, plan.X, plan.Y)
		}
		if err := c.ffmpeg.Letterbox(inputPath, outputPath, plan, metadata); err != nil {
			return err
		}

	default:
		return fmt.Errorf("invalid conversion method %q, skipping %s", method, filename)
	}

	fmt.Printf("Saved %s\n", outputPath)
	return nil
}

// OutputFileName builds the converted file's name as stem+suffix+extension
func OutputFileName(filename, suffix string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	return stem + suffix + ext
}

// IsVideoFile reports whether a file name carries a supported video
// extension, compared case-insensitively
func IsVideoFile(name string) bool {
	return slices.Contains(config.VideoExtensions, strings.ToLower(filepath.Ext(name)))
}
