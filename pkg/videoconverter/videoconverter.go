// Package videoconverter is the public entrypoint for batch
// aspect-ratio conversion of video folders.
package videoconverter

import (
	"github.com/LayorX/video-ratio-tool/internal/config"
	"github.com/LayorX/video-ratio-tool/internal/geometry"
	"github.com/LayorX/video-ratio-tool/internal/preset"
	"github.com/LayorX/video-ratio-tool/internal/processor"
)

// ConvertOptions defines options for a folder conversion run
type ConvertOptions = config.ConvertOptions

// Defaults matching the tool's original hard-coded parameters
const (
	DefaultInputDir     = config.DefaultInputDir
	DefaultOutputDir    = config.DefaultOutputDir
	DefaultTargetRatio  = config.DefaultTargetRatio
	DefaultMethod       = config.DefaultMethod
	DefaultOutputSuffix = config.DefaultOutputSuffix
)

// Summary reports what a conversion run did
type Summary = processor.Summary

// ConvertFolder converts every supported video file in the input
// directory to the target aspect ratio
func ConvertFolder(opts *ConvertOptions) (*Summary, error) {
	return processor.NewConverter(opts).Process()
}

// GetSupportedMethods returns the conversion method names
func GetSupportedMethods() []string {
	return geometry.SupportedMethods()
}

// GetSupportedPresets returns the named ratio+method presets
func GetSupportedPresets() []preset.Preset {
	names := preset.Names()
	presets := make([]preset.Preset, 0, len(names))
	for _, name := range names {
		p, err := preset.Get(name)
		if err != nil {
			continue
		}
		presets = append(presets, p)
	}
	return presets
}

// ResolvePreset returns the ratio and method a preset name stands for
func ResolvePreset(name string) (ratio, method string, err error) {
	p, err := preset.Get(name)
	if err != nil {
		return "", "", err
	}
	return p.Ratio, p.Method, nil
}
