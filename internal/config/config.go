package config

// ConvertOptions defines options for batch aspect-ratio conversion
type ConvertOptions struct {
	InputDir     string
	OutputDir    string
	TargetRatio  string // e.g. "1:1" or "9:16"
	Method       string // "crop" or "letterbox"
	Preset       string // named ratio+method preset; explicit ratio/method win
	OutputSuffix string
	Verbose      bool
}

const (
	// Defaults matching the tool's original hard-coded parameters
	DefaultInputDir     = "work_place"
	DefaultOutputDir    = "output_place"
	DefaultTargetRatio  = "9:16"
	DefaultMethod       = "crop"
	DefaultOutputSuffix = "_Shorts"

	// Letterbox padding color
	PadColor = "black"
)

// VideoExtensions lists the input file extensions the converter picks up
var VideoExtensions = []string{".mp4", ".mov", ".avi"}
