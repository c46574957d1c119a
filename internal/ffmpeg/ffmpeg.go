package ffmpeg

import (
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LayorX/video-ratio-tool/internal/config"
	"github.com/LayorX/video-ratio-tool/internal/geometry"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// CodecSettings holds the encoder configuration for an output container
type CodecSettings struct {
	VideoCodec string
	AudioCodec string
	ExtraArgs  ffmpeg.KwArgs
}

var codecPresets = map[string]CodecSettings{
	".mp4": {
		VideoCodec: "libx264",
		AudioCodec: "aac",
		ExtraArgs: ffmpeg.KwArgs{
			"preset":   "medium",
			"movflags": "+faststart",
		},
	},
	".mov": {
		VideoCodec: "libx264",
		AudioCodec: "aac",
		ExtraArgs: ffmpeg.KwArgs{
			"preset": "medium",
		},
	},
	".avi": {
		VideoCodec: "mpeg4",
		AudioCodec: "libmp3lame",
		ExtraArgs: ffmpeg.KwArgs{
			"q:v": 3,
		},
	},
}

// GetCodecSettings returns encoder settings for an output extension,
// falling back to the mp4 configuration
func GetCodecSettings(extension string) CodecSettings {
	if settings, ok := codecPresets[strings.ToLower(extension)]; ok {
		return settings
	}
	return codecPresets[".mp4"]
}

// CheckAvailable verifies that the ffmpeg and ffprobe executables are
// installed, returning install instructions when they are not
func CheckAvailable() error {
	for _, binary := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(binary); err != nil {
			return fmt.Errorf("%s not found in PATH; install it first, e.g.\n"+
				"  macOS:  brew install ffmpeg\n"+
				"  Debian: apt-get install ffmpeg\n"+
				"  Other:  https://ffmpeg.org/download.html", binary)
		}
	}
	return nil
}

// VideoMetadata contains metadata about a video file
type VideoMetadata struct {
	Duration float64
	Width    int
	Height   int
	Codec    string
	FPS      float64
}

// Processor wraps FFmpeg functionality
type Processor struct {
	verbose bool
}

// NewProcessor creates a new FFmpeg processor
func NewProcessor(verbose bool) *Processor {
	return &Processor{
		verbose: verbose,
	}
}

// GetVideoMetadata retrieves metadata about a video file
func (p *Processor) GetVideoMetadata(inputPath string) (*VideoMetadata, error) {
	probe, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error probing video: %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return nil, errors.WithStack(err)
	}

	streams, ok := data["streams"].([]interface{})
	if !ok || len(streams) == 0 {
		return nil, fmt.Errorf("no streams found in video")
	}

	var videoStream map[string]interface{}
	for _, stream := range streams {
		s := stream.(map[string]interface{})
		if s["codec_type"].(string) == "video" {
			videoStream = s
			break
		}
	}

	if videoStream == nil {
		return nil, fmt.Errorf("no video stream found")
	}

	meta := &VideoMetadata{}

	width, wok := videoStream["width"].(float64)
	height, hok := videoStream["height"].(float64)
	if !wok || !hok || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("could not determine video dimensions")
	}
	meta.Width = int(width)
	meta.Height = int(height)

	if codec, ok := videoStream["codec_name"].(string); ok {
		meta.Codec = codec
	}

	// Stream duration first, format duration as fallback
	if durationStr, ok := videoStream["duration"].(string); ok {
		if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
			meta.Duration = d
		}
	}
	if meta.Duration == 0 {
		if format, ok := data["format"].(map[string]interface{}); ok {
			if durationStr, ok := format["duration"].(string); ok {
				if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
					meta.Duration = d
				}
			}
		}
	}

	if rFrameRate, ok := videoStream["r_frame_rate"].(string); ok {
		meta.FPS = parseFrameRate(rFrameRate)
	}

	return meta, nil
}

// parseFrameRate parses ffprobe's "num/den" frame rate notation
func parseFrameRate(s string) float64 {
	nums := strings.Split(s, "/")
	if len(nums) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(nums[0], 64)
	den, err2 := strconv.ParseFloat(nums[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}

// Crop re-encodes a video cropped to the plan's centered rectangle
func (p *Processor) Crop(inputPath, outputPath string, plan geometry.CropPlan, meta *VideoMetadata) error {
	filter := fmt.Sprintf("crop=%d:%d:%d:%d", plan.Width, plan.Height, plan.X, plan.Y)
	return p.transcode(inputPath, outputPath, filter, meta)
}

// Letterbox re-encodes a video centered on an expanded canvas filled
// with the pad color
func (p *Processor) Letterbox(inputPath, outputPath string, plan geometry.LetterboxPlan, meta *VideoMetadata) error {
	filter := fmt.Sprintf("pad=%d:%d:%d:%d:%s",
		plan.Width, plan.Height, plan.X, plan.Y, config.PadColor)
	return p.transcode(inputPath, outputPath, filter, meta)
}

func (p *Processor) transcode(inputPath, outputPath, filter string, meta *VideoMetadata) error {
	codecSettings := GetCodecSettings(filepath.Ext(outputPath))

	outputKwargs := ffmpeg.KwArgs{
		"c:v":     codecSettings.VideoCodec,
		"c:a":     codecSettings.AudioCodec,
		"vf":      filter,
		"pix_fmt": "yuv420p",
	}
	for k, v := range codecSettings.ExtraArgs {
		outputKwargs[k] = v
	}

	// Preserve the source frame rate across the re-encode
	if meta != nil && meta.FPS > 0 {
		outputKwargs["r"] = fmt.Sprintf("%g", meta.FPS)
	}

	stream := ffmpeg.Input(inputPath).Output(outputPath, outputKwargs)

	if p.verbose {
		log.Printf("FFmpeg command: %s\n", stream.String())
	}

	if err := stream.OverWriteOutput().ErrorToStdOut().Run(); err != nil {
		return errors.Wrapf(err, "ffmpeg failed for %s", inputPath)
	}

	return nil
}
