package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Ratio is a target aspect ratio expressed as two positive integers
type Ratio struct {
	W int
	H int
}

// ParseRatio parses a "W:H" string such as "1:1" or "9:16"
func ParseRatio(s string) (Ratio, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Ratio{}, fmt.Errorf("invalid aspect ratio %q: expected format like '1:1' or '9:16'", s)
	}

	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Ratio{}, fmt.Errorf("invalid aspect ratio %q: width component is not a number", s)
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Ratio{}, fmt.Errorf("invalid aspect ratio %q: height component is not a number", s)
	}

	if w <= 0 || h <= 0 {
		return Ratio{}, fmt.Errorf("invalid aspect ratio %q: components must be positive", s)
	}

	return Ratio{W: w, H: h}, nil
}

// Scalar returns the ratio as a single width/height value
func (r Ratio) Scalar() float64 {
	return float64(r.W) / float64(r.H)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.W, r.H)
}

// Method selects how a frame is fitted to the target ratio
type Method string

const (
	MethodCrop      Method = "crop"
	MethodLetterbox Method = "letterbox"
)

// ParseMethod validates a conversion method name
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(s)) {
	case MethodCrop:
		return MethodCrop, nil
	case MethodLetterbox:
		return MethodLetterbox, nil
	}
	return "", fmt.Errorf("invalid conversion method %q (supported: %s)",
		s, strings.Join(SupportedMethods(), ", "))
}

// SupportedMethods returns the method names in sorted order
func SupportedMethods() []string {
	methods := []string{string(MethodCrop), string(MethodLetterbox)}
	slices.Sort(methods)
	return methods
}

// Dimensions represents width and height of a video frame
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) aspect() float64 {
	return float64(d.Width) / float64(d.Height)
}

// CropPlan is a centered crop rectangle within the source frame
type CropPlan struct {
	Width  int
	Height int
	X      int
	Y      int
}

// LetterboxPlan is an expanded canvas with the source frame centered on it
type LetterboxPlan struct {
	Width  int
	Height int
	X      int // offset of the source frame within the canvas
	Y      int
}

// evenDown rounds n down to an even value, as required by yuv420p
// chroma subsampling
func evenDown(n int) int {
	if n%2 != 0 {
		n--
	}
	return n
}

// CropDimensions computes the centered crop rectangle that fits the
// target ratio inside the source frame. Only one axis is reduced; the
// reduced dimension is rounded down to even.
func CropDimensions(src Dimensions, target Ratio) CropPlan {
	if src.aspect() > target.Scalar() {
		// Source wider than target: trim the sides
		newWidth := evenDown(int(float64(src.Height) * target.Scalar()))
		return CropPlan{
			Width:  newWidth,
			Height: src.Height,
			X:      (src.Width - newWidth) / 2,
			Y:      0,
		}
	}

	// Source taller than target: trim top and bottom
	newHeight := evenDown(int(float64(src.Width) / target.Scalar()))
	return CropPlan{
		Width:  src.Width,
		Height: newHeight,
		X:      0,
		Y:      (src.Height - newHeight) / 2,
	}
}

// LetterboxDimensions computes the canvas that fits the target ratio
// around the source frame. Only one axis is expanded; the expanded
// dimension is rounded down to even.
func LetterboxDimensions(src Dimensions, target Ratio) LetterboxPlan {
	if src.aspect() > target.Scalar() {
		// Source wider than target: pad above and below
		finalHeight := evenDown(int(float64(src.Width) / target.Scalar()))
		return LetterboxPlan{
			Width:  src.Width,
			Height: finalHeight,
			X:      0,
			Y:      (finalHeight - src.Height) / 2,
		}
	}

	// Source taller than target: pad the sides
	finalWidth := evenDown(int(float64(src.Height) * target.Scalar()))
	return LetterboxPlan{
		Width:  finalWidth,
		Height: src.Height,
		X:      (finalWidth - src.Width) / 2,
		Y:      0,
	}
}
