package geometry

import "testing"

func TestParseRatio(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Ratio
		wantErr bool
	}{
		{
			name:  "square",
			input: "1:1",
			want:  Ratio{W: 1, H: 1},
		},
		{
			name:  "portrait",
			input: "9:16",
			want:  Ratio{W: 9, H: 16},
		},
		{
			name:  "landscape",
			input: "16:9",
			want:  Ratio{W: 16, H: 9},
		},
		{
			name:    "not a ratio",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "missing separator",
			input:   "169",
			wantErr: true,
		},
		{
			name:    "too many components",
			input:   "16:9:1",
			wantErr: true,
		},
		{
			name:    "zero component",
			input:   "0:1",
			wantErr: true,
		},
		{
			name:    "negative component",
			input:   "-9:16",
			wantErr: true,
		},
		{
			name:    "non-numeric height",
			input:   "9:x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRatio(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRatio(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRatio(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{input: "crop", want: MethodCrop},
		{input: "letterbox", want: MethodLetterbox},
		{input: "Crop", want: MethodCrop},
		{input: "stretch", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCropDimensions(t *testing.T) {
	tests := []struct {
		name   string
		src    Dimensions
		target Ratio
		want   CropPlan
	}{
		{
			name:   "1080p to square trims sides",
			src:    Dimensions{Width: 1920, Height: 1080},
			target: Ratio{W: 1, H: 1},
			want:   CropPlan{Width: 1080, Height: 1080, X: 420, Y: 0},
		},
		{
			name:   "1080p to portrait trims sides",
			src:    Dimensions{Width: 1920, Height: 1080},
			target: Ratio{W: 9, H: 16},
			// floor(1080*9/16) = 607, rounded down to 606
			want: CropPlan{Width: 606, Height: 1080, X: 657, Y: 0},
		},
		{
			name:   "portrait source to landscape trims top and bottom",
			src:    Dimensions{Width: 1080, Height: 1920},
			target: Ratio{W: 16, H: 9},
			// floor(1080*9/16) = 607, rounded down to 606
			want: CropPlan{Width: 1080, Height: 606, X: 0, Y: 657},
		},
		{
			name:   "matching aspect is a no-op crop",
			src:    Dimensions{Width: 1920, Height: 1080},
			target: Ratio{W: 16, H: 9},
			want:   CropPlan{Width: 1920, Height: 1080, X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropDimensions(tt.src, tt.target)
			if got != tt.want {
				t.Errorf("CropDimensions(%v, %v) = %+v, want %+v", tt.src, tt.target, got, tt.want)
			}
		})
	}
}

func TestLetterboxDimensions(t *testing.T) {
	tests := []struct {
		name   string
		src    Dimensions
		target Ratio
		want   LetterboxPlan
	}{
		{
			name:   "1080p to portrait pads top and bottom",
			src:    Dimensions{Width: 1920, Height: 1080},
			target: Ratio{W: 9, H: 16},
			// floor(1920*16/9) = 3413, rounded down to 3412
			want: LetterboxPlan{Width: 1920, Height: 3412, X: 0, Y: 1166},
		},
		{
			name:   "1080p to square pads sides",
			src:    Dimensions{Width: 1080, Height: 1920},
			target: Ratio{W: 1, H: 1},
			want:   LetterboxPlan{Width: 1920, Height: 1920, X: 420, Y: 0},
		},
		{
			name:   "matching aspect is a no-op canvas",
			src:    Dimensions{Width: 1920, Height: 1080},
			target: Ratio{W: 16, H: 9},
			want:   LetterboxPlan{Width: 1920, Height: 1080, X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LetterboxDimensions(tt.src, tt.target)
			if got != tt.want {
				t.Errorf("LetterboxDimensions(%v, %v) = %+v, want %+v", tt.src, tt.target, got, tt.want)
			}
		})
	}
}

// Sweep a grid of even source dimensions and small integer ratios and
// check the geometric invariants that hold for every combination.
func TestDimensionInvariants(t *testing.T) {
	sources := []Dimensions{
		{640, 480}, {1280, 720}, {1920, 1080}, {1080, 1920},
		{720, 720}, {854, 480}, {480, 854}, {3840, 2160},
	}

	for rw := 1; rw <= 21; rw++ {
		for rh := 1; rh <= 21; rh++ {
			target := Ratio{W: rw, H: rh}
			for _, src := range sources {
				crop := CropDimensions(src, target)
				if crop.Width%2 != 0 || crop.Height%2 != 0 {
					t.Fatalf("crop %v %v: odd dimensions %+v", src, target, crop)
				}
				if crop.Width > src.Width || crop.Height > src.Height {
					t.Fatalf("crop %v %v: exceeds source %+v", src, target, crop)
				}
				if crop.X != (src.Width-crop.Width)/2 || crop.Y != (src.Height-crop.Height)/2 {
					t.Fatalf("crop %v %v: not centered %+v", src, target, crop)
				}

				box := LetterboxDimensions(src, target)
				if box.Width%2 != 0 || box.Height%2 != 0 {
					t.Fatalf("letterbox %v %v: odd dimensions %+v", src, target, box)
				}
				if box.Width < src.Width || box.Height < src.Height {
					t.Fatalf("letterbox %v %v: shrinks source %+v", src, target, box)
				}
				// Source dimensions are even, so padding splits equally
				if box.X != (box.Width-src.Width)/2 || box.Y != (box.Height-src.Height)/2 {
					t.Fatalf("letterbox %v %v: not centered %+v", src, target, box)
				}
			}
		}
	}
}
