package preset

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Preset bundles a target ratio with a conversion method under a name
type Preset struct {
	Name        string
	Ratio       string
	Method      string
	Description string
}

var presets = make(map[string]Preset)

// Register adds a preset to the registry
func Register(p Preset) {
	presets[p.Name] = p
}

// Get returns a preset by name
func Get(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset: %s", name)
	}
	return p, nil
}

// Names returns the registered preset names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	Register(Preset{
		Name:        "shorts",
		Ratio:       "9:16",
		Method:      "crop",
		Description: "Vertical 9:16 crop for Shorts, Reels and TikTok",
	})
	Register(Preset{
		Name:        "square",
		Ratio:       "1:1",
		Method:      "crop",
		Description: "Square 1:1 crop for feed posts",
	})
	Register(Preset{
		Name:        "widescreen",
		Ratio:       "16:9",
		Method:      "letterbox",
		Description: "Landscape 16:9 letterbox, content preserved",
	})
	Register(Preset{
		Name:        "classic",
		Ratio:       "4:3",
		Method:      "letterbox",
		Description: "Classic 4:3 letterbox",
	})
}
