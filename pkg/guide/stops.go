package guide

import (
	"strings"

	"shutterplan/pkg/model"
)

// Bundle is the per-stop guidance for one POI category.
type Bundle struct {
	Steps   []string
	Prompts []string
}

// Step text uses {name} as the placeholder for the stop's display name.
var stopBundles = map[model.Category]Bundle{
	model.CatViewpoint: {
		Steps: []string{
			"From {name}, shoot 3 layered city/landscape frames with clear foreground",
			"Use a longer focal length to compress the skyline; look for repeating patterns",
			"Wait for a person entering frame to add scale",
			"If windy, stabilize and try 1/10-1/30s motion blur of traffic/people",
		},
		Prompts: []string{"Layered depth", "Leading lines to horizon", "Human scale against vast scene", "Golden/blue hour glow"},
	},
	model.CatMuseumArt: {
		Steps: []string{
			"At {name}, focus on symmetry and clean lines in exhibits and halls",
			"Capture visitors interacting with exhibits (no flash)",
			"Isolate textures and materials with tight framing",
			"Use reflections in glass cases for layered abstracts",
		},
		Prompts: []string{"Symmetry", "Negative space", "Reflections", "Texture isolation"},
	},
	model.CatMarket: {
		Steps: []string{
			"At {name}, capture buyer/seller gestures and exchanges",
			"Shoot color pops of produce or textiles",
			"Low angle through hanging items for depth",
			"Wide environmental + tight detail pairs",
		},
		Prompts: []string{"Gesture/decisive moment", "Color blocking", "Frame within frame", "Leading lines through aisles"},
	},
	model.CatPark: {
		Steps: []string{
			"In {name}, use tree branches for natural framing",
			"Macro details of leaves, bark, and textures",
			"Silhouettes of runners/walkers at golden hour",
			"Telephoto compression of layers of foliage",
		},
		Prompts: []string{"Natural frames", "Patterns in nature", "Silhouettes", "Foreground interest"},
	},
	model.CatCoast: {
		Steps: []string{
			"At {name}, experiment with shutter speeds for wave motion",
			"Reflections in wet sand or puddles",
			"Silhouettes against sunset/sunrise",
			"Pier/marina structures as strong leading lines",
		},
		Prompts: []string{"Motion blur", "Reflections", "Minimalism", "Leading lines"},
	},
	model.CatBridgePier: {
		Steps: []string{
			"Centerline symmetry on {name}",
			"Shoot from below/side for graphic geometry",
			"Include passing subjects for scale/motion",
			"Long exposure to smooth water if applicable",
		},
		Prompts: []string{"Symmetry", "Geometric patterns", "Scale with human element", "Long exposure water"},
	},
	model.CatMall: {
		Steps: []string{
			"Inside {name}, shoot architectural patterns and escalator geometry",
			"Reflections in storefront glass",
			"Candid shopper interactions",
			"Top-down or low-angle abstracts",
		},
		Prompts: []string{"Repetition", "Reflections", "Leading lines", "Frame within frame"},
	},
	model.CatHospitality: {
		Steps: []string{
			"At {name}, try window light portraits (ask permission)",
			"Detail shots of cups/plates with texture",
			"Ambient scene with layered foreground",
			"Reflections through window glass",
		},
		Prompts: []string{"Window light", "Texture details", "Layering", "Reflections"},
	},
	model.CatGeneral: {
		Steps: []string{
			"Scout {name} and find the most distinctive visual elements",
			"Shoot 1 wide, 3 medium, 3 tight frames for a mini-story",
			"Look for symmetry, reflections, or bold shadows",
			"Include at least 1 human element for scale/story",
		},
		Prompts: []string{"Wide-medium-tight sequencing", "Reflections", "Symmetry", "Human scale"},
	},
}

// StopBundle returns the guidance bundle for a categorized stop with the
// POI's display name interpolated, adjusted for current conditions: rain in
// the weather summary prepends sheltered steps and adds rain prompts, and
// golden/blue hour adds a color-contrast prompt. Augmented prompts are
// deduplicated in order, so output is deterministic.
func StopBundle(cat model.Category, name, timeOfDay, weatherSummary string) Bundle {
	b, ok := stopBundles[cat]
	if !ok {
		b = stopBundles[model.CatGeneral]
	}
	if name == "" {
		name = "this spot"
	}

	steps := make([]string, len(b.Steps))
	for i, s := range b.Steps {
		steps[i] = strings.ReplaceAll(s, "{name}", name)
	}
	prompts := append([]string(nil), b.Prompts...)

	wl := strings.ToLower(weatherSummary)
	if strings.Contains(wl, "rain") || strings.Contains(wl, "precipitation") {
		steps = append([]string{
			"Use shelter and focus on reflections and umbrellas",
			"Shoot through glass for layered rainy scenes",
		}, steps...)
		prompts = appendUnique(prompts, "Rain reflections", "Through-glass layering")
	}
	if timeOfDay == model.TimeGoldenHour || timeOfDay == model.TimeBlueHour {
		prompts = appendUnique(prompts, "Golden/blue hour color contrast")
	}

	return Bundle{Steps: steps, Prompts: prompts}
}

func appendUnique(dst []string, extra ...string) []string {
	for _, e := range extra {
		found := false
		for _, have := range dst {
			if have == e {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, e)
		}
	}
	return dst
}
