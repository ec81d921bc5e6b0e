package guide

import (
	"fmt"
	"math/rand"
	"strings"

	"shutterplan/pkg/model"
)

// MaxPrompts caps the generic composition prompt selection.
const MaxPrompts = 5

// genreOrder fixes the priority of overlapping genre keys ("night street"
// must win over "street" for photo type "night street photography").
var genreOrder = []string{
	"night street", "street", "portrait", "cityscape", "architecture",
	"nature", "wildlife", "landscape", "beach", "documentary",
}

var compositionPrompts = map[string][]string{
	"street": {
		"Decisive moment gestures",
		"Reflections in windows/puddles",
		"Strong shadow geometry",
		"Overlapping subject layers (3+ planes)",
		"Leading lines from curbs/crosswalks",
		"Color blocking with clothing/signage",
		"Frame within frame (doorways, windows)",
	},
	"portrait": {
		"Eye-level connection with subject",
		"Environmental context storytelling",
		"Negative space for breathing room",
		"Catchlights in eyes for life",
		"Subject-background separation (shallow DOF)",
		"Rule of thirds eye placement",
		"Natural framing with foreground elements",
	},
	"cityscape": {
		"Skyline compression with telephoto",
		"Symmetry in buildings/bridges",
		"Leading roads into vanishing point",
		"Blue hour balance (ambient + artificial light)",
		"Reflections after rain on streets",
		"Human scale reference for size",
		"Geometric patterns in architecture",
	},
	"night street": {
		"Neon signs as key light source",
		"Motion blur at 1/10-1/30s for cars",
		"Headlight/taillight streaks",
		"Puddle reflections doubling lights",
		"Lit signage as colorful background",
		"High-ISO grain for atmosphere",
		"Silhouettes against lit windows",
	},
	"architecture": {
		"Leading lines to vanishing point",
		"Symmetry and patterns",
		"Detail isolation (textures, materials)",
		"Wide context establishing shots",
		"Low angle for dramatic perspective",
		"Human scale reference",
		"Light and shadow interplay",
	},
	"nature": {
		"Foreground interest for depth",
		"Golden hour side/back lighting",
		"Telephoto compression of layers",
		"Macro details of textures",
		"Rule of thirds horizon placement",
		"Natural framing with branches",
		"Leading lines with paths/rivers",
	},
	"wildlife": {
		"Frame habitat context",
		"Tight telephoto detail on eyes",
		"Silhouettes at sunset",
		"Behavior/motion capture",
		"Animal eye contact for connection",
		"Environmental storytelling",
		"Action sequences with burst mode",
	},
	"landscape": {
		"Foreground, midground, background layers",
		"Golden hour warm light",
		"Leading lines into scene",
		"Rule of thirds horizon",
		"Atmospheric perspective for depth",
		"Dramatic sky as key element",
		"Reflections in water",
	},
	"beach": {
		"Silhouettes against sunset",
		"Reflections in wet sand",
		"Leading lines from shore",
		"Wave motion with shutter speed variation",
		"Foreground shells/rocks for depth",
		"Golden hour warm tones",
		"Minimalist compositions",
	},
	"documentary": {
		"Candid unposed moments",
		"Environmental context",
		"Storytelling sequences",
		"Authentic expressions",
		"Details that reveal character",
		"Wide and tight shot variety",
		"Respectful distance and framing",
	},
}

var defaultPrompts = []string{
	"Rule of thirds placement",
	"Foreground interest for depth",
	"Leading lines to subject",
	"Negative space for breathing room",
	"Frame within frame",
}

// CompositionPrompts samples up to 5 prompts for the photo type. The first
// genre key contained in the lower-cased type wins; without a match the fixed
// default set is returned unsampled.
func CompositionPrompts(rng *rand.Rand, photoType string) []string {
	typeLower := strings.ToLower(photoType)
	for _, key := range genreOrder {
		if strings.Contains(typeLower, key) {
			return sample(rng, compositionPrompts[key], MaxPrompts)
		}
	}
	out := make([]string, len(defaultPrompts))
	copy(out, defaultPrompts)
	return out
}

// sample draws n distinct entries from src without mutating it.
func sample(rng *rand.Rand, src []string, n int) []string {
	pool := make([]string, len(src))
	copy(pool, src)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// ExposurePresets returns starting-point exposures. Film presets derive from
// Sunny 16 at the stock's ISO; digital presets get golden/blue-hour and night
// entries appended when the session time matches.
func ExposurePresets(isDigital bool, filmISO, timeOfDay string) []string {
	if !isDigital {
		if filmISO == "" {
			filmISO = "400"
		}
		return []string{
			fmt.Sprintf("Sunny 16: f/16, 1/%ss, ISO %s", filmISO, filmISO),
			fmt.Sprintf("Overcast: f/8, 1/250s, ISO %s", filmISO),
			fmt.Sprintf("Shade: f/5.6, 1/125s, ISO %s", filmISO),
			fmt.Sprintf("Golden hour backlit: f/4, 1/500s, ISO %s (meter for highlights)", filmISO),
			fmt.Sprintf("Night: f/2.8, 1/30s, ISO %s (consider push +1 stop)", filmISO),
		}
	}

	base := []string{
		"Sunny: f/8, 1/500s, ISO 200",
		"Overcast: f/4, 1/250s, ISO 800",
		"Shade: f/2.8, 1/125s, ISO 1600",
	}
	if timeOfDay == model.TimeGoldenHour || timeOfDay == model.TimeBlueHour {
		base = append(base, "Golden/Blue hour: f/4, 1/250s, ISO Auto (cap 3200), -0.3 EV comp")
	}
	if timeOfDay == model.TimeNight {
		base = append(base, "Night: f/2, 1/60s, ISO 3200-6400, spot meter highlights")
	}
	return base
}

// KeeperCount returns the duration-scaled keeper threshold token.
func KeeperCount(durationMin int) string {
	switch {
	case durationMin <= 60:
		return "10+"
	case durationMin <= 120:
		return "15+"
	case durationMin <= 240:
		return "25+"
	default:
		return "40+"
	}
}

var criteriaOrder = []string{"street", "portrait", "cityscape", "architecture", "wildlife", "landscape"}

var criteriaSets = map[string][]string{
	"street": {
		"1 decisive moment with clear gesture/action",
		"1 layered frame with 3+ depth planes",
		"1 reflection or strong shadow composition",
		"%s keeper frames total",
	},
	"portrait": {
		"Sharp focus on eyes in at least 3 frames",
		"1 frame with clean background separation",
		"Natural expression captured (not forced)",
		"Catchlights visible in eyes",
		"%s keepers with good light",
	},
	"cityscape": {
		"1 wide establishing shot with context",
		"1 detail shot isolating pattern/texture",
		"Straight verticals (no keystoning)",
		"1 frame with human scale reference",
		"%s keeper frames",
	},
	"architecture": {
		"Strong leading lines in at least 2 frames",
		"1 symmetrical composition",
		"Detail and context shots both captured",
		"%s keepers",
	},
	"wildlife": {
		"Sharp focus on animal eyes in 3+ frames",
		"1 behavior/action shot",
		"1 environmental context shot",
		"%s keeper frames",
	},
	"landscape": {
		"Foreground, midground, background in 2+ frames",
		"1 frame with dramatic sky",
		"Sharp focus throughout (use smaller aperture)",
		"%s keeper frames",
	},
}

var defaultCriteria = []string{
	"3+ strong compositions following prompts",
	"Consistent exposure across series",
	"At least 1 frame exceeding expectations",
	"%s keeper frames",
}

// SuccessCriteria returns a genre-keyed checklist with the keeper-count token
// substituted for the session duration.
func SuccessCriteria(photoType string, durationMin int) []string {
	keepers := KeeperCount(durationMin)
	typeLower := strings.ToLower(photoType)

	set := defaultCriteria
	for _, key := range criteriaOrder {
		if strings.Contains(typeLower, key) {
			set = criteriaSets[key]
			break
		}
	}

	out := make([]string, len(set))
	for i, c := range set {
		if strings.Contains(c, "%s") {
			out[i] = fmt.Sprintf(c, keepers)
		} else {
			out[i] = c
		}
	}
	return out
}

// Contingencies joins the advisory fragments that apply to the session's
// weather, time of day and genre with " | ". At least one fragment is always
// returned.
func Contingencies(p *model.SessionParams) string {
	var parts []string

	switch p.Weather {
	case "rain":
		parts = append(parts, "Rain intensifies: focus on reflections in puddles and umbrella abstracts")
	case "overcast":
		parts = append(parts, "Overcast is ideal for portraits and textures; emphasize soft even light")
	case "fog":
		parts = append(parts, "Fog: switch to minimalism, silhouettes, layered depth fades")
	}

	if p.TimeOfDay == model.TimeGoldenHour || p.TimeOfDay == model.TimeBlueHour {
		parts = append(parts, "Light fades quickly: increase ISO or move to artificially lit areas")
	}

	if strings.Contains(strings.ToLower(p.PhotoType), "street") {
		parts = append(parts, "Location quiet: move to busier intersection, transit hub, or cafe")
	}

	if len(parts) == 0 {
		parts = append(parts, "Conditions change: adapt subject while keeping same gear/approach")
	}
	return strings.Join(parts, " | ")
}

// SafetyNote picks the first applicable advisory by keyword priority.
func SafetyNote(photoType, location, timeOfDay string) string {
	typeLower := strings.ToLower(photoType)
	locLower := strings.ToLower(location)

	switch {
	case strings.Contains(typeLower, "street") || strings.Contains(locLower, "street") || strings.Contains(locLower, "cbd"):
		return "Stay aware of traffic; keep camera strap on; be respectful and discreet with subjects"
	case strings.Contains(typeLower, "portrait"):
		return "Obtain clear consent before shooting; respect personal boundaries and comfort"
	case strings.Contains(timeOfDay, "night") || strings.Contains(typeLower, "night"):
		return "Stay in well-lit public areas; be aware of surroundings; secure your gear"
	case strings.Contains(locLower, "museum"), strings.Contains(locLower, "gallery"), strings.Contains(locLower, "mall"):
		return "Check venue policies (no flash/tripod often); respect restricted areas and staff directions"
	default:
		return "Be respectful of people and property; ask permission when photographing private spaces"
	}
}
