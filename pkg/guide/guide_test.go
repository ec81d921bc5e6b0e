package guide

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shutterplan/pkg/model"
)

func TestAnalyzeLocationCityMatch(t *testing.T) {
	g := AnalyzeLocation("Melbourne CBD")
	assert.Contains(t, g.Genres, "street")
	assert.NotEmpty(t, g.SuggestedSpots)
	assert.NotEmpty(t, g.SpecificSteps)
}

func TestAnalyzeLocationCaseInsensitive(t *testing.T) {
	a := AnalyzeLocation("melbourne cbd")
	b := AnalyzeLocation("MELBOURNE CBD, Victoria")
	assert.Equal(t, a.SuggestedSpots, b.SuggestedSpots)
}

func TestAnalyzeLocationCityBeforeKeyword(t *testing.T) {
	// "bondi beach" contains the generic "beach" keyword too; the curated
	// entry must win and bring suggested spots with it.
	g := AnalyzeLocation("Bondi Beach, Sydney")
	assert.NotEmpty(t, g.SuggestedSpots)
}

func TestAnalyzeLocationKeywordMatch(t *testing.T) {
	g := AnalyzeLocation("the old fish market downtown")
	// "market" precedes "downtown" in the keyword list.
	assert.Equal(t, []string{"market"}, g.Genres)
	assert.Empty(t, g.SuggestedSpots)
	assert.NotEmpty(t, g.SpecificSteps)
}

func TestAnalyzeLocationUniversalFallback(t *testing.T) {
	loc := "Xzqw Nowhere 123"
	g := AnalyzeLocation(loc)
	assert.Empty(t, g.SuggestedSpots)
	if assert.NotEmpty(t, g.SpecificSteps) {
		for _, s := range g.SpecificSteps {
			assert.Contains(t, s, loc)
		}
	}
}

func TestCompositionPromptsCap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, typ := range []string{"street", "night street photography", "wildlife", "nonsense genre"} {
		got := CompositionPrompts(rng, typ)
		if len(got) > MaxPrompts {
			t.Errorf("%q: %d prompts, cap is %d", typ, len(got), MaxPrompts)
		}
		seen := map[string]bool{}
		for _, p := range got {
			if seen[p] {
				t.Errorf("%q: duplicate prompt %q", typ, p)
			}
			seen[p] = true
		}
	}
}

func TestCompositionPromptsGenrePriority(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := CompositionPrompts(rng, "night street")
	for _, p := range got {
		assert.Contains(t, compositionPrompts["night street"], p)
	}
}

func TestCompositionPromptsDefault(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, defaultPrompts, CompositionPrompts(rng, "astro"))
}

func TestCompositionPromptsDeterministicForSeed(t *testing.T) {
	a := CompositionPrompts(rand.New(rand.NewSource(42)), "street")
	b := CompositionPrompts(rand.New(rand.NewSource(42)), "street")
	assert.Equal(t, a, b)
}

func TestExposurePresetsDigital(t *testing.T) {
	base := ExposurePresets(true, "", model.TimeMorning)
	assert.Len(t, base, 3)

	golden := ExposurePresets(true, "", model.TimeGoldenHour)
	assert.Len(t, golden, 4)
	assert.Contains(t, golden[3], "Golden/Blue hour")

	night := ExposurePresets(true, "", model.TimeNight)
	assert.Len(t, night, 4)
	assert.Contains(t, night[3], "Night")
}

func TestExposurePresetsFilm(t *testing.T) {
	got := ExposurePresets(false, "125", model.TimeMidday)
	assert.Len(t, got, 5)
	assert.Contains(t, got[0], "f/16, 1/125s, ISO 125")
}

func TestKeeperCountMonotonic(t *testing.T) {
	cases := map[int]string{30: "10+", 60: "10+", 90: "15+", 120: "15+", 200: "25+", 240: "25+", 300: "40+"}
	for dur, want := range cases {
		if got := KeeperCount(dur); got != want {
			t.Errorf("KeeperCount(%d) = %s, want %s", dur, got, want)
		}
	}
}

func TestSuccessCriteriaKeeperToken(t *testing.T) {
	got := SuccessCriteria("street", 30)
	found := false
	for _, c := range got {
		if strings.Contains(c, "10+") {
			found = true
		}
		assert.NotContains(t, c, "%s")
	}
	assert.True(t, found, "keeper token missing from criteria")
}

func TestSuccessCriteriaDefault(t *testing.T) {
	got := SuccessCriteria("macro", 300)
	assert.Equal(t, len(defaultCriteria), len(got))
	assert.Contains(t, got[len(got)-1], "40+")
}

func TestContingencies(t *testing.T) {
	rain := Contingencies(&model.SessionParams{Weather: "rain", TimeOfDay: model.TimeMidday, PhotoType: "landscape"})
	assert.Contains(t, rain, "Rain intensifies")

	multi := Contingencies(&model.SessionParams{Weather: "fog", TimeOfDay: model.TimeGoldenHour, PhotoType: "street"})
	assert.Equal(t, 3, len(strings.Split(multi, " | ")))

	fallback := Contingencies(&model.SessionParams{Weather: "clear", TimeOfDay: model.TimeMidday, PhotoType: "landscape"})
	assert.Contains(t, fallback, "Conditions change")
}

func TestSafetyNotePriority(t *testing.T) {
	assert.Contains(t, SafetyNote("street", "anywhere", "midday"), "traffic")
	assert.Contains(t, SafetyNote("landscape", "Melbourne CBD", "midday"), "traffic")
	assert.Contains(t, SafetyNote("portrait", "park", "midday"), "consent")
	assert.Contains(t, SafetyNote("cityscape", "park", "night"), "well-lit")
	assert.Contains(t, SafetyNote("cityscape", "the gallery district", "midday"), "venue policies")
	assert.Contains(t, SafetyNote("landscape", "somewhere", "midday"), "respectful")
	// street/cbd outranks the night rule.
	assert.Contains(t, SafetyNote("night street", "cbd", "night"), "traffic")
}

func TestLensCatalogue(t *testing.T) {
	if got := LensFor("70-300mm"); got.FocalLengthMM != 300 {
		t.Errorf("70-300mm focal = %d, want 300", got.FocalLengthMM)
	}
	if got := LensFor("mystery glass"); got.FocalLengthMM != 0 {
		t.Errorf("unknown lens focal = %d, want 0", got.FocalLengthMM)
	}
	if got := LensesForCamera("Ricoh GR IIIx"); len(got) != 1 || got[0].FocalLengthMM != 40 {
		t.Errorf("fixed-lens camera options = %v", got)
	}
}

func TestLensRationaleFallback(t *testing.T) {
	assert.Contains(t, LensRationale("50mm"), "portraits")
	assert.Equal(t, "General-purpose lens for this task", LensRationale("800mm mirror"))
}

func TestFilmISOFromStock(t *testing.T) {
	cases := map[string]string{
		"Ilford HP5 Plus 400": "400",
		"Cinestill 800T":      "800",
		"Fujifilm Pro 400H":   "400",
		"Kodak Portra":        "400",
		"":                    "400",
	}
	for stock, want := range cases {
		if got := FilmISOFromStock(stock); got != want {
			t.Errorf("FilmISOFromStock(%q) = %s, want %s", stock, got, want)
		}
	}
}

func TestStopBundleInterpolation(t *testing.T) {
	b := StopBundle(model.CatViewpoint, "Eureka Skydeck", model.TimeMidday, "")
	assert.Contains(t, b.Steps[0], "Eureka Skydeck")
	assert.Len(t, b.Prompts, 4)
}

func TestStopBundleRainAugmentation(t *testing.T) {
	b := StopBundle(model.CatPark, "Carlton Gardens", model.TimeMidday, "14.0°C | light rain | 80% humidity | wind 3.0m/s")
	assert.Contains(t, b.Steps[0], "shelter")
	assert.Contains(t, b.Prompts, "Rain reflections")
}

func TestStopBundleGoldenHourPrompt(t *testing.T) {
	b := StopBundle(model.CatCoast, "St Kilda Pier", model.TimeGoldenHour, "")
	assert.Contains(t, b.Prompts, "Golden/blue hour color contrast")
}

func TestStopBundleUnknownCategory(t *testing.T) {
	b := StopBundle(model.Category("bogus"), "", model.TimeMidday, "")
	assert.Contains(t, b.Steps[0], "this spot")
}
