// Package guide holds the static content the planner draws from: curated
// city guides, generic keyword guides, composition prompt sets, the lens
// catalogue, exposure presets, success criteria, contingency fragments and
// safety notes. Everything is loaded once and read-only afterwards.
package guide

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/guides.yaml
var guidesYAML []byte

// Guide is the location-specific content bundle returned by AnalyzeLocation.
type Guide struct {
	Genres         []string
	SuggestedSpots []string
	SpecificSteps  []string
}

type cityEntry struct {
	Key            string   `yaml:"key"`
	Genres         []string `yaml:"genres"`
	SuggestedSpots []string `yaml:"suggested_spots"`
	SpecificSteps  []string `yaml:"specific_steps"`
}

type keywordEntry struct {
	Key   string   `yaml:"key"`
	Steps []string `yaml:"steps"`
}

type guideData struct {
	Cities   []cityEntry    `yaml:"cities"`
	Keywords []keywordEntry `yaml:"keywords"`
}

var (
	loadOnce sync.Once
	loaded   guideData
	loadErr  error
)

func load() (*guideData, error) {
	loadOnce.Do(func() {
		loadErr = yaml.Unmarshal(guidesYAML, &loaded)
	})
	if loadErr != nil {
		return nil, fmt.Errorf("parse embedded guides: %w", loadErr)
	}
	return &loaded, nil
}

// AnalyzeLocation returns the content bundle for a free-text location.
// Matching is case-insensitive substring containment, curated cities first,
// then generic keywords, both in the fixed order of the data file. If nothing
// matches, a universal bundle of scouting steps built from the raw location
// text is returned, so the result is always usable.
func AnalyzeLocation(location string) Guide {
	data, err := load()
	if err != nil {
		// Embedded data is part of the binary; a parse failure here is a
		// build defect, not a runtime condition. Degrade to the universal
		// bundle anyway.
		return universalGuide(location)
	}

	locLower := strings.ToLower(location)

	for _, c := range data.Cities {
		if strings.Contains(locLower, c.Key) {
			return Guide{
				Genres:         c.Genres,
				SuggestedSpots: c.SuggestedSpots,
				SpecificSteps:  c.SpecificSteps,
			}
		}
	}

	for _, k := range data.Keywords {
		if strings.Contains(locLower, k.Key) {
			return Guide{
				Genres:        []string{k.Key},
				SpecificSteps: k.Steps,
			}
		}
	}

	return universalGuide(location)
}

func universalGuide(location string) Guide {
	return Guide{
		Genres: []string{"documentary", "environmental"},
		SpecificSteps: []string{
			fmt.Sprintf("Scout %s for its most distinctive visual elements", location),
			fmt.Sprintf("Shoot 1 wide establishing frame that sums up %s", location),
			fmt.Sprintf("Find 3 details or textures unique to %s", location),
		},
	}
}
