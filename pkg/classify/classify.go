// Package classify maps raw provider tags onto the closed set of
// photography-relevant POI categories. Two independent rule chains exist, one
// per provider origin; within each, the first matching rule wins, so rule
// order is part of the contract (a museum inside a park tag-set is
// museum_art, not park).
package classify

import (
	"strings"

	"shutterplan/pkg/model"
)

type rule struct {
	keywords []string
	category model.Category
}

// googleRules match against the lower-cased, space-joined Google type list.
var googleRules = []rule{
	{[]string{"park", "garden"}, model.CatPark},
	{[]string{"museum", "art_gallery"}, model.CatMuseumArt},
	{[]string{"shopping_mall", "department_store"}, model.CatMall},
	{[]string{"restaurant", "cafe", "bar"}, model.CatHospitality},
	{[]string{"tourist_attraction", "point_of_interest"}, model.CatViewpoint},
	{[]string{"beach", "natural_feature"}, model.CatCoast},
	{[]string{"bridge"}, model.CatBridgePier},
}

// osmRules match against the concatenated tourism/amenity/leisure/natural/
// man_made/shop tag values.
var osmRules = []rule{
	{[]string{"viewpoint"}, model.CatViewpoint},
	{[]string{"museum", "artwork"}, model.CatMuseumArt},
	{[]string{"market", "marketplace"}, model.CatMarket},
	{[]string{"park", "garden"}, model.CatPark},
	{[]string{"beach", "coast", "marina"}, model.CatCoast},
	{[]string{"bridge", "pier"}, model.CatBridgePier},
	{[]string{"mall", "department_store"}, model.CatMall},
	{[]string{"cafe", "restaurant", "bar"}, model.CatHospitality},
}

var osmTagKeys = []string{"tourism", "amenity", "leisure", "natural", "man_made", "shop"}

// Category classifies a POI into exactly one category. Unmatched or empty
// tag sets yield general.
func Category(p *model.POI) model.Category {
	if p.FromGoogle {
		return matchRules(strings.ToLower(strings.Join(p.GoogleTypes, " ")), googleRules)
	}

	var parts []string
	for _, key := range osmTagKeys {
		parts = append(parts, p.Tags[key])
	}
	return matchRules(strings.ToLower(strings.Join(parts, " ")), osmRules)
}

func matchRules(haystack string, rules []rule) model.Category {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(haystack, kw) {
				return r.category
			}
		}
	}
	return model.CatGeneral
}
