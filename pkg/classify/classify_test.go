package classify

import (
	"testing"

	"shutterplan/pkg/model"
)

func googlePOI(types ...string) *model.POI {
	return &model.POI{FromGoogle: true, GoogleTypes: types}
}

func osmPOI(tags map[string]string) *model.POI {
	return &model.POI{Tags: tags}
}

func TestGoogleTypeChain(t *testing.T) {
	cases := []struct {
		types []string
		want  model.Category
	}{
		{[]string{"park"}, model.CatPark},
		{[]string{"art_gallery", "point_of_interest"}, model.CatMuseumArt},
		{[]string{"shopping_mall"}, model.CatMall},
		{[]string{"cafe", "food"}, model.CatHospitality},
		{[]string{"tourist_attraction"}, model.CatViewpoint},
		{[]string{"natural_feature"}, model.CatCoast},
		{[]string{"bridge"}, model.CatBridgePier},
		{[]string{"laundry"}, model.CatGeneral},
		{nil, model.CatGeneral},
	}
	for _, c := range cases {
		if got := Category(googlePOI(c.types...)); got != c.want {
			t.Errorf("Category(google %v) = %s, want %s", c.types, got, c.want)
		}
	}
}

func TestGooglePriorityOrder(t *testing.T) {
	// park outranks point_of_interest even though both match.
	p := googlePOI("point_of_interest", "park")
	if got := Category(p); got != model.CatPark {
		t.Errorf("park+poi = %s, want park", got)
	}
}

func TestOSMTagChain(t *testing.T) {
	cases := []struct {
		tags map[string]string
		want model.Category
	}{
		{map[string]string{"tourism": "viewpoint"}, model.CatViewpoint},
		{map[string]string{"tourism": "artwork"}, model.CatMuseumArt},
		{map[string]string{"amenity": "marketplace"}, model.CatMarket},
		{map[string]string{"leisure": "garden"}, model.CatPark},
		{map[string]string{"natural": "beach"}, model.CatCoast},
		{map[string]string{"leisure": "marina"}, model.CatCoast},
		{map[string]string{"man_made": "pier"}, model.CatBridgePier},
		{map[string]string{"shop": "department_store"}, model.CatMall},
		{map[string]string{"amenity": "bar"}, model.CatHospitality},
		{map[string]string{"amenity": "place_of_worship"}, model.CatGeneral},
		{map[string]string{}, model.CatGeneral},
		{nil, model.CatGeneral},
	}
	for _, c := range cases {
		if got := Category(osmPOI(c.tags)); got != c.want {
			t.Errorf("Category(osm %v) = %s, want %s", c.tags, got, c.want)
		}
	}
}

func TestOSMPriorityOrder(t *testing.T) {
	// museum inside a park tag-set classifies as museum_art.
	p := osmPOI(map[string]string{"tourism": "museum", "leisure": "park"})
	if got := Category(p); got != model.CatMuseumArt {
		t.Errorf("museum+park = %s, want museum_art", got)
	}
	// viewpoint outranks everything in the OSM chain.
	p = osmPOI(map[string]string{"tourism": "viewpoint", "leisure": "park", "amenity": "cafe"})
	if got := Category(p); got != model.CatViewpoint {
		t.Errorf("viewpoint+park+cafe = %s, want viewpoint", got)
	}
}

func TestCategoryClosure(t *testing.T) {
	valid := map[model.Category]bool{
		model.CatViewpoint: true, model.CatMuseumArt: true, model.CatMarket: true,
		model.CatPark: true, model.CatCoast: true, model.CatBridgePier: true,
		model.CatMall: true, model.CatHospitality: true, model.CatGeneral: true,
	}
	inputs := []*model.POI{
		googlePOI(), googlePOI("zoo"), osmPOI(nil),
		osmPOI(map[string]string{"tourism": "attraction"}),
		osmPOI(map[string]string{"highway": "bus_stop"}),
	}
	for _, p := range inputs {
		if got := Category(p); !valid[got] {
			t.Errorf("Category returned value outside the closed set: %s", got)
		}
	}
}
