package scenario

import (
	"fmt"
	"sort"
)

var presets = map[string]Scenario{
	"default": {
		APIVersion: APIVersionV1,
		Kind:       KindScholarshipScenario,
		Metadata: Metadata{
			Name:        "default",
			Description: "Three cost tiers, full scholarships only",
		},
		Budget: Budget{Total: 10000, Ceiling: 1200, MinBase: 500},
		Tiers:  []Tier{{Amount: 500, Count: 20}, {Amount: 800, Count: 15}, {Amount: 1200, Count: 10}},
	},
	"partial": {
		APIVersion: APIVersionV1,
		Kind:       KindScholarshipScenario,
		Metadata: Metadata{
			Name:        "partial",
			Description: "Three cost tiers with a 500 guaranteed base and cheapest-first top-ups",
		},
		Budget: Budget{Total: 10000, Ceiling: 1200, AllowPartial: true, MinBase: 500},
		Tiers:  []Tier{{Amount: 500, Count: 20}, {Amount: 800, Count: 15}, {Amount: 1200, Count: 10}},
	},
	"capped": {
		APIVersion: APIVersionV1,
		Kind:       KindScholarshipScenario,
		Metadata: Metadata{
			Name:        "capped",
			Description: "Requests above the ceiling are cut down before allocation",
		},
		Budget: Budget{Total: 25000, Ceiling: 1000, AllowPartial: true, MinBase: 400},
		Tiers:  []Tier{{Amount: 2500, Count: 8}, {Amount: 1500, Count: 12}, {Amount: 600, Count: 10}},
	},
}

func PresetByName(name string) (Scenario, error) {
	if s, ok := presets[name]; ok {
		s.Tiers = append([]Tier(nil), s.Tiers...)
		return s, nil
	}
	return Scenario{}, fmt.Errorf("preset must be one of %v", PresetNames())
}

func PresetNames() []string {
	var keys []string
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
