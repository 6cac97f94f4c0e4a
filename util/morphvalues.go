package util

import "strings"

// FeatureLookup maps treebank-specific morphological values onto the
// canonical lowercase names used by the feature templates. Values with
// no mapping pass through lowercased.
type FeatureLookup struct {
	Feature string
	Values  map[string]string
}

func (f FeatureLookup) Normalize(value string) string {
	lowered := strings.ToLower(value)
	if mapped, exists := f.Values[lowered]; exists {
		return mapped
	}
	return lowered
}

var (
	GenderMap = FeatureLookup{"Gender", map[string]string{
		"m": "masc",
		"f": "fem",
		"n": "neut",
	}}
	NumberMap = FeatureLookup{"Number", map[string]string{
		"s":  "sing",
		"p":  "plur",
		"pl": "plur",
		"d":  "dual",
	}}
	CaseMap = FeatureLookup{"Case", map[string]string{
		"nominative": "nom",
		"accusative": "acc",
		"dative":     "dat",
		"genitive":   "gen",
	}}
	TenseMap = FeatureLookup{"Tense", map[string]string{
		"pres": "present",
		"pst":  "past",
	}}
	MoodMap = FeatureLookup{"Mood", map[string]string{
		"indicative":  "ind",
		"subjunctive": "sub",
		"imperative":  "imp",
	}}
	DegreeMap = FeatureLookup{"Degree", map[string]string{
		"comparative": "cmp",
		"superlative": "sup",
		"positive":    "pos",
	}}
)
