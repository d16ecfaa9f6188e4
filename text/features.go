package text

import (
	"slices"
	"strings"
)

// Default OpenType feature tags enabled for horizontal text.
const (
	FeatureKerning              = "kern"
	FeatureLigatures            = "liga"
	FeatureContextualAlternates = "calt"
	FeatureContextualLigatures  = "clig"
)

// FeatureSet is an immutable, sorted set of enabled OpenType feature tags.
// Every method returns a new set; a FeatureSet is never changed in place.
type FeatureSet struct {
	tags []string
}

// NewFeatureSet returns a set holding tags. Duplicates are dropped.
func NewFeatureSet(tags ...string) FeatureSet {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = normalizeTag(t); t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return FeatureSet{tags: slices.Compact(out)}
}

// FeaturesFor returns the features used when shaping text in style.
// It is a pure function of style: nothing is toggled on shared state, so
// the features chosen for one span cannot leak into the next.
// All styles currently share the default horizontal set.
func FeaturesFor(_ Style) FeatureSet {
	return NewFeatureSet(FeatureKerning, FeatureLigatures, FeatureContextualAlternates, FeatureContextualLigatures)
}

// Has reports whether tag is enabled.
func (fs FeatureSet) Has(tag string) bool {
	_, found := slices.BinarySearch(fs.tags, normalizeTag(tag))
	return found
}

// With returns a copy of the set with tag enabled.
func (fs FeatureSet) With(tag string) FeatureSet {
	return NewFeatureSet(append(slices.Clone(fs.tags), tag)...)
}

// Without returns a copy of the set with tag disabled.
func (fs FeatureSet) Without(tag string) FeatureSet {
	tag = normalizeTag(tag)
	out := make([]string, 0, len(fs.tags))
	for _, t := range fs.tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return FeatureSet{tags: out}
}

// Tags returns the enabled tags in sorted order.
func (fs FeatureSet) Tags() []string {
	return slices.Clone(fs.tags)
}

// Len returns the number of enabled features.
func (fs FeatureSet) Len() int {
	return len(fs.tags)
}

// String returns the tags joined by commas.
func (fs FeatureSet) String() string {
	return strings.Join(fs.tags, ",")
}

// normalizeTag pads or truncates a tag to the 4 bytes OpenType requires.
func normalizeTag(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	if len(t) > 4 {
		return t[:4]
	}
	return t + strings.Repeat(" ", 4-len(t))
}
