package build

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/tables"
)

// addDropRate resolves drop locations for the item, either by reusing the
// previous build (upstream drop table unchanged) or by searching the current
// rate table. The search runs for the parent itself when it has no
// components, otherwise for each component - never both.
func (p *Pipeline) addDropRate(item *model.Item) {
	if p.raw.Drops == nil {
		return
	}

	if !p.raw.Drops.Changed {
		if p.reusePreviousDrops(item) {
			return
		}
		// a previous-build miss is warning-class; recompute instead
	}

	if len(item.Components) == 0 {
		item.Drops = p.searchDrops(dropLookupName(item))
		return
	}
	for _, comp := range item.Components {
		comp.Drops = p.searchDrops(item.Name + " " + comp.Name)
	}
}

func (p *Pipeline) reusePreviousDrops(item *model.Item) bool {
	prev := p.prev.ByName(item.Name)
	if prev == nil {
		return false
	}

	if len(item.Components) == 0 {
		item.Drops = append([]model.DropEntry(nil), prev.Drops...)
		return true
	}
	for _, comp := range item.Components {
		prevComp := p.prev.Component(item.Name, comp.Name)
		if prevComp == nil {
			return false
		}
		comp.Drops = append([]model.DropEntry(nil), prevComp.Drops...)
	}
	return true
}

// dropLookupName is the item name as the drop table keys it. Relics are
// keyed by full grade name upstream, so the literal word "Relic" replaces
// the grade.
func dropLookupName(item *model.Item) string {
	if item.Type == "Relic" || isRelicPath(item.UniqueName) {
		return stripRelicGrade(item.Name) + " Relic"
	}
	return item.Name
}

func (p *Pipeline) searchDrops(target string) []model.DropEntry {
	matcher, _ := p.matchers.MutexGetSet(target, func() (*dropMatcher, error) {
		return newDropMatcher(target), nil
	}, time.Hour)

	var drops []model.DropEntry
	seen := map[model.DropEntry]struct{}{}
	for _, rate := range p.raw.Drops.Rates {
		if !matcher.matches(rate.Item) {
			continue
		}
		entry := model.DropEntry{
			Location: rate.Location,
			Type:     rate.Item,
			Rarity:   rate.Rarity,
			Chance:   rate.Chance / 100,
			Rotation: rate.Rotation,
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		drops = append(drops, entry)
	}

	sortDrops(drops)
	return drops
}

// sortDrops orders by the composite key (chance desc, location, type,
// rarity, rotation). The key is total and locale-independent, which keeps
// reruns byte-identical.
func sortDrops(drops []model.DropEntry) {
	sort.SliceStable(drops, func(i, j int) bool {
		a, b := drops[i], drops[j]
		if a.Chance != b.Chance {
			return a.Chance > b.Chance
		}
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Rarity != b.Rarity {
			return a.Rarity < b.Rarity
		}
		return a.Rotation < b.Rotation
	})
}

// dropMatcher is the per-name regex family of the drop search. The
// semi-wrapped expression requires the target as a whole word run; the
// exclusion set rejects lines that belong to a variant the target is not:
// "Gorgon" must not hit "Gorgon Wraith" lines and vice versa.
type dropMatcher struct {
	target   *regexp.Regexp
	excluded []*regexp.Regexp
}

func newDropMatcher(target string) *dropMatcher {
	m := &dropMatcher{
		target: regexp.MustCompile(`(?i)(^|\s)` + regexp.QuoteMeta(target) + `(\s|$)`),
	}

	variants := make([]string, 0, len(tables.VariantPrefixes)+len(tables.VariantSuffixes))
	variants = append(variants, tables.VariantPrefixes...)
	variants = append(variants, tables.VariantSuffixes...)

	targetWords := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(target)) {
		targetWords[w] = struct{}{}
	}

	for _, v := range variants {
		if _, inTarget := targetWords[strings.ToLower(v)]; inTarget {
			continue
		}
		m.excluded = append(m.excluded, regexp.MustCompile(`(?i)(^|\s)`+regexp.QuoteMeta(v)+`(\s|$)`))
	}
	return m
}

func (m *dropMatcher) matches(line string) bool {
	if !m.target.MatchString(line) {
		return false
	}
	for _, ex := range m.excluded {
		if ex.MatchString(line) {
			return false
		}
	}
	return true
}
