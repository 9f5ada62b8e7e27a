package build

import (
	"sort"

	"ordis.dev/itembuilder/internal/model"
)

// addRelicRewards attaches the per-grade reward breakdown of a relic from
// the relic dataset. Every grade's rewards land on the record so one relic
// documents its whole refinement ladder.
func (p *Pipeline) addRelicRewards(item *model.Item) {
	if item.Type != "Relic" && !isRelicPath(item.UniqueName) {
		return
	}

	rewards := p.relics[stripRelicGrade(item.Name)]
	if len(rewards) == 0 {
		return
	}

	out := append([]model.RelicReward(nil), rewards...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Grade != b.Grade {
			return a.Grade < b.Grade
		}
		if a.ItemName != b.ItemName {
			return a.ItemName < b.ItemName
		}
		return a.Chance > b.Chance
	})
	item.RelicRewards = out
}
