package build

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/pkg/cache"
	"ordis.dev/itembuilder/internal/tables"
)

// Pipeline merges one set of raw source snapshots into the canonical item
// list. It is single-use: construct per build, run once. Items are processed
// sequentially in source order; cross-item state is limited to the parents
// side-map and the image-slug registry, both owned by the pipeline itself.
type Pipeline struct {
	raw  *model.RawData
	prev *PreviousIndex

	warns *model.Warnings

	// indexes built once in prepare()
	blueprints map[string]*model.RawBlueprint // by resultType, deny-filtered
	rawByName  map[string]rawRef              // by uniqueName, first category wins
	manifest   map[string]*model.ManifestEntry
	parents    map[string][]string // component uniqueName -> sorted parent names
	ducats     map[string]int
	vault      map[string]*model.VaultRecord // by lowercased name
	versions   map[string]string             // wiki version name -> date
	relics     map[string][]model.RelicReward

	// slug registry for same-named items; first occupant keeps the bare slug
	slugOwners map[string]string

	matchers *cache.Set[*dropMatcher]
}

type rawRef struct {
	item     *model.RawItem
	category string
}

type Result struct {
	Categories map[string][]*model.Item
	All        []*model.Item
	I18n       map[string]map[string]map[string]string
	Warnings   *model.Warnings
}

func NewPipeline(raw *model.RawData, prev *PreviousIndex) *Pipeline {
	return &Pipeline{
		raw:        raw,
		prev:       prev,
		warns:      model.NewWarnings(),
		blueprints: map[string]*model.RawBlueprint{},
		rawByName:  map[string]rawRef{},
		manifest:   map[string]*model.ManifestEntry{},
		parents:    map[string][]string{},
		ducats:     map[string]int{},
		vault:      map[string]*model.VaultRecord{},
		versions:   map[string]string{},
		relics:     map[string][]model.RelicReward{},
		slugOwners: map[string]string{},
		matchers:   cache.NewSet[*dropMatcher]("dropmatcher"),
	}
}

func (p *Pipeline) Run() (*Result, error) {
	p.prepare()

	categories := map[string][]*model.Item{}
	seen := map[string]string{} // uniqueName -> category that owns the record

	for _, chunk := range p.raw.API {
		for i := range chunk.Data {
			rawItem := &chunk.Data[i]

			item, ok := p.processItem(rawItem, chunk.Category)
			if !ok {
				continue
			}
			if owner, dup := seen[item.UniqueName]; dup {
				log.Trace().Str("uniqueName", item.UniqueName).Str("owner", owner).Msg("collapsing duplicate record")
				continue
			}
			seen[item.UniqueName] = item.Category
			categories[item.Category] = append(categories[item.Category], item)
		}
	}

	all := make([]*model.Item, 0, len(seen))
	for _, cat := range constant.Categories {
		items := categories[cat]
		sortItems(items)
		all = append(all, items...)
	}
	sortItems(all)

	return &Result{
		Categories: categories,
		All:        all,
		I18n:       p.raw.I18n,
		Warnings:   p.warns,
	}, nil
}

// prepare builds the per-run indexes: blueprint-by-result, first-match item
// lookup, manifest, ducat prices, vault records, wiki versions, relic
// rewards, and the parents side-map (a full first pass over all blueprints,
// replacing in-place mutation of shared component records).
func (p *Pipeline) prepare() {
	sort.SliceStable(p.raw.API, func(i, j int) bool {
		return exportOrder(p.raw.API[i].Category) < exportOrder(p.raw.API[j].Category)
	})

	for i := range p.raw.Blueprints {
		bp := &p.raw.Blueprints[i]
		if _, denied := tables.BlueprintDenyList[bp.UniqueName]; denied {
			continue
		}
		if _, ok := p.blueprints[bp.ResultType]; !ok {
			p.blueprints[bp.ResultType] = bp
		}
	}

	for _, chunk := range p.raw.API {
		for i := range chunk.Data {
			rawItem := &chunk.Data[i]
			if _, ok := p.rawByName[rawItem.UniqueName]; !ok {
				p.rawByName[rawItem.UniqueName] = rawRef{item: rawItem, category: chunk.Category}
			}
		}
	}

	for i := range p.raw.Manifest {
		entry := &p.raw.Manifest[i]
		p.manifest[entry.UniqueName] = entry
	}

	if p.raw.Wikia != nil {
		for _, d := range p.raw.Wikia.Ducats {
			p.ducats[d.Name] = d.Ducats
		}
		for _, v := range p.raw.Wikia.Versions {
			p.versions[v.Name] = v.Date
		}
	}

	for i := range p.raw.VaultData {
		rec := &p.raw.VaultData[i]
		p.vault[strings.ToLower(rec.Name)] = rec
	}

	for _, relic := range p.raw.Relics {
		key := relic.Tier + " " + relic.Name
		for _, reward := range relic.Rewards {
			p.relics[key] = append(p.relics[key], model.RelicReward{
				ItemName: reward.ItemName,
				Rarity:   reward.Rarity,
				Chance:   reward.Chance,
				Grade:    relic.State,
			})
		}
	}

	// parents side-map: which top-level items consume each component
	for _, chunk := range p.raw.API {
		for i := range chunk.Data {
			rawItem := &chunk.Data[i]
			bp, ok := p.blueprints[rawItem.UniqueName]
			if !ok {
				continue
			}
			parentName := p.displayName(rawItem)
			for _, ing := range bp.Ingredients {
				p.parents[ing.ItemType] = append(p.parents[ing.ItemType], parentName)
			}
		}
	}
	for uniqueName, names := range p.parents {
		sort.Strings(names)
		p.parents[uniqueName] = dedupeStrings(names)
	}
}

// processItem runs one raw record through the full per-item pipeline.
// Returns false when the record must not become a standalone item.
func (p *Pipeline) processItem(rawItem *model.RawItem, sourceCategory string) (*model.Item, bool) {
	// recipes fold into their parents, never stand alone
	if strings.Contains(rawItem.UniqueName, "/Recipes/") {
		return nil, false
	}

	item := &model.Item{UniqueName: rawItem.UniqueName}

	p.parse(item, rawItem, "")
	p.classify(item, rawItem, sourceCategory)
	p.foldBlueprint(item, rawItem)
	p.enrich(item, rawItem, sourceCategory)
	p.finalize(item)

	return item, true
}

// enrich attaches all cross-source data. Each sub-step is independently
// recovered: a panic inside one step drops that step's contribution and the
// item proceeds with partial data.
func (p *Pipeline) enrich(item *model.Item, rawItem *model.RawItem, sourceCategory string) {
	p.step(item, "drops", func() { p.addDropRate(item) })
	p.step(item, "patchlogs", func() { p.addPatchlogs(item) })
	p.step(item, "vault", func() { p.addVaultData(item) })
	p.step(item, "wikia", func() { p.addWikiaData(item) })
	p.step(item, "ducats", func() { p.addDucats(item) })
	p.step(item, "damage", func() { p.addDamage(item, rawItem) })
	if sourceCategory == "Enemies" {
		p.step(item, "resistances", func() { p.addResistances(item, rawItem) })
	}
	p.step(item, "relics", func() { p.addRelicRewards(item) })
}

func (p *Pipeline) step(item *model.Item, name string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().
				Interface("panic", r).
				Str("uniqueName", item.UniqueName).
				Str("step", name).
				Msg("enrichment step failed, item continues with partial data")
		}
	}()
	f()
}

func sortItems(items []*model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].UniqueName < items[j].UniqueName
	})
}

func exportOrder(category string) int {
	for i, c := range constant.ExportCategories {
		if c == category {
			return i
		}
	}
	return len(constant.ExportCategories)
}

func dedupeStrings(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || sorted[i-1] != s {
			out = append(out, s)
		}
	}
	return out
}
