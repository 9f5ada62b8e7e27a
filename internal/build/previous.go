package build

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/model"
)

// PreviousIndex is a read-only view over the prior build's All.json, used as
// the fallback source for drop and patchlog data when the corresponding
// upstream hash is unchanged. Lookups that find nothing are warning-class,
// never errors: the caller recomputes instead.
type PreviousIndex struct {
	byName map[string]*model.Item
}

func LoadPrevious(outputDir string) *PreviousIndex {
	idx := &PreviousIndex{byName: map[string]*model.Item{}}

	b, err := os.ReadFile(filepath.Join(outputDir, "All.json"))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("failed to read previous build, enrichment reuse disabled")
		}
		return idx
	}

	var items []*model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		log.Warn().Err(err).Msg("previous build is unreadable, enrichment reuse disabled")
		return idx
	}

	for _, item := range items {
		if _, ok := idx.byName[item.Name]; !ok {
			idx.byName[item.Name] = item
		}
	}
	return idx
}

// ByName returns the previous build's item of that name, or nil.
func (p *PreviousIndex) ByName(name string) *model.Item {
	return p.byName[name]
}

// Component returns the previous build's component of a parent, matched by
// component name, or nil.
func (p *PreviousIndex) Component(parentName, componentName string) *model.Item {
	parent := p.byName[parentName]
	if parent == nil {
		return nil
	}
	for _, comp := range parent.Components {
		if comp.Name == componentName {
			return comp
		}
	}
	return nil
}
