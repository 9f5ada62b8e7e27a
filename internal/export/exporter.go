package export

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/app/appconfig"
	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

// Exporter persists the built dataset. Output must be byte-stable: field
// order is fixed by the struct tags, item order by the pipeline's sort, and
// every file is written whole so reruns with unchanged sources produce no
// diff at all.
type Exporter struct {
	conf *appconfig.Config
}

func NewExporter(conf *appconfig.Config) *Exporter {
	return &Exporter{conf: conf}
}

// WriteCategories writes one JSON array per output category. Every category
// gets a file, empty partitions included, so the file set never fluctuates.
func (e *Exporter) WriteCategories(categories map[string][]*model.Item) error {
	for _, cat := range constant.Categories {
		items := categories[cat]
		if items == nil {
			items = []*model.Item{}
		}
		if err := e.writeJSON(cat+".json", items); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) WriteAll(all []*model.Item) error {
	return e.writeJSON("All.json", all)
}

func (e *Exporter) writeJSON(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", name)
	}
	return e.writeRaw(name, append(b, '\n'))
}

func (e *Exporter) writeRaw(name string, b []byte) error {
	if err := os.MkdirAll(e.conf.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output dir")
	}

	path := filepath.Join(e.conf.OutputDir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	log.Debug().Str("file", name).Int("bytes", len(b)).Msg("output written")
	return nil
}
