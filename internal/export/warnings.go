package export

import (
	"ordis.dev/itembuilder/internal/model"
)

// WriteWarnings persists the warnings report, one deduplicated, sorted
// section per kind.
func (e *Exporter) WriteWarnings(w *model.Warnings) error {
	return e.writeJSON("Warnings.json", w.Sorted())
}
