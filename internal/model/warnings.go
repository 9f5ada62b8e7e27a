package model

import "sort"

// Warnings is the explicit collector threaded through pipeline stages in
// place of hidden module-level accumulators. Stages add, the runner merges,
// the exporter reports. Not safe for concurrent use; the merge step is the
// cross-goroutine boundary.
type Warnings struct {
	byKind map[string][]string
}

func NewWarnings() *Warnings {
	return &Warnings{byKind: map[string][]string{}}
}

// Add records one warning of the given kind about the given identifier.
func (w *Warnings) Add(kind, ident string) {
	w.byKind[kind] = append(w.byKind[kind], ident)
}

func (w *Warnings) Merge(other *Warnings) {
	if other == nil {
		return
	}
	for kind, idents := range other.byKind {
		w.byKind[kind] = append(w.byKind[kind], idents...)
	}
}

// Count returns the total number of recorded warnings, duplicates included.
func (w *Warnings) Count() int {
	n := 0
	for _, idents := range w.byKind {
		n += len(idents)
	}
	return n
}

// Sorted returns the warnings per kind, deduplicated and sorted so the
// persisted report stays diff-stable across runs.
func (w *Warnings) Sorted() map[string][]string {
	out := make(map[string][]string, len(w.byKind))
	for kind, idents := range w.byKind {
		seen := make(map[string]struct{}, len(idents))
		uniq := make([]string, 0, len(idents))
		for _, id := range idents {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			uniq = append(uniq, id)
		}
		sort.Strings(uniq)
		out[kind] = uniq
	}
	return out
}
