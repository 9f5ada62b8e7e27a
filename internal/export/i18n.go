package export

import (
	"sort"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/tidwall/sjson"
)

// WriteI18n assembles the localized side table: uniqueName -> locale ->
// allowed localized fields. The raw snapshot arrives keyed locale-first;
// the document is pivoted and emitted in sorted key order so the file stays
// diff-stable.
func (e *Exporter) WriteI18n(i18n map[string]map[string]map[string]string) error {
	var locales []string
	linq.From(i18n).
		SelectT(func(kv linq.KeyValue) string { return kv.Key.(string) }).
		OrderByT(func(s string) string { return s }).
		ToSlice(&locales)

	uniqueNames := map[string]struct{}{}
	for _, byUnique := range i18n {
		for uniqueName := range byUnique {
			uniqueNames[uniqueName] = struct{}{}
		}
	}
	sortedNames := make([]string, 0, len(uniqueNames))
	for n := range uniqueNames {
		sortedNames = append(sortedNames, n)
	}
	sort.Strings(sortedNames)

	doc := []byte("{}")
	for _, uniqueName := range sortedNames {
		for _, locale := range locales {
			fields := i18n[locale][uniqueName]
			if len(fields) == 0 {
				continue
			}
			fieldNames := make([]string, 0, len(fields))
			for f := range fields {
				fieldNames = append(fieldNames, f)
			}
			sort.Strings(fieldNames)

			var err error
			for _, f := range fieldNames {
				doc, err = sjson.SetBytes(doc, escapePath(uniqueName)+"."+locale+"."+f, fields[f])
				if err != nil {
					return err
				}
			}
		}
	}

	return e.writeRaw("i18n.json", append(doc, '\n'))
}

// escapePath protects sjson path meta characters inside a uniqueName key.
func escapePath(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '\\', '|', '#', '@':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}
