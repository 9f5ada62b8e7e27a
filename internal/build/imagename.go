package build

import (
	"path/filepath"
	"strings"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/hashcache"
	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/tables"
)

// imageName assigns the image cache slug for one item or component. Missing
// manifest entries are a missingImage warning and leave the field unset;
// the build proceeds without an image.
func (p *Pipeline) imageName(item *model.Item, rawItem *model.RawItem, parentName string) string {
	entry := p.manifest[item.UniqueName]
	if entry == nil {
		p.warns.Add(constant.WarnMissingImage, item.Name)
		return ""
	}

	base := item.Name
	if item.Type == "Relic" || isRelicPath(item.UniqueName) {
		// all grades of one relic share one image
		base = stripRelicGrade(base)
	}

	slug := slugify(base)

	if parentName != "" {
		slug = strings.TrimPrefix(slug, slugify(parentName)+"-")
		if strings.Contains(rawItem.Name, "Prime") && !strings.HasPrefix(slug, "prime-") {
			slug = "prime-" + slug
		}
	}

	// same-named items disambiguate through an encoded uniqueName suffix;
	// the first occupant keeps the bare slug
	if owner, taken := p.slugOwners[slug]; taken && owner != item.UniqueName {
		slug += "-" + hashcache.Hash([]byte(item.UniqueName))[:8]
	}
	p.slugOwners[slug] = item.UniqueName

	return slug + textureExt(entry.TextureLocation)
}

// slugify lowercases and collapses path, space and asterisk separators to
// dashes, dropping everything filesystem-unsafe.
func slugify(name string) string {
	name = strings.ToLower(name)

	var sb strings.Builder
	lastDash := true // swallow leading separators
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		case r == '/' || r == ' ' || r == '*' || r == '-':
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// textureExt extracts the original file extension of a manifest texture
// location, which carries a content token after a bang or query separator.
func textureExt(location string) string {
	if i := strings.IndexAny(location, "!?"); i >= 0 {
		location = location[:i]
	}
	return filepath.Ext(location)
}

func stripRelicGrade(name string) string {
	words := strings.Fields(name)
	out := words[:0]
	for _, w := range words {
		graded := false
		for _, g := range tables.RelicGrades {
			if w == g {
				graded = true
				break
			}
		}
		if !graded {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
