package build

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/tables"
)

const archwingTag = "<ARCHWING>"

var titleCaser = cases.Title(language.English)

// parse derives the identity fields of one record: display name, taxonomy
// type, archwing flag and image slug. parentName is non-empty when the
// record is folded as a component; child-specific naming rules only apply
// then.
func (p *Pipeline) parse(item *model.Item, rawItem *model.RawItem, parentName string) {
	item.Name = p.displayName(rawItem)
	item.Description = rawItem.Description
	item.ProductCategory = rawItem.ProductCategory
	item.ExcludeFromCodex = rawItem.ExcludeFromCodex
	item.Aura = rawItem.Aura
	item.Sex = rawItem.Sex
	item.Polarity = rawItem.Polarity
	item.Polarities = append([]string(nil), rawItem.Polarities...)

	if strings.Contains(rawItem.Name, archwingTag) || strings.Contains(rawItem.UniqueName, "/Archwing/") {
		item.IsArchwing = true
	}

	item.Type = p.resolveType(item, rawItem)

	item.ImageName = p.imageName(item, rawItem, parentName)
}

// displayName canonicalizes the raw display name: tag stripping, per-word
// capitalization with the Mk1 acronym quirk, and the last path segment as
// fallback when the export carries no name at all. Relic and requiem names
// keep their upstream casing because of the grade suffixes.
func (p *Pipeline) displayName(rawItem *model.RawItem) string {
	name := rawItem.Name
	if name == "" {
		segments := strings.Split(rawItem.UniqueName, "/")
		name = segments[len(segments)-1]
	}

	name = strings.TrimSpace(strings.ReplaceAll(name, archwingTag, ""))

	if isRelicPath(rawItem.UniqueName) {
		return name
	}

	name = titleCaser.String(name)

	// acronym quirk: the caser yields "Mk1", drop enrichment needs the
	// upstream "MK1" spelling; finalize reverts it
	if strings.HasPrefix(name, "Mk1") {
		name = "MK1" + name[3:]
	}
	return name
}

// resolveType walks the ordered taxonomy; the first non-append match wins.
// Fallbacks, in order: resource-description sniff, faction tag, raw product
// category, Misc with a warning.
func (p *Pipeline) resolveType(item *model.Item, rawItem *model.RawItem) string {
	prefix := ""
	for _, rule := range tables.Taxonomy {
		var matched bool
		if rule.Regex != nil {
			matched = rule.Regex.MatchString(rawItem.UniqueName)
		} else {
			matched = strings.Contains(rawItem.UniqueName, rule.ID)
		}
		if !matched {
			continue
		}
		if rule.Append {
			if prefix == "" {
				prefix = rule.Name
			}
			continue
		}
		if prefix != "" {
			return prefix + " " + rule.Name
		}
		return rule.Name
	}

	if strings.Contains(strings.ToLower(rawItem.Description), "resource") {
		return "Resource"
	}
	if rawItem.FactionTag != "" {
		return titleCaser.String(strings.ToLower(rawItem.FactionTag))
	}
	if rawItem.ProductCategory != "" {
		return rawItem.ProductCategory
	}

	p.warns.Add(constant.WarnMissingType, item.Name)
	return tables.TypeMisc
}

func isRelicPath(uniqueName string) bool {
	return strings.Contains(uniqueName, "/Projections/") ||
		strings.Contains(uniqueName, "/Types/Game/Projections/")
}
