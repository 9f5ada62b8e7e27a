package build

import (
	"strings"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

// addDucats resolves component sell values. Only prime component lists carry
// ducats; each component is looked up by the exact "<item> <component>"
// string the price list keys. A miss warns unless the component is itself a
// prime-on-prime combination that is legitimately absent from the list.
func (p *Pipeline) addDucats(item *model.Item) {
	if len(item.Components) == 0 || !strings.Contains(item.Name, "Prime") {
		return
	}

	for _, comp := range item.Components {
		if comp.Ducats > 0 {
			// blueprint pseudo-components carry the recipe's selling price
			continue
		}
		key := item.Name + " " + comp.Name
		if value, ok := p.ducats[key]; ok {
			comp.Ducats = value
			continue
		}
		if !strings.Contains(comp.Name, "Prime") {
			p.warns.Add(constant.WarnMissingDucats, key)
		}
	}
}
