package model

// Patch is a typed partial override of an Item, keyed by uniqueName and
// applied last, unconditionally, field by field. Only fields overrides have
// historically needed are representable; unexpected keys cannot leak into
// the schema.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Category    *string `json:"category,omitempty"`
	Tradable    *bool   `json:"tradable,omitempty"`
	Masterable  *bool   `json:"masterable,omitempty"`
	ImageName   *string `json:"imageName,omitempty"`
	Description *string `json:"description,omitempty"`
	Polarity    *string `json:"polarity,omitempty"`
}

// Apply copies every set field of the patch onto the item.
func (p *Patch) Apply(item *Item) {
	if p == nil {
		return
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Tradable != nil {
		item.Tradable = *p.Tradable
	}
	if p.Masterable != nil {
		item.Masterable = *p.Masterable
	}
	if p.ImageName != nil {
		item.ImageName = *p.ImageName
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Polarity != nil {
		item.Polarity = *p.Polarity
	}
}
