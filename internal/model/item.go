package model

// Item is the canonical unit of the built dataset. Components share the same
// shape: a component never carries its own category, inherits type context
// from its parent and additionally carries itemCount and ducats.
type Item struct {
	UniqueName  string `json:"uniqueName"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Category    string `json:"category,omitempty"`

	Tradable   bool `json:"tradable"`
	Masterable bool `json:"masterable"`

	ImageName string `json:"imageName,omitempty"`

	// Blueprint-derived fields, present only when the item has a recipe.
	Components     []*Item `json:"components,omitempty"`
	BuildPrice     int     `json:"buildPrice,omitempty"`
	BuildTime      int     `json:"buildTime,omitempty"`
	BuildQuantity  int     `json:"buildQuantity,omitempty"`
	SkipBuildTime  int     `json:"skipBuildTimePrice,omitempty"`
	ConsumeOnBuild bool    `json:"consumeOnBuild,omitempty"`

	// Component-only fields.
	ItemCount int      `json:"itemCount,omitempty"`
	Ducats    int      `json:"ducats,omitempty"`
	Parents   []string `json:"parents,omitempty"`

	Drops     []DropEntry `json:"drops,omitempty"`
	Patchlogs []Patchlog  `json:"patchlogs,omitempty"`

	// Vault tracker / wiki enrichment.
	ReleaseDate        string `json:"releaseDate,omitempty"`
	Vaulted            *bool  `json:"vaulted,omitempty"`
	VaultDate          string `json:"vaultDate,omitempty"`
	EstimatedVaultDate string `json:"estimatedVaultDate,omitempty"`

	WikiaThumbnail string   `json:"wikiaThumbnail,omitempty"`
	WikiaURL       string   `json:"wikiaUrl,omitempty"`
	Disposition    int      `json:"disposition,omitempty"`
	Aura           string   `json:"aura,omitempty"`
	Sex            string   `json:"sex,omitempty"`
	Polarities     []string `json:"polarities,omitempty"`
	Polarity       string   `json:"polarity,omitempty"`
	Rarity         string   `json:"rarity,omitempty"`
	Transmutable   *bool    `json:"transmutable,omitempty"`

	Damage      *Damage      `json:"damage,omitempty"`
	Resistances []Resistance `json:"resistances,omitempty"`

	RelicRewards []RelicReward `json:"rewards,omitempty"`

	ProductCategory  string `json:"productCategory,omitempty"`
	ExcludeFromCodex bool   `json:"excludeFromCodex,omitempty"`

	// Transient state, stripped before export.
	IsArchwing bool   `json:"-"`
	Parent     string `json:"-"`
}

// Clone returns a deep enough copy for pipeline purposes: slices holding
// value types are copied, nested components are cloned recursively.
func (i *Item) Clone() *Item {
	c := *i
	c.Components = nil
	for _, comp := range i.Components {
		c.Components = append(c.Components, comp.Clone())
	}
	c.Drops = append([]DropEntry(nil), i.Drops...)
	c.Patchlogs = append([]Patchlog(nil), i.Patchlogs...)
	c.Polarities = append([]string(nil), i.Polarities...)
	c.Parents = append([]string(nil), i.Parents...)
	c.Resistances = append([]Resistance(nil), i.Resistances...)
	c.RelicRewards = append([]RelicReward(nil), i.RelicRewards...)
	return &c
}

// DropEntry is one resolved drop location of an item or component.
// Chance is a probability in [0, 1].
type DropEntry struct {
	Location string  `json:"location"`
	Type     string  `json:"type"`
	Rarity   string  `json:"rarity,omitempty"`
	Chance   float64 `json:"chance"`
	Rotation string  `json:"rotation,omitempty"`
}

// Patchlog is one patch-notes entry mentioning the item.
type Patchlog struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	URL       string `json:"url"`
	Imgur     string `json:"imgur,omitempty"`
	Additions string `json:"additions,omitempty"`
	Changes   string `json:"changes,omitempty"`
	Fixes     string `json:"fixes,omitempty"`
}

// Damage is the named decomposition of the export's positional per-shot
// damage array.
type Damage struct {
	Total       float64 `json:"total"`
	Impact      float64 `json:"impact,omitempty"`
	Puncture    float64 `json:"puncture,omitempty"`
	Slash       float64 `json:"slash,omitempty"`
	Heat        float64 `json:"heat,omitempty"`
	Cold        float64 `json:"cold,omitempty"`
	Electricity float64 `json:"electricity,omitempty"`
	Toxin       float64 `json:"toxin,omitempty"`
	Blast       float64 `json:"blast,omitempty"`
	Radiation   float64 `json:"radiation,omitempty"`
	Gas         float64 `json:"gas,omitempty"`
	Magnetic    float64 `json:"magnetic,omitempty"`
	Viral       float64 `json:"viral,omitempty"`
	Corrosive   float64 `json:"corrosive,omitempty"`
	Void        float64 `json:"void,omitempty"`
	Tau         float64 `json:"tau,omitempty"`
	Cinematic   float64 `json:"cinematic,omitempty"`
	ShieldDrain float64 `json:"shieldDrain,omitempty"`
	HealthDrain float64 `json:"healthDrain,omitempty"`
	EnergyDrain float64 `json:"energyDrain,omitempty"`
	True        float64 `json:"true,omitempty"`
}

// Resistance is one parsed element affector of an enemy.
type Resistance struct {
	Element  string  `json:"element"`
	Modifier float64 `json:"modifier"`
}

// RelicReward is one per-grade reward line of a relic.
type RelicReward struct {
	ItemName string  `json:"itemName"`
	Rarity   string  `json:"rarity"`
	Chance   float64 `json:"chance"`
	Grade    string  `json:"grade"`
}
