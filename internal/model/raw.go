package model

import (
	"gopkg.in/guregu/null.v3"
)

// RawItem is one record of a game-export category endpoint, decoded only as
// far as the pipeline reads it.
type RawItem struct {
	UniqueName        string   `json:"uniqueName"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	ProductCategory   string   `json:"productCategory"`
	Slot              *int     `json:"slot"`
	Type              string   `json:"type"`
	FactionTag        string   `json:"factionTag"`
	ExcludeFromCodex  bool     `json:"excludeFromCodex"`
	PrimeSellingPrice int      `json:"primeSellingPrice"`
	IsAugment         bool     `json:"isAugment"`
	Polarity          string   `json:"polarity"`
	Polarities        []string `json:"polarities"`
	Aura              string   `json:"aura"`
	Sex               string   `json:"sex"`

	DamagePerShot []float64 `json:"damagePerShot"`
	TotalDamage   float64   `json:"totalDamage"`

	// Resistances affector string, enemies only. e.g. "++El -To".
	Affectors string `json:"affectors"`
}

// RawCategory is one game-export endpoint: a category name plus its records.
type RawCategory struct {
	Category string    `json:"category"`
	Data     []RawItem `json:"data"`
}

// RawBlueprint is one crafting recipe of the Recipes endpoint. It is
// consumed during component folding and never emitted standalone.
type RawBlueprint struct {
	UniqueName         string          `json:"uniqueName"`
	ResultType         string          `json:"resultType"`
	Ingredients        []RawIngredient `json:"ingredients"`
	BuildPrice         int             `json:"buildPrice"`
	BuildTime          int             `json:"buildTime"`
	SkipBuildTimePrice int             `json:"skipBuildTimePrice"`
	Num                int             `json:"num"`
	ConsumeOnUse       bool            `json:"consumeOnUse"`
	PrimeSellingPrice  int             `json:"primeSellingPrice"`
}

type RawIngredient struct {
	ItemType  string `json:"ItemType"`
	ItemCount int    `json:"ItemCount"`
}

// ManifestEntry maps a uniqueName to its texture in the export manifest.
type ManifestEntry struct {
	UniqueName      string `json:"uniqueName"`
	TextureLocation string `json:"textureLocation"`
	FileTime        int64  `json:"fileTime"`
}

// RawDrop is one flattened drop-table line of the community aggregator.
// Chance is the upstream percentage, not yet scaled to a probability.
type RawDrop struct {
	Location string  `json:"place"`
	Item     string  `json:"item"`
	Rarity   string  `json:"rarity"`
	Chance   float64 `json:"chance"`
	Rotation string  `json:"rotation,omitempty"`
}

// Drops is the drop-rate source together with its change marker.
type Drops struct {
	Changed bool      `json:"changed"`
	Rates   []RawDrop `json:"rates"`
}

// Patchlogs is the patch-notes archive together with its change marker.
// Posts are scanned per item name during enrichment; the scan is the
// expensive step the change marker gates.
type Patchlogs struct {
	Changed bool           `json:"changed"`
	Posts   []PatchlogPost `json:"patchlogs"`
}

// PatchlogPost is one archived patch-notes post.
type PatchlogPost struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	URL       string `json:"url"`
	Imgur     string `json:"imgur,omitempty"`
	Additions string `json:"additions,omitempty"`
	Changes   string `json:"changes,omitempty"`
	Fixes     string `json:"fixes,omitempty"`
}

// VaultRecord is one entry of the vault tracker dataset. Dates are nullable
// upstream; they stay nullable here and are flattened onto the item only
// when valid.
type VaultRecord struct {
	Name                 string      `json:"Name"`
	ReleaseDate          null.String `json:"ReleaseDate"`
	VaultedDate          null.String `json:"VaultedDate"`
	EstimatedVaultedDate null.String `json:"EstimatedVaultedDate"`
	Vaulted              null.Bool   `json:"Vaulted"`
}

// TitaniaRelic is one relic of the per-grade reward dataset.
type TitaniaRelic struct {
	Tier    string             `json:"tier"`
	Name    string             `json:"relicName"`
	State   string             `json:"state"`
	Rewards []TitaniaRelicItem `json:"rewards"`
}

type TitaniaRelicItem struct {
	ItemName string  `json:"itemName"`
	Rarity   string  `json:"rarity"`
	Chance   float64 `json:"chance"`
}

// Wikia bundles the wiki's structured data modules the pipeline consumes.
type Wikia struct {
	Weapons    []WikiaWeapon
	Warframes  []WikiaWarframe
	Mods       []WikiaMod
	Versions   []WikiaVersion
	Ducats     []WikiaDucat
	Archwings  []WikiaWarframe
	Companions []WikiaWeapon
}

type WikiaWeapon struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Disposition int    `json:"disposition"`
}

type WikiaWarframe struct {
	Name       string   `json:"name"`
	URL        string   `json:"url"`
	Thumbnail  string   `json:"thumbnail"`
	Aura       string   `json:"aura"`
	Polarities []string `json:"polarities"`
	Sex        string   `json:"sex"`
	Vaulted    *bool    `json:"vaulted"`
	Introduced string   `json:"introduced"`
}

type WikiaMod struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Thumbnail    string `json:"thumbnail"`
	Rarity       string `json:"rarity"`
	Transmutable *bool  `json:"transmutable"`
}

type WikiaVersion struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// WikiaDucat maps "<item name> <component name>" to its ducat value.
type WikiaDucat struct {
	Name   string `json:"name"`
	Ducats int    `json:"ducats"`
}

// RawData is the full set of upstream snapshots one build consumes.
type RawData struct {
	API        []RawCategory
	Blueprints []RawBlueprint
	Manifest   []ManifestEntry
	Drops      *Drops
	Patchlogs  *Patchlogs
	Wikia      *Wikia
	VaultData  []VaultRecord
	Relics     []TitaniaRelic

	// I18n holds localized field values per locale and uniqueName, consumed
	// verbatim by the i18n exporter.
	I18n map[string]map[string]map[string]string
}
