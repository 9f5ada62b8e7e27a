package appconfig

import (
	"time"

	"ordis.dev/itembuilder/internal/app/appcontext"
)

type ConfigSpec struct {
	// OutputDir is the directory the built dataset (per-category JSON files,
	// All.json, i18n table and the warnings report) is written to.
	OutputDir string `split_words:"true" default:"data"`

	// CacheDir holds raw source snapshots and the change cache. Snapshots are
	// reused verbatim when the corresponding source hash is unchanged.
	CacheDir string `split_words:"true" default:"data/cache"`

	// ImageDir is the local image cache directory.
	ImageDir string `split_words:"true" default:"data/img"`

	// Locales is the list of locales to fetch from the game export in addition
	// to en. Localized fields end up in the i18n side table, never in the
	// category files.
	Locales []string `split_words:"true" default:"de,fr,it,ko,es,zh,ru,ja,pl,pt,tc,th,tr,uk"`

	// DevMode to indicate development mode. When true, the program logs at
	// trace level and pretty-prints instead of emitting JSON log lines.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to
	// stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// upstream sources. Overridable so tests and mirrors can point the
	// fetchers at local fixtures.

	// OriginURL is the base URL of the game-data export API.
	OriginURL string `split_words:"true" default:"https://content.warframe.com"`

	// DropRatesURL is the URL of the flattened community drop-rate table.
	DropRatesURL string `split_words:"true" default:"https://drops.warframestat.us/data/all.slim.json"`

	// PatchlogsURL is the base URL of the patch-notes archive index.
	PatchlogsURL string `split_words:"true" default:"https://forums.warframe.com/forum/3-pc-update-notes/"`

	// WikiaURL is the base URL of the wiki's structured data modules.
	WikiaURL string `split_words:"true" default:"https://wiki.warframe.com"`

	// VaultDataURL is the URL of the third-party vault/ducat tracker dataset.
	VaultDataURL string `split_words:"true" default:"https://api.warframestat.us/vaultData"`

	// RelicDataURL is the URL of the per-grade relic reward dataset.
	RelicDataURL string `split_words:"true" default:"https://drops.warframestat.us/data/relics.json"`

	// HTTPTimeout is the per-request timeout of the shared upstream client.
	HTTPTimeout time.Duration `split_words:"true" default:"30s"`

	// HTTPRetries is how many times a failed upstream request is retried
	// before the build aborts. Source unavailability is fatal to the run.
	HTTPRetries uint `split_words:"true" default:"5"`

	// FetchConcurrency bounds the per-locale/per-endpoint fetch fan-out.
	FetchConcurrency int `split_words:"true" default:"8"`

	// UserAgent identifies the builder to upstream sources.
	UserAgent string `split_words:"true" default:"ordis-itembuilder"`

	// ImageMaxSize is the longest edge, in pixels, an image in the local cache
	// may have. Larger upstream textures are downscaled on ingest.
	ImageMaxSize int `split_words:"true" default:"512"`

	// publisher (optional). Publishing is skipped when S3Bucket is empty.

	// S3Bucket is the bucket the gzipped dataset is uploaded to.
	S3Bucket string `split_words:"true"`

	// S3Region is the region of the dataset bucket.
	S3Region string `split_words:"true" default:"us-east-1"`

	// S3Prefix is for the files in the bucket with no leading slash but
	// optionally (typically) with trailing slash, e.g. "v1/" or "".
	S3Prefix string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
