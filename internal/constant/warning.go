package constant

// Warning kinds. Each kind becomes one deduplicated, sorted section of the
// warnings report.
const (
	WarnMissingImage      = "missingImage"
	WarnMissingDucats     = "missingDucats"
	WarnMissingComponents = "missingComponents"
	WarnMissingVaultData  = "missingVaultData"
	WarnPolarity          = "polarity"
	WarnMissingType       = "missingType"
	WarnFailedImage       = "failedImage"
	WarnMissingWikiThumb  = "missingWikiThumb"
)

var WarningKinds = []string{
	WarnMissingImage,
	WarnMissingDucats,
	WarnMissingComponents,
	WarnMissingVaultData,
	WarnPolarity,
	WarnMissingType,
	WarnFailedImage,
	WarnMissingWikiThumb,
}
