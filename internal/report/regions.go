package report

// DefaultRegion is used when a request does not specify a target region.
const DefaultRegion = "Global (Worldwide)"

// Regions is the closed list of supported target regions. The value is
// embedded verbatim in the analysis prompt and stored verbatim on the
// resulting Report; it never changes the schema shape.
var Regions = []string{
	DefaultRegion,
	"United States",
	"India",
	"United Kingdom",
	"Canada",
	"Australia",
	"European Union",
	"Germany",
	"France",
	"Japan",
	"Brazil",
}

// IsSupportedRegion reports whether region is one of the supported values.
func IsSupportedRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}
