package domain

const (
	// SETTINGS_PREFIX is the prefix of the flat enrichment configuration keys
	SETTINGS_PREFIX = "catalog_enricher."

	// SOURCE_MIXED marks a product that received data from more than one source in a pass
	SOURCE_MIXED = "mixed"

	// DEFAULT_USER_AGENT is sent on every outbound fetch
	DEFAULT_USER_AGENT = "Mozilla/5.0 (compatible; TecCatalogEnricher/1.0)"

	// MAX_IMAGE_DIMENSION bounds stored image width and height in pixels
	MAX_IMAGE_DIMENSION = 1920
)
