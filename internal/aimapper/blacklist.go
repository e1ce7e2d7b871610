package aimapper

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// reservedNames are attribute names owned by dedicated product fields
var reservedNames = map[string]bool{
	"marca":           true,
	"brand":           true,
	"fabricante":      true,
	"manufacturer":    true,
	"sku":             true,
	"part number":     true,
	"partnumber":      true,
	"numero de parte": true,
	"nro de parte":    true,
	"mpn":             true,
	"modelo":          true,
	"model":           true,
	"codigo":          true,
	"ean":             true,
	"upc":             true,
}

// reservedWords reject any attribute name that contains them
var reservedWords = map[string]bool{
	"precio": true,
	"price":  true,
	"costo":  true,
	"cost":   true,
	"pvp":    true,
	"msrp":   true,
}

// IsReservedAttribute reports whether an attribute name collides with a dedicated field:
// brand, SKU and part number, or any price or cost term.
// Matching ignores case, accents and separators.
func IsReservedAttribute(name string) bool {
	folded := foldName(name)
	if folded == "" {
		return true
	}
	if reservedNames[folded] {
		return true
	}
	for _, word := range strings.Fields(folded) {
		if reservedWords[word] {
			return true
		}
	}
	return false
}

func foldName(name string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		stripped = name
	}
	stripped = strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.', '/', ':':
			return ' '
		}
		return unicode.ToLower(r)
	}, stripped)
	return strings.Join(strings.Fields(stripped), " ")
}
