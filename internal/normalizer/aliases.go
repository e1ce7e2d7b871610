package normalizer

import "github.com/francuello10/tec-ecommerce-suite/internal/store"

// staticAliases maps folded supplier labels to canonical names.
// Keys must be folded with foldLabel.
var staticAliases = map[store.LabelKind]map[string]string{
	store.LabelKindBrand: {
		"HEWLET PACKARD ENTERPRISE":  "HPE",
		"HEWLETT PACKARD ENTERPRISE": "HPE",
		"HP ENTERPRISE":              "HPE",
		"HEWLETT PACKARD":            "HP",
		"HEWLET PACKARD":             "HP",
		"HP INC":                     "HP",
		"HP INC.":                    "HP",
		"LENOVO PCG":                 "Lenovo",
		"LENOVO DCG":                 "Lenovo",
		"LENOVO ISG":                 "Lenovo",
		"DELL TECHNOLOGIES":          "Dell",
		"DELL EMC":                   "Dell",
		"ASUSTEK":                    "ASUS",
		"ASUSTEK COMPUTER":           "ASUS",
		"ACER INC":                   "Acer",
		"SAMSUNG ELECTRONICS":        "Samsung",
		"LG ELECTRONICS":             "LG",
		"MICRO-STAR":                 "MSI",
		"MICRO STAR INTERNATIONAL":   "MSI",
		"WESTERN DIGITAL":            "WD",
		"TP LINK":                    "TP-Link",
		"TPLINK":                     "TP-Link",
		"LOGITECH INTERNATIONAL":     "Logitech",
		"EPSON AMERICA":              "Epson",
		"SEIKO EPSON":                "Epson",
		"BROTHER INTERNATIONAL":      "Brother",
		"HIKVISION DIGITAL":          "Hikvision",
		"DAHUA TECHNOLOGY":           "Dahua",
	},
	store.LabelKindCategory: {
		"NOTEBOOKS":            "Notebooks",
		"NOTEBOOK":             "Notebooks",
		"PORTATILES":           "Notebooks",
		"LAPTOPS":              "Notebooks",
		"PC":                   "PCs",
		"DESKTOPS":             "PCs",
		"PC DE ESCRITORIO":     "Computadoras",
		"MINI PC":              "Mini PCs",
		"SERVIDOR":             "Servidores",
		"SERVERS":              "Servidores",
		"MONITOR":              "Monitores",
		"MONITORS":             "Monitores",
		"IMPRESORA":            "Impresoras",
		"PRINTERS":             "Impresoras",
		"GAMING":               "Periféricos Gamers",
		"PERIFERICOS GAMING":   "Periféricos Gamers",
		"CCTV":                 "Videovigilancia",
		"CAMARAS DE SEGURIDAD": "Videovigilancia",
	},
}
