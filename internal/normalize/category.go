package normalize

const (
	Nacionales      = "nacionales"
	SanJuan         = "sanjuan"
	Sindicales      = "sindicales"
	Opinion         = "opinion"
	Internacionales = "internacionales"
)

// Keys lists the known categories in registry order
var Keys = []string{Nacionales, SanJuan, Sindicales, Opinion, Internacionales}

type categoryMeta struct {
	name  string
	label string
	color string
}

var categoryMetadata = map[string]categoryMeta{
	Nacionales:      {name: "Noticias Nacionales", label: "NACIONAL", color: "bg-blue-600"},
	SanJuan:         {name: "Noticias de San Juan", label: "SAN JUAN", color: "bg-red-500"},
	Sindicales:      {name: "Noticias Sindicales", label: "SINDICAL", color: "bg-green-600"},
	Internacionales: {name: "Noticias Internacionales", label: "INTERNACIONAL", color: "bg-yellow-600"},
	Opinion:         {name: "Columna de Opinión", label: "OPINIÓN", color: "bg-purple-600"},
}

var defaultCategory = categoryMeta{name: "Noticia", label: "NOTICIA", color: "bg-purple-600"}

func metaFor(key string) categoryMeta {
	if meta, ok := categoryMetadata[key]; ok {
		return meta
	}
	return defaultCategory
}

// Known reports whether key belongs to the closed category set.
func Known(key string) bool {
	_, ok := categoryMetadata[key]
	return ok
}

// DisplayName returns the section title, e.g. "Noticias de San Juan".
func DisplayName(key string) string {
	return metaFor(key).name
}

// ShortLabel returns the uppercase badge text.
func ShortLabel(key string) string {
	return metaFor(key).label
}

// ColorToken returns the badge background class.
func ColorToken(key string) string {
	return metaFor(key).color
}
