package model

// Tag classifies the operational category of a managed validator.
type Tag string

const (
	TagSolo       Tag = "solo"
	TagRocketpool Tag = "rocketpool"
	TagStakehouse Tag = "stakehouse"
	TagStakewise  Tag = "stakewise"
	TagDiva       Tag = "diva"
	TagObol       Tag = "obol"
	TagSSV        Tag = "ssv"
	TagLido       Tag = "lido"
)

// Tags lists every known tag.
var Tags = []Tag{
	TagSolo,
	TagRocketpool,
	TagStakehouse,
	TagStakewise,
	TagDiva,
	TagObol,
	TagSSV,
	TagLido,
}

// Valid reports whether t belongs to the closed set of tags.
func (t Tag) Valid() bool {
	for _, known := range Tags {
		if t == known {
			return true
		}
	}
	return false
}

// ImportSource tells whether a keystore batch was imported interactively or by
// an automated process.
type ImportSource string

const (
	// ImportFromUI marks an interactive import.
	ImportFromUI ImportSource = "ui"
	// ImportFromAPI marks an import performed by an automated process.
	ImportFromAPI ImportSource = "api"
)

// Automatic reports whether credentials imported from s are flagged as automatic imports.
func (s ImportSource) Automatic() bool {
	return s == ImportFromAPI
}
