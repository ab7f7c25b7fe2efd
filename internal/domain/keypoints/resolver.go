package keypoints

// Source is one configuration tier. Lookup reports the tier's value for an
// option key and whether it is present.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource is a Source backed by option keys.
type MapSource map[string]string

// Lookup implements Source. Empty values count as absent.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok && v != ""
}

// Resolve merges tiers, ordered highest precedence first, into an effective
// Config. For each field the first tier holding a non-empty value wins; fields
// no tier supplies take the DefaultConfig value. Values are not validated.
func Resolve(tiers ...Source) Config {
	def := DefaultConfig()
	return Config{
		View:        pick(tiers, KeyView, def.View),
		Mode:        pick(tiers, KeyMode, def.Mode),
		Title:       pick(tiers, KeyTitle, def.Title),
		ButtonStyle: pick(tiers, KeyButtonStyle, def.ButtonStyle),
		ButtonColor: pick(tiers, KeyButtonColor, def.ButtonColor),
		ListType:    pick(tiers, KeyListType, def.ListType),
	}
}

func pick(tiers []Source, key, fallback string) string {
	for _, tier := range tiers {
		if tier == nil {
			continue
		}
		if v, ok := tier.Lookup(key); ok && v != "" {
			return v
		}
	}
	return fallback
}
