package jstype

// DefaultTagKey is the struct tag used to name record keys of struct fields
// if Config.TagKey is empty.
const DefaultTagKey = "json"

type Config struct {
	// Aliases are substituted into the inferred type with Simplify. If
	// Aliases is nil, the inferred type is returned as is.
	Aliases *Aliases

	// TagKey selects the struct tag that names record keys for struct
	// fields. A tag value "-" skips the field.
	TagKey string

	// MaxDepth limits the number of nested containers that are inferred.
	// Containers nested deeper are described as TypeAny. Zero means no
	// limit.
	MaxDepth int
}

var defaultConfig Config

func (cfg *Config) tagKey() string {
	if cfg.TagKey == "" {
		return DefaultTagKey
	}
	return cfg.TagKey
}

// deeper reports whether depth exceeds the configured MaxDepth.
func (cfg *Config) deeper(depth int) bool {
	return cfg.MaxDepth > 0 && depth >= cfg.MaxDepth
}

// inferOnly returns a copy of cfg without aliases.
func (cfg *Config) inferOnly() *Config {
	if cfg == nil {
		return &defaultConfig
	}
	res := *cfg
	res.Aliases = nil
	return &res
}
