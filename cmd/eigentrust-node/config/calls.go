package config

// Sub returns the named section of the Config. Missing section is
// returned as an empty one.
func (x *Config) Sub(name string) *Config {
	return &Config{
		v:      x.v,
		opts:   x.opts,
		prefix: x.key(name),
	}
}

// Value returns raw value of the named parameter or nil if it is
// missing. Use cast functions like String or Duration to get typed
// values.
func (x *Config) Value(name string) any {
	return x.v.Get(x.key(name))
}

func (x *Config) key(name string) string {
	if x.prefix == "" {
		return name
	}

	return x.prefix + separator + name
}
