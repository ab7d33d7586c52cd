package dict

import "github.com/rs/zerolog"

type Option func(*Dictionary) *Dictionary

func DefaultOptions() *Dictionary {
	return &Dictionary{
		logger: zerolog.Nop(),
	}
}

// WithLogger attaches a structured logger; the dictionary logs every add
// and lookup at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dictionary) *Dictionary {
		d.logger = logger
		return d
	}
}

// WithNormalize applies fn to every word before it is stored or looked up,
// e.g. strings.ToLower for a case-insensitive dictionary.
func WithNormalize(fn func(string) string) Option {
	return func(d *Dictionary) *Dictionary {
		d.normalize = fn
		return d
	}
}
