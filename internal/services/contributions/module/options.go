package module

import "chronicle/internal/platform/config"

// Options holds configuration settings for the contributions module
type Options struct {
	// User is the GitHub login whose history is collected
	User string

	// SinceYear is the first year of the collection window
	SinceYear int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CHRONICLE_")
	return Options{
		User:      cf.MayString("USER", ""),
		SinceYear: cf.MayInt("SINCE_YEAR", 2019),
	}
}

// merge overlays non-zero override fields onto o
func (o Options) merge(over Options) Options {
	if over.User != "" {
		o.User = over.User
	}
	if over.SinceYear != 0 {
		o.SinceYear = over.SinceYear
	}
	return o
}
