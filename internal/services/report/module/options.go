package module

import "chronicle/internal/platform/config"

// Options holds configuration settings for the report module
type Options struct {
	// OutDir is the directory reports are written under
	OutDir string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CHRONICLE_")
	return Options{
		OutDir: cf.MayString("OUT_DIR", "contributions"),
	}
}

// merge overlays non-zero override fields onto o
func (o Options) merge(over Options) Options {
	if over.OutDir != "" {
		o.OutDir = over.OutDir
	}
	return o
}
