package module

import (
	"testing"

	"chronicle/internal/platform/config"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("CHRONICLE_USER", "octo")
	t.Setenv("CHRONICLE_SINCE_YEAR", "2021")

	opts := FromConfig(config.New())
	if opts.User != "octo" || opts.SinceYear != 2021 {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	t.Setenv("CHRONICLE_USER", "")
	t.Setenv("CHRONICLE_SINCE_YEAR", "")

	opts := FromConfig(config.New())
	if opts.User != "" || opts.SinceYear != 2019 {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestMerge_OverridesWin(t *testing.T) {
	base := Options{User: "env-user", SinceYear: 2019}

	got := base.merge(Options{User: "flag-user"})
	if got.User != "flag-user" || got.SinceYear != 2019 {
		t.Fatalf("merged = %+v", got)
	}

	got = base.merge(Options{SinceYear: 2022})
	if got.User != "env-user" || got.SinceYear != 2022 {
		t.Fatalf("merged = %+v", got)
	}

	if got = base.merge(Options{}); got != base {
		t.Fatalf("zero override changed options: %+v", got)
	}
}
