// Command chronicle-report collects a GitHub user's contribution history
// and writes one Markdown report per calendar quarter
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"chronicle/internal/core/version"
	"chronicle/internal/modkit"
	"chronicle/internal/modkit/module"
	"chronicle/internal/platform/config"
	"chronicle/internal/platform/logger"

	contribmod "chronicle/internal/services/contributions/module"
	reportmod "chronicle/internal/services/report/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	var (
		fUser  = flag.String("user", "", "GitHub login to collect contributions for")
		fSince = flag.Int("since", 0, "first year of the collection window")
		fOut   = flag.String("out", "", "directory reports are written under")
	)
	flag.Parse()

	// Surface flags to modules that read FromConfig
	mustSetEnv("CHRONICLE_USER", *fUser)
	if *fSince != 0 {
		mustSetEnv("CHRONICLE_SINCE_YEAR", strconv.Itoa(*fSince))
	}
	mustSetEnv("CHRONICLE_OUT_DIR", *fOut)

	root := config.New()
	logger.Init(logger.FromEnv())
	l := logger.Get()

	bi := version.Info()
	l.Info().
		Str("version", bi.Version).
		Str("commit", bi.Commit).
		Str("built", bi.Date).
		Msg("starting chronicle-report")

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "chronicle-report: %v\n", r)
			os.Exit(1)
		}
	}()

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
	}

	cm := contribmod.New(deps, contribmod.Options{})
	rm := reportmod.New(deps, reportmod.Options{})
	module.Register(cm.Name(), cm.Ports())
	module.Register(rm.Name(), rm.Ports())

	collector := module.MustPortsOf[contribmod.Ports](cm).Collector
	reporter := module.MustPortsOf[reportmod.Ports](rm).Reporter

	ctx := logger.WithRun(context.Background(), uuid.NewString())

	set, err := collector.Collect(ctx, cm.Params())
	if err != nil {
		l.Fatal().Err(err).Msg("collection failed")
	}

	paths, err := reporter.Publish(ctx, set)
	if err != nil {
		l.Fatal().Err(err).Msg("report publishing failed")
	}

	logger.C(ctx).Info().
		Int("records", set.Len()).
		Int("reports", len(paths)).
		Msg("done")
}
