package cmd

import (
	"time"

	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/config"
)

func configForMode(mode string) config.SourceConfig {
	return config.SourceConfig{
		Mode:           mode,
		MarktplaatsURL: "https://www.marktplaats.nl/l/auto-s/",
		MobileDeURL:    "https://suchen.mobile.de/fahrzeuge/search.html",
		Timeout:        time.Second,
		Rate:           1,
		Burst:          1,
		Limit:          20,
	}
}

func nopLogger() *zap.Logger { return zap.NewNop() }
