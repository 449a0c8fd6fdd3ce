// solar-banner - Render the N0NBH solar-weather feed as a bilingual banner
//
// Pipeline (one pass, no state between runs):
//   fetch XML feed -> extract solar record -> classify indices ->
//   format German/English lines -> render 640x300 PNG
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/solar-banner ./cmd/solar-banner

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dl2ht/solar-banner/internal/banner"
	"github.com/dl2ht/solar-banner/internal/common"
	"github.com/dl2ht/solar-banner/internal/feed"
)

// Version can be overridden at build time via -ldflags
var Version = "1.0.0"

// Config carries the pipeline inputs. Values come from flags with fixed
// defaults; there is no config file and no environment lookup.
type Config struct {
	FeedURL  string
	OutFile  string
	FontPath string
	Timeout  time.Duration
}

func main() {
	var cfg Config
	flag.StringVar(&cfg.FeedURL, "url", "https://www.hamqsl.com/solarxml.php", "Solar feed URL")
	flag.StringVar(&cfg.OutFile, "out", "solartext.png", "Output PNG path")
	flag.StringVar(&cfg.FontPath, "font", "", "TTF font file (default: embedded Go Regular)")
	flag.DurationVar(&cfg.Timeout, "timeout", 15*time.Second, "HTTP timeout for the feed request")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "solar-banner v%s - Solar/HF Conditions Banner\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fetches the N0NBH solar XML feed (hamqsl.com) and renders the\n")
		fmt.Fprintf(os.Stderr, "current HF conditions as a German/English PNG banner.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := common.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	start := time.Now()
	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("banner written",
		zap.String("file", cfg.OutFile),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
}

// run executes the pipeline once. Any returned error is fatal for the run;
// field-level feed problems have already been defaulted away by Extract.
func run(ctx context.Context, cfg Config, log *zap.Logger) error {
	client := feed.NewClient(cfg.Timeout, "solar-banner/"+Version, log)
	raw, err := client.Fetch(ctx, cfg.FeedURL)
	if err != nil {
		return err
	}

	rpt, err := feed.Extract(raw)
	if err != nil {
		return err
	}
	log.Debug("solar record extracted",
		zap.Float64("sfi", rpt.SFI),
		zap.Int("a_index", rpt.AIndex),
		zap.Int("k_index", rpt.KIndex),
		zap.String("xray", rpt.XRay),
		zap.Float64("aurora", rpt.Aurora),
	)

	de, en := banner.Lines(rpt, time.Now().UTC())
	return banner.NewRenderer(cfg.FontPath, log).WriteFile(cfg.OutFile, de, en)
}
