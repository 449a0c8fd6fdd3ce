package main

import (
	"context"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dl2ht/solar-banner/internal/banner"
	"github.com/dl2ht/solar-banner/internal/feed"
)

const syntheticFeed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <item>
      <solardata>
        <solarflux>150</solarflux>
        <sunspots>120</sunspots>
        <aindex>2</aindex>
        <kindex>3</kindex>
        <xray>C4</xray>
        <aurora>6.2</aurora>
        <geomagfield>Active</geomagfield>
        <signalnoise>S1</signalnoise>
      </solardata>
    </item>
  </channel>
</rss>`

func TestRunEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(syntheticFeed))
	}))
	defer srv.Close()

	cfg := Config{
		FeedURL: srv.URL,
		OutFile: filepath.Join(t.TempDir(), "solartext.png"),
		Timeout: 5 * time.Second,
	}
	if err := run(context.Background(), cfg, zap.NewNop()); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(cfg.OutFile)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 300 {
		t.Fatalf("output = %dx%d, want 640x300", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestSyntheticFeedLines(t *testing.T) {
	rpt, err := feed.Extract([]byte(syntheticFeed))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	de, en := banner.Lines(rpt, time.Now().UTC())

	if de[1] != "SFI 150 / SN 120 - sehr gute 20-10m Bedingungen" {
		t.Errorf("German line 2 = %q", de[1])
	}
	if en[3] != "Aurora index 6.2 - possible auroral activity" {
		t.Errorf("English line 4 = %q", en[3])
	}
}

func TestRunFeedUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	cfg := Config{
		FeedURL: url,
		OutFile: filepath.Join(t.TempDir(), "solartext.png"),
		Timeout: time.Second,
	}
	err := run(context.Background(), cfg, zap.NewNop())
	if !errors.Is(err, feed.ErrFeedUnavailable) {
		t.Fatalf("err = %v, want ErrFeedUnavailable", err)
	}
	if _, statErr := os.Stat(cfg.OutFile); !os.IsNotExist(statErr) {
		t.Error("output file written despite fatal fetch error")
	}
}

func TestRunRecordNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<rss><channel><title>empty</title></channel></rss>`))
	}))
	defer srv.Close()

	cfg := Config{
		FeedURL: srv.URL,
		OutFile: filepath.Join(t.TempDir(), "solartext.png"),
		Timeout: time.Second,
	}
	err := run(context.Background(), cfg, zap.NewNop())
	if !errors.Is(err, feed.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
