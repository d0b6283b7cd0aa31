package pipeline

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"fqfilter/internal/fastq"
	"fqfilter/internal/filter"
)

// DefaultProgressInterval spaces the debug progress records.
const DefaultProgressInterval = 5 * time.Second

// Config controls one filtering run.
type Config struct {
	InputPath string            // compressed FASTQ
	IDs       filter.Membership // identifiers to match
	Inverse   bool              // keep records NOT in IDs
	Out       io.Writer         // destination of kept records

	Logger           *slog.Logger  // nil discards diagnostics
	ProgressInterval time.Duration // <= 0 uses DefaultProgressInterval
}

// Counts are the run totals. Emitted never exceeds Observed.
type Counts struct {
	Observed uint64
	Emitted  uint64
}

// Run filters cfg.InputPath into cfg.Out and returns the totals. On error
// the totals are discarded and a zero Counts is returned.
func Run(cfg Config) (Counts, error) {
	if cfg.IDs == nil {
		return Counts{}, errors.New("pipeline: nil identifier set")
	}
	if cfg.Out == nil {
		return Counts{}, errors.New("pipeline: nil output")
	}
	r, err := fastq.Open(cfg.InputPath)
	if err != nil {
		return Counts{}, err
	}
	defer func() { _ = r.Close() }()

	return filterRecords(r, cfg)
}

func filterRecords(r *fastq.Reader, cfg Config) (Counts, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	progress := rate.Sometimes{Interval: interval}

	w := fastq.NewWriter(cfg.Out)
	var c Counts
	for rec, err := range r.Records() {
		if err != nil {
			return Counts{}, err
		}
		c.Observed++
		if filter.Decide(rec.ID, cfg.IDs, cfg.Inverse) {
			if err := w.Write(rec); err != nil {
				return Counts{}, err
			}
			c.Emitted++
		}
		progress.Do(func() {
			logger.Debug("progress", "observed", c.Observed, "emitted", c.Emitted)
		})
	}
	return c, nil
}
