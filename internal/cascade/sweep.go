package cascade

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/talgya/phi-cascade/internal/channel"
)

// Outcome records where one cascade ended up.
type Outcome struct {
	Initial    channel.Pair
	Sequence   []channel.Pair
	FinalDepth int
	Virtual    bool // dropped below the threshold within MaxDepth
}

// Report summarizes a sweep over many independent initial pairs.
// Outcomes are ordered like the inputs, so a report is deterministic
// for a fixed input set regardless of worker count.
type Report struct {
	RunID    string
	Outcomes []Outcome
}

// VirtualCount returns how many cascades went below the waterline.
func (r *Report) VirtualCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Virtual {
			n++
		}
	}
	return n
}

// MinFinalDepth returns the shallowest final depth in the sweep.
func (r *Report) MinFinalDepth() int {
	min := 0
	for i, o := range r.Outcomes {
		if i == 0 || o.FinalDepth < min {
			min = o.FinalDepth
		}
	}
	return min
}

// MaxFinalDepth returns the deepest final depth in the sweep.
func (r *Report) MaxFinalDepth() int {
	max := 0
	for _, o := range r.Outcomes {
		if o.FinalDepth > max {
			max = o.FinalDepth
		}
	}
	return max
}

// MeanFinalDepth returns the average final depth, 0 for an empty sweep.
func (r *Report) MeanFinalDepth() float64 {
	if len(r.Outcomes) == 0 {
		return 0
	}
	total := 0
	for _, o := range r.Outcomes {
		total += o.FinalDepth
	}
	return float64(total) / float64(len(r.Outcomes))
}

// Sweep expands every initial pair concurrently. Sequences share no
// state, so the only coordination is the worker limit. Each pair gets
// its own immutable sequence; nothing is reused across them.
func Sweep(ctx context.Context, initials []channel.Pair, cfg Config, workers int) (*Report, error) {
	if workers < 1 {
		workers = 1
	}

	report := &Report{
		RunID:    uuid.NewString(),
		Outcomes: make([]Outcome, len(initials)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, initial := range initials {
		i, initial := i, initial
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			seq, err := Expand(initial, cfg)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}

			last := seq[len(seq)-1]
			report.Outcomes[i] = Outcome{
				Initial:    initial,
				Sequence:   seq,
				FinalDepth: last.Depth,
				Virtual:    !last.Visible(cfg.VisibilityThreshold),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("sweep complete",
		"run_id", report.RunID,
		"pairs", len(report.Outcomes),
		"virtual", report.VirtualCount(),
		"mean_final_depth", report.MeanFinalDepth(),
	)
	return report, nil
}
