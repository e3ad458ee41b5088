package report

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/devlens/devsurvey/internal/render"
)

// Engine renders the chart battery into an output directory. Individual
// chart failures never abort a run; they are logged and counted.
type Engine struct {
	reg    *Registry
	outDir string
	style  render.Style
}

// RunOpts configures which charts to render.
type RunOpts struct {
	Charts []string // restrict to specific chart names
}

// Summary is the outcome of one engine run.
type Summary struct {
	RunID    uuid.UUID
	Rendered int
	Skipped  int
	Failed   int
	Files    []string
	Elapsed  time.Duration
}

// NewEngine creates a render engine writing into outDir.
func NewEngine(reg *Registry, outDir string, style render.Style) *Engine {
	return &Engine{reg: reg, outDir: outDir, style: style}
}

// Run iterates over the selected charts and renders each to its file.
// Charts needing the cost-of-living reference are skipped when the
// reference is absent.
func (e *Engine) Run(ctx context.Context, d *Data, opts RunOpts) (*Summary, error) {
	log := zap.L().With(zap.String("component", "report.engine"))
	start := time.Now()

	charts, err := e.reg.Select(opts.Charts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "engine: create output dir %s", e.outDir)
	}

	sum := &Summary{RunID: uuid.New()}
	log.Info("starting run",
		zap.String("run_id", sum.RunID.String()),
		zap.Int("charts", len(charts)),
		zap.String("out_dir", e.outDir),
	)

	for _, c := range charts {
		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}

		cLog := log.With(zap.String("chart", c.Name()))

		if c.NeedsReference() && d.CostOfLiving == nil {
			cLog.Warn("skipping, cost-of-living reference not loaded")
			sum.Skipped++
			continue
		}

		path := filepath.Join(e.outDir, c.Filename())
		if err := c.Render(d, path, e.style); err != nil {
			cLog.Error("render failed", zap.Error(err))
			sum.Failed++
			continue
		}

		cLog.Info("rendered", zap.String("file", c.Filename()))
		sum.Files = append(sum.Files, path)
		sum.Rendered++
	}

	sum.Elapsed = time.Since(start)
	log.Info("run complete",
		zap.Int("rendered", sum.Rendered),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed),
		zap.Duration("elapsed", sum.Elapsed),
	)
	return sum, nil
}

// Tables computes the derived tables of the selected charts without
// rendering anything. Charts that need the missing reference are skipped;
// charts whose table cannot be built are logged and skipped.
func (e *Engine) Tables(ctx context.Context, d *Data, names []string) ([]*Table, error) {
	log := zap.L().With(zap.String("component", "report.engine"))

	charts, err := e.reg.Select(names)
	if err != nil {
		return nil, err
	}

	tables := make([]*Table, 0, len(charts))
	for _, c := range charts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if c.NeedsReference() && d.CostOfLiving == nil {
			log.Warn("skipping table, cost-of-living reference not loaded",
				zap.String("chart", c.Name()))
			continue
		}
		t, err := c.Table(d)
		if err != nil {
			log.Error("table build failed", zap.String("chart", c.Name()), zap.Error(err))
			continue
		}
		tables = append(tables, t)
	}
	return tables, nil
}
