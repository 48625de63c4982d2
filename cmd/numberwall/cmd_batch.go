package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numberwall/number"
)

// batchResult is the outcome of one configured wall.
type batchResult struct {
	Name           string
	Characteristic bool
	Rows           int
	Windows        int
	Constant       string // empty when the last row is not constant
}

func (c *cli) batchCmd() *cobra.Command {
	var (
		path    string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Build every wall listed in a YAML file",
		Long: `Reads a YAML file of walls and builds them concurrently. Results are
printed in file order, one line per wall.

Example config:
  walls:
    - name: tribonacci
      sequence: ["1", "1", "2", "4", "7", "13", "24", "44", "81", "149", "274", "504"]
      characteristic: true
    - name: squares
      sequence: ["0", "1", "4", "9", "16", "25", "36"]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			res, err := c.runBatch(cmd.Context(), cfg, workers)
			if err != nil {
				return err
			}

			return printBatch(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to the batch YAML file (required)")
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "Maximum walls built at once")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// runBatch builds every configured wall with at most workers in flight.
// The first failure cancels walls not yet started.
func (c *cli) runBatch(ctx context.Context, cfg *batchConfig, workers int) ([]batchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	res := make([]batchResult, len(cfg.Walls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, wc := range cfg.Walls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := c.runWall(wc)
			if err != nil {
				return fmt.Errorf("wall %q: %w", wc.Name, err)
			}
			res[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	c.logger.Info("batch finished", zap.Int("walls", len(res)))

	return res, nil
}

// runWall builds a single configured wall.
func (c *cli) runWall(wc wallConfig) (batchResult, error) {
	terms, err := wc.terms()
	if err != nil {
		return batchResult{}, err
	}
	local := *c
	if wc.MaxRows > 0 {
		local.maxRows = wc.MaxRows
	}
	local.logger = c.logger.With(zap.String("wall", wc.Name))

	res := batchResult{Name: wc.Name, Characteristic: wc.Characteristic}
	if wc.Characteristic {
		p, err := local.characteristic(terms)
		if err != nil {
			return batchResult{}, err
		}
		res.Constant = p.String()

		return res, nil
	}

	w, err := local.buildWall(values(terms))
	if err != nil {
		return batchResult{}, err
	}
	res.Rows, res.Windows = w.Rows(), len(w.Windows())
	if v, ok := w.ConstantElement(); ok && !number.IsAbsent(v) {
		res.Constant = v.String()
	}

	return res, nil
}

// printBatch writes one line per result.
func printBatch(out io.Writer, res []batchResult) error {
	for _, r := range res {
		var err error
		switch {
		case r.Characteristic:
			_, err = fmt.Fprintf(out, "%s\tcharacteristic: %s\n", r.Name, r.Constant)
		case r.Constant == "":
			_, err = fmt.Fprintf(out, "%s\trows: %d windows: %d\n", r.Name, r.Rows, r.Windows)
		default:
			_, err = fmt.Fprintf(out, "%s\trows: %d windows: %d constant: %s\n", r.Name, r.Rows, r.Windows, r.Constant)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
