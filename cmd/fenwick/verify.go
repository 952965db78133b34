package main

import (
	"fmt"
	"io"
	"time"

	fenwick "github.com/caio/go-fenwick"
	"github.com/cockroachdb/errors"
	rng "github.com/leesper/go_rng"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

type verifyOptions struct {
	size       int
	ops        int
	seed       int64
	maxDelta   int64
	checkEvery int
}

var verifyConfig verifyOptions

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "check random updates against a naive prefix sum",
	Long: `
Applies random point updates to a tree and, every --check-every updates
and once at the end, compares each prefix sum with the cumulative sum of
a plain array that received the same updates.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd.OutOrStdout(), log, verifyConfig)
	},
}

// The oracle keeps float64 values, which are exact below 2^53.
const maxExact = 1 << 53

func runVerify(out io.Writer, log logrus.FieldLogger, opts verifyOptions) error {
	if opts.size <= 0 {
		return errors.Newf("size must be positive, got %d", opts.size)
	}
	if opts.maxDelta < 0 || opts.checkEvery <= 0 {
		return errors.New("max-delta must be >= 0 and check-every > 0")
	}
	if float64(opts.maxDelta)*float64(opts.ops) >= maxExact {
		return errors.Newf("%d updates of up to %d may exceed exact float64 range", opts.ops, opts.maxDelta)
	}

	tree, err := fenwick.New(opts.size)
	if err != nil {
		return err
	}
	values := make([]float64, opts.size)
	prefix := make([]float64, opts.size)
	gen := rng.NewUniformGenerator(opts.seed)

	check := func(done int) error {
		floats.CumSum(prefix, values)
		for i, want := range prefix {
			got, err := tree.Query(i)
			if err != nil {
				return err
			}
			if got != int64(want) {
				return errors.Newf("after %d updates: query(%d) = %d, want %d", done, i, got, int64(want))
			}
		}
		log.WithField("updates", done).Debug("prefix sums match")
		return nil
	}

	start := time.Now()
	for n := 1; n <= opts.ops; n++ {
		i := int(gen.Int64n(int64(opts.size)))
		delta := gen.Int64n(2*opts.maxDelta+1) - opts.maxDelta
		if err := tree.Update(i, delta); err != nil {
			return err
		}
		values[i] += float64(delta)
		if n%opts.checkEvery == 0 {
			if err := check(n); err != nil {
				return err
			}
		}
	}
	if err := check(opts.ops); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"size":    opts.size,
		"ops":     opts.ops,
		"seed":    opts.seed,
		"elapsed": time.Since(start),
	}).Info("verify passed")
	fmt.Fprintf(out, "ok: %d updates over %d elements, %s\n", opts.ops, opts.size, tree)
	return nil
}
