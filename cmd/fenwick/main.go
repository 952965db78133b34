// Command fenwick drives a Fenwick tree from scripts, replays the
// reference scenarios and checks random workloads against a naive sum.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	wrap    bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "fenwick [command] (flags)",
	Short: "Fenwick tree driver",
	Long: `
Drives a fixed-size Fenwick tree of int64 values. Use "run" to execute a
command script, "demo" for a short sample session and "verify" to check
random updates against a naive prefix sum.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func main() {
	log.SetOutput(os.Stderr)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		runCmd,
		demoCmd,
		verifyCmd,
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log every command")
	rootCmd.PersistentFlags().BoolVar(
		&wrap, "wrap", false, "let sums wrap around on int64 overflow instead of failing")

	verifyCmd.Flags().IntVarP(
		&verifyConfig.size, "size", "n", 1000, "number of elements")
	verifyCmd.Flags().IntVar(
		&verifyConfig.ops, "ops", 100000, "number of random updates")
	verifyCmd.Flags().Int64Var(
		&verifyConfig.seed, "seed", 1, "random seed")
	verifyCmd.Flags().Int64Var(
		&verifyConfig.maxDelta, "max-delta", 1000, "updates draw deltas from [-max-delta, max-delta]")
	verifyCmd.Flags().IntVar(
		&verifyConfig.checkEvery, "check-every", 1000, "compare every prefix after this many updates")

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("fenwick failed")
		os.Exit(1)
	}
}
