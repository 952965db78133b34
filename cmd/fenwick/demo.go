package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

const sampleScript = `
new 10
update 0 10
update 2 5
query 0
query 1
query 2
update 5 7
update 9 3
query 4
query 5
query 9
dump
`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run a small sample session and print its sums",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newScript(cmd.OutOrStdout(), log, policy())
		if err := s.run(strings.NewReader(sampleScript)); err != nil {
			return errors.Wrap(err, "demo")
		}
		return nil
	},
}
