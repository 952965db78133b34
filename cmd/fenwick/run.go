package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	fenwick "github.com/caio/go-fenwick"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "run a tree script, reading stdin when no file is given",
	Long: `
Each line of the script is one command:

  new <size>             replace the current tree with an empty one
  update <index> <delta> add delta to the element at index
  set <index> <value>    assign the element at index
  query <index>          print the sum of elements 0 through index
  get <index>            print the element at index
  range <lo> <hi>        print the sum of elements lo through hi
  search <target>        print the first index whose prefix sum reaches target
  dump                   print every element and prefix sum as a table

Blank lines and lines starting with # are ignored.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		name := "<stdin>"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in, name = f, args[0]
		}
		s := newScript(cmd.OutOrStdout(), log, policy())
		if err := s.run(in); err != nil {
			return errors.Wrapf(err, "%s", name)
		}
		if s.failed > 0 {
			return errors.Newf("%s: %d commands failed", name, s.failed)
		}
		return nil
	},
}

func policy() fenwick.OverflowPolicy {
	if wrap {
		return fenwick.OverflowWrap
	}
	return fenwick.OverflowError
}

// script interprets tree commands. Errors returned by the tree are
// printed and counted; malformed lines abort the run.
type script struct {
	out    io.Writer
	log    logrus.FieldLogger
	policy fenwick.OverflowPolicy
	tree   *fenwick.Tree
	failed int
}

func newScript(out io.Writer, log logrus.FieldLogger, policy fenwick.OverflowPolicy) *script {
	return &script{out: out, log: log, policy: policy}
}

func (s *script) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(line); err != nil {
			return errors.Wrapf(err, "line %d", lineNum)
		}
	}
	return scanner.Err()
}

// arity is the number of integer arguments each command takes.
var arity = map[string]int{
	"new": 1, "update": 2, "set": 2, "query": 1, "get": 1,
	"range": 2, "search": 1, "dump": 0,
}

func (s *script) exec(line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	s.log.WithFields(logrus.Fields{"cmd": cmd, "args": args}).Debug("exec")

	n, ok := arity[cmd]
	if !ok {
		return errors.Newf("unknown command %q", cmd)
	}
	if len(args) != n {
		return errors.Newf("%s takes %d arguments, got %d", cmd, n, len(args))
	}
	nums := make([]int64, n)
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", cmd)
		}
		nums[i] = v
	}

	if cmd == "new" {
		tree, err := fenwick.New(int(nums[0]), fenwick.Overflow(s.policy))
		if err != nil {
			return s.report(line, err)
		}
		s.tree = tree
		fmt.Fprintln(s.out, tree)
		return nil
	}
	if s.tree == nil {
		return errors.Newf("%s before new", cmd)
	}

	var v int64
	var err error
	switch cmd {
	case "update":
		return s.report(line, s.tree.Update(int(nums[0]), nums[1]))
	case "set":
		return s.report(line, s.tree.Set(int(nums[0]), nums[1]))
	case "search":
		fmt.Fprintf(s.out, "%s = %d\n", line, s.tree.Search(nums[0]))
		return nil
	case "dump":
		return s.dump()
	case "query":
		v, err = s.tree.Query(int(nums[0]))
	case "get":
		v, err = s.tree.Get(int(nums[0]))
	case "range":
		v, err = s.tree.SumRange(int(nums[0]), int(nums[1]))
	}
	if err != nil {
		return s.report(line, err)
	}
	fmt.Fprintf(s.out, "%s = %d\n", line, v)
	return nil
}

func (s *script) report(line string, err error) error {
	if err == nil {
		return nil
	}
	s.failed++
	s.log.WithError(err).WithField("line", line).Warn("command failed")
	fmt.Fprintf(s.out, "%s: error: %v\n", line, err)
	return nil
}

func (s *script) dump() error {
	tbl := tablewriter.NewWriter(s.out)
	tbl.SetHeader([]string{"Index", "Value", "Prefix"})
	for i := 0; i < s.tree.Len(); i++ {
		v, err := s.tree.Get(i)
		if err != nil {
			return err
		}
		row := []string{strconv.Itoa(i), strconv.FormatInt(v, 10), "overflow"}
		if sum, err := s.tree.Query(i); err == nil {
			row[2] = strconv.FormatInt(sum, 10)
		}
		tbl.Append(row)
	}
	tbl.Render()
	return nil
}
