package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bril/internal/ioerr"
	"bril/internal/ir"
	"bril/internal/reader"
)

var (
	passFlag    string
	verboseFlag bool
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bril [path]",
		Short:         "Run dead-code elimination and constant propagation over an IR program",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	cmd.Flags().StringVar(&passFlag, "pass", "all", "which pass to run: dce, constprop, or all")
	cmd.Flags().BoolVar(&verboseFlag, "verbose", false, "enable debug-level trace logging")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	passes, err := resolvePasses(passFlag)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("❌ %s", err))
		return err
	}

	var funcs []ir.FunctionSource
	var rerr *ioerr.ReaderError
	if len(args) == 1 {
		funcs, rerr = reader.FromFile(args[0])
	} else {
		funcs, rerr = reader.FromReader(cmd.InOrStdin())
	}
	if rerr != nil {
		reporter := ioerr.NewReporter()
		fmt.Fprintln(cmd.ErrOrStderr(), reporter.Report(rerr))
		return rerr
	}

	program := ir.BuildProgram(funcs)
	ir.NewDriver(passes...).Run(program)

	for _, fn := range program.Functions {
		if fn.ConstProp != nil {
			fmt.Fprint(cmd.OutOrStdout(), ir.Report(fn.Name, fn.ConstProp.In, fn.ConstProp.Out))
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✅ analyzed %d function(s)", len(program.Functions)))
	return nil
}

// resolvePasses turns --pass into the concrete pass sequence, in the
// fixed order dce then constprop (spec.md 5: no implicit reordering).
func resolvePasses(name string) ([]ir.Pass, error) {
	switch name {
	case "dce":
		return []ir.Pass{ir.DeadCodeElimination{}}, nil
	case "constprop":
		return []ir.Pass{ir.ConstantPropagationPass{}}, nil
	case "all":
		return []ir.Pass{ir.DeadCodeElimination{}, ir.ConstantPropagationPass{}}, nil
	default:
		return nil, fmt.Errorf("unknown --pass value %q (want dce, constprop, or all)", name)
	}
}
