package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/quantity"
)

type options struct {
	verbose bool
	factor  float64
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "qty",
		Short:         "Format and scale recipe quantities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parsed inputs to stderr")
	root.SetFlagErrorFunc(negativeNumberHint)

	root.AddCommand(newFormatCmd(opts), newScaleCmd(opts), newServingsCmd(opts))
	return root
}

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "format [--] <quantity>...",
		Short:   "Render quantities as mixed numbers with Unicode fractions",
		Example: "  qty format 1.5 0.3333\n  qty format -- -1.5",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				q, err := parseNumber(arg)
				if err != nil {
					return err
				}
				opts.logger.Debug("format", zap.Float64("quantity", q))
				fmt.Fprintln(cmd.OutOrStdout(), quantity.Format(q))
			}
			return nil
		},
	}
}

func newScaleCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scale --by <factor> [--] <quantity>",
		Short:   "Multiply a quantity and print the exact and display values",
		Example: "  qty scale 2 --by 1.5\n  qty scale --by 1.5 -- -2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			scaled := quantity.Scale(q, opts.factor)
			opts.logger.Debug("scale",
				zap.Float64("quantity", q),
				zap.Float64("factor", opts.factor),
				zap.Float64("result", scaled),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", strconv.FormatFloat(scaled, 'f', -1, 64), quantity.Format(scaled))
			return nil
		},
	}
	cmd.Flags().Float64Var(&opts.factor, "by", 1, "scale factor")
	return cmd
}

func newServingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servings <text> --by <factor>",
		Short: "Scale every number in a servings description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.logger.Debug("servings", zap.String("text", args[0]), zap.Float64("factor", opts.factor))
			fmt.Fprintln(cmd.OutOrStdout(), quantity.ScaleText(args[0], opts.factor))
			return nil
		},
	}
	cmd.Flags().Float64Var(&opts.factor, "by", 1, "scale factor")
	return cmd
}

// negativeNumberHint explains that a negative quantity was read as a flag
func negativeNumberHint(cmd *cobra.Command, err error) error {
	if looksNumeric.MatchString(err.Error()) {
		return fmt.Errorf("%w (negative numbers go after --, e.g. qty %s -- -1.5)", err, cmd.Name())
	}
	return err
}

var looksNumeric = regexp.MustCompile(`in -[0-9.]`)

func parseNumber(arg string) (float64, error) {
	q, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", arg)
	}
	return q, nil
}
