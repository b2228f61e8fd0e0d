package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/showif/format"
	"github.com/dhamidi/showif/rdparse"
	"github.com/dhamidi/showif/showif"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newParseCmd() *cobra.Command {
	var file string
	var outputFormat string
	var partial bool
	var start int
	var trace bool

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and dump its AST",
		Long: `Parse an expression given as argument, read from --file, or read from
standard input, and print the resulting AST.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args, file)
			if err != nil {
				return err
			}

			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := []rdparse.Option{rdparse.WithStart(start)}
			if partial {
				opts = append(opts, rdparse.WithPartial())
			}
			if trace {
				opts = append(opts, rdparse.WithTrace(commonlog.GetLogger("showif.trace")))
			}

			expr, err := rdparse.ParseAs[showif.Expr](showif.NewParser(opts...), text)
			if err != nil {
				return err
			}

			if err := encoder.Encode(expr); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read the expression from this file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().BoolVar(&partial, "partial", false, "ignore input after the first complete expression")
	cmd.Flags().IntVar(&start, "start", 0, "byte offset to start parsing at")
	cmd.Flags().BoolVar(&trace, "trace", false, "log grammar rules as they are tried (needs -vv)")

	return cmd
}

func readExpression(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read expression: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}
