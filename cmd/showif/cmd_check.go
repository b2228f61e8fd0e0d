package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/showif/rdparse"
	"github.com/dhamidi/showif/showif"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check files with one expression per line",
		Long: `Check files holding one expression per line. Blank lines and lines
starting with # are skipped. Every invalid expression is reported as
file:line:column: message.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var total, failed int
			for _, filename := range args {
				n, bad, err := checkFile(cmd, filename)
				if err != nil {
					return err
				}
				total += n
				failed += bad
			}
			if failed > 0 {
				err := fmt.Errorf("%d of %d expressions are invalid", failed, total)
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}

	return cmd
}

func checkFile(cmd *cobra.Command, filename string) (total, failed int, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		total++
		if _, err := showif.Parse(line); err != nil {
			failed++
			var perr *rdparse.ParseError
			if errors.As(err, &perr) {
				fmt.Fprintf(out, "%s:%d:%d: %s\n", filename, lineNo, perr.Pos.Column, err)
			} else {
				fmt.Fprintf(out, "%s:%d: %s\n", filename, lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return total, failed, fmt.Errorf("read %s: %w", filename, err)
	}
	return total, failed, nil
}
