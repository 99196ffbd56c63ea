/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iooutput"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/spf13/cobra"
)

func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats [taxon]",
		Short: "Export statistics of taxa",
		Long: `Stats writes statistics of a taxon and its descendants to
STDOUT. Every row has a stable UUID v5 identifier, the identifier of
the parent, counts of species, subspecies, varieties and
subpopulations, and the Red List Index.

Formats:
  csv, tsv       - table with a header
  compact        - JSON array in one line
  pretty         - indented JSON

Examples:
  gnredlist stats Aves -d 1 --format pretty
  gnredlist stats -f threatened > threatened.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStats,
	}

	statsCmd.Flags().IntP("depth", "d", 3, "number of levels to export")
	statsCmd.Flags().String("format", "", "output format: csv, tsv, compact, pretty")
	addFilterFlag(statsCmd)
	return statsCmd
}

func runStats(cmd *cobra.Command, args []string) error {
	filter, err := filterFlag(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	depth, _ := cmd.Flags().GetInt("depth")
	if cmd.Flags().Changed("format") {
		s, _ := cmd.Flags().GetString("format")
		cfg.Update([]config.Option{config.OptOutputFormat(s)})
	}

	l, err := loadTree(cmd.Context())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer l.Close()

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	n, err := findTaxon(l, name)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	stats := iooutput.CollectStats(n, filter, depth)
	err = iooutput.WriteStats(cmd.OutOrStdout(), stats, cfg.Output.Format)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
