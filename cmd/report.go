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
	"io"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/ioreport"
	"github.com/spf13/cobra"
)

func getReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Create a report about Red List data",
		Long: `Report checks Red List data and writes the result in wiki
format.

Reports:
  names         - scientific names that gnparser cannot parse cleanly
  common-names  - odd formatting and duplicates of English common names
  missing       - taxa not covered by any list from rules
  epithets      - epithets of threatened species weighted by category

Examples:
  gnredlist report names
  gnredlist report common-names -o common-names.wiki`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: ioreport.Reports(),
		RunE:      runReport,
	}

	reportCmd.Flags().StringP("output", "o", "", "file for the report, STDOUT by default")
	reportCmd.Flags().String("date", "", "Red List version, e.g. 2024-2")
	return reportCmd
}

func runReport(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])
	dateText := cfg.Output.DateText
	if cmd.Flags().Changed("date") {
		dateText, _ = cmd.Flags().GetString("date")
	}

	l, err := loadTree(cmd.Context())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer l.Close()

	rep, err := ioreport.New(name,
		ioreport.OptRules(l.rules),
		ioreport.OptCache(l.cache),
		ioreport.OptJobs(cfg.JobsNumber),
		ioreport.OptDateText(dateText),
	)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	path, _ := cmd.Flags().GetString("output")
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			err = ioreport.WriteError(path, err)
			gn.PrintErrorMessage(err)
			return err
		}
		defer f.Close()
		w = f
	}

	if err = rep.Report(cmd.Context(), w, l.tree); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if path != "" {
		gn.Info("Report <em>%s</em> saved to %s", name, path)
	}
	return nil
}
