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
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/spf13/cobra"
)

// addInputFlags adds flags that select the source of assessments and
// the rules. They are shared by all subcommands.
func addInputFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("source", "s", "",
		"source of assessments: csv, postgres or sqlite")
	pf.StringP("input", "i", "",
		"path to IUCN CSV export (csv) or SQLite file (sqlite)")
	pf.StringP("possibly-extinct", "e", "",
		"path to the list of possibly extinct taxa")
	pf.StringP("rules", "r", "", "path to rules YAML file")
	pf.Bool("no-cache", false, "do not reuse cached CSV data")
	pf.IntP("jobs", "j", 0, "number of concurrent workers")
}

// inputFlagOptions converts explicitly set input flags to options.
func inputFlagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("source") {
		s, _ := flags.GetString("source")
		res = append(res, config.OptInputSource(s))
	}

	src := cfg.Input.Source
	if flags.Changed("source") {
		src, _ = flags.GetString("source")
	}
	if flags.Changed("input") {
		s, _ := flags.GetString("input")
		if src == config.SourceSQLite {
			res = append(res, config.OptInputSQLitePath(s))
		} else {
			res = append(res, config.OptInputCSVPath(s))
		}
	}

	if flags.Changed("possibly-extinct") {
		s, _ := flags.GetString("possibly-extinct")
		res = append(res, config.OptInputPossiblyExtinctPath(s))
	}
	if flags.Changed("rules") {
		s, _ := flags.GetString("rules")
		res = append(res, config.OptRulesPath(s))
	}
	if flags.Changed("no-cache") {
		b, _ := flags.GetBool("no-cache")
		useCache := !b
		res = append(res, config.OptInputUseCache(&useCache))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	return res
}

// addFilterFlag adds --filter flag for Red List category.
func addFilterFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("filter", "f", "",
		"Red List category: EX, EW, CR, EN, VU, NT, LC, DD, EXplus, threatened")
}

func filterFlag(cmd *cobra.Command) (status.Status, error) {
	s, _ := cmd.Flags().GetString("filter")
	res, err := status.Parse(s)
	if err != nil {
		return status.Null, FilterError(s, err)
	}
	return res, nil
}
