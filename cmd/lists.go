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
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iofs"
	"github.com/gnames/gnredlist/internal/iooutput"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/status"
	"github.com/spf13/cobra"
)

func getListsCmd() *cobra.Command {
	listsCmd := &cobra.Command{
		Use:   "lists [taxon...]",
		Short: "Generate wiki lists of assessed taxa",
		Long: `Lists generates wiki articles that list assessed species,
subspecies and subpopulations of taxa.

Without arguments, taxa are taken from the "lists" section of rules:
"per_category" taxa get a list for every Red List category, and
"per_taxon" taxa get one list with all categories.

With arguments, lists are created for the given taxa only. Use
--filter to limit them to one category.

Big taxa are split into sections by their descendants, small taxa
are merged with their neighbours.

Examples:
  gnredlist lists
  gnredlist lists Mammalia Aves -f CR -o lists`,
		RunE: runLists,
	}

	listsCmd.Flags().StringP("output", "o", "", "directory for created lists")
	listsCmd.Flags().String("date", "", "Red List version, e.g. 2024-2")
	addFilterFlag(listsCmd)
	return listsCmd
}

func runLists(cmd *cobra.Command, args []string) error {
	filter, err := filterFlag(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	var opts []config.Option
	if cmd.Flags().Changed("output") {
		s, _ := cmd.Flags().GetString("output")
		opts = append(opts, config.OptOutputDir(s))
	}
	if cmd.Flags().Changed("date") {
		s, _ := cmd.Flags().GetString("date")
		opts = append(opts, config.OptOutputDateText(s))
	}
	cfg.Update(opts)

	if err = iofs.EnsureOutputDir(cfg.Output.Dir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	l, err := loadTree(cmd.Context())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer l.Close()

	lw := iooutput.NewListWriter(l.rules, cfg.Output.DateText)

	var files []string
	if len(args) == 0 {
		files, err = lw.WriteLists(cfg.Output.Dir, l.tree)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	} else {
		files, err = writeNamedLists(lw, l, args, filter)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	gn.Info("Created <em>%d</em> lists in %s", len(files), cfg.Output.Dir)
	return nil
}

func writeNamedLists(
	lw *iooutput.ListWriter,
	l *loaded,
	names []string,
	filter status.Status,
) ([]string, error) {
	var res []string
	for _, v := range names {
		n, err := findTaxon(l, v)
		if err != nil {
			return res, err
		}
		if n.Stats(filter).Empty() {
			gn.Warn("No assessments for <em>%s</em>", v)
			continue
		}
		path := filepath.Join(cfg.Output.Dir, iooutput.ListFileName(n, filter))
		if err = lw.WriteFile(path, n, filter); err != nil {
			return res, err
		}
		res = append(res, path)
	}
	return res, nil
}
