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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iooutput"
	"github.com/spf13/cobra"
)

func getTreeCmd() *cobra.Command {
	treeCmd := &cobra.Command{
		Use:   "tree [taxon]",
		Short: "Show hierarchy with statistics",
		Long: `Tree prints the hierarchy of a taxon with the number of
assessments and the Red List Index of every node.

Taxon can be any scientific name in the hierarchy or a group defined
in rules. Without a taxon the whole hierarchy is shown.

Examples:
  gnredlist tree Mammalia -d 2
  gnredlist tree Cetartiodactyla -f CR`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTree,
	}

	treeCmd.Flags().IntP("depth", "d", 2, "number of levels to show")
	addFilterFlag(treeCmd)
	return treeCmd
}

func runTree(cmd *cobra.Command, args []string) error {
	filter, err := filterFlag(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	depth, _ := cmd.Flags().GetInt("depth")

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

	fmt.Fprintln(cmd.OutOrStdout(), iooutput.RenderTree(n, filter, depth))
	return nil
}
