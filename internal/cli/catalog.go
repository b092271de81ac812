// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/realdual/catalog"
)

// CatalogResult is the output of the catalog command.
type CatalogResult struct {
	Entries []catalog.Entry `json:"entries" yaml:"entries"`
}

func (r CatalogResult) table(num func(float64) string) Table {
	t := Table{Header: []string{"name", "from", "to", "expr", "description"}}
	for _, e := range r.Entries {
		t.Rows = append(t.Rows, []string{e.Name, num(e.From), num(e.To), e.Expr, e.Description})
	}
	return t
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the named functions usable as @name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Write(CatalogResult{Entries: rootOpts.catalog.Entries()})
		},
	}
}
