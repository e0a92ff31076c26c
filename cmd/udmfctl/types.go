package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/udmf/udt"
)

var flagCatalogOnly bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List well-known type identifiers",
	Long: `List every well-known uniform data type identifier. Identifiers
with an entry in the loaded catalog are marked with *.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().BoolVar(&flagCatalogOnly, "catalog-only", false, "list only types with a catalog entry")
}

type typeRow struct {
	ID        string `json:"id"`
	InCatalog bool   `json:"in_catalog"`
}

func runTypes(cmd *cobra.Command, _ []string) error {
	catalog := lib.Catalog()

	var rows []typeRow
	for _, k := range udt.Kinds() {
		_, ok := catalog.Lookup(k.String())
		if flagCatalogOnly && !ok {
			continue
		}
		rows = append(rows, typeRow{ID: k.String(), InCatalog: ok})
	}

	if flagJSON {
		return printJSON(cmd, rows)
	}

	p := newPrinter(cmd)
	for _, r := range rows {
		mark := " "
		if r.InCatalog {
			mark = p.render(typeStyle, "*")
		}
		fmt.Fprintf(p.w, "%s %s\n", mark, r.ID)
	}
	return nil
}
