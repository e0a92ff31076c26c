package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wippyai/udmf/udt"
	"github.com/wippyai/udmf/utd"
)

var belongsCmd = &cobra.Command{
	Use:   "belongs <type> <other>",
	Short: "Compare two types in the hierarchy",
	Long: `Report whether <type> belongs to <other>, and whether it is a
strict subtype (lower) or strict supertype (higher) of it.

Example:
  udmfctl belongs general.plain-text general.text`,
	Args: cobra.ExactArgs(2),
	RunE: runBelongs,
}

type relationView struct {
	Type      string `json:"type"`
	Other     string `json:"other"`
	BelongsTo bool   `json:"belongs_to"`
	IsLower   bool   `json:"is_lower"`
	IsHigher  bool   `json:"is_higher"`
}

func runBelongs(cmd *cobra.Command, args []string) error {
	t, other := udt.Parse(args[0]), udt.Parse(args[1])

	d, err := utd.New(lib, t)
	if err != nil {
		return fmt.Errorf("describe %s: %w", args[0], err)
	}
	defer d.Close()

	v := relationView{
		Type:      t.String(),
		Other:     other.String(),
		BelongsTo: d.BelongsTo(other),
		IsLower:   d.IsLower(other),
		IsHigher:  d.IsHigher(other),
	}

	if flagJSON {
		return printJSON(cmd, v)
	}
	p := newPrinter(cmd)
	p.field("belongs to", strconv.FormatBool(v.BelongsTo))
	p.field("is lower", strconv.FormatBool(v.IsLower))
	p.field("is higher", strconv.FormatBool(v.IsHigher))
	return nil
}
