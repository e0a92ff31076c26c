package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/udmf/marshal"
	"github.com/wippyai/udmf/udt"
	"github.com/wippyai/udmf/utd"
)

var (
	flagExt  string
	flagMime string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup (--ext <ext> | --mime <type>)",
	Short: "Find types by filename extension or MIME type",
	Long: `Find the types registered for a filename extension or a MIME type.
Matching is case-insensitive.

Example:
  udmfctl lookup --ext .txt
  udmfctl lookup --mime image/png`,
	Args: cobra.NoArgs,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&flagExt, "ext", "", "filename extension, with leading dot")
	lookupCmd.Flags().StringVar(&flagMime, "mime", "", "MIME type")
	lookupCmd.MarkFlagsOneRequired("ext", "mime")
	lookupCmd.MarkFlagsMutuallyExclusive("ext", "mime")
}

func runLookup(cmd *cobra.Command, _ []string) error {
	var list *marshal.List[udt.Type]
	key := flagExt
	if flagExt != "" {
		list = utd.TypesByFilenameExtension(lib, flagExt)
	} else {
		key = flagMime
		list = utd.TypesByMimeType(lib, flagMime)
	}

	types, err := list.Collect()
	if err != nil {
		return fmt.Errorf("lookup %s: %w", key, err)
	}
	ids := typeStrings(types)

	if flagJSON {
		return printJSON(cmd, ids)
	}
	if len(ids) == 0 {
		return fmt.Errorf("no types registered for %q", key)
	}
	p := newPrinter(cmd)
	for _, id := range ids {
		fmt.Fprintln(p.w, p.render(typeStyle, id))
	}
	return nil
}
