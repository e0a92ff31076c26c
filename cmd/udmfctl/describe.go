package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/udmf/udt"
	"github.com/wippyai/udmf/utd"
)

var describeCmd = &cobra.Command{
	Use:   "describe <type>",
	Short: "Show the catalog entry of a type",
	Long: `Show the descriptor of a type: description, reference URL, icon,
MIME types, filename extensions and direct supertypes.

Example:
  udmfctl describe general.plain-text
  udmfctl describe com.adobe.pdf --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

type descriptorView struct {
	TypeID             string   `json:"type_id"`
	Description        string   `json:"description"`
	ReferenceURL       string   `json:"reference_url,omitempty"`
	IconFile           string   `json:"icon_file,omitempty"`
	MimeTypes          []string `json:"mime_types"`
	FilenameExtensions []string `json:"filename_extensions"`
	BelongingTo        []string `json:"belonging_to"`
}

func describe(t udt.Type) (*descriptorView, error) {
	d, err := utd.New(lib, t)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	mimes, err := d.MimeTypes().Collect()
	if err != nil {
		return nil, err
	}
	exts, err := d.FilenameExtensions().Collect()
	if err != nil {
		return nil, err
	}
	parents, err := d.BelongingToTypes().Collect()
	if err != nil {
		return nil, err
	}

	return &descriptorView{
		TypeID:             d.TypeID().String(),
		Description:        d.Description(),
		ReferenceURL:       d.ReferenceURL(),
		IconFile:           d.IconFile(),
		MimeTypes:          mimes,
		FilenameExtensions: exts,
		BelongingTo:        typeStrings(parents),
	}, nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	v, err := describe(udt.Parse(args[0]))
	if err != nil {
		return fmt.Errorf("describe %s: %w", args[0], err)
	}

	if flagJSON {
		return printJSON(cmd, v)
	}

	p := newPrinter(cmd)
	p.title(v.TypeID)
	p.field("Description", v.Description)
	if v.ReferenceURL != "" {
		p.field("Reference", v.ReferenceURL)
	}
	if v.IconFile != "" {
		p.field("Icon", v.IconFile)
	}
	p.list("MIME types", v.MimeTypes)
	p.list("Extensions", v.FilenameExtensions)
	p.list("Belongs to", v.BelongingTo)
	return nil
}
