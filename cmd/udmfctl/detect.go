package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/wippyai/udmf/utd"
)

// sniffLimit matches the amount mimetype reads by default.
const sniffLimit = 3072

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Detect the types of a file",
	Long: `Detect the types of a file from its extension and from its content.

Example:
  udmfctl detect notes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

type detectView struct {
	Path      string   `json:"path"`
	MimeType  string   `json:"mime_type"`
	ByPath    []string `json:"by_path"`
	ByContent []string `json:"by_content"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, sniffLimit))
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	byPath, err := utd.TypesByPath(lib, path).Collect()
	if err != nil {
		return fmt.Errorf("detect by path: %w", err)
	}
	byContent, err := utd.TypesByContent(lib, head).Collect()
	if err != nil {
		return fmt.Errorf("detect by content: %w", err)
	}

	v := detectView{
		Path:      path,
		MimeType:  mimetype.Detect(head).String(),
		ByPath:    typeStrings(byPath),
		ByContent: typeStrings(byContent),
	}

	if flagJSON {
		return printJSON(cmd, v)
	}
	p := newPrinter(cmd)
	p.title(v.Path)
	p.field("MIME type", v.MimeType)
	p.list("By extension", v.ByPath)
	p.list("By content", v.ByContent)
	return nil
}
