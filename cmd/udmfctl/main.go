// Command udmfctl inspects the uniform data type catalog.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeLibrary(ctx); err == nil {
		err = cerr
	}
	return err
}
