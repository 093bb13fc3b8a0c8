package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/droplink/cmd/droplink"
	"github.com/arthur-debert/droplink/pkg/ui/styles"
)

func main() {
	rootCmd := droplink.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if droplink.IsRendered(err) {
			os.Exit(1)
		}
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
