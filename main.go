package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/techradar/cmd"
	"github.com/thenoetrevino/techradar/internal/logging"
)

func main() {
	closer, err := logging.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	code := cmd.Execute()
	if closer != nil {
		_ = closer.Close()
	}
	os.Exit(code)
}
