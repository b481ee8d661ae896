// Command sdl3-go inspects the devices, events and storage visible to the
// native SDL3 library.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hsiuhsiu/sdl3-go/internal/cli"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, sdl.ErrNotBuilt) {
			fmt.Fprintf(os.Stderr, "library unavailable: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
