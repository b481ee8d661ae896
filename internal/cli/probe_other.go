//go:build !linux

package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func probeInput(*cobra.Command, *app, probeOptions) error {
	return errors.New("probe input needs the Linux uinput module")
}
