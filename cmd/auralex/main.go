// SPDX-License-Identifier: MIT

// auralex tokenizes Aura source files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"gitlab.com/fisherprime/auralex/cmd/auralex/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := command.GetRootCommand(afero.NewOsFs()).ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
