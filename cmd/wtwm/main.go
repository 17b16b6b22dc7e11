// wtwm recognizes mentions of staff and broadcasters in editorial comments.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wtwm/cmd/wtwm/cmd"
	perr "wtwm/internal/platform/errors"
	"wtwm/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		w := perr.WireFrom(err)
		logger.Named("wtwm").Error().
			Err(perr.Root(err)).
			Str("code", w.Code.String()).
			Str("field", w.Field).
			Msg(w.Message)
		stop()
		os.Exit(1)
	}
}
