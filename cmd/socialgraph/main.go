package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-socialgraph/cmd/socialgraph/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := commands.Execute(ctx)
	stop()
	os.Exit(code)
}
