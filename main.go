package main

import (
	"context"
	"os"

	"github.com/notify-lab/herald/pkg/cli"
	"github.com/notify-lab/herald/pkg/utils/apperr"
)

func main() {
	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		apperr.Handle(ctx, err)
		os.Exit(1)
	}
}
