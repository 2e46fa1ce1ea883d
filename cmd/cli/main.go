package main

import (
	"context"
	"log"
	"os"

	"github.com/littlerefugees/refugio-cli/internal/buildinfo"
	"github.com/littlerefugees/refugio-cli/internal/client/cli"
	"github.com/littlerefugees/refugio-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
