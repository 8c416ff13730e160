package main

import (
	"context"
	"log"
	"os"

	"github.com/evizor/console/internal/buildinfo"
	"github.com/evizor/console/internal/cli"
	"github.com/evizor/console/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
