package main

import (
	"context"
	"log"

	"github.com/dkrasnovs/launchboard/internal/cli"
	"github.com/dkrasnovs/launchboard/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
