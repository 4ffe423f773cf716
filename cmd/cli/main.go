package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authbridge/internal/client/cli"
	"github.com/dmitrijs2005/authbridge/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	code := app.Run(ctx, args)
	_ = app.Close()
	os.Exit(code)
}
