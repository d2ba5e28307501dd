package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/lunchboxd/lunchboxd-server/internal/server"
	"github.com/lunchboxd/lunchboxd-server/internal/server/config"
)

func main() {

	// optional .env, same contract the deployment scripts use
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
