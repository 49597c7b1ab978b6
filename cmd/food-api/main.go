package main

import (
	"log"
	"os"

	"github.com/Jazz7-Dev/FoodY.com/cmd/food-api/app"
	"github.com/Jazz7-Dev/FoodY.com/configs"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	a, cleanup, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	log.Printf("food-api (%s) listening on %s", env, cfg.App.HTTPAddr)
	if err := a.Serve(cfg); err != nil {
		log.Fatal(err)
	}
}
