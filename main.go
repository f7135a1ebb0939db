package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/nst-sdc/nst-events-sub001/cmd/app"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		log.Fatalf("app exited: %v", err)
	}
}
