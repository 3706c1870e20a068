package main

import (
	_ "landmarker/docs"
	"landmarker/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Landmarker API
// @version         1.0
// @description     Paid AI travel-photo service: issue a one-time payment reference, verify the wallet payment against the ledger, generate the edited photo.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
