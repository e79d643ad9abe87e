package main

import (
	_ "member_registry/docs"
	"member_registry/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Membership Registration API
// @version         1.0
// @description     Membership registrations (submissions + SMS notifications) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
