// Package main is the entry point for the suppository-service application.
//
// @title           Suppository Service API
// @version         1.0.0
// @description     API for calculating the required suppository base mass using the density-ratio displacement method.
//
//	Each calculation walks the five classical steps: total API mass, estimated blank base weight, density ratios, displaced base, and required base.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/pharmlab/suppository-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ". Required for catalog updates.
//
// @tag.name        Calculations
// @tag.description Suppository base calculation operations
//
// @tag.name        Bases
// @tag.description Base catalog operations
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/pharmlab/suppository-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/pharmlab/suppository-service/config"
	"github.com/pharmlab/suppository-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
