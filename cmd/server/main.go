package main

import (
	"log"

	_ "planview/docs"
	"planview/internal/config"
	"planview/internal/server"
)

// @title           Planview API
// @version         1.0
// @description     API for normalizing and browsing HacknPlan board exports.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
