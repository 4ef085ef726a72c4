package main

import (
	"embed"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"projectpulse/internal/config"
	"projectpulse/ui"
)

//go:embed ui/templates/*
var embeddedFiles embed.FS

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	server := ui.NewServer(appConfig, embeddedFiles)
	if err := server.Initialize(); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Starting Project Monitoring Dashboard on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
