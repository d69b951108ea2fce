package main

import (
	"signposts/internal/domain"
	"signposts/internal/http"
	"signposts/internal/logging"
)

func main() {
	// Setup global logger
	logger := logging.NewGlobalLogger()

	config := domain.NewServiceConfig("example-signpost", 4000)

	server, err := http.NewServer(config)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create server")
	}

	logger.WithFields(map[string]interface{}{
		"name": config.Name,
		"port": config.Port,
		"id":   config.ID,
	}).Info("Starting signpost server")

	logger.Infof("Admin endpoints: http://localhost:%d/admin", config.Port)
	logger.Infof("Redirects: http://localhost:%d/go/:name", config.Port)

	if err := server.Start(); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
