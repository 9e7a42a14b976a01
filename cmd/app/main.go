package main

import (
	"campus-lost-found/internal/app"
	"campus-lost-found/pkg/config"
	"campus-lost-found/pkg/database"
	"campus-lost-found/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Campus Lost & Found API
// @version         1.0
// @description     Bulletin board for lost and found items on campus

// @host      localhost:4000
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db)
}
