package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"mcc-scheduler/internal/api"
	"mcc-scheduler/internal/config"
	"mcc-scheduler/pkg/database"
	"mcc-scheduler/pkg/utils"
)

func main() {
	cfg := config.InitConfig()

	utils.InitJWTSecret(cfg.JWT.Secret)

	database.InitDB("./data.db")

	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	api.SetupRoutes(router, cfg)

	router.Static("/static", "./static")

	log.Printf("starting server on :%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed to start: %s\n", err)
	}
}
