package main

import (
	"crosscheck/config"
	"crosscheck/db"
	"crosscheck/router"
	"crosscheck/tools"

	"github.com/gin-gonic/gin"
)

func main() {
	tools.InitLogger()

	cfg := config.Get("config.json")
	db.SetConfigurations(cfg)

	database, err := db.Connect()
	if err != nil {
		tools.Logger.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	tools.Logger.Infof("Cross Check listening on :%s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		tools.Logger.Fatal(err)
	}
}
