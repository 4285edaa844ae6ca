package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/navalclash/navalclash-backend/api"
	"github.com/navalclash/navalclash-backend/config"
	"github.com/navalclash/navalclash-backend/db"
	"github.com/navalclash/navalclash-backend/db/sqlc"
	mb "github.com/navalclash/navalclash-backend/models/battleship"
	mc "github.com/navalclash/navalclash-backend/models/connection"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "9191"
	}

	settings, err := config.LoadSettings(os.Getenv("SETTINGS_PATH"))
	if err != nil {
		panic(err)
	}
	baseCfg, err := settings.GameConfig()
	if err != nil {
		panic(err)
	}

	psqlDb := db.MustConnectToDb(os.Getenv("DATABASE_URL"))
	querier := sqlc.New(psqlDb)

	sessionManager := mc.NewNavalSessionManager()
	go sessionManager.CleanupPeriodically()

	gameManager := mb.NewNavalGameManager()

	requestProcessor := api.NewRequestProcessor(sessionManager, gameManager, querier, baseCfg)

	mux := http.NewServeMux()
	mux.Handle("GET /navalclash", requestProcessor)

	log.Printf("listening to port %s\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+port, mux))
}
