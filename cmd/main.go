package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
)

func main() {
	config.Init()
	ledger := services.NewLedgerService(config.LedgerStore, config.Targets())
	r := routes.SetupRouter(ledger)
	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatal(err)
	}
}
