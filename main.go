package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/handlers"
)

func main() {
	log.Namespace = "bookings.api.medishuttle.kr"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting bookings.api.medishuttle.kr service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting bookings.api.medishuttle.kr service")
}
