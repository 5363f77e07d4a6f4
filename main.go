package main

import (
	"github.com/campusgig/gig_service/config"
	"github.com/campusgig/gig_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
