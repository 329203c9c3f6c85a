package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"alphabot-launcher/config"
	"alphabot-launcher/launcher"
	"alphabot-launcher/utils"
)

// A tiny entrypoint that ensures sane env defaults and then hands control to
// the Alpha Bot application.
func main() {
	utils.InitLogging()

	// The application reads its settings from a .env file in the working
	// directory; load it before resolving PORT so values there count.
	// Variables already present in the process environment win.
	if err := godotenv.Load(); err == nil {
		utils.LogInfo("loaded .env file")
	}

	cfg := config.LoadConfig()

	code, err := launcher.New(cfg).Run()
	if err != nil {
		log.Fatalf("failed to start %s: %v", cfg.Command[0], err)
	}
	os.Exit(code)
}
