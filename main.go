package main

import (
	"github.com/joho/godotenv"

	"github.com/aficat/makan365/cmd/makan365"
)

func main() {
	// Optional .env with MAKAN365_VISION_API_KEY / MAKAN365_MAPS_API_KEY.
	// Missing keys degrade scan and venue search to demo mode.
	_ = godotenv.Load()
	makan365.Execute()
}
