package main

import (
	"log"

	"github.com/glowmedspa/medspa-backend/chat"
	"github.com/glowmedspa/medspa-backend/config"
)

func main() {
	cfg := config.New()

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	agent := chat.NewAgent(
		chat.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model),
		chat.NewFetcher(),
	)

	app := chat.NewServer(agent)
	log.Fatal(app.Listen(":" + cfg.ChatPort))
}
