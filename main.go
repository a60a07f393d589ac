package main

import (
	"log"
	"net/http"

	"github.com/chibuzordev/posterio/config"
	"github.com/chibuzordev/posterio/handlers"
	"github.com/chibuzordev/posterio/llm"
	"github.com/chibuzordev/posterio/middleware"
	"github.com/chibuzordev/posterio/routes"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	cfg := config.Load()

	conversationalPrompt := llm.LoadPrompt(cfg.ConversationalPromptFile, llm.DefaultConversationalPrompt)
	templatePrompt := llm.LoadPrompt(cfg.TemplatePromptFile, llm.DefaultTemplatePrompt)

	selector := llm.NewSelector(llm.NewKeywordClassifier(), conversationalPrompt, templatePrompt)
	client := llm.NewOpenAIClient(cfg)
	handler := handlers.NewHandler(client, selector, cfg.Model)

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, handler)

	server := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.IdentityMiddleware,
	)(mux)

	log.Println("Server is running on port " + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, server))
}
