package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"agreement-engine/internal/handler"
)

func main() {
	godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Agreement engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
