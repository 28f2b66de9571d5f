package main

import (
	"log"
	"net/http"
	"os"

	"github.com/sachin9536/SEM-Campaign-Automation/api"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewRouter()
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/keywords/process")
	log.Println("  POST /api/keywords/score")
	log.Println("  POST /api/keywords/deduplicate")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
