package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"jobportal-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	srv := server.NewServer()

	log.Printf("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %s", err)
	}
}
