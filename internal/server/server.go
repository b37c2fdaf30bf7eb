// Package server contains the gin server assembly and route handlers.
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/store"
)

// Server holds the port the server runs on plus the storage and logger
// shared by every handler.
type Server struct {
	port int

	Store *store.Storage
	Log   *logrus.Logger
}

// NewServer constructs a new http.Server with fresh in-memory storage.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	s := &Server{
		port:  port,
		Store: store.New(),
		Log:   logger.New(),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
