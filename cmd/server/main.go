package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/db"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/handlers"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	validateEnv()
	dbConn := initDB()
	defer dbConn.Close()

	mux := initRoutes(dbConn)
	server := initServer(mux)
	startServer(server)
}

func validateEnv() {
	requiredEnvVars := []string{
		"PG_HOST", "PG_USER", "PG_PASSWORD", "PG_DATABASE", "PG_PORT",
	}
	for _, env := range requiredEnvVars {
		if os.Getenv(env) == "" {
			log.Fatalf("Environment variable %s must be set", env)
		}
	}
}

func initDB() *sql.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("PG_HOST"), os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD"),
		os.Getenv("PG_DATABASE"), os.Getenv("PG_PORT"))

	dbConn, err := db.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	return dbConn
}

func initRoutes(dbConn *sql.DB) *http.ServeMux {
	handler := &handlers.Handler{
		TodoRepo:    db.NewTodoRepository(dbConn),
		RateLimiter: handlers.NewRateLimiter(5, time.Second),
		Hub:         handlers.NewHub(),
	}

	mux := http.NewServeMux()
	mux.Handle("/todo_list", handlers.Chain(http.HandlerFunc(handler.HandleTodoList)))
	mux.Handle("/todo_list/", handlers.Chain(http.HandlerFunc(handler.HandleTodoByID)))
	// the websocket upgrade needs the raw ResponseWriter, so no middleware here
	mux.HandleFunc("/ws", handler.HandleWebSocket)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", handlers.HandleNotFound)
	return mux
}

func listenPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "2001"
}

func initServer(mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:    ":" + listenPort(),
		Handler: mux,
	}
}

func startServer(server *http.Server) {
	log.Printf("Server running at http://localhost%s", server.Addr)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
