package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/ybenali/rental-service/internal/config"
	"github.com/ybenali/rental-service/internal/handler"
	"github.com/ybenali/rental-service/internal/middleware"
	"github.com/ybenali/rental-service/internal/repository"
	"github.com/ybenali/rental-service/internal/service"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc, err := service.NewService(repo, logger, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize service: %v", err)
	}
	h := handler.NewHandler(svc)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/vehicles", h.ListVehicles).Methods("GET")
	authRouter.HandleFunc("/vehicles", h.CreateVehicle).Methods("POST")
	authRouter.HandleFunc("/rentals", h.ListRentals).Methods("GET")
	authRouter.HandleFunc("/rentals", h.CreateRental).Methods("POST")
	authRouter.HandleFunc("/rentals/{id}/pay", h.PayRental).Methods("PUT")
	authRouter.HandleFunc("/rentals/{id}/return", h.ReturnRental).Methods("PUT")
	authRouter.HandleFunc("/rentals/{id}", h.DeleteRental).Methods("DELETE")
	authRouter.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	authRouter.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	authRouter.HandleFunc("/insurance", h.ListInsurance).Methods("GET")
	authRouter.HandleFunc("/insurance", h.CreateInsurance).Methods("POST")
	authRouter.HandleFunc("/insurance/{id}/pay", h.PayInsurance).Methods("PUT")
	authRouter.HandleFunc("/credits", h.ListCredits).Methods("GET")
	authRouter.HandleFunc("/credits", h.CreateCredit).Methods("POST")
	authRouter.HandleFunc("/credits/{id}/pay", h.PayCredit).Methods("PUT")
	authRouter.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	authRouter.HandleFunc("/dashboard/export", h.DashboardExport).Methods("GET")
	authRouter.HandleFunc("/clients", h.ListClients).Methods("GET")
	authRouter.HandleFunc("/clients", h.CreateClient).Methods("POST")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
