package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/service"
	"github.com/phanindra-max/FrameworkLens/internal/transport/rest/handler"
	"github.com/phanindra-max/FrameworkLens/internal/transport/rest/middleware"
	"github.com/phanindra-max/FrameworkLens/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Catalog        *catalog.Catalog
	AuthService    *service.AuthService
	SessionService *service.SessionService
	AnswerService  *service.AnswerService
	ReportService  *service.ReportService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	catalogHandler := handler.NewCatalogHandler(c.Catalog)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	answerHandler := handler.NewAnswerHandler(c.AnswerService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/catalog", catalogHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/areas", catalogHandler.Areas).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/sessions/{sessionId}/live", wsHandler.LiveWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Respondent routes (require session token)
	respondentRoutes := v1.NewRoute().Subrouter()
	respondentRoutes.Use(authMW.RequireRespondent)

	respondentRoutes.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	respondentRoutes.HandleFunc("/sessions/{sessionId}/end", sessionHandler.End).Methods("POST", "OPTIONS")
	respondentRoutes.HandleFunc("/sessions/{sessionId}/completeness", sessionHandler.Completeness).Methods("GET", "OPTIONS")
	respondentRoutes.HandleFunc("/sessions/{sessionId}/answers", answerHandler.Record).Methods("PUT", "OPTIONS")
	respondentRoutes.HandleFunc("/sessions/{sessionId}/report", reportHandler.GetReport).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/sessions", sessionHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/sessions/{sessionId}/report", reportHandler.GetSessionReport).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/summary", reportHandler.GetSummary).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/summary", reportHandler.BuildSummary).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
