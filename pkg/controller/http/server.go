package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/frontend"
	"github.com/notify-lab/herald/pkg/domain/types"
	"github.com/notify-lab/herald/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	handler *DiscordHandler
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	sendUC usecase.SendUseCase,
	directoryUC usecase.DirectoryUseCase,
) (*Server, error) {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	discordHandler := NewDiscordHandler(sendUC, directoryUC)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)

		r.Route("/discord", func(r chi.Router) {
			r.Post("/validate-token", discordHandler.HandleValidateToken)
			r.Post("/send-dm", discordHandler.HandleSendDM)
			r.Post("/send-bulk", discordHandler.HandleSendBulk)
			r.Post("/guilds", discordHandler.HandleGuilds)
			r.Post("/guild-members", discordHandler.HandleGuildMembers)
			r.Post("/history", discordHandler.HandleHistory)
		})
	})

	// Frontend routes (serve embedded files)
	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
			"error", err,
		)
		router.Get("/*", handleFallbackHome)
	} else {
		ctxlog.From(ctx).Info("Serving frontend from embedded files")
		fileServer := http.FileServer(fs)
		router.Handle("/*", fileServer)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		handler: discordHandler,
	}

	return server, nil
}

// Router exposes the underlying router, mainly for tests
func (s *Server) Router() chi.Router {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Herald</title></head>
<body>
    <h1>Herald</h1>
    <p>Discord DM relay service. The frontend bundle is not embedded in this build;
    the JSON API under /api/discord is fully available.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

// errStatus maps a tagged error to an HTTP status code
func errStatus(err error) int {
	switch {
	case goerr.HasTag(err, types.ErrTagValidation):
		return http.StatusBadRequest
	case goerr.HasTag(err, types.ErrTagAuth):
		return http.StatusUnauthorized
	case goerr.HasTag(err, types.ErrTagDelivery),
		goerr.HasTag(err, types.ErrTagTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errStatus(err))

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if encErr := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); encErr != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", encErr)
	}
}

// writeJSON writes a JSON response with 200 OK
func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}
