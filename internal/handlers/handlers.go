package handlers

import (
	"BucketList/internal/config"
	"BucketList/internal/middleware"
	"BucketList/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.WithBodyLimit(config.MaxContentLength))

	// Handlers
	itemHandler := NewItemHandler(itemService, logger, config)

	r.Get("/health", itemHandler.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.WithMarkupAudit)

		r.Get("/items", itemHandler.List)
		r.Post("/items", itemHandler.Create)
		r.Put("/items/{id}", itemHandler.Update)
		r.Delete("/items/{id}", itemHandler.Delete)
		r.Post("/items/{id}/photos", itemHandler.UploadPhoto)
		r.Delete("/photos/{id}", itemHandler.DeletePhoto)
		r.Get("/stats", itemHandler.Stats)
	})

	// Uploaded photos
	r.Get("/"+service.PhotoURLPrefix+"/{filename}", itemHandler.ServePhoto)

	// Static single-page client
	r.Handle("/*", http.FileServer(http.Dir(config.StaticDir)))

	return &Handler{Router: r}
}
