package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/omytic/storefront/internal/auth"
	"github.com/omytic/storefront/internal/catalog"
	"github.com/omytic/storefront/internal/config"
	"github.com/omytic/storefront/internal/handlers"
	"github.com/omytic/storefront/internal/settings"
	"github.com/omytic/storefront/internal/storage"
	"github.com/omytic/storefront/models"
)

func main() {
	// .env is optional; a bare environment runs in degraded mode.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var (
		catalogSvc  *catalog.Service
		settingsSvc *settings.Service
		bucket      *storage.Bucket
	)

	if cfg.Configured() {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Product{}, &models.Setting{}); err != nil {
			logger.Fatal("failed to auto migrate models", zap.Error(err))
		}

		// Custom HTTP client with TLS config for the bucket endpoint.
		tr := &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
				MaxVersion: tls.VersionTLS13,
			},
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithHTTPClient(&http.Client{Transport: tr}),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, "")),
			awsconfig.WithRegion("auto"),
		)
		if err != nil {
			logger.Fatal("failed to load object storage config", zap.Error(err))
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		})

		bucket = storage.NewBucket(client, cfg.BucketName, cfg.PublicURL, logger)
		catalogSvc = catalog.New(db, bucket, logger)
		settingsSvc = settings.New(db, logger)
	} else {
		logger.Warn("backend credentials missing or placeholder; serving placeholder catalog, admin API disabled")
	}

	store := auth.NewStore(cfg.SessionSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Public read-only surface.
	r.Get("/api/products", func(w http.ResponseWriter, req *http.Request) {
		handlers.PublicProductsHandler(w, req, cfg, catalogSvc)
	})
	r.Get("/api/settings", func(w http.ResponseWriter, req *http.Request) {
		handlers.PublicSettingsHandler(w, req, cfg, settingsSvc)
	})

	// Admin session endpoints.
	r.Group(func(r chi.Router) {
		r.Use(httprate.Limit(
			10,
			1*time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		))
		r.Post("/api/login", func(w http.ResponseWriter, req *http.Request) {
			auth.LoginHandler(w, req, store, cfg.AdminPassword)
		})
		r.Post("/api/logout", func(w http.ResponseWriter, req *http.Request) {
			auth.LogoutHandler(w, req, store)
		})
	})

	// Admin API, gated on the session flag.
	if cfg.Configured() {
		r.Route("/api/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly(store))
			r.Use(httprate.Limit(
				60,
				1*time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
			))
			r.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
				handlers.DashboardHandler(w, req, catalogSvc)
			})
			r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
				handlers.ListProductsHandler(w, req, catalogSvc)
			})
			r.Post("/products", func(w http.ResponseWriter, req *http.Request) {
				handlers.CreateProductHandler(w, req, catalogSvc)
			})
			r.Put("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
				handlers.UpdateProductHandler(w, req, catalogSvc)
			})
			r.Delete("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
				handlers.DeleteProductHandler(w, req, catalogSvc)
			})
			r.Post("/upload", func(w http.ResponseWriter, req *http.Request) {
				handlers.UploadImageHandler(w, req, bucket, cfg, logger)
			})
			r.Get("/settings", func(w http.ResponseWriter, req *http.Request) {
				handlers.GetSettingsHandler(w, req, settingsSvc)
			})
			r.Put("/settings", func(w http.ResponseWriter, req *http.Request) {
				handlers.SaveSettingsHandler(w, req, settingsSvc)
			})
		})
	}

	// Marketing pages and the admin shell are static assets.
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, cfg.StaticDir+"/index.html")
	})
	r.Get("/admin", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, cfg.StaticDir+"/admin.html")
	})

	logger.Info("starting API server", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
