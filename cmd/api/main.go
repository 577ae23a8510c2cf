package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/handler"
	apimiddleware "github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/middleware"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/router"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/service"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/infrastructure/ratelimit"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	itemRepo := repository.NewFirestoreItemRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	geoService := service.NewGeoService()
	itemLocks := usecase.NewItemLockManager()

	syncUseCase := usecase.NewSyncUseCase(itemRepo, userRepo)
	itemUseCase := usecase.NewItemUseCase(itemRepo, userRepo, syncUseCase, itemLocks)
	purchaseUseCase := usecase.NewPurchaseUseCase(itemRepo, userRepo, syncUseCase, itemLocks)
	watchlistUseCase := usecase.NewWatchlistUseCase(itemRepo, userRepo)
	deliveryUseCase := usecase.NewDeliveryUseCase(geoService, itemRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, syncUseCase)

	handler.Setup(userUseCase, itemUseCase, purchaseUseCase, watchlistUseCase, deliveryUseCase, syncUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(rateLimiter)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
