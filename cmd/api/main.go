package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"tokohub/internal/adapter/api"
	"tokohub/internal/adapter/api/handler"
	"tokohub/internal/adapter/api/router"
	"tokohub/internal/adapter/repository"
	"tokohub/internal/infrastructure/notification"
	"tokohub/internal/usecase"
	"tokohub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credsJSON := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); credsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credsJSON)))
	} else if credsPath := os.Getenv("GOOGLE_SERVICE_ACCOUNT_PATH"); credsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	shopRepo := repository.NewFirestoreShopRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	notifier := notification.NewKnockClient(cfg.KnockAPIKey, cfg.KnockLikeWorkflow, cfg.NotifyTimeout)

	productUseCase := usecase.NewProductUseCase(productRepo, shopRepo, userRepo)
	shopUseCase := usecase.NewShopUseCase(shopRepo, productRepo, userRepo)
	interactionUseCase := usecase.NewInteractionUseCase(productRepo, shopRepo, userRepo, notifier, cfg.NotifyTimeout)
	commentUseCase := usecase.NewCommentUseCase(productRepo)
	ratingUseCase := usecase.NewRatingUseCase(productRepo)

	handler.Setup(productUseCase, shopUseCase, interactionUseCase, commentUseCase, ratingUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
