package main

import (
	"context"
	"net/http"

	"yuanfen_server/config"
	"yuanfen_server/controllers"
	"yuanfen_server/logger"
	"yuanfen_server/middleware"
	"yuanfen_server/routes"
	"yuanfen_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.MustLoad()

	logFormat := "console"
	if cfg.Env == "production" {
		logFormat = "json"
	}
	zl := logger.New(cfg.LogLevel, logFormat)
	defer zl.Sync()
	log := zl.Sugar()

	ctx := context.Background()

	// Initialize DynamoDB client and service
	log.Info("Initializing DynamoDB client...")
	dynamoClient, err := services.InitializeDynamoDBClient(ctx)
	if err != nil {
		log.Fatalw("Failed to initialize DynamoDB client", "error", err)
	}
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Info("DynamoDB client initialized.")

	uploadService, err := services.NewUploadService(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.UploadURLTTL, log)
	if err != nil {
		log.Fatalw("Failed to initialize upload service", "error", err)
	}

	// Initialize services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService, Log: log}
	authService := &services.AuthService{
		Directory: userProfileService,
		JWTSecret: []byte(cfg.JWTSecret),
		TokenTTL:  cfg.TokenTTL,
		Log:       log,
	}
	photoService := &services.PhotoService{Dynamo: dynamoService, Log: log}
	matchService := &services.MatchService{Directory: userProfileService, Log: log}

	// Initialize controllers
	authController := controllers.NewAuthController(authService, log)
	userProfileController := controllers.NewUserProfileController(userProfileService)
	photoController := controllers.NewPhotoController(photoService)
	uploadController := controllers.NewUploadController(uploadService, log)
	matchController := controllers.NewMatchController(matchService, log)

	auth := &middleware.Auth{Secret: []byte(cfg.JWTSecret)}

	// Initialize the router
	r := mux.NewRouter()

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterAuthRoutes(r, authController)
	routes.RegisterUserProfileRoutes(r, userProfileController, auth)
	routes.RegisterPhotoRoutes(r, photoController, auth)
	routes.RegisterUploadRoutes(r, uploadController, auth)
	routes.RegisterMatchRoutes(r, matchController, auth)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Infof("Starting server on port %s...", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
