package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donation-web-server/config"
	_ "donation-web-server/docs"
	"donation-web-server/internal/handler"
	"donation-web-server/internal/repository"
	"donation-web-server/internal/security"
	"donation-web-server/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Donation-web-server
// @version 1.0
// @description REST API раздачи файлов за пожертвования: доступ к папкам открывается по порогам сумм

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	ttl := time.Duration(cfg.TTL.S3AndRedis) * time.Second

	userRepo := repository.NewUserRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	fileRepo := repository.NewFileRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	grantRepo := repository.NewGrantRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, ttl)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	stripeProvider := service.NewStripeProvider(&cfg.Stripe)

	authService := service.NewAuthService(userRepo, donationRepo, jwtService)
	accessService := service.NewAccessService(folderRepo, fileRepo, grantRepo, cacheRepo, s3Service, ttl)
	paymentService := service.NewPaymentService(donationRepo, folderRepo, grantRepo, cacheRepo, stripeProvider)
	adminFolderService := service.NewAdminFolderService(folderRepo, cacheRepo)
	adminFileService := service.NewAdminFileService(fileRepo, folderRepo, s3Service, ttl)
	adminUserService := service.NewAdminUserService(userRepo, folderRepo, donationRepo, grantRepo, cacheRepo)

	if err := service.EnsureDefaultAdmin(ctx, db, userRepo, &cfg.Bootstrap); err != nil {
		log.Fatalf("Ошибка создания администратора: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	filesHandler := handler.NewFilesHandler(accessService)
	paymentsHandler := handler.NewPaymentsHandler(paymentService)
	adminFoldersHandler := handler.NewAdminFoldersHandler(adminFolderService)
	adminFilesHandler := handler.NewAdminFilesHandler(adminFileService)
	adminUsersHandler := handler.NewAdminUsersHandler(adminUserService)

	router.Use(config.DBMiddleware(db))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService)
	setupFilesRoutes(router, filesHandler, jwtService)
	setupPaymentsRoutes(router, paymentsHandler, jwtService)
	setupAdminRoutes(router, adminFoldersHandler, adminFilesHandler, adminUsersHandler, jwtService, userRepo)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthHandler, jwtService *security.JWTService) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Get("/profile", h.GetProfile)
			r.Put("/profile", h.UpdateProfile)
		})
	})
}

func setupFilesRoutes(r chi.Router, h *handler.FilesHandler, jwtService *security.JWTService) {
	r.Route("/api/files", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Post("/", h.ListFiles)
		r.Post("/download", h.DownloadFile)
	})
}

func setupPaymentsRoutes(r chi.Router, h *handler.PaymentsHandler, jwtService *security.JWTService) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Post("/create-intent", h.CreateIntent)
		r.Post("/confirm", h.ConfirmDonation)
	})
}

func setupAdminRoutes(
	r chi.Router,
	folders *handler.AdminFoldersHandler,
	files *handler.AdminFilesHandler,
	users *handler.AdminUsersHandler,
	jwtService *security.JWTService,
	userRepo *repository.UserRepository,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Use(security.AdminMiddleware(userRepo))

		r.Route("/folders", func(r chi.Router) {
			r.Post("/", folders.ListFolders)
			r.Post("/create", folders.CreateFolder)
			r.Put("/update", folders.UpdateFolder)
			r.Delete("/delete", folders.DeleteFolder)
			r.Post("/users", folders.GetFolderUsers)
		})

		r.Route("/files", func(r chi.Router) {
			r.Post("/", files.ListFiles)
			r.Post("/upload", files.UploadFile)
			r.Put("/update", files.UpdateFile)
			r.Delete("/delete", files.DeleteFile)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", users.ListUsers)
			r.Post("/details", users.GetUserDetails)
			r.Post("/create", users.CreateUser)
			r.Put("/update", users.UpdateUser)
			r.Delete("/delete", users.DeleteUser)
			r.Post("/grant-access", users.GrantAccess)
			r.Delete("/revoke-access", users.RevokeAccess)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
