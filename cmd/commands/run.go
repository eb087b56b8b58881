package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"mediashelf"
	"mediashelf/config"
	"mediashelf/internal/application/usecase"
	"mediashelf/internal/infrastructure/broker"
	"mediashelf/internal/infrastructure/database"
	"mediashelf/internal/infrastructure/minio"
	"mediashelf/internal/presentation"
	"mediashelf/internal/presentation/handler"
	"mediashelf/internal/presentation/middleware"
	"mediashelf/internal/presentation/router"
	"mediashelf/pkg/logger"
	"mediashelf/pkg/token"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running mediashelf", "version", mediashelf.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("closing database failed", "err", err)
		}
	}()

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer brokerClient.Close()

	events := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	minioClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	if err := minioClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
		ExitOnError(err)
	}
	uploader := minio.NewUploader(minioClient, cfg.MinIOUploader)

	userStore := database.NewUserStore(db)
	tokens := token.NewManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	music := usecase.NewContent("music", database.NewContentStore(db, database.MusicCollection), events)
	books := usecase.NewContent("book", database.NewContentStore(db, database.BookCollection), events)
	blogs := usecase.NewContent("blog", database.NewContentStore(db, database.BlogCollection), events)
	categories := usecase.NewCategory(database.NewCategoryStore(db), events)
	accounts := usecase.NewAccount(userStore, tokens)
	media := usecase.NewMedia(uploader, database.NewMediaStore(db), events)

	handlers := router.Handlers{
		Music:    handler.NewContentHandler(music, handler.MusicResource),
		Book:     handler.NewContentHandler(books, handler.BookResource),
		Blog:     handler.NewContentHandler(blogs, handler.BlogResource),
		Category: handler.NewCategoryHandler(categories),
		Auth:     handler.NewAuthHandler(accounts),
		User:     handler.NewUserHandler(accounts),
		Upload:   handler.NewUploadHandler(media),
	}
	auth := middleware.NewAuth(tokens, userStore)

	e := echo.New()
	e.Validator = presentation.NewValidator()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodPatch, http.MethodDelete, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))

	router.Setup(e, handlers, auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}
