package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"token-lifecycle-server/config"
	_ "token-lifecycle-server/docs"
	"token-lifecycle-server/internal/handler"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/repository"
	"token-lifecycle-server/internal/security"
	"token-lifecycle-server/internal/service"

	_ "github.com/lib/pq"
)

// @title Token-lifecycle-server
// @version 1.0
// @description REST API выдачи, обновления и отзыва токенов доступа

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("TLS_CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
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

	if cfg.DatabaseConfig.MigrateOnStartup {
		if err := config.MigrateDatabase(ctx, db); err != nil {
			log.Fatalf("Ошибка миграции БД: %v", err)
		}
	}

	store, closeStore, err := newRefreshTokenStore(cfg, db)
	if err != nil {
		log.Fatalf("Ошибка подключения к хранилищу refresh токенов: %v", err)
	}
	defer closeStore()

	userRepo := repository.NewUserRepository(db)
	identity, err := service.NewIdentityService(userRepo)
	if err != nil {
		log.Fatalf("Ошибка инициализации IdentityService: %v", err)
	}
	jwtService := security.NewJWTService(security.JWTSettingsFromConfig(&cfg.JWT))

	authService := service.NewAuthenticationService(
		identity,
		security.NewClaimsBuilder(identity),
		jwtService,
		security.NewRefreshTokenGenerator(),
		store,
		cfg.JWT.RefreshTTL(),
	)
	userService := service.NewUserService(userRepo, identity)
	favoritesService := service.NewMediaListService("favorites", userRepo, repository.NewFavoritesRepository(db))
	watchListService := service.NewMediaListService("watch_list", userRepo, repository.NewWatchListRepository(db))

	srv, router := config.SetupServer(cfg.ServerAddr)
	setupRoutes(router, handlers{
		auth:      handler.NewAuthenticationHandler(authService, cfg.Cookies),
		user:      handler.NewUserHandler(userService),
		favorites: handler.NewMediaListHandler(favoritesService, handler.FavoriteCheckField),
		watchList: handler.NewMediaListHandler(watchListService, handler.WatchListCheckField),
	}, jwtService)

	runServer(ctx, srv)
}

// newRefreshTokenStore выбирает хранилище refresh токенов по tokenStore.backend
func newRefreshTokenStore(cfg *config.AppConfig, db *config.Database) (ports.RefreshTokenStore, func(), error) {
	switch cfg.TokenStore.Backend {
	case config.TokenStorePostgres:
		return repository.NewRefreshTokenRepository(db), func() {}, nil
	case config.TokenStoreRedis:
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		closeRedis := func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Ошибка при закрытии Redis: %v", err)
			}
		}
		return repository.NewRedisRefreshTokenRepository(redisClient), closeRedis, nil
	case config.TokenStoreMemory:
		log.Println("refresh токены хранятся в памяти процесса и теряются при перезапуске")
		return repository.NewMemoryRefreshTokenRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("неизвестное хранилище refresh токенов %q", cfg.TokenStore.Backend)
	}
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
		if err != nil && err != http.ErrServerClosed {
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
