package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesaYaApi/internal/config"
	catalogport "mesaYaApi/internal/modules/catalog/application/port"
	catalogusecase "mesaYaApi/internal/modules/catalog/application/usecase"
	cataloginfra "mesaYaApi/internal/modules/catalog/infrastructure"
	catalogtransport "mesaYaApi/internal/modules/catalog/interface"
	identityport "mesaYaApi/internal/modules/identity/application/port"
	identityusecase "mesaYaApi/internal/modules/identity/application/usecase"
	identityinfra "mesaYaApi/internal/modules/identity/infrastructure"
	identitytransport "mesaYaApi/internal/modules/identity/interface"
	realtimehandler "mesaYaApi/internal/modules/realtime/application/handler"
	realtimeport "mesaYaApi/internal/modules/realtime/application/port"
	realtimeusecase "mesaYaApi/internal/modules/realtime/application/usecase"
	realtimeinfra "mesaYaApi/internal/modules/realtime/infrastructure"
	realtimetransport "mesaYaApi/internal/modules/realtime/interface"
	reservationsusecase "mesaYaApi/internal/modules/reservations/application/usecase"
	reservationsinfra "mesaYaApi/internal/modules/reservations/infrastructure"
	reservationstransport "mesaYaApi/internal/modules/reservations/interface"
	"mesaYaApi/internal/platform/broker"
	"mesaYaApi/internal/platform/events"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
	"mesaYaApi/internal/shared/logging"
	"mesaYaApi/internal/shared/metrics"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := logging.Setup(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Directory: cfg.Logging.Directory,
		AddSource: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID))

	metrics.Register()

	// Session store: Redis when configured, in-process memory otherwise.
	var sessionStore identityport.SessionStore
	if cfg.Redis.Addr != "" {
		redisStore, err := identityinfra.NewRedisSessionStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "redis connect error: %v\n", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		sessionStore = redisStore
		slog.Info("session store ready", slog.String("backend", "redis"), slog.String("addr", cfg.Redis.Addr))
	} else {
		sessionStore = identityinfra.NewMemorySessionStore()
		slog.Info("session store ready", slog.String("backend", "memory"))
	}

	restaurantRepo := cataloginfra.NewMemoryRestaurantRepository(cataloginfra.SeedRestaurants())
	reservationRepo := reservationsinfra.NewMemoryReservationRepository(reservationsinfra.SeedReservations())

	jwtManager := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)

	hub := realtimeinfra.NewHub()
	registry := realtimeinfra.NewHandlerRegistry()
	broadcastUC := realtimeusecase.NewBroadcastUseCase(hub)
	for _, topic := range cfg.Topics() {
		registry.Register(realtimehandler.NewEntityStreamHandler(topic, broadcastUC))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Events flow through Kafka when brokers are configured, otherwise they
	// dispatch straight into the registry.
	var publisher events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := broker.NewKafkaPublisher(cfg.Kafka.Brokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Topics())
		slog.Info("event bus ready", slog.String("backend", "kafka"))
	} else {
		publisher = broker.NewLocalPublisher(registry)
		slog.Info("event bus ready", slog.String("backend", "local"))
	}

	sessionUC := identityusecase.NewSessionUseCase(sessionStore, jwtManager, cfg.Security.TokenTTL)
	catalogUC := catalogusecase.NewCatalogUseCase(restaurantRepo, sessionUC, publisher)
	workflowUC := reservationsusecase.NewWorkflowUseCase(reservationRepo, publisher)

	connectUC := realtimeusecase.NewConnectUseCase(jwtManager, &snapshotProvider{catalog: catalogUC, workflow: workflowUC})

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Validator = httputil.NewEchoValidator()

	sessionMiddleware := auth.RequireSession(jwtManager, sessionUC)

	api := e.Group("/api")
	identitytransport.NewSessionHandler(sessionUC).Register(api, sessionMiddleware)
	catalogtransport.NewCatalogHandler(catalogUC).Register(api, sessionMiddleware)
	reservationstransport.NewReservationHandler(workflowUC, &ownerResolver{catalog: catalogUC}).Register(api, sessionMiddleware)

	wsHandler := realtimetransport.NewWebsocketHandler(hub, connectUC, cfg.Websocket.DefaultEntity, cfg.Websocket.AllowedActions, cfg.Websocket.SendBuffer)
	e.GET("/ws/:entity/:restaurant/:token", wsHandler)
	e.GET("/ws/:entity/:restaurant", wsHandler)
	e.GET("/ws/notifications", realtimetransport.NewNotificationsWebsocketHandler(hub, jwtManager))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	slog.Info("shutting down")
	e.Close()
}

// snapshotProvider serves the initial websocket payload from the use cases.
type snapshotProvider struct {
	catalog  *catalogusecase.CatalogUseCase
	workflow *reservationsusecase.WorkflowUseCase
}

func (p *snapshotProvider) Snapshot(ctx context.Context, entity, restaurantID string) (any, error) {
	switch entity {
	case "reservations":
		return p.workflow.ListForRestaurant(ctx, restaurantID)
	case "restaurants":
		restaurant, err := p.catalog.Get(ctx, restaurantID)
		if err != nil {
			if errors.Is(err, catalogport.ErrNotFound) {
				return nil, realtimeport.ErrSnapshotNotFound
			}
			return nil, err
		}
		return restaurant, nil
	default:
		return nil, realtimeport.ErrSnapshotUnsupported
	}
}

// ownerResolver maps an identity to the restaurant it administers.
type ownerResolver struct {
	catalog *catalogusecase.CatalogUseCase
}

func (r *ownerResolver) RestaurantFor(ctx context.Context, userID string) (string, error) {
	restaurant, err := r.catalog.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, catalogport.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return restaurant.ID, nil
}
