package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/api/option"

	"github.com/nvbf/tournament-tracker/pkg/auth"
	"github.com/nvbf/tournament-tracker/pkg/config"
	"github.com/nvbf/tournament-tracker/pkg/league"
	"github.com/nvbf/tournament-tracker/pkg/ratelimit"
	timehelper "github.com/nvbf/tournament-tracker/pkg/timeHelper"
	tournaments "github.com/nvbf/tournament-tracker/repos/tournaments"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var clientOptions []option.ClientOption
	if cfg.FirebaseCredentialsJSON != "" {
		clientOptions = append(clientOptions, option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)))
	}

	var firebaseApp *firebase.App
	if cfg.NeedsFirebase() {
		firebaseApp, err = firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, clientOptions...)
		if err != nil {
			logger.WithError(err).Fatal("error initializing firebase app")
		}
	}

	store, closeStore, err := openStore(ctx, cfg, clientOptions, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open tournament store")
	}
	defer closeStore()

	var (
		verifier auth.Verifier
		issuer   *auth.JWT
	)
	switch cfg.AuthProvider {
	case config.AuthFirebase:
		verifier, err = auth.NewFirebaseVerifier(ctx, firebaseApp)
	default:
		issuer, err = auth.NewJWT(cfg.JWTSecret, timehelper.System())
		verifier = issuer
	}
	if err != nil {
		logger.WithError(err).Fatal("failed to set up authentication")
	}

	authLimiter := ratelimit.New(20, 15*time.Minute)
	apiLimiter := ratelimit.New(60, time.Minute)
	go authLimiter.Run(ctx, time.Minute)
	go apiLimiter.Run(ctx, time.Minute)

	opts := routerOptions{
		Store:       store,
		Engine:      league.NewEngine(timehelper.System()),
		Verifier:    verifier,
		CORSHosts:   cfg.CORSHosts,
		StaticDir:   cfg.StaticDir,
		AuthLimiter: authLimiter,
		APILimiter:  apiLimiter,
		Logger:      logger,
	}
	if issuer != nil {
		opts.Issuer = issuer
	}
	router := newRouter(opts)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Port, "store": cfg.StoreDriver, "auth": cfg.AuthProvider}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}
}

func openStore(ctx context.Context, cfg *config.Config, clientOptions []option.ClientOption, logger *logrus.Logger) (tournaments.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreFirestore:
		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, clientOptions...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		return tournaments.NewFirestoreStore(firestoreClient, logger), func() { firestoreClient.Close() }, nil

	case config.StoreMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
		}
		if err := tournaments.Migrate(client, cfg.MongoDatabase, logger); err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.WithError(err).Error("failed to disconnect from MongoDB")
			}
		}
		return tournaments.NewMongoStore(client.Database(cfg.MongoDatabase), logger), closeFn, nil

	default:
		logger.Warn("using in-memory store, data is lost on restart")
		return tournaments.NewMemoryStore(), func() {}, nil
	}
}
