package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/valentinalvarez/ecommerce-accounts/application/cart"
	productapp "github.com/valentinalvarez/ecommerce-accounts/application/product"
	userapp "github.com/valentinalvarez/ecommerce-accounts/application/user"
	"github.com/valentinalvarez/ecommerce-accounts/cmd/config"
	redisclient "github.com/valentinalvarez/ecommerce-accounts/cmd/redis"
	_ "github.com/valentinalvarez/ecommerce-accounts/docs"
	"github.com/valentinalvarez/ecommerce-accounts/dto"
	cartRepo "github.com/valentinalvarez/ecommerce-accounts/repository/cart"
	productRepo "github.com/valentinalvarez/ecommerce-accounts/repository/product"
	redisRepo "github.com/valentinalvarez/ecommerce-accounts/repository/redis"
	txRepo "github.com/valentinalvarez/ecommerce-accounts/repository/tx"
	userRepo "github.com/valentinalvarez/ecommerce-accounts/repository/user"
	"github.com/valentinalvarez/ecommerce-accounts/thirdparty/rabbitmq"
	"github.com/valentinalvarez/ecommerce-accounts/transport"
	"github.com/valentinalvarez/ecommerce-accounts/utils/hash"
	"github.com/valentinalvarez/ecommerce-accounts/utils/logger"
	"go.uber.org/zap"
)

// @title E-COMMERCE ACCOUNTS API
// @version 1.0
// @description User account, catalog and cart API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ for the password reset mail flow
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq publisher, reset emails disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, sendResetEmail)
	if err != nil {
		logger.Error("err connect rabbitmq consumer", zap.Error(err))
	} else {
		if err := consumer.Start(context.Background()); err != nil {
			logger.Error("err start rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()
	}

	// Account transformation pipeline
	transformerOpts := []dto.Option{}
	if len(cfg.Email.AllowedProviders) > 0 {
		transformerOpts = append(transformerOpts, dto.WithEmailProviders(cfg.Email.AllowedProviders))
	}
	transformer := dto.New(hash.New(), transformerOpts...)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	ProductRepo := productRepo.NewProductRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, transformer, UserRepo, RedisRepo, publisher)
	ProductApp := productapp.NewProductApp(ProductRepo)
	CartApp := cartapp.NewCartApp(TxRepo, CartRepo, ProductRepo)

	httpTransport := transport.NewTransport(UserApp, ProductApp, CartApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

// sendResetEmail is the consumer-side delivery hook. Mail transport is not
// wired, delivery is a structured log entry.
func sendResetEmail(ctx context.Context, msg rabbitmq.PasswordResetMessage) error {
	logger.Info("password reset email",
		zap.String("email", msg.Email),
		zap.String("first_name", msg.FirstName),
		zap.Time("expires_at", msg.ExpiresAt),
	)
	return nil
}
