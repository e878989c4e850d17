package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/cleaner-api/api"
	api_i "github.com/beka-birhanu/cleaner-api/api/i"
	"github.com/beka-birhanu/cleaner-api/api/identity"
	robotapi "github.com/beka-birhanu/cleaner-api/api/robot"
	"github.com/beka-birhanu/cleaner-api/config"
	"github.com/beka-birhanu/cleaner-api/infrastruture/cache"
	"github.com/beka-birhanu/cleaner-api/infrastruture/repo"
	"github.com/beka-birhanu/cleaner-api/infrastruture/sortedstorage"
	"github.com/beka-birhanu/cleaner-api/infrastruture/telemetry"
	"github.com/beka-birhanu/cleaner-api/infrastruture/token"
	"github.com/beka-birhanu/cleaner-api/logger"
	"github.com/beka-birhanu/cleaner-api/service"
	"github.com/beka-birhanu/cleaner-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recentTTLSeconds = 7 * 24 * 60 * 60

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	sqliteRepo      *repo.SQLiteReportRepo
	userRepo        *repo.UserRepo
	reportRepo      i.ReportRepo
	cleaningConfig  service.CleaningConfig
	cleaner         i.Cleaner
	robotController api_i.Controller
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	authController  api_i.Controller
	router          *api.Router
	shutdownTracing func(context.Context) error
	appLogger       logger.Logger
)

// newLogger creates a component logger or exits.
func newLogger(prefix, color string) logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initTracing(ctx context.Context) {
	if config.Envs.OTLPEndpoint == "" {
		appLogger.Info("Tracing disabled")
		return
	}

	var err error
	shutdownTracing, err = telemetry.InitTracer(ctx, config.Envs.OTLPEndpoint, config.Envs.OTLPServiceName)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Setting up OTLP tracer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Tracing initialized")
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initUserRepo(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("User repository initialized")
}

func initReportRepo(client *mongo.Client) {
	if config.Envs.ReportStore == "sqlite" {
		var err error
		sqliteRepo, err = repo.OpenSQLiteReportRepo(config.Envs.SQLitePath)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Opening SQLite report store: %v", err))
			os.Exit(1)
		}
		reportRepo = sqliteRepo
		appLogger.Info(fmt.Sprintf("Report repository initialized (sqlite: %s)", config.Envs.SQLitePath))
		return
	}

	reportRepo = repo.NewReportRepo(client, config.Envs.DBName, "executions")
	appLogger.Info("Report repository initialized (mongo)")
}

// initRedis connects the report cache and the recent executions index.
// Both are skipped when no Redis address is configured.
func initRedis(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR not set, report cache and recent index disabled")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	cleaningConfig.Cache = cache.NewRedisReportCache(redisClient, config.Envs.ReportCacheTTL)
	cleaningConfig.Recent = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.RecentCapacity, recentTTLSeconds)
	appLogger.Info("Connected to Redis")
}

func initCleaning() {
	cleaningConfig.Robot = service.NewRobot(newLogger("ROBOT", config.ColorCyan))
	cleaningConfig.Repo = reportRepo
	cleaningConfig.Logger = newLogger("CLEANING", config.ColorMagenta)

	var err error
	cleaner, err = service.NewCleaning(cleaningConfig)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating cleaning service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Cleaning service initialized")
}

func initRobotController() {
	var err error
	robotController, err = robotapi.NewRobotServer(cleaner, config.Envs.MaxCommands)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating robot controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Robot controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	serviceName := ""
	if shutdownTracing != nil {
		serviceName = config.Envs.OTLPServiceName
	}

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		ServiceName:             serviceName,
		Controllers:             []api_i.Controller{authController, robotController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	appLogger = newLogger("APP", config.ColorGreen)
	gin.SetMode(config.Envs.GinMode)

	initTracing(ctx)
	defer func() {
		if shutdownTracing != nil {
			_ = shutdownTracing(context.Background())
		}
	}()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initUserRepo(ctx, mongoClient)
	initReportRepo(mongoClient)
	defer func() {
		if sqliteRepo != nil {
			_ = sqliteRepo.Close()
		}
	}()

	initRedis(ctx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initCleaning()
	initRobotController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
