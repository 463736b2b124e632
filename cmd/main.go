package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/unrolled/secure"

	"github.com/skillswap-in/skillswap-server/internal/handlers"
	"github.com/skillswap-in/skillswap-server/internal/jwt"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/mailer"
	"github.com/skillswap-in/skillswap-server/internal/middlewares"
	"github.com/skillswap-in/skillswap-server/internal/repositories"
	"github.com/skillswap-in/skillswap-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/skillswap-in/skillswap-server/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// resetTokenTTL bounds how long a mailed password reset link stays valid.
const resetTokenTTL = 15 * time.Minute

type config struct {
	// Application
	AppHost   string
	AppPort   string
	LogLevel  string
	StaticDir string
	ClientURL string

	// PostgreSQL
	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	// Redis
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// Kafka; events are disabled when no brokers are configured
	KafkaBrokers string
	KafkaTopic   string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Token signing
	JWTSecretKey   string
	ResetSecretKey string
}

// @title SkillSwap API
// @version 1.0.0
// @description Skill-exchange matchmaking service: profiles, matching, connect requests, and testimonials
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// full application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		AppHost:        getEnv("APP_HOST", "localhost"),
		AppPort:        getEnv("APP_PORT", "5000"),
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		StaticDir:      getEnv("STATIC_DIR", "public"),
		ClientURL:      getEnv("CLIENT_URL", "http://localhost:5000"),
		PgHost:         getEnv("POSTGRES_HOST", "localhost"),
		PgUser:         getEnv("POSTGRES_USER", "user"),
		PgPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PgDB:           getEnv("POSTGRES_DB", "skillswap"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:   getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "skillswap.connect.events"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		ResetSecretKey: getEnv("RESET_SECRET_KEY", "my_reset_secret_key"),
	}
	cfg.SMTPFrom = getEnv("SMTP_FROM", cfg.SMTPUsername)

	var err error
	if cfg.PgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getEnvInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, mailer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for connect lifecycle events
	var connectEvents services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		connectEvents = w
		logger.Log.Infof("Kafka connect events enabled, topic %s", cfg.KafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, connect events disabled")
	}

	// Token signing: session tokens never expire, reset tokens do.
	sessionTokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey))
	resetTokens := jwt.New(jwt.WithSecretKey(cfg.ResetSecretKey), jwt.WithExpiration(resetTokenTTL))

	resetMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	// Initialize repositories
	authReadRepo := repositories.NewAuthUserReadRepository(db)
	authWriteRepo := repositories.NewAuthUserWriteRepository(db)
	profileReadRepo := repositories.NewSkillProfileReadRepository(db)
	profileWriteRepo := repositories.NewSkillProfileWriteRepository(db)
	connectReadRepo := repositories.NewConnectRequestReadRepository(db)
	connectWriteRepo := repositories.NewConnectRequestWriteRepository(db)
	testimonialReadRepo := repositories.NewTestimonialReadRepository(db)
	testimonialWriteRepo := repositories.NewTestimonialWriteRepository(db)
	loginAttemptRepo := repositories.NewLoginAttemptRepository(rdb, 15*time.Minute)

	// Initialize services
	authService := services.NewAuthService(authReadRepo, authWriteRepo, sessionTokens, resetTokens, resetMailer, cfg.ClientURL)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo)
	connectService := services.NewConnectService(connectReadRepo, connectWriteRepo, connectEvents)
	testimonialService := services.NewTestimonialService(testimonialReadRepo, testimonialWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	resetRequestHandler := handlers.NewResetRequestHandler(authService)
	resetPasswordHandler := handlers.NewResetPasswordHandler(authService)
	profileCreateHandler := handlers.NewProfileCreateHandler(profileService)
	profileUpdateHandler := handlers.NewProfileUpdateHandler(profileService)
	profileDeleteHandler := handlers.NewProfileDeleteHandler(profileService)
	matchHandler := handlers.NewMatchHandler(profileService)
	listProfilesHandler := handlers.NewListProfilesHandler(profileService)
	connectSendHandler := handlers.NewConnectSendHandler(connectService)
	connectReceivedHandler := handlers.NewConnectReceivedHandler(connectService)
	connectRespondHandler := handlers.NewConnectRespondHandler(connectService)
	testimonialAddHandler := handlers.NewTestimonialAddHandler(testimonialService)
	testimonialListHandler := handlers.NewTestimonialListHandler(testimonialService)

	// Setup router
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(secureMiddleware.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	authMiddleware := middlewares.AuthMiddleware(sessionTokens)
	loginRateLimit := middlewares.LoginRateLimitMiddleware(loginAttemptRepo)

	r.Route("/api", func(api chi.Router) {
		api.Post("/register", registerHandler)
		api.With(loginRateLimit).Post("/login", loginHandler)
		api.Post("/reset-request", resetRequestHandler)
		api.Post("/reset-password", resetPasswordHandler)

		api.Post("/users", profileCreateHandler)
		api.Get("/users/match/all", listProfilesHandler)
		api.Get("/users/match/{skill}", matchHandler)

		api.Group(func(protected chi.Router) {
			protected.Use(authMiddleware)
			protected.Put("/users/{email}", profileUpdateHandler)
			protected.Delete("/users/{email}", profileDeleteHandler)
		})

		api.Post("/connect", connectSendHandler)
		api.Get("/connect/received/{email}", connectReceivedHandler)
		api.Put("/connect/respond/{id}", connectRespondHandler)

		api.Post("/testimonials", testimonialAddHandler)
		api.Get("/testimonials", testimonialListHandler)

		api.NotFound(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(handlers.MessageResponse{Msg: "API route not found"})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Frontend assets
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
