package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App       *App
		DB        *DB
		HTTP      *HTTP
		Redis     *Redis
		Storage   *Storage
		Kafka     *Kafka
		Generator *Generator
	}

	App struct {
		Name string
		Env  string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins []string
		URL            string
	}

	// Redis caching is disabled when Address is empty.
	Redis struct {
		Address  string
		Password string
		TTL      time.Duration
	}

	Storage struct {
		Driver        string
		Seed          bool
		MigrationsDir string
	}

	Kafka struct {
		Brokers       []string
		Topic         string
		GroupID       string
		MaxDeliveries int
		Enabled       bool
	}

	Generator struct {
		Port         string
		Schedule     string
		BatchSize    int
		PayloadLimit int
		WaitSeconds  int
		MaxBikeID    int
		MaxRenterID  int
	}
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		// a missing .env is fine, the process environment still applies
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getString("APP_NAME", "bike-rental"),
		Env:  os.Getenv("APP_ENV"),
	}

	db := &DB{
		Host:     getString("DB_HOST", "localhost"),
		Port:     getString("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getString("DB_NAME", "bike_rental"),
	}

	http := &HTTP{
		Port:           getString("HTTP_PORT", "8080"),
		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"*"}),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      getDuration("REDIS_TTL", 15*time.Minute),
	}

	storage := &Storage{
		Driver:        getString("STORAGE_DRIVER", DriverPostgres),
		Seed:          getBool("STORAGE_SEED", false),
		MigrationsDir: getString("MIGRATIONS_DIR", "./internal/adapter/postgres/migrations"),
	}

	kafka := &Kafka{
		Brokers:       getList("KAFKA_BROKERS", []string{"localhost:9092"}),
		Topic:         getString("KAFKA_TOPIC", "bike-rentals"),
		GroupID:       getString("KAFKA_GROUP_ID", "bike-rental-api"),
		MaxDeliveries: getInt("KAFKA_MAX_DELIVERIES", 5),
		Enabled:       getBool("KAFKA_ENABLED", true),
	}

	generator := &Generator{
		Port:         getString("GENERATOR_PORT", "8081"),
		Schedule:     os.Getenv("GENERATOR_SCHEDULE"),
		BatchSize:    getInt("GENERATOR_BATCH_SIZE", 10),
		PayloadLimit: getInt("GENERATOR_PAYLOAD_LIMIT", 50),
		WaitSeconds:  getInt("GENERATOR_WAIT_SECONDS", 1),
		MaxBikeID:    getInt("GENERATOR_MAX_BIKE_ID", 10),
		MaxRenterID:  getInt("GENERATOR_MAX_RENTER_ID", 20),
	}

	return &Container{
		App:       app,
		DB:        db,
		HTTP:      http,
		Redis:     redis,
		Storage:   storage,
		Kafka:     kafka,
		Generator: generator,
	}, nil
}

func (h *HTTP) PortInt() int {
	port, err := strconv.Atoi(h.Port)
	if err != nil {
		return 8080
	}
	return port
}

func (g *Generator) Wait() time.Duration {
	return time.Duration(g.WaitSeconds) * time.Second
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
