package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string `validate:"required,oneof=local test dev prod"`
	HTTPServer HTTPServer
	GRPCServer GRPCServer
	Database   Database
	Prometheus Prometheus
	Redis      Redis
	Feed       Feed
	Session    Session
	Log        Log
}

type HTTPServer struct {
	Address         string
	Port            int `validate:"min=1,max=65535"`
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type GRPCServer struct {
	Address string
	Port    int `validate:"min=1,max=65535"`
}

type Database struct {
	Username string `validate:"required"`
	Password string
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	DbName   string `validate:"required"`
	Migrate  bool
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.DbName)
}

type Prometheus struct {
	Address string
	Port    int `validate:"min=1,max=65535"`
}

type Redis struct {
	Address  string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	Password string
	DB       int `validate:"min=0"`
	PoolSize int `validate:"min=1"`
}

type Feed struct {
	PaginationSize int `validate:"min=2,max=100"`
}

type Session struct {
	CookieName string        `validate:"required"`
	HashKey    string        `validate:"omitempty,min=32"`
	BlockKey   string        `validate:"omitempty,len=16|len=24|len=32"`
	Secure     bool
	TTL        time.Duration `validate:"min=1m"`
}

type Log struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.allowed_origins", []string{"*"})
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)
	v.SetDefault("http_server.shutdown_timeout", 30*time.Second)

	v.SetDefault("grpc_server.address", "0.0.0.0")
	v.SetDefault("grpc_server.port", 50055)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "studentoffice-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "studentoffice")
	v.SetDefault("database.migrate", true)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9105)

	v.SetDefault("redis.address", "redis")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("feed.pagination_size", 20)

	v.SetDefault("session.cookie_name", "auth_session")
	v.SetDefault("session.secure", true)
	v.SetDefault("session.ttl", 30*24*time.Hour)

	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
}

// legacyEnv keeps the variable names deployments already export.
var legacyEnv = map[string]string{
	"database.username":    "POSTGRES_USER",
	"database.password":    "POSTGRES_PASSWORD",
	"database.db_name":     "POSTGRES_DB",
	"database.host":        "POSTGRES_HOST",
	"database.port":        "POSTGRES_PORT",
	"feed.pagination_size": "PAGINATION_SIZE",
}

func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), legacy); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:         v.GetString("http_server.address"),
			Port:            v.GetInt("http_server.port"),
			AllowedOrigins:  v.GetStringSlice("http_server.allowed_origins"),
			ReadTimeout:     v.GetDuration("http_server.read_timeout"),
			WriteTimeout:    v.GetDuration("http_server.write_timeout"),
			ShutdownTimeout: v.GetDuration("http_server.shutdown_timeout"),
		},
		GRPCServer: GRPCServer{
			Address: v.GetString("grpc_server.address"),
			Port:    v.GetInt("grpc_server.port"),
		},
		Database: Database{
			Username: v.GetString("database.username"),
			Password: v.GetString("database.password"),
			Host:     v.GetString("database.host"),
			Port:     v.GetString("database.port"),
			DbName:   v.GetString("database.db_name"),
			Migrate:  v.GetBool("database.migrate"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Address:  v.GetString("redis.address"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		Feed: Feed{
			PaginationSize: v.GetInt("feed.pagination_size"),
		},
		Session: Session{
			CookieName: v.GetString("session.cookie_name"),
			HashKey:    v.GetString("session.hash_key"),
			BlockKey:   v.GetString("session.block_key"),
			Secure:     v.GetBool("session.secure"),
			TTL:        v.GetDuration("session.ttl"),
		},
		Log: Log{
			Path:       v.GetString("log.path"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
			Compress:   v.GetBool("log.compress"),
		},
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func MustLoad() *Config {
	config, err := Load("./config")
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return config
}
