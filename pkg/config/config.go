package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "KISANSETU"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Config is the immutable process configuration. It is loaded once in main
// and handed to each component at construction time.
type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Razorpay      RazorpayConfig
	Media         MediaConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KISANSETU_APP_ENV" required:"true"`
	Port         string `envconfig:"KISANSETU_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"KISANSETU_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KISANSETU_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KISANSETU_DB_DSN"`
	Driver string `envconfig:"KISANSETU_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"KISANSETU_DB_HOST"`
	Port     int    `envconfig:"KISANSETU_DB_PORT" default:"5432"`
	User     string `envconfig:"KISANSETU_DB_USER"`
	Password string `envconfig:"KISANSETU_DB_PASSWORD"`
	Name     string `envconfig:"KISANSETU_DB_NAME"`
	SSLMode  string `envconfig:"KISANSETU_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"KISANSETU_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KISANSETU_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KISANSETU_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KISANSETU_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	for env, value := range map[string]string{
		"KISANSETU_DB_HOST": db.Host,
		"KISANSETU_DB_USER": db.User,
		"KISANSETU_DB_NAME": db.Name,
	} {
		if value == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either KISANSETU_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"KISANSETU_REDIS_URL"`
	Address      string        `envconfig:"KISANSETU_REDIS_ADDR"`
	Password     string        `envconfig:"KISANSETU_REDIS_PASSWORD"`
	DB           int           `envconfig:"KISANSETU_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KISANSETU_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KISANSETU_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KISANSETU_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KISANSETU_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KISANSETU_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"KISANSETU_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KISANSETU_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"KISANSETU_JWT_EXPIRATION_MINUTES" default:"120"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KISANSETU_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KISANSETU_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KISANSETU_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KISANSETU_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KISANSETU_ARGON_KEY_LEN" default:"32"`
}

// RazorpayConfig holds the payment gateway credentials. KeySecret doubles as
// the HMAC key for callback signature verification.
type RazorpayConfig struct {
	KeyID     string `envconfig:"KISANSETU_RAZORPAY_KEY_ID" required:"true"`
	KeySecret string `envconfig:"KISANSETU_RAZORPAY_KEY_SECRET" required:"true"`
}

type MediaConfig struct {
	Dir         string `envconfig:"KISANSETU_MEDIA_DIR" default:"wwwroot/Images"`
	PublicPath  string `envconfig:"KISANSETU_MEDIA_PUBLIC_PATH" default:"/Images"`
	BaseURL     string `envconfig:"KISANSETU_MEDIA_BASE_URL"`
	MaxUploadMB int    `envconfig:"KISANSETU_MEDIA_MAX_UPLOAD_MB" default:"10"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"KISANSETU_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"KISANSETU_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"KISANSETU_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"KISANSETU_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"KISANSETU_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"KISANSETU_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KISANSETU_AUTO_MIGRATE" default:"false"`
}
