package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Admin       AdminConfig
	Square      SquareConfig
	Mail        MailConfig
	Reservation ReservationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	// 管理画面パスワードの bcrypt ハッシュ
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type SquareConfig struct {
	AccessToken     string `envconfig:"SQUARE_ACCESS_TOKEN" required:"true"`
	LocationID      string `envconfig:"SQUARE_LOCATION_ID" required:"true"`
	Environment     string `envconfig:"SQUARE_ENV" default:"sandbox"`
	WebhookSignKey  string `envconfig:"SQUARE_WEBHOOK_SIGNATURE_KEY" required:"true"`
	NotificationURL string `envconfig:"SQUARE_NOTIFICATION_URL" required:"true"`
	Currency        string `envconfig:"SQUARE_CURRENCY" default:"JPY"`
}

type MailConfig struct {
	SMTPHost      string `envconfig:"MAIL_SMTP_HOST" required:"true"`
	SMTPPort      int    `envconfig:"MAIL_SMTP_PORT" default:"587"`
	Username      string `envconfig:"MAIL_USERNAME" required:"true"`
	Password      string `envconfig:"MAIL_PASSWORD" required:"true"`
	From          string `envconfig:"MAIL_FROM" required:"true"`
	MyPageBaseURL string `envconfig:"MAIL_MYPAGE_BASE_URL" required:"true"`
}

type ReservationConfig struct {
	// 予約クリティカルセクションのロック待ち上限
	LockWait time.Duration `envconfig:"RESERVATION_LOCK_WAIT" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "12h",
		},
		Admin: AdminConfig{
			// "admin-password"
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		},
		Square: SquareConfig{
			AccessToken:     "test-token",
			LocationID:      "test-location",
			Environment:     "sandbox",
			WebhookSignKey:  "test-signature-key",
			NotificationURL: "https://example.com/api/webhooks/square",
			Currency:        "JPY",
		},
		Mail: MailConfig{
			SMTPHost:      "localhost",
			SMTPPort:      1025,
			Username:      "test",
			Password:      "test",
			From:          "seminar@example.com",
			MyPageBaseURL: "https://example.com/mypage",
		},
		Reservation: ReservationConfig{
			LockWait: 2 * time.Second,
		},
	}
}
