package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Upload    UploadConfig
	Mail      MailConfig
	Jobs      JobsConfig
	Complaint ComplaintConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Driver   string // postgres, mysql or sqlite
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Seed     bool
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
	RequireToken bool
}

type UploadConfig struct {
	Backend   string // local, cloudinary or s3
	Dir       string
	URLPrefix string
	MaxBytes  int64

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Region        string
	S3UseSSL        bool
	S3PublicBaseURL string
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ShopName string
}

// Enabled reports whether an SMTP server is configured
func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

type JobsConfig struct {
	OverdueCron string
}

type ComplaintConfig struct {
	EstimatedCompletion time.Duration
}

var AppConfig *Config

// Load reads the configuration from the environment and stores it in AppConfig
func Load() *Config {
	AppConfig = &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "3001"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			URL:      getEnv("DB_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "laptop_service_center"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			Seed:     getEnvAsBool("DB_SEED", false),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "change-this-secret-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 12),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", "admin123"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			RequireToken: getEnvAsBool("ADMIN_REQUIRE_TOKEN", false),
		},
		Upload: UploadConfig{
			Backend:   strings.ToLower(getEnv("UPLOAD_BACKEND", "local")),
			Dir:       getEnv("UPLOAD_DIR", "uploads"),
			URLPrefix: getEnv("UPLOAD_URL_PREFIX", "/uploads"),
			MaxBytes:  int64(getEnvAsInt("UPLOAD_MAX_BYTES", 5*1024*1024)),

			CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "complaints"),

			S3Endpoint:      getEnv("S3_ENDPOINT", "localhost:9000"),
			S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
			S3Bucket:        getEnv("S3_BUCKET", "complaint-images"),
			S3Region:        getEnv("S3_REGION", "us-east-1"),
			S3UseSSL:        getEnvAsBool("S3_USE_SSL", false),
			S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", "no-reply@techfix.local"),
			ShopName: getEnv("SHOP_NAME", "TechFix Laptop Service Center"),
		},
		Jobs: JobsConfig{
			OverdueCron: getEnv("OVERDUE_CRON", "0 9 * * *"),
		},
		Complaint: ComplaintConfig{
			EstimatedCompletion: time.Duration(getEnvAsInt("ESTIMATED_COMPLETION_DAYS", 3)) * 24 * time.Hour,
		},
	}
	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
