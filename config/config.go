package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/rentride/car-rental-api/models"
)

// Config holds the project config values
type Config struct {
	Port              string
	BaseURL           string
	DataDir           string
	URL               string // mongo URI; empty selects the file store
	DatabaseName      string
	JWTSecret         string
	SendgridKey       string
	FromEmail         string
	SupportEmail      string
	AdminEmail        string
	AdminPasswordHash string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Port:              os.Getenv("PORT"),
		BaseURL:           os.Getenv("BASE_URL"),
		DataDir:           envOr("DATA_DIR", "data"),
		URL:               os.Getenv("DB_URI"),
		DatabaseName:      envOr("DB_NAME", "rentride"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SendgridKey:       os.Getenv("SENDGRID_API_KEY"),
		FromEmail:         envOr("FROM_EMAIL", "no-reply@rentride.example"),
		SupportEmail:      os.Getenv("SUPPORT_EMAIL"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: err.Error()},
	})
	w.Write(b)
}
