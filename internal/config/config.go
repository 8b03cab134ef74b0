package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config menampung semua setting dari environment.
// Integrasi opsional mati kalau setting-nya kosong.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// file | memory | sql
	SessionStore   string `env:"SESSION_STORE" envDefault:"file"`
	SessionFileDir string `env:"SESSION_FILE_DIR" envDefault:"."`
	DBDriver       string `env:"DB_DRIVER" envDefault:"mysql"`
	DBDSN          string `env:"DB_DSN"`

	FCMCredentialsFile string `env:"FCM_CREDENTIALS_FILE"`
	FCMDeviceToken     string `env:"FCM_DEVICE_TOKEN"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"appointments"`

	ReportsBucket string `env:"REPORTS_BUCKET"`

	MidtransServerKey  string `env:"MIDTRANS_SERVER_KEY"`
	MidtransProduction bool   `env:"MIDTRANS_PRODUCTION" envDefault:"false"`

	TipSchedule string `env:"TIP_SCHEDULE" envDefault:"0 8 * * *"`

	// Balasan triage juga dibacakan (log narrator)
	NarrateReplies bool `env:"NARRATE_REPLIES" envDefault:"false"`
}

// Load membaca .env (kalau ada) lalu parse environment ke Config
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	return Parse()
}

// Parse hanya membaca environment proses, tanpa .env
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
