package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Database DatabaseConfig `env:",prefix=DB_"`
	Reward   RewardConfig   `env:",prefix=REWARD_"`
	Sweep    SweepConfig    `env:",prefix=SWEEP_"`
	FCM      FCMConfig      `env:",prefix=FCM_"`
	Mailing  MailingConfig  `env:",prefix=MAILCHIMP_"`
	JWT      JWTConfig      `env:",prefix=JWT_"`
}

type ServerConfig struct {
	Port string `env:"PORT,default=5000"`
	Host string `env:"HOST,default=0.0.0.0"`
	// PublicOrigin is the externally reachable base URL embedded in join QR
	// codes and install links.
	PublicOrigin string `env:"PUBLIC_ORIGIN,default=http://localhost:5000"`
}

type DatabaseConfig struct {
	Host     string `env:"HOST,default=localhost"`
	Port     string `env:"PORT,default=5432"`
	User     string `env:"USER,default=postgres"`
	Password string `env:"PASSWORD,default=postgres"`
	Name     string `env:"NAME,default=loyalty"`
	SSLMode  string `env:"SSL_MODE,default=disable"`
}

// RewardConfig pins down the accrual policy constants. The stamp threshold is
// deployment configuration, not a literal in the evaluator.
type RewardConfig struct {
	// StampThreshold is the stamp count at which a free-item reward fires.
	StampThreshold int `env:"STAMP_THRESHOLD,default=4"`
	// AccrueUntyped controls whether customers with no reward type assigned
	// still accrue one point per scan. Off: the scan is logged but points stay.
	AccrueUntyped bool `env:"ACCRUE_UNTYPED,default=false"`
	// DefaultWalletRewardType is assigned to customers auto-created by a
	// wallet-serial scan.
	DefaultWalletRewardType string `env:"DEFAULT_WALLET_TYPE,default=stamps"`
}

type SweepConfig struct {
	// Hour of day (0-23, server local time) the daily sweep runs.
	Hour int `env:"HOUR,default=10"`
	// MilestoneThreshold is the point total that triggers the loyalty push.
	MilestoneThreshold int `env:"MILESTONE_THRESHOLD,default=20"`
	// InactivityWindow is how long a customer may stay away before the
	// "we miss you" push.
	InactivityWindow time.Duration `env:"INACTIVITY_WINDOW,default=1080h"` // 45 days
	BatchSize        int           `env:"BATCH_SIZE,default=200"`
}

type FCMConfig struct {
	ProjectID       string `env:"PROJECT_ID"`
	CredentialsFile string `env:"CREDENTIALS_FILE,default=config/firebase-service-account.json"`
	// SendTimeout bounds a single push call; a hung provider must not stall
	// the caller.
	SendTimeout time.Duration `env:"SEND_TIMEOUT,default=5s"`
	// SendsPerSecond caps outbound push throughput.
	SendsPerSecond float64 `env:"SENDS_PER_SECOND,default=50"`
}

type MailingConfig struct {
	APIKey       string        `env:"API_KEY"`
	ServerPrefix string        `env:"SERVER_PREFIX,default=us21"`
	ListID       string        `env:"LIST_ID"`
	SyncTimeout  time.Duration `env:"SYNC_TIMEOUT,default=5s"`
}

type JWTConfig struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL,default=24h"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
