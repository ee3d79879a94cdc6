package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultAdminPassword is the documented fallback when ADMIN_PASSWORD is unset.
	DefaultAdminPassword = "admin123"

	// MaxUploadBytes caps accepted image uploads at 5 MiB.
	MaxUploadBytes = 5 << 20
)

// Config carries everything the service reads from the environment.
type Config struct {
	Addr            string
	DatabaseDSN     string
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	PublicURL       string
	SessionSecret   string
	AdminPassword   string
	MaxImageWidth   int
	StaticDir       string
}

// Load binds the process environment into a Config. Defaults keep the
// service bootable with nothing set: it then runs in degraded display
// mode and serves placeholder catalog content.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("ACCOUNT_ID", "")
	v.SetDefault("ACCESS_KEY_ID", "")
	v.SetDefault("ACCESS_KEY_SECRET", "")
	v.SetDefault("BUCKET_NAME", "products")
	v.SetDefault("PUBLIC_URL", "")
	v.SetDefault("SESSION_SECRET", "storefront-session-secret")
	v.SetDefault("ADMIN_PASSWORD", DefaultAdminPassword)
	v.SetDefault("MAX_IMAGE_WIDTH", 1600)
	v.SetDefault("STATIC_DIR", "./web/static")

	return &Config{
		Addr:            v.GetString("ADDR"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		AccountID:       v.GetString("ACCOUNT_ID"),
		AccessKeyID:     v.GetString("ACCESS_KEY_ID"),
		AccessKeySecret: v.GetString("ACCESS_KEY_SECRET"),
		BucketName:      v.GetString("BUCKET_NAME"),
		PublicURL:       v.GetString("PUBLIC_URL"),
		SessionSecret:   v.GetString("SESSION_SECRET"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD"),
		MaxImageWidth:   v.GetInt("MAX_IMAGE_WIDTH"),
		StaticDir:       v.GetString("STATIC_DIR"),
	}
}

// Configured reports whether real backend credentials are present.
// Placeholder values count as unconfigured so a fresh checkout renders
// the built-in demo catalog instead of failing hard.
func (c *Config) Configured() bool {
	if c.DatabaseDSN == "" || strings.Contains(c.DatabaseDSN, "placeholder") {
		return false
	}
	if c.AccessKeyID == "" || strings.Contains(c.AccessKeyID, "placeholder") {
		return false
	}
	return true
}
