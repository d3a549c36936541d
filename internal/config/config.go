package config

import (
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	LogLevel string
	Audit    AuditConfig
	S3       S3Config
	Export   ExportConfig
}

// AuditConfig controls the inspection pipeline
type AuditConfig struct {
	Kind        string // all, images, video, audio
	TopN        int
	MinSizeKB   int
	Dedupe      bool
	Exif        bool
	OrphansOnly bool
}

// S3Config represents S3 connection configuration
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Prefix    string
}

// ExportConfig controls the export command
type ExportConfig struct {
	Concurrency  int
	DryRun       bool
	Resume       bool
	JournalPath  string
	SkipExisting bool
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		LogLevel: "info",
		Audit: AuditConfig{
			Kind: "all",
		},
		S3: S3Config{
			Region: "us-east-1",
			UseSSL: true,
		},
		Export: ExportConfig{
			Concurrency:  4,
			Resume:       true,
			SkipExisting: true,
		},
	}
}

// LoadEnv overlays values from PPTX_AUDIT_* environment variables onto the
// configuration. Flags set on the command line still win because cobra
// applies them after this runs.
func (c *Config) LoadEnv() {
	v := viper.New()
	v.SetEnvPrefix("PPTX_AUDIT")
	v.AutomaticEnv()

	mappings := []struct {
		key string
		dst *string
	}{
		{"S3_ENDPOINT", &c.S3.Endpoint},
		{"S3_REGION", &c.S3.Region},
		{"S3_BUCKET", &c.S3.Bucket},
		{"S3_ACCESS_KEY", &c.S3.AccessKey},
		{"S3_SECRET_KEY", &c.S3.SecretKey},
		{"S3_PREFIX", &c.S3.Prefix},
		{"LOG_LEVEL", &c.LogLevel},
	}
	for _, m := range mappings {
		if val := v.GetString(m.key); val != "" {
			*m.dst = val
		}
	}

	if v.IsSet("S3_USE_SSL") {
		c.S3.UseSSL = v.GetBool("S3_USE_SSL")
	}
}
