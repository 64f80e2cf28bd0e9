package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Mail       MailConfig       `yaml:"mail"`
	JWT        JWTConfig        `yaml:"jwt"`
	Firebase   FirebaseConfig   `yaml:"firebase"`
	Storage    StorageConfig    `yaml:"storage"`
	Membership MembershipConfig `yaml:"membership"`
	Forum      ForumConfig      `yaml:"forum"`
	Sheets     SheetsConfig     `yaml:"sheets"`
	Log        LogConfig        `yaml:"log"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
}

// ServerConfig contains HTTP and gRPC health server settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	GRPCPort int    `yaml:"grpc_port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// MailConfig contains SendGrid and notification settings
type MailConfig struct {
	SendGridAPIKey    string `yaml:"sendgrid_api_key"`
	From              string `yaml:"from"`
	FromName          string `yaml:"from_name"`
	OperationsMailbox string `yaml:"operations_mailbox"` // receives application and interview-choice summaries
	MeetingURL        string `yaml:"meeting_url"`
	AppBaseURL        string `yaml:"app_base_url"`
}

// JWTConfig contains session token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// FirebaseConfig contains identity provider and bucket credentials
type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

// StorageConfig contains object storage settings
type StorageConfig struct {
	Type                string `yaml:"type"`       // "mock" or "firebase"
	UploadDir           string `yaml:"upload_dir"` // For mock storage
	BaseURL             string `yaml:"base_url"`   // Public base URL for mock storage
	ForumBucket         string `yaml:"forum_bucket"`
	ProfileBucket       string `yaml:"profile_bucket"`
	MaxForumImageMB     int64  `yaml:"max_forum_image_mb"`
	MaxProfileImageMB   int64  `yaml:"max_profile_image_mb"`
	ProfileCacheControl string `yaml:"profile_cache_control"`
}

// MembershipConfig contains member code partition bases
type MembershipConfig struct {
	OfficerCodeBase int64 `yaml:"officer_code_base"`
	MemberCodeBase  int64 `yaml:"member_code_base"`
}

// ForumConfig contains forum posting rules
type ForumConfig struct {
	FreeCategory        string `yaml:"free_category"`
	NonMemberDailyLimit int    `yaml:"non_member_daily_limit"`
	DefaultPageSize     int    `yaml:"default_page_size"`
}

// SheetsConfig contains the optional roster export target
type SheetsConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	SheetName       string `yaml:"sheet_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendInterviewReminders string `yaml:"send_interview_reminders"`
	SyncMemberRoster       string `yaml:"sync_member_roster"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Mail
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Mail.SendGridAPIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Mail.From = val
	}
	if val := os.Getenv("EMAIL_TO"); val != "" {
		c.Mail.OperationsMailbox = val
	}
	if val := os.Getenv("APP_BASE_URL"); val != "" {
		c.Mail.AppBaseURL = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Firebase
	if val := os.Getenv("FIREBASE_PROJECT_ID"); val != "" {
		c.Firebase.ProjectID = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Firebase.CredentialsFile = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Storage
	if val := os.Getenv("STORAGE_TYPE"); val != "" {
		c.Storage.Type = val
	}
	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}
	if val := os.Getenv("FORUM_BUCKET"); val != "" {
		c.Storage.ForumBucket = val
	}

	// Sheets
	if val := os.Getenv("ROSTER_SPREADSHEET_ID"); val != "" {
		c.Sheets.SpreadsheetID = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = c.Server.Port + 1
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	// Mail validation
	if c.Mail.From == "" {
		return fmt.Errorf("mail sender address is required")
	}
	if c.Mail.OperationsMailbox == "" {
		return fmt.Errorf("operations mailbox is required")
	}
	if c.Mail.FromName == "" {
		c.Mail.FromName = "ESSENTIA Science"
	}
	if c.Mail.AppBaseURL == "" {
		c.Mail.AppBaseURL = "https://www.essentia-sci.org"
	}
	if c.Mail.MeetingURL == "" {
		c.Mail.MeetingURL = "https://meet.google.com/wrx-qoko-wsf"
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		c.JWT.AccessTokenExpiry = 60
	}

	// Storage validation
	c.Storage.Type = strings.ToLower(c.Storage.Type)
	switch c.Storage.Type {
	case "", "mock":
		c.Storage.Type = "mock"
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("upload directory is required for mock storage")
		}
	case "firebase":
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("firebase project id is required for firebase storage")
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	if c.Storage.ForumBucket == "" {
		c.Storage.ForumBucket = "forum_images"
	}
	if c.Storage.ProfileBucket == "" {
		c.Storage.ProfileBucket = "profile_img"
	}
	if c.Storage.MaxForumImageMB <= 0 {
		c.Storage.MaxForumImageMB = 5
	}
	if c.Storage.MaxProfileImageMB <= 0 {
		c.Storage.MaxProfileImageMB = 10
	}
	if c.Storage.ProfileCacheControl == "" {
		c.Storage.ProfileCacheControl = "public, max-age=3600"
	}

	// Membership defaults
	if c.Membership.OfficerCodeBase == 0 {
		c.Membership.OfficerCodeBase = 100000
	}
	if c.Membership.MemberCodeBase == 0 {
		c.Membership.MemberCodeBase = 20000
	}

	// Forum defaults
	if c.Forum.FreeCategory == "" {
		c.Forum.FreeCategory = "자유"
	}
	if c.Forum.NonMemberDailyLimit == 0 {
		c.Forum.NonMemberDailyLimit = 3
	}
	if c.Forum.DefaultPageSize == 0 {
		c.Forum.DefaultPageSize = 10
	}

	// Sheets defaults
	if c.Sheets.SheetName == "" {
		c.Sheets.SheetName = "Members"
	}

	// Scheduler defaults
	if c.Scheduler.SendInterviewReminders == "" {
		c.Scheduler.SendInterviewReminders = "0 0 0 * * *" // 9 AM KST
	}
	if c.Scheduler.SyncMemberRoster == "" {
		c.Scheduler.SyncMemberRoster = "0 30 18 * * *" // 3:30 AM KST
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health server address
func (c *Config) GetGRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}
