package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/share_registry/pkg/logging"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret  string `yaml:"jwtSecret"`
	ServerPort string `yaml:"serverPort"`
	LogLevel   string `yaml:"logLevel"`

	DBDriver    string `yaml:"dbDriver"`    // sqlite | postgres
	SQLitePath  string `yaml:"sqlitePath"`  // 仅 sqlite 使用
	DatabaseURL string `yaml:"databaseUrl"` // 仅 postgres 使用

	// OutputDir 是生成文档包的根目录 (word_output)
	OutputDir string `yaml:"outputDir"`
	// UploadDir 保存案件上传的附件
	UploadDir string `yaml:"uploadDir"`
	// IncludeAffidavits 为 true 时在文档包中追加宣誓书 (默认关闭)
	IncludeAffidavits bool `yaml:"includeAffidavits"`

	// RedisURL 为空时使用内存中的 Token 拒绝列表
	RedisURL string `yaml:"redisUrl"`

	ObjectStore ObjectStoreConfig `yaml:"objectStore"`
}

// ObjectStoreConfig 描述 S3 兼容存储，Endpoint 为空表示不归档
type ObjectStoreConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"useSSL"`
}

// Enabled reports whether bundle archival is configured.
func (c ObjectStoreConfig) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != "" && strings.TrimSpace(c.Bucket) != ""
}

const (
	defaultJWTSecret  = "share-registry"  // Default JWT secret, used if env var is not set.
	envJWTSecretKey   = "JWT_SECRET_KEY"  // Environment variable name for the JWT secret.
	defaultServerPort = "8080"            // Default server port.
	envServerPortKey  = "SERVER_PORT"     // Environment variable name for the server port.
	envConfigFileKey  = "APP_CONFIG_FILE" // 可选的 YAML 配置文件路径
	defaultDBDriver   = "sqlite"
	defaultSQLitePath = "data/share_registry.db"
	defaultOutputDir  = "word_output"
	defaultUploadDir  = "uploads"
	defaultLogLevel   = "info"
)

// Defaults returns the built-in configuration before any file or env overrides.
func Defaults() Configuration {
	return Configuration{
		JWTSecret:  defaultJWTSecret,
		ServerPort: defaultServerPort,
		LogLevel:   defaultLogLevel,
		DBDriver:   defaultDBDriver,
		SQLitePath: defaultSQLitePath,
		OutputDir:  defaultOutputDir,
		UploadDir:  defaultUploadDir,
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file and environment variables.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		cfg := Defaults()

		if path := os.Getenv(envConfigFileKey); path != "" {
			if err := cfg.mergeFile(path); err != nil {
				logging.L().Warn("配置文件加载失败，忽略", zap.String("path", path), zap.Error(err))
			}
		}

		cfg.applyEnvOverrides()

		if cfg.JWTSecret == defaultJWTSecret {
			logging.L().Warn("JWT_SECRET_KEY 环境变量未设置。正在使用默认的JWT密钥。请在生产环境中设置此变量以保证安全。")
		}

		AppConfig = cfg
		logging.L().Info("应用配置已加载。",
			zap.String("port", cfg.ServerPort),
			zap.String("dbDriver", cfg.DBDriver),
			zap.String("outputDir", cfg.OutputDir),
			zap.Bool("objectStore", cfg.ObjectStore.Enabled()),
		)
	})
}

// mergeFile overlays values found in a YAML file onto cfg.
func (c *Configuration) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("解析配置文件失败: %w", err)
	}
	return nil
}

func (c *Configuration) applyEnvOverrides() {
	setString(&c.JWTSecret, envJWTSecretKey)
	setString(&c.ServerPort, envServerPortKey)
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.DBDriver, "DB_DRIVER")
	setString(&c.SQLitePath, "SQLITE_DB_PATH")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.OutputDir, "OUTPUT_DIR")
	setString(&c.UploadDir, "UPLOAD_DIR")
	setBool(&c.IncludeAffidavits, "INCLUDE_AFFIDAVITS")
	setString(&c.RedisURL, "REDIS_URL")
	setString(&c.ObjectStore.Endpoint, "OBJECT_STORE_ENDPOINT")
	setString(&c.ObjectStore.AccessKey, "OBJECT_STORE_ACCESS_KEY")
	setString(&c.ObjectStore.SecretKey, "OBJECT_STORE_SECRET_KEY")
	setString(&c.ObjectStore.Bucket, "OBJECT_STORE_BUCKET")
	setBool(&c.ObjectStore.UseSSL, "OBJECT_STORE_USE_SSL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		logging.L().Warn("布尔类型环境变量无效，忽略", zap.String("key", key), zap.String("value", v))
		return
	}
	*dst = parsed
}
