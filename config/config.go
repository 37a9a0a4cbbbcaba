package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// 日志配置
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogDir   string `mapstructure:"LOG_DIR"`

	// 存储配置: memory 或 database
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	// 数据库配置
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	DBPath        string `mapstructure:"DB_PATH"`
	DBAutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	// Redis配置，REDIS_HOST 为空时会话吊销保存在内存中
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// 生成模型配置
	LLMProvider             string        `mapstructure:"LLM_PROVIDER"`
	LLMAPIKey               string        `mapstructure:"GEMINI_API_KEY"`
	LLMBaseURL              string        `mapstructure:"LLM_BASE_URL"`
	LLMModel                string        `mapstructure:"LLM_MODEL"`
	LLMTemperature          float64       `mapstructure:"LLM_TEMPERATURE"`
	LLMTimeout              time.Duration `mapstructure:"LLM_TIMEOUT"`
	FallbackOnUpstreamError bool          `mapstructure:"FALLBACK_ON_UPSTREAM_ERROR"`

	// 会话配置
	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`

	// 限流配置，RPM 为 0 表示关闭
	RateLimitRPM   int `mapstructure:"RATE_LIMIT_RPM"`
	RateLimitBurst int `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"ENVIRONMENT":                "development",
	"SERVER_PORT":                "5000",
	"CORS_ORIGINS":               "*",
	"LOG_LEVEL":                  "info",
	"LOG_DIR":                    "logs",
	"STORAGE_BACKEND":            "memory",
	"DB_DRIVER":                  "postgres",
	"DB_HOST":                    "localhost",
	"DB_PORT":                    "5432",
	"DB_USER":                    "postgres",
	"DB_PASSWORD":                "",
	"DB_NAME":                    "mindmirror",
	"DB_PATH":                    "data/mindmirror.db",
	"DB_AUTO_MIGRATE":            true,
	"REDIS_HOST":                 "",
	"REDIS_PORT":                 "6379",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"LLM_PROVIDER":               "langchain",
	"GEMINI_API_KEY":             "",
	"LLM_BASE_URL":               "https://generativelanguage.googleapis.com/v1beta/openai/",
	"LLM_MODEL":                  "gemini-1.5-pro",
	"LLM_TEMPERATURE":            0.7,
	"LLM_TIMEOUT":                "60s",
	"FALLBACK_ON_UPSTREAM_ERROR": false,
	"JWT_SECRET":                 "",
	"SESSION_TTL":                "720h",
	"RATE_LIMIT_RPM":             0,
	"RATE_LIMIT_BURST":           5,
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// 注册默认值，否则 Unmarshal 不会读取未出现在配置文件中的环境变量
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	err = config.Validate()
	return
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return errors.New("ENVIRONMENT must be one of: development, staging, production")
	}
	switch c.StorageBackend {
	case "memory":
	case "database":
		switch c.DBDriver {
		case "mysql", "postgres":
			if c.DBHost == "" || c.DBName == "" {
				return fmt.Errorf("DB_HOST and DB_NAME are required for DB_DRIVER=%s", c.DBDriver)
			}
		case "sqlite":
			if c.DBPath == "" {
				return errors.New("DB_PATH is required for DB_DRIVER=sqlite")
			}
		default:
			return errors.New("DB_DRIVER must be one of: mysql, postgres, sqlite")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: memory, database")
	}
	switch c.LLMProvider {
	case "langchain", "openai":
	default:
		return errors.New("LLM_PROVIDER must be one of: langchain, openai")
	}
	if c.Environment == "production" && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}
	if c.RateLimitRPM < 0 || c.RateLimitBurst < 0 {
		return errors.New("RATE_LIMIT_RPM and RATE_LIMIT_BURST must not be negative")
	}
	return nil
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	switch c.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	default:
		return c.DBPath
	}
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
