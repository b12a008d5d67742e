package configuration

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"streamhub/infrastructure/logger"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	ObjectStore ObjectStore `json:"objectStore"`
	Cors        Cors        `json:"cors"`
}

type App struct {
	Port             int           `json:"port"`
	AccessSecretKey  string        `json:"accessSecretKey"`
	RefreshSecretKey string        `json:"refreshSecretKey"`
	AccessTokenTTL   time.Duration `json:"accessTokenTTL"`
	RefreshTokenTTL  time.Duration `json:"refreshTokenTTL"`
	TempDir          string        `json:"tempDir"`
	SecureCookies    bool          `json:"secureCookies"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ObjectStore struct {
	Region        string `json:"region"`
	Bucket        string `json:"bucket"`
	Endpoint      string `json:"endpoint"`
	PublicBaseURL string `json:"publicBaseURL"`
}

type Cors struct {
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	LoadConfig()
}

func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found, relying on defaults and environment")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error unmarshalling config")
	}
}

func setDefaults() {
	viper.SetDefault("app.port", 8080)
	viper.SetDefault("app.accessSecretKey", "change-me-access")
	viper.SetDefault("app.refreshSecretKey", "change-me-refresh")
	viper.SetDefault("app.accessTokenTTL", 15*time.Minute)
	viper.SetDefault("app.refreshTokenTTL", 10*24*time.Hour)
	viper.SetDefault("app.tempDir", "./tmp")
	viper.SetDefault("app.secureCookies", true)
	viper.SetDefault("database.mongo.name", "streamhub")
	viper.SetDefault("database.mongo.host", "localhost")
	viper.SetDefault("database.mongo.port", "27017")
	viper.SetDefault("redisClient.host", "localhost")
	viper.SetDefault("redisClient.port", "6379")
	viper.SetDefault("objectStore.region", "us-east-1")
	viper.SetDefault("cors.allowOrigins", []string{"http://localhost:4200"})
}
