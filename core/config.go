package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverMongo  = "mongodb"
	StoreDriverMemory = "memory"
)

type (
	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		Debug        bool
		TestMode     bool
		RollbarToken string

		Server   ServerConfig
		Database DatabaseConfig
		GenAI    GenAIConfig
		Store    StoreConfig
	}

	ServerConfig struct {
		Host            string
		Port            string
		DebugHost       string
		AllowedOrigins  []string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	DatabaseConfig struct {
		URI      string
		User     string
		Password string
		Name     string
		Timeout  time.Duration
	}

	GenAIConfig struct {
		APIKey  string
		Model   string
		Timeout time.Duration
	}

	StoreConfig struct {
		Driver string // mongodb | memory
		// UpsertOnUpdate makes partial updates of unknown identifiers create a new document
		// instead of failing with NotFound.
		UpsertOnUpdate bool
	}
)

func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// NewConfig reads the configuration from the environment (prefixed by $ENV) on top of the defaults.
// A `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "StudyEase")
	conf.SetDefault("build", "develop")
	conf.SetDefault("debug", env == "DEV")
	conf.SetDefault("testMode", env == "TEST")
	conf.SetDefault("rollbarToken", "")

	conf.SetDefault("serverHost", "")
	conf.SetDefault("port", "4080")
	conf.SetDefault("debugHost", "localhost:4081")
	conf.SetDefault("allowedOrigins", []string{"https://task-manager-f93cc.web.app", "http://localhost:5173"})
	conf.SetDefault("readTimeout", 10*time.Second)
	conf.SetDefault("writeTimeout", 90*time.Second)
	conf.SetDefault("shutdownTimeout", 10*time.Second)
	conf.SetDefault("disableReqLogs", false)

	conf.SetDefault("dbURI", "mongodb://localhost:27017")
	conf.SetDefault("dbUser", "")
	conf.SetDefault("dbPass", "")
	conf.SetDefault("dbName", "StudyEase")
	conf.SetDefault("dbTimeout", 10*time.Second)

	conf.SetDefault("geminiApiKey", "")
	conf.SetDefault("geminiModel", "gemini-2.5-flash")
	conf.SetDefault("geminiTimeout", 60*time.Second)

	conf.SetDefault("storeDriver", StoreDriverMongo)
	conf.SetDefault("upsertOnUpdate", true)

	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Port:            conf.GetString("port"),
			DebugHost:       conf.GetString("debugHost"),
			AllowedOrigins:  conf.GetStringSlice("allowedOrigins"),
			ReadTimeout:     conf.GetDuration("readTimeout"),
			WriteTimeout:    conf.GetDuration("writeTimeout"),
			ShutdownTimeout: conf.GetDuration("shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("disableReqLogs"),
		},
		Database: DatabaseConfig{
			URI:      conf.GetString("dbURI"),
			User:     conf.GetString("dbUser"),
			Password: conf.GetString("dbPass"),
			Name:     conf.GetString("dbName"),
			Timeout:  conf.GetDuration("dbTimeout"),
		},
		GenAI: GenAIConfig{
			APIKey:  conf.GetString("geminiApiKey"),
			Model:   conf.GetString("geminiModel"),
			Timeout: conf.GetDuration("geminiTimeout"),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(conf.GetString("storeDriver")),
			UpsertOnUpdate: conf.GetBool("upsertOnUpdate"),
		},
	}
}
