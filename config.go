package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit          string        `yaml:"git_commit" envconfig:"DGAP_GIT_COMMIT"`
	GitTag             string        `yaml:"git_tag" envconfig:"DGAP_GIT_TAG"`
	BuildTime          string        `yaml:"build_time" envconfig:"DGAP_BUILD_TIME"`
	IsProduction       bool          `yaml:"is_production" envconfig:"DGAP_IS_PRODUCTION"`
	LogLevel           zapcore.Level `yaml:"log_level" envconfig:"DGAP_LOG_LEVEL"`
	LogFolder          string        `yaml:"log_folder" envconfig:"DGAP_LOG_FOLDER"`
	LogMaxSize         int           `yaml:"log_max_size" envconfig:"DGAP_LOG_MAX_SIZE"`
	OpsEndpointsEnable bool          `yaml:"ops_endpoints_enable" envconfig:"DGAP_OPS_ENDPOINTS_ENABLE"`
	ProfilerEnable     bool          `yaml:"profiler_enable" envconfig:"DGAP_PROFILER_ENABLE"`
	Server             ServerConfig  `yaml:"server"`
	GraphQL            GraphQLConfig `yaml:"graphql"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" envconfig:"DGAP_SERVER_HOST"`
	Port            string        `yaml:"port" envconfig:"DGAP_SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"DGAP_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"DGAP_SERVER_WRITE_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"DGAP_SERVER_REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"DGAP_SERVER_SHUTDOWN_TIMEOUT"`
}

type GraphQLConfig struct {
	Endpoint       string `yaml:"endpoint" envconfig:"DGAP_GRAPHQL_ENDPOINT"`
	MaxQueryBytes  int64  `yaml:"max_query_bytes" envconfig:"DGAP_GRAPHQL_MAX_QUERY_BYTES"`
	GraphiQLEnable bool   `yaml:"graphiql_enable" envconfig:"DGAP_GRAPHQL_GRAPHIQL_ENABLE"`
}

// LoadConfigFile provides an instance of config structure for the all application.
func LoadConfigFile(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := &Config{}
	yd := yaml.NewDecoder(file)
	err = yd.Decode(cfg)

	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigEnvs reads the environments variables and provides an instance of the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig setup defaults values for non provided parameters
// and configures build tags values to be used if provided.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if len(config.Server.Host) == 0 || len(config.Server.Port) == 0 {
		return errors.New("make sure to set valid server address and port in configuration file")
	}

	if len(config.GraphQL.Endpoint) == 0 {
		config.GraphQL.Endpoint = "/graphql"
	}

	if config.GraphQL.MaxQueryBytes <= 0 {
		config.GraphQL.MaxQueryBytes = 1 << 20 // 1MB
	}

	if config.LogMaxSize <= 0 {
		config.LogMaxSize = 10
	}

	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data.
func LoadAndInitConfigs(gitCommit, gitTag, buildTime string) (*Config, error) {
	// Setup the yaml configuration from file.
	config, err := LoadConfigFile("./config.yml")
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	// Set the environment configuration.
	err = godotenv.Load("./config.env")
	if err != nil {
		return config, fmt.Errorf("failed to set environment configurations: %s", err)
	}

	// Use environment variables with prefix `DGAP`.
	err = LoadConfigEnvs("DGAP", config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}
