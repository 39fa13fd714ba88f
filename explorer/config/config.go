package config

import (
	"bikeshare/communication"
	"bikeshare/utils"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	configFilepath  = "./explorer/config/config.yaml"
	defaultDataDir  = "."
	defaultLogLevel = "warn"
)

// ExplorerConfig configuration of the bikeshare explorer
// + DataDir: directory that contains the .csv file of each city
// + LogLevel: logrus level, logs are written to stderr
// + Publisher: where the reports are published, disabled by default
type ExplorerConfig struct {
	DataDir   string                        `yaml:"data_dir"`
	LogLevel  string                        `yaml:"log_level"`
	Publisher communication.PublisherConfig `yaml:"publisher"`
}

func LoadConfig() (*ExplorerConfig, error) {
	return LoadConfigFromFile(configFilepath)
}

// LoadConfigFromFile reads the config from the given .yaml file. Missing values are set with their defaults
func LoadConfigFromFile(filepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(filepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	if explorerConfig.DataDir == "" {
		explorerConfig.DataDir = defaultDataDir
	}
	if explorerConfig.LogLevel == "" {
		explorerConfig.LogLevel = defaultLogLevel
	}

	return &explorerConfig, nil
}
