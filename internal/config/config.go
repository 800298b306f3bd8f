package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Port     string `yaml:"port"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	JWT struct {
		Secret     string `yaml:"secret"`
		Expiration string `yaml:"expiration"`
	} `yaml:"jwt"`
	Platform PlatformDefaults `yaml:"platform"`
}

// PlatformDefaults holds the fallback platform constants applied to a
// submitted graph whenever it omits (leaves zero-valued) a platform field.
// Graph-level values always win over these; they only fill gaps.
type PlatformDefaults struct {
	CorePower   [3]float64 `yaml:"core_power"`
	RFPower     float64    `yaml:"rf_power"`
	SendTime    int        `yaml:"send_time"`
	CloudTime   int        `yaml:"cloud_time"`
	ReceiveTime int        `yaml:"receive_time"`
	Deadline    int        `yaml:"deadline"`
}

func LoadConfig(filePath string) (*Config, error) {
	config := &Config{}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

func InitConfig() *Config {
	config, err := LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return config
}
