package registry

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RegistryAddress string `envconfig:"REGISTRY_ADDRESS" required:"true"`
	RegistryToken   string `envconfig:"REGISTRY_TOKEN"`
	RegistryTimeout int    `envconfig:"REGISTRY_TIMEOUT" default:"30"` // seconds
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
