package currency

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LedgerAddress string `envconfig:"CURRENCY_LEDGER_ADDRESS" required:"true"`
	LedgerToken   string `envconfig:"CURRENCY_LEDGER_TOKEN"`
	LedgerTimeout int    `envconfig:"CURRENCY_LEDGER_TIMEOUT" default:"30"` // seconds
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
