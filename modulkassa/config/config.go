package config

import (
	"github.com/spf13/viper"

	"github.com/dgigel/go-modulkassa/modulkassa/document"
)

// Config carries the module settings the original host platform kept in
// its configuration store. Values come from a modulkassa.yaml file in the
// working directory and MODULKASSA_* environment variables, env winning.
type Config struct {
	Secret        string
	VatTag        int
	TestMode      bool
	ShippingLabel string
	ResponseURL   string
	RetailPointID string
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("modulkassa")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("modulkassa")
	v.AutomaticEnv()

	v.SetDefault("secret", "")
	v.SetDefault("vat_tag", 0)
	v.SetDefault("test_mode", true)
	v.SetDefault("shipping_label", document.DefaultShippingLabel)
	v.SetDefault("response_url", "")
	v.SetDefault("retail_point_id", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Secret:        v.GetString("secret"),
		VatTag:        v.GetInt("vat_tag"),
		TestMode:      v.GetBool("test_mode"),
		ShippingLabel: v.GetString("shipping_label"),
		ResponseURL:   v.GetString("response_url"),
		RetailPointID: v.GetString("retail_point_id"),
	}, nil
}
