package config

import "github.com/spf13/pflag"

// LinkConfig holds configuration for the link command.
type LinkConfig struct {
	GatewayMap map[string]string
	LogLevel   string
}

// LoadLink merges config file, environment variables, and flags into LinkConfig.
func LoadLink(cfgFile string, flags *pflag.FlagSet) (LinkConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return LinkConfig{}, err
	}

	v.SetDefault("log-level", "info")

	return LinkConfig{
		GatewayMap: getStringMap(v, "gateway-map"),
		LogLevel:   v.GetString("log-level"),
	}, nil
}
