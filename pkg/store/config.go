package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the cache location and API endpoint settings.
type Config interface {
	BasePath() string
	APIURL() string
	APIToken() string
}

// LoadConfig reads the .eventory config file from the working directory, with
// EVENTORY_* environment variables layered on top.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.eventory")
	viper.SetDefault("api_url", "http://localhost:8000")
	viper.SetDefault("api_token", "guest-access-token")

	viper.SetConfigName(".eventory") // .yaml is implicit
	viper.SetEnvPrefix("EVENTORY")
	viper.AutomaticEnv()

	if override := os.Getenv("EVENTORY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:  path,
		URL:   viper.GetString("api_url"),
		Token: viper.GetString("api_token"),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	URL   string `json:"api_url"`
	Token string `json:"api_token"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) APIURL() string   { return f.URL }
func (f *fileConfig) APIToken() string { return f.Token }
