package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where the planner keeps its data on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves configuration from a .bjt file, environment, or
// defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.bjt.db")
	viper.SetConfigName(".bjt") // .yaml is implicit
	viper.SetEnvPrefix("BJT")
	viper.AutomaticEnv()

	if override := os.Getenv("BJT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
