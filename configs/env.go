package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()
	Env = readEnv()
}

// LoadEnvFile exports the variables of a dotenv file that are not already set
// and refreshes Env. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	Env = readEnv()
	return nil
}

func readEnv() *EnvConfig {
	return &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "classy-weather"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/classy-weather"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
