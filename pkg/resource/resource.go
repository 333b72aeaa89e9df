package resource

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"classy-weather/configs"
	"classy-weather/pkg/log"

	"github.com/spf13/viper"
)

var (
	mu  sync.RWMutex
	cfg *viper.Viper
)

// init loads the embedded application.yml. Environment variables override any
// key, with dots and dashes replaced by underscores (app.server.port -> APP_SERVER_PORT).
func init() {
	if err := Load(configs.ApplicationYML); err != nil {
		log.Fatalf("Fail to read application settings: %v", err)
	}
}

// Load replaces the current settings with the given YAML document.
func Load(yml []byte) error {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(yml)); err != nil {
		return err
	}
	set(v)
	return nil
}

// Init replaces the current settings with the YAML file at filepath.
func Init(filepath string) error {
	v := newViper()
	v.SetConfigFile(filepath)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	set(v)
	return nil
}

// Set overrides a single key, mostly useful in tests and CLI flags.
func Set(key string, value any) {
	current().Set(key, value)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func set(v *viper.Viper) {
	mu.Lock()
	cfg = v
	mu.Unlock()
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}
