package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/vuedj/vuedj/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyNodeBin       = "node_bin"
	KeyNpmBin        = "npm_bin"
	KeyVueBin        = "vue_bin"
	KeyVueMinVersion = "vue_min_version"
	KeyVuePackage    = "vue_package"
	KeyVueTemplate   = "vue_template"
	KeyStrict        = "strict"
	// KeyEnv holds extra environment variables for node, npm and vue,
	// e.g. env.node_env. Names are upper-cased since viper folds keys.
	KeyEnv = "env"
)

// Default values applied when neither the config file nor the environment
// sets a key.
const (
	DefaultNodeBin       = "node"
	DefaultNpmBin        = "npm"
	DefaultVueBin        = "vue"
	DefaultVueMinVersion = "2.8.0"
	DefaultVuePackage    = "vue-cli"
	DefaultVueTemplate   = "webpack"
)

// Settings is the typed view of the configuration.
type Settings struct {
	NodeBin       string
	NpmBin        string
	VueBin        string
	VueMinVersion string
	VuePackage    string
	VueTemplate   string
	Strict        bool
	Env           map[string]string
}

// Dir returns the path to the config directory (~/.vuedj/).
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.vuedj/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyNodeBin, DefaultNodeBin)
	viper.SetDefault(KeyNpmBin, DefaultNpmBin)
	viper.SetDefault(KeyVueBin, DefaultVueBin)
	viper.SetDefault(KeyVueMinVersion, DefaultVueMinVersion)
	viper.SetDefault(KeyVuePackage, DefaultVuePackage)
	viper.SetDefault(KeyVueTemplate, DefaultVueTemplate)
	viper.SetDefault(KeyStrict, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the current configuration. Load must be called first.
func Current() Settings {
	return Settings{
		NodeBin:       viper.GetString(KeyNodeBin),
		NpmBin:        viper.GetString(KeyNpmBin),
		VueBin:        viper.GetString(KeyVueBin),
		VueMinVersion: viper.GetString(KeyVueMinVersion),
		VuePackage:    viper.GetString(KeyVuePackage),
		VueTemplate:   viper.GetString(KeyVueTemplate),
		Strict:        viper.GetBool(KeyStrict),
		Env:           envVars(viper.GetStringMapString(KeyEnv)),
	}
}

func envVars(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	env := make(map[string]string, len(m))
	for k, v := range m {
		env[strings.ToUpper(k)] = v
	}
	return env
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
