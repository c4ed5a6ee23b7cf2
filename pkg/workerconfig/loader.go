// Package workerconfig loads the worker configuration file that declares the
// worker's name, bindings, and tail consumers.
//
// Binding shape validation belongs here, at the producing boundary: the
// classifier downstream assumes well-typed input.
package workerconfig

import (
	"errors"
	"fmt"

	"github.com/edgectl/edgectl/pkg/bindings"
	"github.com/edgectl/edgectl/pkg/envvar"
	"github.com/spf13/viper"
)

// DefaultConfigName is the base name of the worker configuration file,
// resolved against the supported extensions (yaml, yml, json, toml).
const DefaultConfigName = "worker"

// ErrConfigNotFound is returned when no worker configuration file exists at
// the configured location.
var ErrConfigNotFound = errors.New("worker configuration file not found")

// Config is the parsed worker configuration.
type Config struct {
	// Name is the worker's deploy name.
	Name string `mapstructure:"name"`
	// TailConsumers lists workers receiving this worker's tail events.
	TailConsumers []bindings.TailConsumer `mapstructure:"tail_consumers"`
	// Bindings declares the worker's external resources. The binding kinds
	// sit at the top level of the configuration file.
	Bindings bindings.Config `mapstructure:",squash"`
}

// Loader reads and decodes worker configuration files.
type Loader struct {
	viper *viper.Viper
	path  string
}

// NewLoader creates a Loader. A non-empty path pins an explicit config file;
// otherwise the default name is resolved in the working directory.
func NewLoader(path string) *Loader {
	viperInstance := viper.New()

	if path != "" {
		viperInstance.SetConfigFile(path)
	} else {
		viperInstance.SetConfigName(DefaultConfigName)
		viperInstance.AddConfigPath(".")
	}

	return &Loader{viper: viperInstance, path: path}
}

// Load reads and decodes the worker configuration. Environment variable
// placeholders in string vars are expanded (${VAR} and ${VAR:-default}).
//
// Viper lowercases configuration keys on read, so map-kind binding names
// (vars, text blobs, data blobs) come out lowercased regardless of how the
// file spells them; they render as loaded.
func (l *Loader) Load() (*Config, error) {
	err := l.viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrConfigNotFound
		}

		return nil, fmt.Errorf("failed to read worker configuration: %w", err)
	}

	var config Config

	err = l.viper.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal worker configuration: %w", err)
	}

	expandVars(config.Bindings.Vars)

	return &config, nil
}

// Path returns the file the configuration was read from, once loaded.
func (l *Loader) Path() string {
	if l.path != "" {
		return l.path
	}

	return l.viper.ConfigFileUsed()
}

// expandVars expands env placeholders in string vars in place. Composite and
// non-string values pass through untouched.
func expandVars(vars map[string]any) {
	for key, value := range vars {
		if s, ok := value.(string); ok {
			vars[key] = envvar.Expand(s)
		}
	}
}
