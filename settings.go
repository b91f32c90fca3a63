package settings

import (
	"strings"

	"github.com/spf13/viper"
)

// defaultEnvFile is consulted for variables unset in the live
// environment, resolved relative to the working directory.
const defaultEnvFile = ".env"

const (
	keyServiceURL = "SERVICE_URL"
	keyServiceKey = "SERVICE_KEY"
)

// Settings holds the resolved process configuration. Values are fixed
// at load time; share by value or reference freely across goroutines.
type Settings struct {
	ServiceURL string
	ServiceKey string
}

// MissingError reports every required variable that resolved to no
// value: unset in both the environment and the override file, or set
// to an empty string.
type MissingError struct {
	Fields []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Fields, ", ")
}

// Load resolves SERVICE_URL and SERVICE_KEY from the environment,
// falling back to a `.env` file in the working directory for variables
// the environment does not provide. Environment values win when both
// sources define a variable.
func Load() (Settings, error) {
	return loadFrom(defaultEnvFile)
}

func loadFrom(envFile string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Override file is optional; env-only is fine.
	_ = v.ReadInConfig()

	s := Settings{
		ServiceURL: v.GetString(keyServiceURL),
		ServiceKey: v.GetString(keyServiceKey),
	}

	var missing []string
	if s.ServiceURL == "" {
		missing = append(missing, keyServiceURL)
	}
	if s.ServiceKey == "" {
		missing = append(missing, keyServiceKey)
	}
	if len(missing) > 0 {
		return Settings{}, &MissingError{Fields: missing}
	}
	return s, nil
}
