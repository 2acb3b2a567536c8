package profile

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Version is the current version of server
	Version string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv fills unset fields from SCHEDULING_* environment variables.
// Fields already set on the profile take precedence.
func (p *Profile) FromEnv() {
	if p.Mode == "" {
		p.Mode = getEnvOrDefault("SCHEDULING_MODE", "dev")
	}
	if p.Addr == "" {
		p.Addr = os.Getenv("SCHEDULING_ADDR")
	}
	if p.Port == 0 {
		port, err := strconv.Atoi(getEnvOrDefault("SCHEDULING_PORT", "8082"))
		if err != nil {
			port = 8082
		}
		p.Port = port
	}
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d, must be between 1 and 65535", p.Port)
	}

	return nil
}
