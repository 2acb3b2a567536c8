package profile

import (
	"os"
	"testing"
)

func TestProfileDefaults(t *testing.T) {
	clearEnvVars()

	profile := &Profile{}
	profile.FromEnv()

	if profile.Mode != "dev" {
		t.Errorf("Mode: expected %q, got %q", "dev", profile.Mode)
	}
	if profile.Addr != "" {
		t.Errorf("Addr: expected empty, got %q", profile.Addr)
	}
	if profile.Port != 8082 {
		t.Errorf("Port: expected %d, got %d", 8082, profile.Port)
	}
}

func TestProfileFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		envValue string
		check    func(*Profile) bool
	}{
		{
			name:     "SCHEDULING_MODE",
			envVar:   "SCHEDULING_MODE",
			envValue: "prod",
			check:    func(p *Profile) bool { return p.Mode == "prod" },
		},
		{
			name:     "SCHEDULING_ADDR",
			envVar:   "SCHEDULING_ADDR",
			envValue: "127.0.0.1",
			check:    func(p *Profile) bool { return p.Addr == "127.0.0.1" },
		},
		{
			name:     "SCHEDULING_PORT",
			envVar:   "SCHEDULING_PORT",
			envValue: "9090",
			check:    func(p *Profile) bool { return p.Port == 9090 },
		},
		{
			name:     "invalid port falls back to default",
			envVar:   "SCHEDULING_PORT",
			envValue: "not-a-number",
			check:    func(p *Profile) bool { return p.Port == 8082 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars()
			os.Setenv(tt.envVar, tt.envValue)
			defer clearEnvVars()

			profile := &Profile{}
			profile.FromEnv()

			if !tt.check(profile) {
				t.Errorf("%s: unexpected profile %+v", tt.name, profile)
			}
		})
	}
}

func TestProfileFromEnvKeepsExplicitValues(t *testing.T) {
	clearEnvVars()
	os.Setenv("SCHEDULING_MODE", "prod")
	os.Setenv("SCHEDULING_PORT", "9090")
	defer clearEnvVars()

	profile := &Profile{Mode: "dev", Port: 8083}
	profile.FromEnv()

	if profile.Mode != "dev" {
		t.Errorf("Mode: explicit value should win, got %q", profile.Mode)
	}
	if profile.Port != 8083 {
		t.Errorf("Port: explicit value should win, got %d", profile.Port)
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		wantErr  bool
		wantMode string
	}{
		{
			name:     "valid dev profile",
			profile:  Profile{Mode: "dev", Port: 8082},
			wantErr:  false,
			wantMode: "dev",
		},
		{
			name:     "valid prod profile",
			profile:  Profile{Mode: "prod", Port: 80},
			wantErr:  false,
			wantMode: "prod",
		},
		{
			name:     "unknown mode falls back to dev",
			profile:  Profile{Mode: "demo", Port: 8082},
			wantErr:  false,
			wantMode: "dev",
		},
		{
			name:    "zero port",
			profile: Profile{Mode: "dev", Port: 0},
			wantErr: true,
		},
		{
			name:    "port out of range",
			profile: Profile{Mode: "dev", Port: 70000},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.profile.Mode != tt.wantMode {
				t.Errorf("Mode after Validate() = %q, want %q", tt.profile.Mode, tt.wantMode)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		mode string
		want bool
	}{
		{"dev", true},
		{"prod", false},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			p := &Profile{Mode: tt.mode}
			if got := p.IsDev(); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func clearEnvVars() {
	envVars := []string{
		"SCHEDULING_MODE",
		"SCHEDULING_ADDR",
		"SCHEDULING_PORT",
	}
	for _, envVar := range envVars {
		os.Unsetenv(envVar)
	}
}
