package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Standardized error message helpers

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

func errMin(field string, min any, value any) error {
	return fmt.Errorf("%s must be at least %v (got %v)", field, min, value)
}

func requireString(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := errRequired(path)
		logConfigError(path, value, err)
		v.Add(err)
		return false
	}
	logConfigOK(path, value)
	return true
}

func requireFloatMin(v *ValidationErrors, path string, value float64, min float64) bool {
	if value < min {
		err := errMin(path, min, value)
		logConfigError(path, value, err)
		v.Add(err)
		return false
	}
	logConfigOK(path, value)
	return true
}

func (c *Config) Validate() error {
	var verr ValidationErrors

	c.Server.validate(&verr, "server")
	c.Database.validate(&verr, "database")
	c.validateCalculator(&verr, "calculator")
	c.Share.validate(&verr, "share")

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

func (cfg *ServerConfig) validate(v *ValidationErrors, path string) {
	requireString(v, path+"/addr", cfg.Addr)

	checkDuration(v, path+"/timeouts/read", cfg.Timeouts.Read)
	checkDuration(v, path+"/timeouts/header", cfg.Timeouts.Header)
	checkDuration(v, path+"/timeouts/write", cfg.Timeouts.Write)
	checkDuration(v, path+"/timeouts/idle", cfg.Timeouts.Idle)
}

func (d *DatabaseConfig) validate(v *ValidationErrors, path string) {
	requireString(v, path+"/path", d.Path)
}

func (c *Config) validateCalculator(v *ValidationErrors, path string) {
	requireFloatMin(v, path+"/min_blade", c.Calculator.MinBladeReading, 0.001)
}

func (s *ShareConfig) validate(v *ValidationErrors, path string) {
	if s.BaseURL == "" {
		// optional: tokens are still produced, just without absolute URLs
		return
	}
	if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		err := errors.New("base_url must be an absolute http(s) URL")
		logConfigError(path+"/base_url", s.BaseURL, err)
		v.Add(err)
		return
	}
	logConfigOK(path+"/base_url", s.BaseURL)
}

type ValidationErrors struct {
	errors []error
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func checkDuration(v *ValidationErrors, path string, d time.Duration) {
	if d <= 0 {
		err := errors.New("must be > 0")
		logConfigError(path, d, err)
		v.Add(fmt.Errorf("%s %w", path, err))
	} else {
		logConfigOK(path, d)
	}
}
