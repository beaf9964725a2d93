package config

import (
	"time"

	"github.com/darkroomtools/easeld/border"
)

const (
	DefaultAddr   = ":8390"
	DefaultDBPath = "easeld.db"
)

// ApplyDefaults fills everything the yaml left empty, before validation,
// so a zero configuration is a valid one.
func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.Timeouts.Read == 0 {
		c.Server.Timeouts.Read = 10 * time.Second
	}
	if c.Server.Timeouts.Header == 0 {
		c.Server.Timeouts.Header = 5 * time.Second
	}
	if c.Server.Timeouts.Write == 0 {
		c.Server.Timeouts.Write = 10 * time.Second
	}
	if c.Server.Timeouts.Idle == 0 {
		c.Server.Timeouts.Idle = 60 * time.Second
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDBPath
	}
	if c.Calculator.MinBladeReading == 0 {
		c.Calculator.MinBladeReading = border.DefaultMinBladeReading
	}
}
