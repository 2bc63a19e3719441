package model

import (
	"fmt"
	"net"

	"github.com/mailstack/mailstack/internal/naming"
	"github.com/mailstack/mailstack/internal/units"
)

var logLevels = map[string]struct{}{
	"CRITICAL": {}, "ERROR": {}, "WARNING": {}, "INFO": {}, "DEBUG": {},
}

// Validate checks every field of the chart and returns a ConfigurationError
// naming the first offending field. It is fail-fast by design: no manifest
// is worth generating from a partially valid configuration. Validate is
// meant to run on the output of WithDefaults; on a raw chart it will also
// flag fields a defaulting pass would have filled in.
func (c *Chart) Validate() error {
	if err := naming.ValidateReleaseName(c.Name); err != nil {
		return &ConfigurationError{Field: "name", Reason: err.Error()}
	}
	if err := naming.ValidateNamespace(c.Namespace); err != nil {
		return &ConfigurationError{Field: "namespace", Reason: err.Error()}
	}
	if err := naming.ValidateDomain(c.Domain); err != nil {
		return &ConfigurationError{Field: "domain", Reason: err.Error()}
	}
	if len(c.Hostnames) == 0 {
		return &ConfigurationError{Field: "hostnames", Reason: "at least one public hostname is required"}
	}
	for i, h := range c.Hostnames {
		if err := naming.ValidateDomain(h); err != nil {
			return &ConfigurationError{Field: fmt.Sprintf("hostnames[%d]", i), Reason: err.Error()}
		}
	}
	if err := naming.ValidateCIDR(c.Subnet); err != nil {
		return &ConfigurationError{Field: "subnet", Reason: err.Error()}
	}
	if err := c.validateInitialAccount(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateRedis(); err != nil {
		return err
	}
	if c.SecretKey.IsZero() {
		return &ConfigurationError{Field: "secretKey", Reason: "a Secret reference (name and key) is required; inline values are not accepted"}
	}
	if c.SecretKey.Name == "" || c.SecretKey.Key == "" {
		return &ConfigurationError{Field: "secretKey", Reason: "both name and key must be set"}
	}
	if _, err := units.SizeBytes(c.MessageSizeLimit); err != nil {
		return &ConfigurationError{Field: "messageSizeLimit", Reason: err.Error()}
	}
	if c.FetchmailDelay < 0 {
		return &ConfigurationError{Field: "fetchmailDelay", Reason: "must not be negative"}
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return &ConfigurationError{Field: "logLevel", Reason: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	return c.validateResources()
}

func (c *Chart) validateInitialAccount() error {
	ia := c.InitialAccount
	if ia == nil {
		return nil
	}
	if ia.Name == "" {
		return &ConfigurationError{Field: "initialAccount.name", Reason: "account name must not be empty"}
	}
	if err := naming.ValidateEmail(ia.Name + "@" + ia.Domain); err != nil {
		return &ConfigurationError{Field: "initialAccount", Reason: err.Error()}
	}
	if ia.PasswordSecret.Name == "" || ia.PasswordSecret.Key == "" {
		return &ConfigurationError{Field: "initialAccount.passwordSecret", Reason: "a Secret reference (name and key) is required"}
	}
	return nil
}

func (c *Chart) validateDatabase() error {
	switch c.Database.Type {
	case DatabaseSQLite:
		return nil
	case DatabasePostgreSQL:
		pg := c.Database.PostgreSQL
		if pg == nil {
			return &ConfigurationError{Field: "database.postgresql", Reason: "postgresql selected but no connection details supplied"}
		}
		if err := validateHost(pg.Host); err != nil {
			return &ConfigurationError{Field: "database.postgresql.host", Reason: err.Error()}
		}
		if pg.Port <= 0 || pg.Port > 65535 {
			return &ConfigurationError{Field: "database.postgresql.port", Reason: fmt.Sprintf("port %d out of range", pg.Port)}
		}
		if pg.Name == "" {
			return &ConfigurationError{Field: "database.postgresql.name", Reason: "database name must not be empty"}
		}
		if pg.AuthSecret.Name == "" {
			return &ConfigurationError{Field: "database.postgresql.authSecret", Reason: "postgresql requires a credentials Secret reference"}
		}
		return nil
	default:
		return &ConfigurationError{Field: "database.type", Reason: fmt.Sprintf("must be %q or %q, got %q", DatabasePostgreSQL, DatabaseSQLite, c.Database.Type)}
	}
}

func (c *Chart) validateRedis() error {
	if err := validateHost(c.Redis.Host); err != nil {
		return &ConfigurationError{Field: "redis.host", Reason: err.Error()}
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		return &ConfigurationError{Field: "redis.port", Reason: fmt.Sprintf("port %d out of range", c.Redis.Port)}
	}
	if ps := c.Redis.PasswordSecret; ps != nil && (ps.Name == "" || ps.Key == "") {
		return &ConfigurationError{Field: "redis.passwordSecret", Reason: "both name and key must be set"}
	}
	return nil
}

func (c *Chart) validateStorage() error {
	for comp, spec := range c.Storage {
		if _, ok := DefaultStorage(comp); !ok {
			return &ConfigurationError{Field: "storage." + comp, Reason: "component has no persistent storage"}
		}
		if _, err := units.ParseSize(spec.Size); err != nil {
			return &ConfigurationError{Field: "storage." + comp + ".size", Reason: err.Error()}
		}
	}
	return nil
}

func (c *Chart) validateResources() error {
	for comp, spec := range c.Resources {
		if _, ok := DefaultResources(comp); !ok {
			return &ConfigurationError{Field: "resources." + comp, Reason: "unknown component"}
		}
		for field, v := range map[string]string{"cpuRequest": spec.CPURequest, "cpuLimit": spec.CPULimit} {
			if v == "" {
				continue
			}
			if _, err := units.ParseCPU(v); err != nil {
				return &ConfigurationError{Field: "resources." + comp + "." + field, Reason: err.Error()}
			}
		}
		for field, v := range map[string]string{"memoryRequest": spec.MemoryRequest, "memoryLimit": spec.MemoryLimit} {
			if v == "" {
				continue
			}
			if _, err := units.ParseSize(v); err != nil {
				return &ConfigurationError{Field: "resources." + comp + "." + field, Reason: err.Error()}
			}
		}
	}
	return nil
}

// validateHost accepts a DNS name or an IP address.
func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	if err := naming.ValidateDomain(host); err != nil {
		return fmt.Errorf("host must be an IP address or DNS name: %w", err)
	}
	return nil
}
