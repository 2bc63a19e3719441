// Package mailstackcfg defines the configuration schema (structs) for
// mailstack.yml. This package is intended for YAML -> struct
// deserialization; loading helpers and validations live in separate files.
package mailstackcfg

// Root is the root structure of mailstack.yml.
type Root struct {
	Name      string `yaml:"name"`      // release name, RFC1123-compliant DNS label
	Namespace string `yaml:"namespace"` // target namespace

	Domain    string   `yaml:"domain"`    // primary mail domain
	Hostnames []string `yaml:"hostnames"` // public FQDNs, first is the advertised hostname
	Subnet    string   `yaml:"subnet"`    // trusted pod subnet (IPv4 CIDR)

	InitialAccount *InitialAccount `yaml:"initialAccount,omitempty"`

	Database Database `yaml:"database"`
	Redis    Redis    `yaml:"redis"`

	SecretKey SecretRef `yaml:"secretKey"`

	StorageClass string                 `yaml:"storageClass,omitempty"`
	Storage      map[string]Storage     `yaml:"storage,omitempty"`   // keyed by component name
	Resources    map[string]Resources   `yaml:"resources,omitempty"` // keyed by component name
	Components   map[string]bool        `yaml:"components,omitempty"`
	Images       Images                 `yaml:"images,omitempty"`
	Ingress      Ingress                `yaml:"ingress,omitempty"`
	Settings     map[string]interface{} `yaml:"settings,omitempty"` // reserved

	MessageSizeLimit string `yaml:"messageSizeLimit,omitempty"` // e.g. "50Mi"
	FetchmailDelay   int    `yaml:"fetchmailDelay,omitempty"`   // seconds
	LogLevel         string `yaml:"logLevel,omitempty"`
}

// SecretRef selects one key of an externally managed Secret.
type SecretRef struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// InitialAccount seeds the first admin user.
type InitialAccount struct {
	Name           string    `yaml:"name"`
	Domain         string    `yaml:"domain,omitempty"` // falls back to Root.Domain
	PasswordSecret SecretRef `yaml:"passwordSecret"`
}

// Database selects the backing database flavor.
type Database struct {
	Type       string      `yaml:"type"` // "sqlite" or "postgresql"
	PostgreSQL *PostgreSQL `yaml:"postgresql,omitempty"`
}

// PostgreSQL holds connection details for an external PostgreSQL instance.
type PostgreSQL struct {
	Host       string       `yaml:"host"`
	Port       int          `yaml:"port,omitempty"` // defaults to 5432
	Name       string       `yaml:"name"`
	AuthSecret DatabaseAuth `yaml:"authSecret"`
}

// DatabaseAuth points at the username and password keys of one Secret.
type DatabaseAuth struct {
	Name        string `yaml:"name"`
	UserKey     string `yaml:"userKey,omitempty"`     // defaults to "username"
	PasswordKey string `yaml:"passwordKey,omitempty"` // defaults to "password"
}

// Redis holds connection details for the external Redis instance.
type Redis struct {
	Host           string     `yaml:"host"`
	Port           int        `yaml:"port,omitempty"` // defaults to 6379
	PasswordSecret *SecretRef `yaml:"passwordSecret,omitempty"`
}

// Storage requests a persistent volume for one component.
type Storage struct {
	Size      string `yaml:"size"`                // binary units, e.g. "50Gi"
	ClassName string `yaml:"className,omitempty"` // overrides Root.StorageClass
}

// Resources declares CPU/memory requests and limits for one component.
type Resources struct {
	CPURequest    string `yaml:"cpuRequest,omitempty"`
	CPULimit      string `yaml:"cpuLimit,omitempty"`
	MemoryRequest string `yaml:"memoryRequest,omitempty"`
	MemoryLimit   string `yaml:"memoryLimit,omitempty"`
}

// Images selects the container image source for the mail components.
type Images struct {
	Registry string `yaml:"registry,omitempty"` // e.g. "ghcr.io/mailu"
	Tag      string `yaml:"tag,omitempty"`
}

// Ingress configures the generated Traefik ingress.
type Ingress struct {
	ClassName    string `yaml:"className,omitempty"`
	CertResolver string `yaml:"certResolver,omitempty"`
}
