// Package model defines the validated configuration model for a mailstack
// deployment. Callers construct a Chart (directly or through
// config/mailstackcfg), validate it, and hand it to adapters/kube for
// manifest generation. No entity here has runtime state; everything is
// computed fresh per build.
package model

// Canonical component names. These appear in the
// app.kubernetes.io/component label, in Service/ConfigMap/PVC names, and as
// keys of the per-component Storage and Resources maps.
const (
	CompAdmin        = "admin"
	CompFront        = "front"
	CompPostfix      = "postfix"
	CompDovecot      = "dovecot"
	CompSubmission   = "dovecot-submission"
	CompRspamd       = "rspamd"
	CompWebmail      = "webmail"
	CompClamAV       = "clamav"
	CompFetchmail    = "fetchmail"
	CompWebdav       = "webdav"
	CompNginxPatch   = "nginx-patch"
	CompWebmailPatch = "webmail-patch"
	CompIngress      = "ingress"
)

// Chart is the root configuration for one mail deployment.
//
// Credential material is always a SecretRef (name + key into an externally
// managed Secret); the model has no field that carries a plaintext password.
type Chart struct {
	// Name is the release name used as prefix for all generated resources.
	Name string
	// Namespace all namespaced resources are generated into.
	Namespace string

	// Domain is the primary mail domain (RFC-1035 syntax).
	Domain string
	// Hostnames are the public FQDNs the deployment answers on. The first
	// entry becomes the server hostname advertised by the mail services.
	Hostnames []string
	// Subnet is the pod subnet (IPv4 CIDR) trusted for relaying.
	Subnet string

	// InitialAccount optionally seeds the first admin account.
	InitialAccount *InitialAccount

	Database Database
	Redis    Redis

	// SecretKey references the session/signing key shared by the containers.
	SecretKey SecretRef

	// StorageClass is the cluster-wide default storage class; a
	// per-component StorageSpec.ClassName overrides it.
	StorageClass string
	// Storage holds per-component persistent volume requests, keyed by
	// component name. Unset components fall back to documented defaults.
	Storage map[string]StorageSpec
	// Resources holds per-component CPU/memory requests and limits, keyed
	// by component name. Unset components fall back to documented defaults.
	Resources map[string]ResourceSpec

	Components Components
	Images     Images
	Ingress    Ingress

	// MessageSizeLimit is the maximum accepted message size
	// (binary size syntax, e.g. "50Mi").
	MessageSizeLimit string
	// FetchmailDelay is the polling interval in seconds for the fetchmail
	// component.
	FetchmailDelay int
	// LogLevel is passed through to the mail containers
	// (CRITICAL, ERROR, WARNING, INFO, DEBUG).
	LogLevel string
}

// SecretRef points at one key of an externally created Secret.
type SecretRef struct {
	Name string
	Key  string
}

// IsZero reports whether the reference is unset.
func (r SecretRef) IsZero() bool { return r.Name == "" && r.Key == "" }

// InitialAccount seeds the first admin user at startup.
type InitialAccount struct {
	// Name is the local part of the account address.
	Name string
	// Domain of the account; falls back to Chart.Domain when empty.
	Domain string
	// PasswordSecret references the account password.
	PasswordSecret SecretRef
}

// Redis describes the external Redis instance consumed by the containers.
type Redis struct {
	Host string
	Port int
	// PasswordSecret is optional; nil means unauthenticated Redis.
	PasswordSecret *SecretRef
}

// StorageSpec requests a persistent volume for one component.
type StorageSpec struct {
	// Size in binary units ("50Gi").
	Size string
	// ClassName overrides the chart-wide storage class when set.
	ClassName string
}

// ResourceSpec declares CPU/memory requests and limits for one component.
// CPU uses millicore ("200m") or core ("0.5") syntax, memory uses binary
// size syntax ("1Gi").
type ResourceSpec struct {
	CPURequest    string
	CPULimit      string
	MemoryRequest string
	MemoryLimit   string
}

// Components toggles the optional parts of the deployment. Core components
// (admin, front, postfix, dovecot, dovecot-submission, rspamd) are always
// generated. Toggles are independent of each other.
type Components struct {
	Webmail   bool
	ClamAV    bool
	Fetchmail bool
	Webdav    bool
}

// Images selects the container image source for the Mailu components.
// The dovecot-submission component embeds the official upstream Dovecot
// image and is not affected by these fields.
type Images struct {
	// Registry prefix, e.g. "ghcr.io/mailu".
	Registry string
	// Tag applied to all Mailu images.
	Tag string
}

// Ingress configures the generated Traefik ingress routes.
type Ingress struct {
	// ClassName of the ingress controller ("traefik" by default).
	ClassName string
	// CertResolver selects a Traefik ACME resolver; empty disables the
	// annotation and leaves certificates to externally provisioned TLS.
	CertResolver string
}
