package mailstackcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
name: prod-mail
namespace: mail
domain: example.com
hostnames:
  - mail.example.com
  - webmail.example.com
subnet: 10.42.0.0/16
initialAccount:
  name: admin
  passwordSecret:
    name: mail-secrets
    key: admin-password
database:
  type: postgresql
  postgresql:
    host: pg.example.com
    port: 5433
    name: mailu
    authSecret:
      name: pg-auth
redis:
  host: redis.example.com
  passwordSecret:
    name: redis-auth
    key: password
secretKey:
  name: mail-secrets
  key: secret-key
storageClass: fast-ssd
storage:
  dovecot:
    size: 200Gi
resources:
  dovecot:
    memoryLimit: 8Gi
components:
  webmail: true
  clamav: false
images:
  tag: "2.1"
ingress:
  certResolver: letsencrypt
messageSizeLimit: 100Mi
fetchmailDelay: 120
logLevel: INFO
`

func TestLoadSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mailstack.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Name != "prod-mail" || cfg.Namespace != "mail" {
		t.Errorf("name/namespace = %s/%s", cfg.Name, cfg.Namespace)
	}
	if cfg.Domain != "example.com" {
		t.Errorf("domain = %s", cfg.Domain)
	}
	if len(cfg.Hostnames) != 2 || cfg.Hostnames[0] != "mail.example.com" {
		t.Errorf("hostnames = %v", cfg.Hostnames)
	}
	if cfg.Database.Type != "postgresql" {
		t.Errorf("database.type = %s", cfg.Database.Type)
	}
	if cfg.Database.PostgreSQL == nil || cfg.Database.PostgreSQL.Port != 5433 {
		t.Errorf("database.postgresql = %+v", cfg.Database.PostgreSQL)
	}
	if cfg.Redis.PasswordSecret == nil || cfg.Redis.PasswordSecret.Name != "redis-auth" {
		t.Errorf("redis.passwordSecret = %+v", cfg.Redis.PasswordSecret)
	}
	if cfg.Storage["dovecot"].Size != "200Gi" {
		t.Errorf("storage.dovecot = %+v", cfg.Storage["dovecot"])
	}
	if cfg.Resources["dovecot"].MemoryLimit != "8Gi" {
		t.Errorf("resources.dovecot = %+v", cfg.Resources["dovecot"])
	}
	if !cfg.Components["webmail"] || cfg.Components["clamav"] {
		t.Errorf("components = %v", cfg.Components)
	}
	if cfg.Images.Tag != "2.1" {
		t.Errorf("images.tag = %s", cfg.Images.Tag)
	}
	if cfg.Ingress.CertResolver != "letsencrypt" {
		t.Errorf("ingress.certResolver = %s", cfg.Ingress.CertResolver)
	}
	if cfg.MessageSizeLimit != "100Mi" || cfg.FetchmailDelay != 120 || cfg.LogLevel != "INFO" {
		t.Errorf("tuning = %q %d %q", cfg.MessageSizeLimit, cfg.FetchmailDelay, cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.yml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("domain: example.com\nhostname: mail.example.com\n"))
	if err == nil {
		t.Fatal("expected error for unknown field (hostname vs hostnames)")
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse of empty input returned error: %v", err)
	}
	if cfg.Domain != "" || len(cfg.Hostnames) != 0 {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("domain: [unterminated"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
