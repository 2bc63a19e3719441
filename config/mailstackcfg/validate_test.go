package mailstackcfg

import (
	"strings"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Root)
		fragment string
	}{
		{
			name:     "unknown toggle",
			mutate:   func(r *Root) { r.Components = map[string]bool{"postfix": false} },
			fragment: "components.postfix",
		},
		{
			name:     "storage for stateless component",
			mutate:   func(r *Root) { r.Storage = map[string]Storage{"front": {Size: "1Gi"}} },
			fragment: "storage.front",
		},
		{
			name:     "resources for unknown component",
			mutate:   func(r *Root) { r.Resources = map[string]Resources{"imap": {}} },
			fragment: "resources.imap",
		},
		{
			name: "sqlite with postgresql block",
			mutate: func(r *Root) {
				r.Database = Database{Type: "sqlite", PostgreSQL: &PostgreSQL{Host: "pg"}}
			},
			fragment: "database.postgresql",
		},
		{
			name:     "postgresql without block",
			mutate:   func(r *Root) { r.Database = Database{Type: "postgresql"} },
			fragment: "database.postgresql",
		},
		{
			name:     "unknown database type",
			mutate:   func(r *Root) { r.Database = Database{Type: "mysql"} },
			fragment: "database.type",
		},
		{
			name:     "duplicate hostname",
			mutate:   func(r *Root) { r.Hostnames = []string{"mail.example.com", "mail.example.com"} },
			fragment: "hostnames[1]",
		},
		{
			name:     "settings reserved",
			mutate:   func(r *Root) { r.Settings = map[string]interface{}{"REPLICAS": 2} },
			fragment: "settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Root{Domain: "example.com"}
			tt.mutate(r)
			err := r.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.fragment) {
				t.Errorf("error %q does not mention %q", err, tt.fragment)
			}
		})
	}
}
