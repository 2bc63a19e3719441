package mailstackcfg

import (
	"fmt"

	"github.com/mailstack/mailstack/domain/model"
)

var storageComponents = map[string]struct{}{
	model.CompAdmin:   {},
	model.CompPostfix: {},
	model.CompDovecot: {},
	model.CompRspamd:  {},
	model.CompWebmail: {},
	model.CompClamAV:  {},
	model.CompWebdav:  {},
}

var resourceComponents = map[string]struct{}{
	model.CompAdmin:      {},
	model.CompFront:      {},
	model.CompPostfix:    {},
	model.CompDovecot:    {},
	model.CompSubmission: {},
	model.CompRspamd:     {},
	model.CompWebmail:    {},
	model.CompClamAV:     {},
	model.CompFetchmail:  {},
	model.CompWebdav:     {},
}

var toggleComponents = map[string]struct{}{
	model.CompWebmail:   {},
	model.CompClamAV:    {},
	model.CompFetchmail: {},
	model.CompWebdav:    {},
}

// Validate performs structural validation on the configuration tree.
// Semantic checks (domain syntax, size grammar, secret references) run
// later on the converted model.Chart.
func (r *Root) Validate() error {
	if err := r.validateComponents(); err != nil {
		return err
	}
	if err := r.validateDatabase(); err != nil {
		return err
	}
	if err := r.validateHostnames(); err != nil {
		return err
	}
	if len(r.Settings) > 0 {
		return fmt.Errorf("settings is reserved and not supported yet")
	}
	return nil
}

func (r *Root) validateComponents() error {
	for name := range r.Components {
		if _, ok := toggleComponents[name]; !ok {
			return fmt.Errorf("components.%s: not a toggleable component", name)
		}
	}
	for name := range r.Storage {
		if _, ok := storageComponents[name]; !ok {
			return fmt.Errorf("storage.%s: component has no persistent volume", name)
		}
	}
	for name := range r.Resources {
		if _, ok := resourceComponents[name]; !ok {
			return fmt.Errorf("resources.%s: unknown component", name)
		}
	}
	return nil
}

func (r *Root) validateDatabase() error {
	switch r.Database.Type {
	case "", string(model.DatabaseSQLite):
		if r.Database.PostgreSQL != nil {
			return fmt.Errorf("database.postgresql: cannot be set when database.type is %q", model.DatabaseSQLite)
		}
	case string(model.DatabasePostgreSQL):
		if r.Database.PostgreSQL == nil {
			return fmt.Errorf("database.postgresql: required when database.type is %q", model.DatabasePostgreSQL)
		}
	default:
		return fmt.Errorf("database.type: invalid type %q, must be %q or %q", r.Database.Type, model.DatabaseSQLite, model.DatabasePostgreSQL)
	}
	return nil
}

func (r *Root) validateHostnames() error {
	seen := make(map[string]struct{}, len(r.Hostnames))
	for i, h := range r.Hostnames {
		if _, exists := seen[h]; exists {
			return fmt.Errorf("hostnames[%d]: duplicate hostname %q", i, h)
		}
		seen[h] = struct{}{}
	}
	return nil
}
