package mailstackcfg

import (
	"github.com/mailstack/mailstack/domain/model"
)

// ToChart converts the configuration to the domain model. The result still
// carries empty fields where the file omitted optional settings; defaulting
// and semantic validation happen inside the manifest builder.
func (r *Root) ToChart() *model.Chart {
	chart := &model.Chart{
		Name:      r.Name,
		Namespace: r.Namespace,
		Domain:    r.Domain,
		Hostnames: append([]string{}, r.Hostnames...),
		Subnet:    r.Subnet,

		Database: toModelDatabase(r.Database),
		Redis:    toModelRedis(r.Redis),

		SecretKey: model.SecretRef{Name: r.SecretKey.Name, Key: r.SecretKey.Key},

		StorageClass: r.StorageClass,
		Storage:      toModelStorage(r.Storage),
		Resources:    toModelResources(r.Resources),

		Components: model.Components{
			Webmail:   r.Components[model.CompWebmail],
			ClamAV:    r.Components[model.CompClamAV],
			Fetchmail: r.Components[model.CompFetchmail],
			Webdav:    r.Components[model.CompWebdav],
		},
		Images:  model.Images{Registry: r.Images.Registry, Tag: r.Images.Tag},
		Ingress: model.Ingress{ClassName: r.Ingress.ClassName, CertResolver: r.Ingress.CertResolver},

		MessageSizeLimit: r.MessageSizeLimit,
		FetchmailDelay:   r.FetchmailDelay,
		LogLevel:         r.LogLevel,
	}

	if r.InitialAccount != nil {
		chart.InitialAccount = &model.InitialAccount{
			Name:   r.InitialAccount.Name,
			Domain: r.InitialAccount.Domain,
			PasswordSecret: model.SecretRef{
				Name: r.InitialAccount.PasswordSecret.Name,
				Key:  r.InitialAccount.PasswordSecret.Key,
			},
		}
	}

	return chart
}

func toModelDatabase(d Database) model.Database {
	out := model.Database{Type: model.DatabaseType(d.Type)}
	if out.Type == "" {
		out.Type = model.DatabaseSQLite
	}
	if d.PostgreSQL != nil {
		out.PostgreSQL = &model.PostgreSQLDatabase{
			Host: d.PostgreSQL.Host,
			Port: d.PostgreSQL.Port,
			Name: d.PostgreSQL.Name,
			AuthSecret: model.DatabaseAuth{
				Name:        d.PostgreSQL.AuthSecret.Name,
				UserKey:     d.PostgreSQL.AuthSecret.UserKey,
				PasswordKey: d.PostgreSQL.AuthSecret.PasswordKey,
			},
		}
	}
	return out
}

func toModelRedis(r Redis) model.Redis {
	out := model.Redis{Host: r.Host, Port: r.Port}
	if r.PasswordSecret != nil {
		out.PasswordSecret = &model.SecretRef{
			Name: r.PasswordSecret.Name,
			Key:  r.PasswordSecret.Key,
		}
	}
	return out
}

func toModelStorage(in map[string]Storage) map[string]model.StorageSpec {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]model.StorageSpec, len(in))
	for name, s := range in {
		out[name] = model.StorageSpec{Size: s.Size, ClassName: s.ClassName}
	}
	return out
}

func toModelResources(in map[string]Resources) map[string]model.ResourceSpec {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]model.ResourceSpec, len(in))
	for name, r := range in {
		out[name] = model.ResourceSpec{
			CPURequest:    r.CPURequest,
			CPULimit:      r.CPULimit,
			MemoryRequest: r.MemoryRequest,
			MemoryLimit:   r.MemoryLimit,
		}
	}
	return out
}
