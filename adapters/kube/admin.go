package kube

import (
	"github.com/mailstack/mailstack/domain/model"

	corev1 "k8s.io/api/core/v1"
)

const adminPortHTTP = 80

// adminSpec describes the Mailu admin component: the management UI and the
// account database frontend. It owns the initial-account seeding
// environment.
func adminSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompAdmin])
	if err != nil {
		return componentSpec{}, err
	}
	storage, err := storageFor(m, model.CompAdmin, "/data")
	if err != nil {
		return componentSpec{}, err
	}

	env := []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)}
	env = append(env, databaseEnv(m)...)
	if m.Redis.PasswordSecret != nil {
		env = append(env, secretEnv("REDIS_PASSWORD", *m.Redis.PasswordSecret))
	}
	if ia := m.InitialAccount; ia != nil {
		env = append(env,
			corev1.EnvVar{Name: "INITIAL_ADMIN_ACCOUNT", Value: ia.Name},
			corev1.EnvVar{Name: "INITIAL_ADMIN_DOMAIN", Value: ia.Domain},
			// ifmissing keeps restarts idempotent: the account is only
			// created when absent.
			corev1.EnvVar{Name: "INITIAL_ADMIN_MODE", Value: "ifmissing"},
			secretEnv("INITIAL_ADMIN_PW", ia.PasswordSecret),
		)
	}

	return componentSpec{
		Name:      model.CompAdmin,
		Image:     mailuImage(m.Images, "admin"),
		Ports:     []portSpec{{Name: "http", Port: adminPortHTTP}},
		Env:       env,
		Storage:   storage,
		Resources: res,
		Liveness:  mkHTTPProbe("/ping", adminPortHTTP),
		Readiness: mkHTTPProbe("/ping", adminPortHTTP),
	}, nil
}
