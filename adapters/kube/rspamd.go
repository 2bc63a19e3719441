package kube

import (
	"github.com/mailstack/mailstack/domain/model"

	corev1 "k8s.io/api/core/v1"
)

const (
	rspamdPortProxy      = 11332
	rspamdPortController = 11334
)

// rspamdSpec describes the Mailu rspamd component: spam filtering proxy and
// its controller API. Filter state lives on a small persistent volume;
// transient state goes to the shared Redis.
func rspamdSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompRspamd])
	if err != nil {
		return componentSpec{}, err
	}
	storage, err := storageFor(m, model.CompRspamd, "/var/lib/rspamd")
	if err != nil {
		return componentSpec{}, err
	}

	env := []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)}
	if m.Redis.PasswordSecret != nil {
		env = append(env, secretEnv("REDIS_PASSWORD", *m.Redis.PasswordSecret))
	}

	return componentSpec{
		Name:  model.CompRspamd,
		Image: mailuImage(m.Images, "rspamd"),
		Ports: []portSpec{
			{Name: "proxy", Port: rspamdPortProxy},
			{Name: "controller", Port: rspamdPortController},
		},
		Env:       env,
		Storage:   storage,
		Resources: res,
		Liveness:  mkHTTPProbe("/ping", rspamdPortController),
		Readiness: mkHTTPProbe("/ping", rspamdPortController),
	}, nil
}
