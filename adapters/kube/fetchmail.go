package kube

import (
	"github.com/mailstack/mailstack/domain/model"

	corev1 "k8s.io/api/core/v1"
)

// fetchmailSpec describes the optional fetchmail component: a poller that
// pulls remote mailboxes into local accounts. It exposes no listener, so no
// Service is generated for it.
func fetchmailSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompFetchmail])
	if err != nil {
		return componentSpec{}, err
	}

	env := []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)}
	env = append(env, databaseEnv(m)...)

	return componentSpec{
		Name:      model.CompFetchmail,
		Image:     mailuImage(m.Images, "fetchmail"),
		Env:       env,
		Resources: res,
		NoService: true,
	}, nil
}
