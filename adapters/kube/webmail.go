package kube

import (
	"github.com/mailstack/mailstack/domain/model"
	"github.com/mailstack/mailstack/internal/naming"

	corev1 "k8s.io/api/core/v1"
)

const webmailPortHTTP = 80

// webmailSpec describes the optional Roundcube webmail component. Its
// vendor-generated config.inc.php is rewritten at startup by the
// webmail-patch script to point at the in-cluster IMAP and submission
// services.
func webmailSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompWebmail])
	if err != nil {
		return componentSpec{}, err
	}
	storage, err := storageFor(m, model.CompWebmail, "/data")
	if err != nil {
		return componentSpec{}, err
	}

	env := []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)}
	env = append(env, databaseEnv(m)...)
	if m.Redis.PasswordSecret != nil {
		env = append(env, secretEnv("REDIS_PASSWORD", *m.Redis.PasswordSecret))
	}

	return componentSpec{
		Name:      model.CompWebmail,
		Image:     mailuImage(m.Images, "roundcube"),
		Command:   []string{"/bin/sh", patchMountPath + "/" + webmailPatchKey},
		Ports:     []portSpec{{Name: "http", Port: webmailPortHTTP}},
		Env:       env,
		Storage:   storage,
		Resources: res,
		Script: &scriptMount{
			ConfigMapName: naming.PatchConfigMapName(m.Name, model.CompWebmailPatch),
			Key:           webmailPatchKey,
			MountPath:     patchMountPath,
		},
		Liveness:  mkHTTPProbe("/", webmailPortHTTP),
		Readiness: mkHTTPProbe("/", webmailPortHTTP),
	}, nil
}
