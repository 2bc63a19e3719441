package kube

import (
	"github.com/mailstack/mailstack/domain/model"

	corev1 "k8s.io/api/core/v1"
)

const webdavPort = 5232

// webdavSpec describes the optional Radicale CalDAV/CardDAV component.
func webdavSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompWebdav])
	if err != nil {
		return componentSpec{}, err
	}
	storage, err := storageFor(m, model.CompWebdav, "/data")
	if err != nil {
		return componentSpec{}, err
	}

	return componentSpec{
		Name:      model.CompWebdav,
		Image:     mailuImage(m.Images, "radicale"),
		Ports:     []portSpec{{Name: "http", Port: webdavPort}},
		Env:       []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)},
		Storage:   storage,
		Resources: res,
		Liveness:  mkTCPProbe(webdavPort),
		Readiness: mkTCPProbe(webdavPort),
	}, nil
}
