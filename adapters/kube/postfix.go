package kube

import (
	"github.com/mailstack/mailstack/domain/model"

	corev1 "k8s.io/api/core/v1"
)

const postfixPortSMTP = 25

// postfixSpec describes the Mailu postfix component: the SMTP server and
// outbound queue.
func postfixSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompPostfix])
	if err != nil {
		return componentSpec{}, err
	}
	storage, err := storageFor(m, model.CompPostfix, "/queue")
	if err != nil {
		return componentSpec{}, err
	}

	env := []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)}
	env = append(env, databaseEnv(m)...)

	return componentSpec{
		Name:      model.CompPostfix,
		Image:     mailuImage(m.Images, "postfix"),
		Ports:     []portSpec{{Name: "smtp", Port: postfixPortSMTP}},
		Env:       env,
		Storage:   storage,
		Resources: res,
		Liveness:  mkTCPProbe(postfixPortSMTP),
		Readiness: mkTCPProbe(postfixPortSMTP),
	}, nil
}
