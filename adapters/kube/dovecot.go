package kube

import (
	"github.com/mailstack/mailstack/domain/model"

	corev1 "k8s.io/api/core/v1"
)

const (
	dovecotPortIMAP  = 143
	dovecotPortPOP3  = 110
	dovecotPortLMTP  = 2525
	dovecotPortSieve = 4190
)

// dovecotSpec describes the Mailu dovecot component: IMAP/POP3 access, LMTP
// delivery and Sieve filtering, plus the mailbox volume. The Dovecot-based
// image ships amd64 only, so scheduling is restricted to amd64.
func dovecotSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompDovecot])
	if err != nil {
		return componentSpec{}, err
	}
	storage, err := storageFor(m, model.CompDovecot, "/mail")
	if err != nil {
		return componentSpec{}, err
	}

	env := []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)}
	env = append(env, databaseEnv(m)...)

	return componentSpec{
		Name:  model.CompDovecot,
		Image: mailuImage(m.Images, "dovecot"),
		Ports: []portSpec{
			{Name: "imap", Port: dovecotPortIMAP},
			{Name: "pop3", Port: dovecotPortPOP3},
			{Name: "lmtp", Port: dovecotPortLMTP},
			{Name: "sieve", Port: dovecotPortSieve},
		},
		Env:       env,
		Storage:   storage,
		Resources: res,
		Arch:      "amd64",
		Liveness:  mkTCPProbe(dovecotPortIMAP),
		Readiness: mkTCPProbe(dovecotPortIMAP),
	}, nil
}
