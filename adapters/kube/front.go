package kube

import (
	"github.com/mailstack/mailstack/domain/model"
	"github.com/mailstack/mailstack/internal/naming"

	corev1 "k8s.io/api/core/v1"
)

// frontIngressPort is the extra plain-HTTP listener the nginx patch script
// injects for traffic arriving through the ingress controller, which has
// already terminated TLS.
const frontIngressPort = 8080

// frontSpec describes the Mailu front component: the nginx proxy that
// terminates every mail protocol and fans out to the backend services. Its
// vendor-generated nginx.conf is rewritten at startup by the nginx-patch
// script (see patches.go).
func frontSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompFront])
	if err != nil {
		return componentSpec{}, err
	}

	return componentSpec{
		Name:    model.CompFront,
		Image:   mailuImage(m.Images, "nginx"),
		Command: []string{"/bin/sh", patchMountPath + "/" + nginxPatchKey},
		Ports: []portSpec{
			{Name: "http", Port: 80},
			{Name: "https", Port: 443},
			{Name: "ingress", Port: frontIngressPort},
			{Name: "smtp", Port: 25},
			{Name: "smtps", Port: 465},
			{Name: "submission", Port: 587},
			{Name: "imap", Port: 143},
			{Name: "imaps", Port: 993},
			{Name: "pop3", Port: 110},
			{Name: "pop3s", Port: 995},
		},
		Env:       []corev1.EnvVar{secretEnv("SECRET_KEY", m.SecretKey)},
		Resources: res,
		Script: &scriptMount{
			ConfigMapName: naming.PatchConfigMapName(m.Name, model.CompNginxPatch),
			Key:           nginxPatchKey,
			MountPath:     patchMountPath,
		},
		Liveness:  mkTCPProbe(25),
		Readiness: mkTCPProbe(frontIngressPort),
	}, nil
}
