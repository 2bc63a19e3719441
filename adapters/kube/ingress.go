package kube

import (
	"github.com/mailstack/mailstack/domain/model"
	"github.com/mailstack/mailstack/internal/naming"

	netv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

// traefikIngress routes every configured hostname to the front component's
// ingress listener. TLS terminates at the ingress controller
// (router.tls=true on the websecure entrypoint); the SMTP/IMAP/POP3 TCP
// ports stay on the front Service and are not routed here.
func traefikIngress(m *model.Chart, reg *registry) (*netv1.Ingress, error) {
	backend, err := reg.address(model.CompFront)
	if err != nil {
		return nil, err
	}

	path := netv1.HTTPIngressPath{
		Path:     "/",
		PathType: ptr.To(netv1.PathTypePrefix),
		Backend: netv1.IngressBackend{
			Service: &netv1.IngressServiceBackend{
				Name: backend,
				Port: netv1.ServiceBackendPort{Name: "ingress"},
			},
		},
	}

	var rules []netv1.IngressRule
	for _, host := range m.Hostnames {
		rules = append(rules, netv1.IngressRule{
			Host: host,
			IngressRuleValue: netv1.IngressRuleValue{
				HTTP: &netv1.HTTPIngressRuleValue{Paths: []netv1.HTTPIngressPath{path}},
			},
		})
	}

	ann := map[string]string{
		"traefik.ingress.kubernetes.io/router.entrypoints": "websecure",
		"traefik.ingress.kubernetes.io/router.tls":         "true",
	}
	if m.Ingress.CertResolver != "" {
		ann["traefik.ingress.kubernetes.io/router.tls.certresolver"] = m.Ingress.CertResolver
	}

	return &netv1.Ingress{
		TypeMeta: metav1.TypeMeta{APIVersion: "networking.k8s.io/v1", Kind: "Ingress"},
		ObjectMeta: metav1.ObjectMeta{
			Name:        naming.IngressName(m.Name),
			Namespace:   m.Namespace,
			Labels:      componentLabels(m.Name, model.CompIngress),
			Annotations: ann,
		},
		Spec: netv1.IngressSpec{
			IngressClassName: ptr.To(m.Ingress.ClassName),
			Rules:            rules,
		},
	}, nil
}
