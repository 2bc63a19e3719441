// Package kube turns a validated model.Chart into the set of Kubernetes
// objects that stand up the mail deployment. Generation is a synchronous,
// side-effect-free build: the same chart always yields the same objects,
// and the first configuration problem aborts the whole build with no
// partial output.
package kube

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mailstack/mailstack/domain/model"
	"github.com/mailstack/mailstack/internal/logging"
	"github.com/mailstack/mailstack/internal/naming"
	"github.com/mailstack/mailstack/internal/units"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// Chart generates the manifest set for one mail deployment.
type Chart struct {
	model *model.Chart
}

// NewChart wraps a chart model for generation. The model is defaulted and
// validated inside Build, so callers may pass a sparse configuration.
func NewChart(m *model.Chart) *Chart {
	return &Chart{model: m}
}

// Build resolves defaults, validates, and generates the full manifest set.
//
// The build runs in two phases. Phase one constructs a component spec for
// every enabled component; specs are pure data and read nothing from each
// other. Phase two resolves cross-component addresses against the completed
// registry and renders the objects. A consumer of a service address can
// therefore never run ahead of its producer.
//
// Output order: Namespace, shared ConfigMap, patch ConfigMaps, then per
// component PVC/Deployment/Service, then the Ingress.
func (c *Chart) Build(ctx context.Context) ([]runtime.Object, error) {
	log := logging.FromContext(ctx)

	resolved := c.model.WithDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	m := &resolved

	reg := newRegistry(m.Name)
	type builder struct {
		enabled bool
		build   func(*model.Chart) (componentSpec, error)
	}
	builders := []builder{
		{true, adminSpec},
		{true, frontSpec},
		{true, postfixSpec},
		{true, dovecotSpec},
		{true, submissionSpec},
		{true, rspamdSpec},
		{m.Components.Webmail, webmailSpec},
		{m.Components.ClamAV, clamavSpec},
		{m.Components.Fetchmail, fetchmailSpec},
		{m.Components.Webdav, webdavSpec},
	}
	for _, b := range builders {
		if !b.enabled {
			continue
		}
		spec, err := b.build(m)
		if err != nil {
			return nil, err
		}
		reg.add(spec)
		log.Debug(ctx, "component spec ready", "component", spec.Name)
	}

	envData, err := sharedEnvironment(m, reg)
	if err != nil {
		return nil, err
	}

	objs := []runtime.Object{
		mkNamespace(m),
		mkSharedConfigMap(m, envData),
		nginxPatchConfigMap(m),
	}
	if m.Components.Webmail {
		objs = append(objs, webmailPatchConfigMap(m))
	}

	for _, spec := range reg.components() {
		if spec.Storage != nil {
			objs = append(objs, mkPVC(m, spec))
		}
		objs = append(objs, mkDeployment(m, spec))
		if !spec.NoService {
			objs = append(objs, mkService(m, spec))
		}
	}

	ing, err := traefikIngress(m, reg)
	if err != nil {
		return nil, err
	}
	objs = append(objs, ing)

	log.Info(ctx, "manifest set generated",
		"release", m.Name, "namespace", m.Namespace, "objects", len(objs))
	return objs, nil
}

// sharedEnvironment computes the data of the shared environment ConfigMap.
// Every address entry is resolved through the registry, which is complete
// by the time this runs.
func sharedEnvironment(m *model.Chart, reg *registry) (map[string]string, error) {
	msgBytes, err := units.SizeBytes(m.MessageSizeLimit)
	if err != nil {
		return nil, model.NewConfigurationError("messageSizeLimit", "%v", err)
	}

	data := map[string]string{
		"DOMAIN":             m.Domain,
		"HOSTNAMES":          strings.Join(m.Hostnames, ","),
		"SUBNET":             m.Subnet,
		"MESSAGE_SIZE_LIMIT": strconv.FormatInt(msgBytes, 10),
		// TLS is terminated by the ingress controller; the containers
		// speak plaintext inside the cluster.
		"TLS_FLAVOR":    "notls",
		"LOG_LEVEL":     m.LogLevel,
		"DB_FLAVOR":     string(m.Database.Type),
		"REDIS_ADDRESS": naming.HostPort(m.Redis.Host, m.Redis.Port),
	}

	if pg := m.Database.PostgreSQL; m.Database.Type == model.DatabasePostgreSQL && pg != nil {
		data["DB_HOST"] = pg.Host
		data["DB_PORT"] = strconv.Itoa(pg.Port)
		data["DB_NAME"] = pg.Name
	}

	// Service discovery entries. FRONT_ADDRESS points at the IMAP service,
	// not the front proxy; the upstream containers expect that name and it
	// is preserved for compatibility.
	addresses := []struct {
		key       string
		component string
		portName  string // empty means bare host
	}{
		{"ADMIN_ADDRESS", model.CompAdmin, ""},
		{"FRONT_ADDRESS", model.CompDovecot, ""},
		{"IMAP_ADDRESS", model.CompDovecot, ""},
		{"SMTP_ADDRESS", model.CompPostfix, ""},
		{"SUBMISSION_ADDRESS", model.CompSubmission, ""},
		{"ANTISPAM_ADDRESS", model.CompRspamd, "proxy"},
	}
	for _, a := range addresses {
		var v string
		var err error
		if a.portName == "" {
			v, err = reg.address(a.component)
		} else {
			v, err = reg.addressPort(a.component, a.portName)
		}
		if err != nil {
			return nil, fmt.Errorf("shared environment %s: %w", a.key, err)
		}
		data[a.key] = v
	}

	// Optional feature markers and their addresses.
	data["WEBMAIL"] = "none"
	if reg.enabled(model.CompWebmail) {
		data["WEBMAIL"] = "roundcube"
		v, err := reg.address(model.CompWebmail)
		if err != nil {
			return nil, fmt.Errorf("shared environment WEBMAIL_ADDRESS: %w", err)
		}
		data["WEBMAIL_ADDRESS"] = v
	}
	data["ANTIVIRUS"] = "none"
	if reg.enabled(model.CompClamAV) {
		data["ANTIVIRUS"] = "clamav"
		v, err := reg.addressPort(model.CompClamAV, "clamav")
		if err != nil {
			return nil, fmt.Errorf("shared environment ANTIVIRUS_ADDRESS: %w", err)
		}
		data["ANTIVIRUS_ADDRESS"] = v
	}
	data["WEBDAV"] = "none"
	if reg.enabled(model.CompWebdav) {
		data["WEBDAV"] = "radicale"
		v, err := reg.address(model.CompWebdav)
		if err != nil {
			return nil, fmt.Errorf("shared environment WEBDAV_ADDRESS: %w", err)
		}
		data["WEBDAV_ADDRESS"] = v
	}
	if reg.enabled(model.CompFetchmail) {
		data["FETCHMAIL_DELAY"] = strconv.Itoa(m.FetchmailDelay)
	}

	return data, nil
}

func mkNamespace(m *model.Chart) *corev1.Namespace {
	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Namespace"},
		ObjectMeta: metav1.ObjectMeta{
			Name:   m.Namespace,
			Labels: componentLabels(m.Name, "namespace"),
			Annotations: map[string]string{
				AnnotationMailDomain: m.Domain,
			},
		},
	}
}

func mkSharedConfigMap(m *model.Chart, data map[string]string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.SharedConfigMapName(m.Name),
			Namespace: m.Namespace,
			Labels:    componentLabels(m.Name, "env"),
		},
		Data: data,
	}
}
