package kube

import (
	"github.com/mailstack/mailstack/domain/model"
	"github.com/mailstack/mailstack/internal/naming"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Startup patch scripts for the two components whose vendor-templated
// configuration files need rewiring for the in-cluster topology. The
// scripts are delivered as ConfigMap content, mounted executable, and run
// as the container entrypoint; this package never executes them itself.
//
// Both scripts verify their patch landed and refuse to start the daemon
// when the marker is missing: a mail gateway running on a silently
// half-patched configuration is worse than a crash loop.

const (
	patchMountPath  = "/patches"
	nginxPatchKey   = "patch-nginx.sh"
	webmailPatchKey = "patch-webmail.sh"

	nginxPatchMarker   = "mailstack-ingress"
	webmailPatchMarker = "mailstack-patch"
)

// nginxPatchScript regenerates the vendor nginx.conf, injects an extra
// plain-HTTP listener for ingress traffic (TLS is already terminated by the
// ingress controller) and hands off to nginx.
const nginxPatchScript = `#!/bin/sh
set -e

# Run the vendor configuration generator shipped in the image.
python3 /config.py

# Add a plain-HTTP listener for traffic arriving through the ingress
# controller, next to the vendor-generated port 80 listener.
sed -i "s|listen 80;|listen 80;\n    listen 8080; # ` + nginxPatchMarker + `|" /etc/nginx/nginx.conf

if ! grep -q "` + nginxPatchMarker + `" /etc/nginx/nginx.conf; then
    echo "nginx patch marker missing, refusing to start" >&2
    exit 1
fi

exec nginx -g "daemon off;"
`

// webmailPatchScript rewrites the vendor-generated Roundcube configuration
// to point at the in-cluster IMAP and submission services, then starts the
// web server.
const webmailPatchScript = `#!/bin/sh
set -e

: "${IMAP_ADDRESS:?IMAP_ADDRESS must be set}"
: "${SUBMISSION_ADDRESS:?SUBMISSION_ADDRESS must be set}"

# Let the vendor entrypoint generate config.inc.php without starting the
# web server yet.
/docker-entrypoint.sh true

CONFIG=/var/www/html/config/config.inc.php

sed -i \
    -e "s|^\$config\['default_host'\].*|\$config['default_host'] = '${IMAP_ADDRESS}'; // ` + webmailPatchMarker + `|" \
    -e "s|^\$config\['smtp_server'\].*|\$config['smtp_server'] = '${SUBMISSION_ADDRESS}'; // ` + webmailPatchMarker + `|" \
    "$CONFIG"

if ! grep -q "` + webmailPatchMarker + `" "$CONFIG"; then
    echo "webmail patch marker missing, refusing to start" >&2
    exit 1
fi

exec apache2-foreground
`

// nginxPatchConfigMap delivers the nginx startup patch for the front
// component.
func nginxPatchConfigMap(m *model.Chart) *corev1.ConfigMap {
	return patchConfigMap(m, model.CompNginxPatch, nginxPatchKey, nginxPatchScript)
}

// webmailPatchConfigMap delivers the Roundcube startup patch for the
// webmail component.
func webmailPatchConfigMap(m *model.Chart) *corev1.ConfigMap {
	return patchConfigMap(m, model.CompWebmailPatch, webmailPatchKey, webmailPatchScript)
}

func patchConfigMap(m *model.Chart, component, key, script string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.PatchConfigMapName(m.Name, component),
			Namespace: m.Namespace,
			Labels:    componentLabels(m.Name, component),
		},
		Data: map[string]string{key: script},
	}
}
