// Package naming centralizes derivation of Kubernetes resource names and the
// in-cluster addresses the generated containers use to find each other.
// Keeping the logic here allows future changes (separators, suffixes)
// without touching the component generators.
package naming

import "fmt"

// ResourceName returns `<release>-<component>`, the name used for the
// Deployment and Service of a component.
func ResourceName(release, component string) string {
	return release + "-" + component
}

// DataVolumeName returns `<release>-<component>-data`, the name used for a
// component's PersistentVolumeClaim.
func DataVolumeName(release, component string) string {
	return ResourceName(release, component) + "-data"
}

// SharedConfigMapName returns `<release>-env`, the ConfigMap carrying the
// environment shared by every generated container.
func SharedConfigMapName(release string) string {
	return release + "-env"
}

// PatchConfigMapName returns `<release>-<component>` for the script-carrying
// ConfigMap of a patch component ("nginx-patch", "webmail-patch").
func PatchConfigMapName(release, patchComponent string) string {
	return ResourceName(release, patchComponent)
}

// IngressName returns `<release>-ingress`.
func IngressName(release string) string {
	return release + "-ingress"
}

// ServiceAddress returns the DNS name of a component's Service as seen from
// inside the namespace. Cross-component discovery relies on these names
// being stable; they resolve via cluster DNS without a namespace suffix.
func ServiceAddress(release, component string) string {
	return ResourceName(release, component)
}

// HostPort joins a host and port for the `HOST:PORT` address entries of the
// shared ConfigMap.
func HostPort(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
