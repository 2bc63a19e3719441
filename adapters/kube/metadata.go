package kube

// Centralized label and annotation keys used by the kube adapter.
// Keep these constants stable; changes are API-visible in clusters.
const (
	// MailstackDomain is the namespace domain for all mailstack custom
	// labels and annotations.
	MailstackDomain = "mailstack.dev"

	LabelAppK8sName      = "app.kubernetes.io/name"
	LabelAppK8sComponent = "app.kubernetes.io/component"
	LabelAppK8sPartOf    = "app.kubernetes.io/part-of"
	LabelAppK8sManagedBy = "app.kubernetes.io/managed-by"

	AnnotationMailDomain = MailstackDomain + "/mail-domain"

	// PartOf is the value of the part-of label on every generated workload.
	PartOf = "mailstack"
	// ManagedBy is the value of the managed-by label.
	ManagedBy = "mailstack"
)

// componentLabels returns the standard label set for one component. The
// Service selector uses this exact map, so it must equal the pod template
// labels of the matching Deployment.
func componentLabels(release, component string) map[string]string {
	return map[string]string{
		LabelAppK8sName:      release,
		LabelAppK8sComponent: component,
		LabelAppK8sPartOf:    PartOf,
		LabelAppK8sManagedBy: ManagedBy,
	}
}
