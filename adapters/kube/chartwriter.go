package kube

import (
	"fmt"
	"strings"

	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chartutil"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
)

// ChartMeta describes the Helm chart wrapper written by WriteChart.
type ChartMeta struct {
	Name        string
	Version     string
	AppVersion  string
	Description string
}

// WriteChart packages a generated manifest set as an installable Helm chart
// archive under destDir and returns the archive path. Every object becomes
// one plain template file; no Helm templating is introduced, the documents
// are shipped verbatim so `helm install` and `kubectl apply` of
// BuildManifest output stay equivalent.
func WriteChart(objs []runtime.Object, meta ChartMeta, destDir string) (string, error) {
	if meta.Name == "" {
		meta.Name = "mailstack"
	}
	if meta.Version == "" {
		meta.Version = "0.1.0"
	}

	ch := &chart.Chart{
		Metadata: &chart.Metadata{
			APIVersion:  chart.APIVersionV2,
			Name:        meta.Name,
			Version:     meta.Version,
			AppVersion:  meta.AppVersion,
			Description: meta.Description,
			Type:        "application",
		},
	}

	for i, obj := range objs {
		if obj == nil {
			continue
		}
		doc, err := marshalObject(obj)
		if err != nil {
			return "", err
		}
		acc, err := apimeta.Accessor(obj)
		if err != nil {
			return "", fmt.Errorf("object %d has no metadata: %w", i, err)
		}
		kind := strings.ToLower(obj.GetObjectKind().GroupVersionKind().Kind)
		ch.Templates = append(ch.Templates, &chart.File{
			Name: fmt.Sprintf("templates/%02d-%s-%s.yaml", i, kind, acc.GetName()),
			Data: doc,
		})
	}

	path, err := chartutil.Save(ch, destDir)
	if err != nil {
		return "", fmt.Errorf("save chart: %w", err)
	}
	return path, nil
}
