package kube

import (
	"fmt"

	"github.com/mailstack/mailstack/domain/model"
	"github.com/mailstack/mailstack/internal/naming"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

// portSpec is one named TCP port of a component.
type portSpec struct {
	Name string
	Port int32
}

// storageSpec is the resolved persistent volume request of a component.
type storageSpec struct {
	Size      resource.Quantity
	ClassName string
	MountPath string
}

// scriptMount mounts a patch-script ConfigMap into the container and makes
// it the container entrypoint.
type scriptMount struct {
	// ConfigMapName of the script-carrying ConfigMap.
	ConfigMapName string
	// Key of the script inside the ConfigMap.
	Key string
	// MountPath of the script directory inside the container.
	MountPath string
}

// componentSpec is the pure-data description of one component, produced in
// the first build phase. It carries everything rendering needs; no spec
// reads another spec during construction, which is what makes the
// producer-before-consumer ordering of the shared environment impossible to
// get wrong.
type componentSpec struct {
	Name      string
	Image     string
	Command   []string
	Ports     []portSpec
	Env       []corev1.EnvVar
	Storage   *storageSpec
	Resources corev1.ResourceRequirements
	// Arch pins scheduling to one CPU architecture (kubernetes.io/arch)
	// when the embedded image lacks multi-arch builds.
	Arch      string
	Liveness  *corev1.Probe
	Readiness *corev1.Probe
	Script    *scriptMount
	// NoService suppresses Service generation for components without
	// listeners (fetchmail).
	NoService bool
}

// registry is the completed set of component specs. The composer builds it
// fully before any cross-component lookup happens (second phase), so a
// consumer can never observe a missing producer: either the component is
// registered and resolvable, or lookup fails loudly.
type registry struct {
	release string
	specs   map[string]*componentSpec
	order   []string
}

func newRegistry(release string) *registry {
	return &registry{release: release, specs: map[string]*componentSpec{}}
}

func (r *registry) add(spec componentSpec) {
	s := spec
	r.specs[s.Name] = &s
	r.order = append(r.order, s.Name)
}

// components returns the registered specs in registration order.
func (r *registry) components() []*componentSpec {
	out := make([]*componentSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}

func (r *registry) enabled(component string) bool {
	_, ok := r.specs[component]
	return ok
}

// address resolves the in-cluster DNS name of a component's Service.
func (r *registry) address(component string) (string, error) {
	spec, ok := r.specs[component]
	if !ok {
		return "", fmt.Errorf("resolve address of %q: %w", component, model.ErrComponentUnknown)
	}
	if spec.NoService {
		return "", fmt.Errorf("component %q exposes no service", component)
	}
	return naming.ServiceAddress(r.release, component), nil
}

// addressPort resolves `host:port` for a named port of a component.
func (r *registry) addressPort(component, portName string) (string, error) {
	host, err := r.address(component)
	if err != nil {
		return "", err
	}
	spec := r.specs[component]
	for _, p := range spec.Ports {
		if p.Name == portName {
			return naming.HostPort(host, int(p.Port)), nil
		}
	}
	return "", fmt.Errorf("component %q has no port named %q", component, portName)
}
