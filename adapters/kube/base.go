package kube

import (
	"fmt"

	"github.com/mailstack/mailstack/domain/model"
	"github.com/mailstack/mailstack/internal/naming"
	"github.com/mailstack/mailstack/internal/units"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"
)

const (
	dataVolumeName   = "data"
	scriptVolumeName = "startup"

	// scriptFileMode makes mounted patch scripts executable.
	scriptFileMode = int32(0o755)
)

// mailuImage composes the image reference of a Mailu component.
func mailuImage(images model.Images, name string) string {
	return fmt.Sprintf("%s/%s:%s", images.Registry, name, images.Tag)
}

// resourceRequirements converts a resolved model.ResourceSpec into container
// resource requirements. The spec is expected to be fully populated by
// model.WithDefaults; empty fields are simply omitted.
func resourceRequirements(spec model.ResourceSpec) (corev1.ResourceRequirements, error) {
	rr := corev1.ResourceRequirements{
		Requests: corev1.ResourceList{},
		Limits:   corev1.ResourceList{},
	}
	for _, e := range []struct {
		value string
		list  corev1.ResourceList
		name  corev1.ResourceName
		cpu   bool
	}{
		{spec.CPURequest, rr.Requests, corev1.ResourceCPU, true},
		{spec.CPULimit, rr.Limits, corev1.ResourceCPU, true},
		{spec.MemoryRequest, rr.Requests, corev1.ResourceMemory, false},
		{spec.MemoryLimit, rr.Limits, corev1.ResourceMemory, false},
	} {
		if e.value == "" {
			continue
		}
		if e.cpu {
			q, err := units.CPUQuantity(e.value)
			if err != nil {
				return corev1.ResourceRequirements{}, err
			}
			e.list[e.name] = q
		} else {
			q, err := units.ParseSize(e.value)
			if err != nil {
				return corev1.ResourceRequirements{}, err
			}
			e.list[e.name] = q
		}
	}
	return rr, nil
}

// storageFor resolves the storage spec of a component into a storageSpec
// bound to the given mount path.
func storageFor(m *model.Chart, component, mountPath string) (*storageSpec, error) {
	spec, ok := m.Storage[component]
	if !ok {
		return nil, fmt.Errorf("component %q has no storage spec", component)
	}
	size, err := units.ParseSize(spec.Size)
	if err != nil {
		return nil, model.NewConfigurationError("storage."+component+".size", "%v", err)
	}
	return &storageSpec{Size: size, ClassName: spec.ClassName, MountPath: mountPath}, nil
}

// --- probe declarations (the cluster runs them, we only declare them) ---

func mkTCPProbe(port int) *corev1.Probe {
	return &corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			TCPSocket: &corev1.TCPSocketAction{Port: intstr.FromInt(port)},
		},
		TimeoutSeconds:      5,
		PeriodSeconds:       10,
		InitialDelaySeconds: 10,
		FailureThreshold:    6,
	}
}

func mkHTTPProbe(path string, port int) *corev1.Probe {
	return &corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			HTTPGet: &corev1.HTTPGetAction{Path: path, Port: intstr.FromInt(port)},
		},
		TimeoutSeconds:      5,
		PeriodSeconds:       10,
		InitialDelaySeconds: 10,
		FailureThreshold:    6,
	}
}

// archAffinity restricts scheduling to one CPU architecture. Used for
// components embedding images without multi-arch builds; the constraint is
// declarative data on the component spec, not a post-hoc patch.
func archAffinity(arch string) *corev1.Affinity {
	return &corev1.Affinity{
		NodeAffinity: &corev1.NodeAffinity{
			RequiredDuringSchedulingIgnoredDuringExecution: &corev1.NodeSelector{
				NodeSelectorTerms: []corev1.NodeSelectorTerm{{
					MatchExpressions: []corev1.NodeSelectorRequirement{{
						Key:      "kubernetes.io/arch",
						Operator: corev1.NodeSelectorOpIn,
						Values:   []string{arch},
					}},
				}},
			},
		},
	}
}

// mkDeployment renders the Deployment of a component spec: one replica,
// Recreate strategy, standard labels, shared environment via envFrom.
func mkDeployment(m *model.Chart, spec *componentSpec) *appsv1.Deployment {
	labels := componentLabels(m.Name, spec.Name)

	container := corev1.Container{
		Name:            spec.Name,
		Image:           spec.Image,
		ImagePullPolicy: corev1.PullIfNotPresent,
		Command:         spec.Command,
		Env:             spec.Env,
		Resources:       spec.Resources,
		LivenessProbe:   spec.Liveness,
		ReadinessProbe:  spec.Readiness,
		EnvFrom: []corev1.EnvFromSource{{
			ConfigMapRef: &corev1.ConfigMapEnvSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: naming.SharedConfigMapName(m.Name)},
			},
		}},
	}
	for _, p := range spec.Ports {
		container.Ports = append(container.Ports, corev1.ContainerPort{
			Name:          p.Name,
			ContainerPort: p.Port,
			Protocol:      corev1.ProtocolTCP,
		})
	}

	var volumes []corev1.Volume
	if spec.Storage != nil {
		container.VolumeMounts = append(container.VolumeMounts, corev1.VolumeMount{
			Name:      dataVolumeName,
			MountPath: spec.Storage.MountPath,
		})
		volumes = append(volumes, corev1.Volume{
			Name: dataVolumeName,
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: naming.DataVolumeName(m.Name, spec.Name),
				},
			},
		})
	}
	if spec.Script != nil {
		container.VolumeMounts = append(container.VolumeMounts, corev1.VolumeMount{
			Name:      scriptVolumeName,
			MountPath: spec.Script.MountPath,
		})
		volumes = append(volumes, corev1.Volume{
			Name: scriptVolumeName,
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: spec.Script.ConfigMapName},
					DefaultMode:          ptr.To(scriptFileMode),
				},
			},
		})
	}

	podSpec := corev1.PodSpec{
		Containers: []corev1.Container{container},
		Volumes:    volumes,
	}
	if spec.Arch != "" {
		podSpec.Affinity = archAffinity(spec.Arch)
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.ResourceName(m.Name, spec.Name),
			Namespace: m.Namespace,
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To[int32](1),
			Strategy: appsv1.DeploymentStrategy{Type: appsv1.RecreateDeploymentStrategyType},
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec:       podSpec,
			},
		},
	}
}

// mkService renders the ClusterIP Service of a component spec. The selector
// is the same label set as the Deployment's pod template, by construction.
func mkService(m *model.Chart, spec *componentSpec) *corev1.Service {
	labels := componentLabels(m.Name, spec.Name)
	var ports []corev1.ServicePort
	for _, p := range spec.Ports {
		ports = append(ports, corev1.ServicePort{
			Name:       p.Name,
			Port:       p.Port,
			TargetPort: intstr.FromString(p.Name),
			Protocol:   corev1.ProtocolTCP,
		})
	}
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.ResourceName(m.Name, spec.Name),
			Namespace: m.Namespace,
			Labels:    labels,
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: labels,
			Ports:    ports,
		},
	}
}

// mkPVC renders the PersistentVolumeClaim of a stateful component spec.
func mkPVC(m *model.Chart, spec *componentSpec) *corev1.PersistentVolumeClaim {
	pvcSpec := corev1.PersistentVolumeClaimSpec{
		AccessModes: []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
		Resources: corev1.VolumeResourceRequirements{
			Requests: corev1.ResourceList{corev1.ResourceStorage: spec.Storage.Size},
		},
	}
	if spec.Storage.ClassName != "" {
		pvcSpec.StorageClassName = ptr.To(spec.Storage.ClassName)
	}
	return &corev1.PersistentVolumeClaim{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "PersistentVolumeClaim"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.DataVolumeName(m.Name, spec.Name),
			Namespace: m.Namespace,
			Labels:    componentLabels(m.Name, spec.Name),
		},
		Spec: pvcSpec,
	}
}

// secretEnv builds an env var sourced from a Secret key.
func secretEnv(name string, ref model.SecretRef) corev1.EnvVar {
	return corev1.EnvVar{
		Name: name,
		ValueFrom: &corev1.EnvVarSource{
			SecretKeyRef: &corev1.SecretKeySelector{
				LocalObjectReference: corev1.LocalObjectReference{Name: ref.Name},
				Key:                  ref.Key,
			},
		},
	}
}

// databaseEnv builds the DB_USER/DB_PW pair from the PostgreSQL credentials
// Secret. Returns nil when the chart runs on SQLite.
func databaseEnv(m *model.Chart) []corev1.EnvVar {
	if m.Database.Type != model.DatabasePostgreSQL || m.Database.PostgreSQL == nil {
		return nil
	}
	auth := m.Database.PostgreSQL.AuthSecret
	return []corev1.EnvVar{
		secretEnv("DB_USER", model.SecretRef{Name: auth.Name, Key: auth.UserKey}),
		secretEnv("DB_PW", model.SecretRef{Name: auth.Name, Key: auth.PasswordKey}),
	}
}
