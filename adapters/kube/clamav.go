package kube

import (
	"github.com/mailstack/mailstack/domain/model"
)

const clamavPort = 3310

// clamavSpec describes the optional ClamAV antivirus component. The data
// volume holds the signature database, which the container refreshes on its
// own schedule.
func clamavSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompClamAV])
	if err != nil {
		return componentSpec{}, err
	}
	storage, err := storageFor(m, model.CompClamAV, "/data")
	if err != nil {
		return componentSpec{}, err
	}

	return componentSpec{
		Name:      model.CompClamAV,
		Image:     mailuImage(m.Images, "clamav"),
		Ports:     []portSpec{{Name: "clamav", Port: clamavPort}},
		Storage:   storage,
		Resources: res,
		Liveness:  mkTCPProbe(clamavPort),
		Readiness: mkTCPProbe(clamavPort),
	}, nil
}
