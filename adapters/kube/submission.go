package kube

import (
	"github.com/mailstack/mailstack/domain/model"
)

// submissionImage is the official upstream Dovecot image embedded for the
// dedicated submission listener. It is pinned rather than derived from the
// chart image settings because it is not a Mailu image.
const submissionImage = "dovecot/dovecot:2.3.21"

const submissionPort = 587

// submissionSpec describes the dovecot-submission component: a dedicated
// mail submission agent in front of postfix. The upstream image lacks
// multi-arch builds, so scheduling is restricted to amd64.
func submissionSpec(m *model.Chart) (componentSpec, error) {
	res, err := resourceRequirements(m.Resources[model.CompSubmission])
	if err != nil {
		return componentSpec{}, err
	}

	return componentSpec{
		Name:      model.CompSubmission,
		Image:     submissionImage,
		Ports:     []portSpec{{Name: "submission", Port: submissionPort}},
		Resources: res,
		Arch:      "amd64",
		Liveness:  mkTCPProbe(submissionPort),
		Readiness: mkTCPProbe(submissionPort),
	}, nil
}
