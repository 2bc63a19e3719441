package naming

import (
	"fmt"
	"net"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

const (
	releaseNameMaxLength = 24
	domainMaxLength      = 253
	labelMaxLength       = 63
)

// ValidateDomain checks label-based DNS syntax: one or more labels of
// [a-z0-9-] without leading/trailing hyphen, ending in an alphabetic TLD of
// at least two characters.
func ValidateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("domain must not be empty")
	}
	if len(domain) > domainMaxLength {
		return fmt.Errorf("domain exceeds %d characters", domainMaxLength)
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return fmt.Errorf("domain %q must contain at least one dot", domain)
	}
	for _, label := range labels {
		if err := validateDomainLabel(label); err != nil {
			return fmt.Errorf("domain %q: %w", domain, err)
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 || !isAlpha(tld) {
		return fmt.Errorf("domain %q: top-level domain %q must be at least 2 alphabetic characters", domain, tld)
	}
	return nil
}

func validateDomainLabel(label string) error {
	if label == "" {
		return fmt.Errorf("empty label")
	}
	if len(label) > labelMaxLength {
		return fmt.Errorf("label %q exceeds %d characters", label, labelMaxLength)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("label %q must not start or end with a hyphen", label)
	}
	for _, ch := range label {
		if !(ch == '-' || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')) {
			return fmt.Errorf("label %q contains invalid character %q", label, ch)
		}
	}
	return nil
}

func isAlpha(s string) bool {
	for _, ch := range s {
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// ValidateEmail checks local-part@domain with the domain passing
// ValidateDomain. The local part accepts the common unquoted address
// character set.
func ValidateEmail(email string) error {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email %q must be local-part@domain", email)
	}
	local := email[:at]
	for _, ch := range local {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case strings.ContainsRune("._%+-", ch):
		default:
			return fmt.Errorf("email %q: local part contains invalid character %q", email, ch)
		}
	}
	if err := ValidateDomain(email[at+1:]); err != nil {
		return fmt.Errorf("email %q: %w", email, err)
	}
	return nil
}

// ValidateCIDR checks IPv4 CIDR syntax: four octets in 0-255 and a prefix
// length in 0-32.
func ValidateCIDR(cidr string) error {
	ip, _, err := net.ParseCIDR(cidr)
	if err != nil {
		return fmt.Errorf("subnet %q must be an IPv4 CIDR (a.b.c.d/p): %v", cidr, err)
	}
	if ip.To4() == nil {
		return fmt.Errorf("subnet %q must be IPv4", cidr)
	}
	return nil
}

// ValidateReleaseName checks the chart release name (used as a prefix of
// every resource name) against DNS-1123 label syntax.
func ValidateReleaseName(name string) error {
	if name == "" {
		return fmt.Errorf("release name must not be empty")
	}
	if len(name) > releaseNameMaxLength {
		return fmt.Errorf("release name exceeds %d characters", releaseNameMaxLength)
	}
	if errs := utilvalidation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid release name: %s", strings.Join(errs, ", "))
	}
	return nil
}

// ValidateNamespace checks the target namespace name.
func ValidateNamespace(name string) error {
	if name == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if errs := utilvalidation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid namespace: %s", strings.Join(errs, ", "))
	}
	return nil
}
