// Package units parses the human-readable size and CPU strings of the chart
// configuration into structured quantities for the manifest generators.
// Parsers are pure functions; the same grammar is enforced here and by chart
// validation so the two can never disagree.
package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"k8s.io/apimachinery/pkg/api/resource"
)

var (
	// Binary (1024-based) suffixes only. Fractional values are accepted,
	// decimal SI suffixes (K, M, G, ...) are not.
	sizeRe = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(Ki|Mi|Gi|Ti|Pi|Ei)$`)

	milliRe = regexp.MustCompile(`^([0-9]+)m$`)
	coresRe = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)
)

// ParseSize parses a binary size string ("5Gi", "512Mi", "1.5Ti") into a
// resource.Quantity. Decimal suffixes and suffix-less values are rejected.
func ParseSize(s string) (resource.Quantity, error) {
	if !sizeRe.MatchString(s) {
		return resource.Quantity{}, fmt.Errorf("size %q must match <number>(Ki|Mi|Gi|Ti|Pi|Ei)", s)
	}
	q, err := resource.ParseQuantity(s)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("size %q: %w", s, err)
	}
	return q, nil
}

// SizeBytes parses a binary size string and returns its value in bytes.
func SizeBytes(s string) (int64, error) {
	q, err := ParseSize(s)
	if err != nil {
		return 0, err
	}
	return q.Value(), nil
}

// ParseCPU parses a CPU string into millicores. Accepted forms are
// "<int>m" (millicores) and a bare integer or decimal number of cores:
// "100m" -> 100, "1" -> 1000, "0.5" -> 500.
func ParseCPU(s string) (int64, error) {
	if m := milliRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cpu %q: %w", s, err)
		}
		return n, nil
	}
	if coresRe.MatchString(s) {
		cores, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("cpu %q: %w", s, err)
		}
		// Converting an out-of-range float to int64 is platform-defined.
		if cores > float64(math.MaxInt64/1000) {
			return 0, fmt.Errorf("cpu %q exceeds the representable core count", s)
		}
		return int64(math.Round(cores * 1000)), nil
	}
	return 0, fmt.Errorf("cpu %q must be <int>m millicores or a core count", s)
}

// CPUQuantity parses a CPU string into a resource.Quantity expressed in
// millicores.
func CPUQuantity(s string) (resource.Quantity, error) {
	milli, err := ParseCPU(s)
	if err != nil {
		return resource.Quantity{}, err
	}
	return *resource.NewMilliQuantity(milli, resource.DecimalSI), nil
}
