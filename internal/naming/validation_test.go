package naming

import (
	"strings"
	"testing"
)

func TestValidateDomain(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "example.com", wantErr: false},
		{name: "valid subdomain", value: "mail.example.com", wantErr: false},
		{name: "valid multi-level", value: "mail.example.co.uk", wantErr: false},
		{name: "valid digits", value: "mail42.example.com", wantErr: false},
		{name: "valid hyphen", value: "my-mail.example.com", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "no dot", value: "example", wantErr: true},
		{name: "contains space", value: "not a domain", wantErr: true},
		{name: "uppercase", value: "Example.com", wantErr: true},
		{name: "leading hyphen", value: "-mail.example.com", wantErr: true},
		{name: "trailing hyphen", value: "mail-.example.com", wantErr: true},
		{name: "empty label", value: "mail..example.com", wantErr: true},
		{name: "numeric tld", value: "example.123", wantErr: true},
		{name: "one-char tld", value: "example.c", wantErr: true},
		{name: "underscore", value: "mail_server.example.com", wantErr: true},
		{name: "label too long", value: strings.Repeat("a", 64) + ".com", wantErr: true},
		{name: "domain too long", value: strings.Repeat("abcdefgh.", 30) + "com", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDomain(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "admin@example.com", wantErr: false},
		{name: "valid dots and plus", value: "first.last+tag@example.com", wantErr: false},
		{name: "missing at", value: "adminexample.com", wantErr: true},
		{name: "empty local", value: "@example.com", wantErr: true},
		{name: "empty domain", value: "admin@", wantErr: true},
		{name: "bad domain", value: "admin@example", wantErr: true},
		{name: "space in local", value: "ad min@example.com", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEmail(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCIDR(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid class A", value: "10.0.0.0/8", wantErr: false},
		{name: "valid pod subnet", value: "10.42.0.0/16", wantErr: false},
		{name: "valid host route", value: "192.168.1.1/32", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "missing prefix", value: "10.0.0.0", wantErr: true},
		{name: "prefix out of range", value: "10.0.0.0/33", wantErr: true},
		{name: "octet out of range", value: "10.0.0.256/8", wantErr: true},
		{name: "ipv6", value: "2001:db8::/32", wantErr: true},
		{name: "garbage", value: "not-a-cidr", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCIDR(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateReleaseName(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "mailstack", wantErr: false},
		{name: "valid hyphen", value: "mail-prod", wantErr: false},
		{name: "valid max length", value: strings.Repeat("a", releaseNameMaxLength), wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "too long", value: strings.Repeat("a", releaseNameMaxLength+1), wantErr: true},
		{name: "uppercase", value: "Mailstack", wantErr: true},
		{name: "underscore", value: "mail_stack", wantErr: true},
		{name: "leading hyphen", value: "-mail", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateReleaseName(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateNamespace(t *testing.T) {
	if err := ValidateNamespace("mailstack"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNamespace(""); err == nil {
		t.Error("expected error for empty namespace")
	}
	if err := ValidateNamespace("Mail"); err == nil {
		t.Error("expected error for uppercase namespace")
	}
}
