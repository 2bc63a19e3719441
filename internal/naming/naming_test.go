package naming

import "testing"

func TestResourceNames(t *testing.T) {
	if got := ResourceName("mail", "front"); got != "mail-front" {
		t.Errorf("ResourceName = %q, want mail-front", got)
	}
	if got := DataVolumeName("mail", "dovecot"); got != "mail-dovecot-data" {
		t.Errorf("DataVolumeName = %q, want mail-dovecot-data", got)
	}
	if got := SharedConfigMapName("mail"); got != "mail-env" {
		t.Errorf("SharedConfigMapName = %q, want mail-env", got)
	}
	if got := PatchConfigMapName("mail", "nginx-patch"); got != "mail-nginx-patch" {
		t.Errorf("PatchConfigMapName = %q, want mail-nginx-patch", got)
	}
	if got := IngressName("mail"); got != "mail-ingress" {
		t.Errorf("IngressName = %q, want mail-ingress", got)
	}
}

func TestServiceAddress(t *testing.T) {
	// Service addresses must equal the Service resource names so cluster
	// DNS resolves them without a namespace suffix.
	if got, want := ServiceAddress("mail", "dovecot"), ResourceName("mail", "dovecot"); got != want {
		t.Errorf("ServiceAddress = %q, want %q", got, want)
	}
}

func TestHostPort(t *testing.T) {
	if got := HostPort("mail-rspamd", 11332); got != "mail-rspamd:11332" {
		t.Errorf("HostPort = %q, want mail-rspamd:11332", got)
	}
}
