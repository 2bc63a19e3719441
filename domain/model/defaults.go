package model

// Component defaults. These are resolved exactly once by WithDefaults so the
// generators in adapters/kube never branch on "is this field set".
const (
	DefaultName      = "mailstack"
	DefaultNamespace = "mailstack"

	DefaultRegistry = "ghcr.io/mailu"
	DefaultTag      = "2.0"

	DefaultIngressClass = "traefik"

	DefaultMessageSizeLimit = "50Mi"
	DefaultFetchmailDelay   = 600
	DefaultLogLevel         = "WARNING"

	DefaultPostgreSQLPort = 5432
	DefaultRedisPort      = 6379

	DefaultDatabaseUserKey     = "username"
	DefaultDatabasePasswordKey = "password"
)

// defaultResources holds the per-component resource envelope applied when
// the chart does not override it. Dovecot carries the largest memory request
// because IMAP index handling is memory-intensive.
var defaultResources = map[string]ResourceSpec{
	CompAdmin:      {CPURequest: "100m", CPULimit: "500m", MemoryRequest: "256Mi", MemoryLimit: "512Mi"},
	CompFront:      {CPURequest: "100m", CPULimit: "500m", MemoryRequest: "128Mi", MemoryLimit: "256Mi"},
	CompPostfix:    {CPURequest: "100m", CPULimit: "500m", MemoryRequest: "256Mi", MemoryLimit: "512Mi"},
	CompDovecot:    {CPURequest: "200m", CPULimit: "1", MemoryRequest: "1Gi", MemoryLimit: "2Gi"},
	CompSubmission: {CPURequest: "50m", CPULimit: "250m", MemoryRequest: "128Mi", MemoryLimit: "256Mi"},
	CompRspamd:     {CPURequest: "100m", CPULimit: "500m", MemoryRequest: "512Mi", MemoryLimit: "1Gi"},
	CompWebmail:    {CPURequest: "100m", CPULimit: "500m", MemoryRequest: "256Mi", MemoryLimit: "512Mi"},
	CompClamAV:     {CPURequest: "200m", CPULimit: "1", MemoryRequest: "1Gi", MemoryLimit: "2Gi"},
	CompFetchmail:  {CPURequest: "50m", CPULimit: "100m", MemoryRequest: "64Mi", MemoryLimit: "128Mi"},
	CompWebdav:     {CPURequest: "50m", CPULimit: "250m", MemoryRequest: "64Mi", MemoryLimit: "128Mi"},
}

// defaultStorage holds the per-component volume size applied when the chart
// does not override it. Components absent from this table are stateless.
var defaultStorage = map[string]StorageSpec{
	CompAdmin:   {Size: "10Gi"},
	CompPostfix: {Size: "20Gi"},
	CompDovecot: {Size: "50Gi"},
	CompRspamd:  {Size: "1Gi"},
	CompWebmail: {Size: "5Gi"},
	CompClamAV:  {Size: "10Gi"},
	CompWebdav:  {Size: "5Gi"},
}

// DefaultResources returns a copy of the built-in resource envelope for a
// component, or false when the component has none.
func DefaultResources(component string) (ResourceSpec, bool) {
	r, ok := defaultResources[component]
	return r, ok
}

// DefaultStorage returns a copy of the built-in storage request for a
// component, or false when the component is stateless.
func DefaultStorage(component string) (StorageSpec, bool) {
	s, ok := defaultStorage[component]
	return s, ok
}

// WithDefaults returns a copy of the chart with every optional field
// populated. The result is fully resolved: per-component Storage and
// Resources contain an entry for every component that needs one, the
// database auth key names are set, and scalar defaults are applied.
// WithDefaults never fails; it resolves values without judging them
// (Validate judges them).
func (c Chart) WithDefaults() Chart {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.Images.Registry == "" {
		c.Images.Registry = DefaultRegistry
	}
	if c.Images.Tag == "" {
		c.Images.Tag = DefaultTag
	}
	if c.Ingress.ClassName == "" {
		c.Ingress.ClassName = DefaultIngressClass
	}
	if c.MessageSizeLimit == "" {
		c.MessageSizeLimit = DefaultMessageSizeLimit
	}
	if c.FetchmailDelay == 0 {
		c.FetchmailDelay = DefaultFetchmailDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Database.Type == "" {
		c.Database.Type = DatabaseSQLite
	}
	if pg := c.Database.PostgreSQL; pg != nil {
		cp := *pg
		if cp.Port == 0 {
			cp.Port = DefaultPostgreSQLPort
		}
		if cp.AuthSecret.UserKey == "" {
			cp.AuthSecret.UserKey = DefaultDatabaseUserKey
		}
		if cp.AuthSecret.PasswordKey == "" {
			cp.AuthSecret.PasswordKey = DefaultDatabasePasswordKey
		}
		c.Database.PostgreSQL = &cp
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = DefaultRedisPort
	}
	if ia := c.InitialAccount; ia != nil {
		cp := *ia
		if cp.Domain == "" {
			cp.Domain = c.Domain
		}
		c.InitialAccount = &cp
	}

	resources := make(map[string]ResourceSpec, len(defaultResources))
	for comp, def := range defaultResources {
		resources[comp] = mergeResources(c.Resources[comp], def)
	}
	// Entries keyed by a component without defaults are carried over as-is
	// so Validate can reject them instead of them vanishing here.
	for comp, spec := range c.Resources {
		if _, ok := defaultResources[comp]; !ok {
			resources[comp] = spec
		}
	}
	c.Resources = resources

	storage := make(map[string]StorageSpec, len(defaultStorage))
	for comp, def := range defaultStorage {
		spec, ok := c.Storage[comp]
		if !ok {
			spec = def
		}
		if spec.Size == "" {
			spec.Size = def.Size
		}
		if spec.ClassName == "" {
			spec.ClassName = c.StorageClass
		}
		storage[comp] = spec
	}
	for comp, spec := range c.Storage {
		if _, ok := defaultStorage[comp]; !ok {
			storage[comp] = spec
		}
	}
	c.Storage = storage

	c.Hostnames = append([]string(nil), c.Hostnames...)
	return c
}

func mergeResources(explicit, def ResourceSpec) ResourceSpec {
	if explicit.CPURequest == "" {
		explicit.CPURequest = def.CPURequest
	}
	if explicit.CPULimit == "" {
		explicit.CPULimit = def.CPULimit
	}
	if explicit.MemoryRequest == "" {
		explicit.MemoryRequest = def.MemoryRequest
	}
	if explicit.MemoryLimit == "" {
		explicit.MemoryLimit = def.MemoryLimit
	}
	return explicit
}
