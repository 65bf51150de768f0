package catalog

// UnmanagedProduct is a versioned artifact set stored in S3 and tracked in
// the document without a Service Catalog registration. Releases bump the
// version and upload artifacts; nothing is provisioned through the catalog.
type UnmanagedProduct struct {
	Name      string   `yaml:"name"`
	Version   string   `yaml:"version"`
	Artifacts []string `yaml:"artifacts,omitempty"`
}

// NewUnmanagedProduct creates an unmanaged product at the initial version.
func NewUnmanagedProduct(name string) *UnmanagedProduct {
	return &UnmanagedProduct{Name: name, Version: InitialVersion}
}
