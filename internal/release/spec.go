// Package release parses the build specification and orchestrates product
// releases: pre-build steps, artifact uploads, deployer role maintenance and
// stale version cleanup.
package release

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

// DefaultSpecFile is the build specification conduit looks for in the
// working directory.
const DefaultSpecFile = "conduitspec.yaml"

// Spec is the build specification for a release run. Products and Inventory
// are aliases for the same list; either key may be used in the file.
type Spec struct {
	Portfolio string         `yaml:"portfolio"`
	Products  []*ProductSpec `yaml:"products"`
	Inventory []*ProductSpec `yaml:"inventory"`
}

// ProductSpec describes one releasable entry. Name and Product are aliases.
// ServiceCatalog defaults to true when unset; a false value marks the entry
// as storage-only, versioned and uploaded but never registered in the
// catalog.
type ProductSpec struct {
	Name                string       `yaml:"name"`
	Product             string       `yaml:"product"`
	Build               []string     `yaml:"build"`
	ServiceCatalog      *bool        `yaml:"serviceCatalog"`
	Artifact            string       `yaml:"artifact"`
	AssociatedResources []string     `yaml:"associatedResources"`
	NestedStacks        []string     `yaml:"nestedStacks"`
	RoleName            string       `yaml:"roleName"`
	DeployProfile       []*Statement `yaml:"deployProfile"`
	Sls                 bool         `yaml:"sls"`
}

// Statement is one allow-statement of a product's deploy profile.
type Statement struct {
	Actions   []string `yaml:"actions"`
	Resources []string `yaml:"resources"`
}

// Load reads and validates a build specification from disk.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.NewEntityError("release.load-spec", "file", path, err)
	}
	spec := &Spec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, cerrors.NewEntityError("release.load-spec", "file", path,
			fmt.Errorf("%w: %v", cerrors.ErrInvalidInput, err))
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *Spec) validate() error {
	if s.Portfolio == "" {
		return cerrors.NewError("release.load-spec",
			fmt.Errorf("%w: a portfolio is required", cerrors.ErrInvalidInput))
	}
	if len(s.Entries()) == 0 {
		return cerrors.NewError("release.load-spec",
			fmt.Errorf("%w: at least one product entry is required", cerrors.ErrInvalidInput))
	}
	for _, entry := range s.Entries() {
		if entry.EntryName() == "" {
			return cerrors.NewError("release.load-spec",
				fmt.Errorf("%w: every product entry needs a name", cerrors.ErrInvalidInput))
		}
	}
	return nil
}

// Entries returns the product list regardless of which alias key was used.
func (s *Spec) Entries() []*ProductSpec {
	if len(s.Products) > 0 {
		return s.Products
	}
	return s.Inventory
}

// EntryName returns the entry's name regardless of which alias key was used.
func (p *ProductSpec) EntryName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Product
}

// CatalogBacked reports whether this entry releases through Service Catalog.
func (p *ProductSpec) CatalogBacked() bool {
	return p.ServiceCatalog == nil || *p.ServiceCatalog
}

// Resources returns the resource file list regardless of which alias key was
// used.
func (p *ProductSpec) ResourceFiles() []string {
	if len(p.AssociatedResources) > 0 {
		return p.AssociatedResources
	}
	return p.NestedStacks
}

// PolicyDocument renders the deploy profile as an IAM policy document.
func (p *ProductSpec) PolicyDocument() map[string]any {
	statements := make([]map[string]any, 0, len(p.DeployProfile))
	for _, statement := range p.DeployProfile {
		statements = append(statements, map[string]any{
			"Effect":   "Allow",
			"Action":   statement.Actions,
			"Resource": statement.Resources,
		})
	}
	return map[string]any{
		"Version":   "2012-10-17",
		"Statement": statements,
	}
}
