package catalog

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/gateway"
	"github.com/concon121/aws-conduit/internal/params"
	"github.com/concon121/aws-conduit/internal/version"
)

const (
	// DefaultProductDescription is used when a product is created without one.
	DefaultProductDescription = "No description set"

	// InitialVersion is the version every product starts from.
	InitialVersion = "0.0.0"
)

// Artifact descriptions recorded against provisioning artifacts, chosen by
// build-tag presence.
const (
	initialArtifactDescription   = "Initial product creation."
	buildArtifactDescription     = "Incremental build; Not production ready!"
	candidateArtifactDescription = "Release Candidate build increment"
)

// Product represents a Service Catalog product: a versioned CloudFormation
// template registered under a portfolio. The version field reflects the
// highest version successfully released and only advances through Release.
type Product struct {
	Name             string   `yaml:"name"`
	Owner            string   `yaml:"owner"`
	Description      string   `yaml:"description"`
	CfnType          string   `yaml:"cfn_type"`
	Portfolio        string   `yaml:"portfolio"`
	ID               string   `yaml:"product_id,omitempty"`
	Version          string   `yaml:"version"`
	TemplateLocation string   `yaml:"template_location,omitempty"`
	TemplatePrefix   string   `yaml:"template_prefix,omitempty"`
	Provisioned      []string `yaml:"provisioned,omitempty"`
	Role             *Role    `yaml:"role,omitempty"`
	Resources        []string `yaml:"resources,omitempty"`
}

// NewProduct creates an unpersisted product handle.
func NewProduct(name, owner, description, cfnType, portfolioName string) *Product {
	if description == "" {
		description = DefaultProductDescription
	}
	return &Product{
		Name:        name,
		Owner:       owner,
		Description: description,
		CfnType:     cfnType,
		Portfolio:   portfolioName,
		Version:     InitialVersion,
	}
}

// templateKey builds the deterministic storage key for a product template at
// a given version: portfolio/product/version/product.type.
func (p *Product) templateKey(ver string) string {
	return fmt.Sprintf("%s/%s/%s/%s.%s", p.Portfolio, p.Name, ver, p.Name, p.CfnType)
}

// versionPrefix is the storage prefix owning every artifact of one version.
func (p *Product) versionPrefix(ver string) string {
	return path.Join(p.Portfolio, p.Name, ver)
}

// initialTemplate is the placeholder uploaded when a product is created
// before any real template has been released.
func initialTemplate() ([]byte, error) {
	template := map[string]any{
		"AWSTemplateFormatVersion": "2010-09-09",
		"Resources": map[string]any{
			"FalseS3": map[string]any{
				"Type": "AWS::S3::Bucket",
				"Properties": map[string]any{
					"AccessControl": "private",
				},
			},
		},
	}
	return yaml.Marshal(template)
}

// Create computes the template storage key, uploads a placeholder template if
// none exists yet, and registers the product remotely with the support
// defaults applied. The remote id is captured from the response.
func (p *Product) Create(ctx context.Context, gw *gateway.Gateway, bucket string, support *Support, tags []gateway.Tag) error {
	if p.TemplatePrefix == "" {
		p.TemplatePrefix = p.templateKey(p.Version)
		p.TemplateLocation = gw.Storage.URL(bucket) + "/" + p.TemplatePrefix
	}
	exists, err := gw.Storage.ObjectExists(ctx, bucket, p.TemplatePrefix)
	if err != nil {
		return err
	}
	if !exists {
		template, err := initialTemplate()
		if err != nil {
			return cerrors.NewEntityError("product.create", "product", p.Name, err)
		}
		if err := gw.Storage.PutObject(ctx, bucket, p.TemplatePrefix, template); err != nil {
			return err
		}
	}

	description, email, url := support.orDefault()
	id, err := gw.Catalog.CreateProduct(ctx, gateway.ProductInput{
		Name:               p.Name,
		Owner:              p.Owner,
		Description:        p.Description,
		SupportDescription: description,
		SupportEmail:       email,
		SupportURL:         url,
		Version:            p.Version,
		TemplateURL:        p.TemplateLocation,
		Tags:               tags,
	})
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// summary finds the remote product whose name and owner match this entity.
// Existence checks are name-based even when the id is cached.
func (p *Product) summary(ctx context.Context, cat *gateway.Catalog) (*gateway.ProductSummary, error) {
	products, err := cat.SearchProducts(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	for _, remote := range products {
		if remote.Name == p.Name && remote.Owner == p.Owner {
			return &remote, nil
		}
	}
	return nil, nil
}

// Exists re-queries the remote catalog by name and owner.
func (p *Product) Exists(ctx context.Context, cat *gateway.Catalog) (bool, error) {
	remote, err := p.summary(ctx, cat)
	if err != nil {
		return false, err
	}
	return remote != nil, nil
}

// ResolveID returns the product id, resolving it by admin search on first use
// and caching it afterwards.
func (p *Product) ResolveID(ctx context.Context, cat *gateway.Catalog) error {
	if p.ID != "" {
		return nil
	}
	remote, err := p.summary(ctx, cat)
	if err != nil {
		return err
	}
	if remote == nil {
		return cerrors.NewEntityError("product.resolve-id", "product", p.Name, cerrors.ErrNotFound)
	}
	p.ID = remote.ID
	return nil
}

// AddToPortfolio associates the product with a portfolio, resolving the
// product's own id by name search when unknown.
func (p *Product) AddToPortfolio(ctx context.Context, cat *gateway.Catalog, portfolioID string) error {
	if err := p.ResolveID(ctx, cat); err != nil {
		return err
	}
	return cat.AssociateProduct(ctx, p.ID, portfolioID)
}

// Update pushes product metadata and support details to the remote catalog.
func (p *Product) Update(ctx context.Context, cat *gateway.Catalog, support *Support) error {
	if err := p.ResolveID(ctx, cat); err != nil {
		return err
	}
	description, email, url := support.orDefault()
	return cat.UpdateProduct(ctx, p.ID, gateway.ProductInput{
		Name:               p.Name,
		Owner:              p.Owner,
		Description:        p.Description,
		SupportDescription: description,
		SupportEmail:       email,
		SupportURL:         url,
	})
}

// Disassociate removes the association between this product and a portfolio.
func (p *Product) Disassociate(ctx context.Context, cat *gateway.Catalog, portfolioID string) error {
	return cat.DisassociateProduct(ctx, p.ID, portfolioID)
}

// Delete disassociates the product from every portfolio that references it,
// then deletes it remotely. The caller removes it from the document.
func (p *Product) Delete(ctx context.Context, cat *gateway.Catalog) error {
	if err := p.ResolveID(ctx, cat); err != nil {
		return err
	}
	portfolioIDs, err := cat.ListPortfoliosForProduct(ctx, p.ID)
	if err != nil {
		return err
	}
	for _, portfolioID := range portfolioIDs {
		if err := p.Disassociate(ctx, cat, portfolioID); err != nil {
			return err
		}
	}
	return cat.DeleteProduct(ctx, p.ID)
}

// Release uploads the template and every associated resource file to a
// version-scoped key, registers a new provisioning artifact for the uploaded
// template, and advances the stored version only after the remote artifact
// creation succeeds.
//
// The reserved template-store token inside local files is substituted with
// the definitive S3 location for the duration of the upload and reverted
// afterwards, whether or not the upload succeeds.
func (p *Product) Release(ctx context.Context, gw *gateway.Gateway, bucket string, kind version.Kind, templatePath string) (string, error) {
	if templatePath == "" {
		return "", cerrors.NewEntityError("product.release", "product", p.Name,
			fmt.Errorf("%w: a template artifact is required", cerrors.ErrInvalidInput))
	}
	if err := p.ResolveID(ctx, gw.Catalog); err != nil {
		return "", err
	}
	next, err := version.Bump(kind, p.Version)
	if err != nil {
		return "", err
	}

	prefix := p.versionPrefix(next)
	location := gw.Storage.URL(bucket) + "/" + prefix
	for _, resource := range p.Resources {
		key := path.Join(prefix, filepath.Base(resource))
		if err := uploadSubstituted(ctx, gw.Storage, bucket, key, resource, location); err != nil {
			return "", err
		}
	}

	templateKey := p.templateKey(next)
	if err := uploadSubstituted(ctx, gw.Storage, bucket, templateKey, templatePath, location); err != nil {
		return "", err
	}
	templateURL := gw.Storage.URL(bucket) + "/" + templateKey
	if _, err := gw.CloudFormation.TemplateParameters(ctx, templateURL); err != nil {
		return "", err
	}

	description := candidateArtifactDescription
	if version.IsBuild(next) {
		description = buildArtifactDescription
	}
	if err := gw.Catalog.CreateArtifact(ctx, p.ID, next, description, templateURL); err != nil {
		return "", err
	}

	p.Version = next
	p.TemplatePrefix = templateKey
	p.TemplateLocation = templateURL
	return next, nil
}

// TidyVersions removes every build-tagged provisioning artifact whose version
// is strictly less than the current one, deleting the remote artifact and its
// storage prefix. The current version and anything newer are never touched.
func (p *Product) TidyVersions(ctx context.Context, cat *gateway.Catalog, stor *gateway.Storage, bucket string) error {
	if err := p.ResolveID(ctx, cat); err != nil {
		return err
	}
	artifacts, err := cat.ListArtifacts(ctx, p.ID)
	if err != nil {
		return err
	}
	for _, artifact := range artifacts {
		if artifact.Name == p.Version || !version.IsBuild(artifact.Name) {
			continue
		}
		stale, err := version.Less(artifact.Name, p.Version)
		if err != nil || !stale {
			continue
		}
		if err := cat.DeleteArtifact(ctx, p.ID, artifact.ID); err != nil {
			return err
		}
		if err := stor.DeletePrefix(ctx, bucket, p.versionPrefix(artifact.Name)+"/"); err != nil {
			return err
		}
	}
	return nil
}

// currentArtifactID finds the provisioning artifact matching the product's
// current version.
func (p *Product) currentArtifactID(ctx context.Context, cat *gateway.Catalog) (string, error) {
	artifacts, err := cat.ListArtifacts(ctx, p.ID)
	if err != nil {
		return "", err
	}
	for _, artifact := range artifacts {
		if artifact.Name == p.Version {
			return artifact.ID, nil
		}
	}
	return "", cerrors.NewEntityError("product.current-artifact", "product", p.Name,
		fmt.Errorf("%w: no provisioning artifact for version %s", cerrors.ErrNotFound, p.Version))
}

// Provision launches, or updates in place, a named instance of the product's
// current version. The remote calls run under the assumed conduit provisioner
// role; the instance-name scan decides between update and fresh provision.
func (p *Product) Provision(ctx context.Context, gw *gateway.Gateway, src params.Source, accountID, name string) error {
	if err := p.ResolveID(ctx, gw.Catalog); err != nil {
		return err
	}
	artifactID, err := p.currentArtifactID(ctx, gw.Catalog)
	if err != nil {
		return err
	}
	paths, err := gw.Catalog.ListLaunchPaths(ctx, p.ID)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return cerrors.NewEntityError("product.provision", "product", p.Name,
			fmt.Errorf("%w: no launch paths available", cerrors.ErrNotFound))
	}
	declared, err := gw.Catalog.DescribeParameters(ctx, p.ID, artifactID, paths[0].ID)
	if err != nil {
		return err
	}
	prompts := make([]params.Parameter, 0, len(declared))
	for _, parameter := range declared {
		prompts = append(prompts, params.Parameter{
			Key:         parameter.Key,
			Description: parameter.Description,
			Default:     parameter.Default,
		})
	}
	values, err := src.Values(ctx, prompts)
	if err != nil {
		return err
	}

	provisioner, err := gw.ProvisionerCatalog(ctx, accountID)
	if err != nil {
		return err
	}
	existing, err := gw.Catalog.FindProvisioned(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		gw.Log().Info("updating provisioned product in place", "name", name, "version", p.Version)
		if err := provisioner.UpdateProvisioned(ctx, p.ID, artifactID, name, values); err != nil {
			return err
		}
	} else {
		gw.Log().Info("provisioning new product instance", "name", name, "version", p.Version)
		if err := provisioner.Provision(ctx, p.ID, artifactID, name, values); err != nil {
			return err
		}
	}
	p.recordProvisioned(name)
	return nil
}

// Terminate tears down a named provisioned instance under the provisioner
// role. Reports false, without error, when no such instance exists.
func (p *Product) Terminate(ctx context.Context, gw *gateway.Gateway, accountID, name string) (bool, error) {
	existing, err := gw.Catalog.FindProvisioned(ctx, name)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	provisioner, err := gw.ProvisionerCatalog(ctx, accountID)
	if err != nil {
		return false, err
	}
	if err := provisioner.TerminateProvisioned(ctx, name); err != nil {
		return false, err
	}
	p.forgetProvisioned(name)
	return true, nil
}

// EnsureLaunchConstraint creates a LAUNCH constraint binding the product's
// deployer role, unless one already exists for this product and portfolio.
func (p *Product) EnsureLaunchConstraint(ctx context.Context, cat *gateway.Catalog, portfolioID string) error {
	if p.Role == nil || p.Role.ARN == "" {
		return cerrors.NewEntityError("product.ensure-constraint", "product", p.Name,
			fmt.Errorf("%w: no deployer role resolved", cerrors.ErrInvalidInput))
	}
	if err := p.ResolveID(ctx, cat); err != nil {
		return err
	}
	constraints, err := cat.ListConstraints(ctx, portfolioID, p.ID)
	if err != nil {
		return err
	}
	for _, constraint := range constraints {
		if constraint.Type == "LAUNCH" {
			return nil
		}
	}
	return cat.CreateLaunchConstraint(ctx, portfolioID, p.ID, p.Role.ARN, p.Name)
}

func (p *Product) recordProvisioned(name string) {
	for _, existing := range p.Provisioned {
		if existing == name {
			return
		}
	}
	p.Provisioned = append(p.Provisioned, name)
}

func (p *Product) forgetProvisioned(name string) {
	for i, existing := range p.Provisioned {
		if existing == name {
			p.Provisioned = append(p.Provisioned[:i], p.Provisioned[i+1:]...)
			return
		}
	}
}
