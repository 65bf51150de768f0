package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog/types"
	"github.com/google/uuid"

	"github.com/concon121/aws-conduit/internal/awsapi"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

// listPageSize matches the page size the catalog list calls request.
const listPageSize = 20

// Catalog wraps the Service Catalog API with pagination-draining list
// operations and domain-shaped results.
type Catalog struct {
	api awsapi.CatalogAPI
}

// NewCatalog creates a Catalog wrapper around the given API implementation.
func NewCatalog(api awsapi.CatalogAPI) *Catalog {
	return &Catalog{api: api}
}

// Tag is a key/value pair applied to portfolios and products.
type Tag struct {
	Key   string
	Value string
}

// PortfolioSummary describes a remote portfolio.
type PortfolioSummary struct {
	ID          string
	Name        string
	Provider    string
	Description string
}

// ProductSummary describes a remote product.
type ProductSummary struct {
	ID          string
	Name        string
	Owner       string
	Description string
}

// ArtifactSummary describes a provisioning artifact (product version).
type ArtifactSummary struct {
	ID          string
	Name        string
	Description string
	Created     time.Time
}

// ProvisionedSummary describes a live provisioned product instance.
type ProvisionedSummary struct {
	ID     string
	Name   string
	Status string
}

// LaunchPath identifies a path through which a product can be provisioned.
type LaunchPath struct {
	ID   string
	Name string
}

// ProvisioningParameter describes one parameter a product version accepts.
type ProvisioningParameter struct {
	Key         string
	Description string
	Default     string
}

// ConstraintSummary describes a portfolio/product constraint.
type ConstraintSummary struct {
	ID          string
	Type        string
	Description string
}

// ProductInput carries everything needed to register a new product.
type ProductInput struct {
	Name               string
	Owner              string
	Description        string
	SupportDescription string
	SupportEmail       string
	SupportURL         string
	Version            string
	TemplateURL        string
	Tags               []Tag
}

func sdkTags(tags []Tag) []types.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, types.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)})
	}
	return out
}

// CreatePortfolio registers a new portfolio and returns its id.
func (c *Catalog) CreatePortfolio(ctx context.Context, name, description, provider string, tags []Tag) (string, error) {
	out, err := c.api.CreatePortfolio(ctx, &servicecatalog.CreatePortfolioInput{
		DisplayName:      aws.String(name),
		Description:      aws.String(description),
		ProviderName:     aws.String(provider),
		Tags:             sdkTags(tags),
		IdempotencyToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		return "", cerrors.Remote("catalog.create-portfolio", err).WithEntity("portfolio", name)
	}
	return aws.ToString(out.PortfolioDetail.Id), nil
}

// UpdatePortfolio pushes name, description and provider for an existing portfolio.
func (c *Catalog) UpdatePortfolio(ctx context.Context, id, name, description, provider string) error {
	_, err := c.api.UpdatePortfolio(ctx, &servicecatalog.UpdatePortfolioInput{
		Id:           aws.String(id),
		DisplayName:  aws.String(name),
		Description:  aws.String(description),
		ProviderName: aws.String(provider),
	})
	if err != nil {
		return cerrors.Remote("catalog.update-portfolio", err).WithEntity("portfolio", name)
	}
	return nil
}

// DeletePortfolio removes a portfolio by id.
func (c *Catalog) DeletePortfolio(ctx context.Context, id string) error {
	_, err := c.api.DeletePortfolio(ctx, &servicecatalog.DeletePortfolioInput{Id: aws.String(id)})
	if err != nil {
		return cerrors.Remote("catalog.delete-portfolio", err).WithEntity("portfolio", id)
	}
	return nil
}

// ListPortfolios returns every portfolio in the account, following page
// tokens until exhausted.
func (c *Catalog) ListPortfolios(ctx context.Context) ([]PortfolioSummary, error) {
	var portfolios []PortfolioSummary
	var token *string
	for {
		out, err := c.api.ListPortfolios(ctx, &servicecatalog.ListPortfoliosInput{
			PageSize:  listPageSize,
			PageToken: token,
		})
		if err != nil {
			return nil, cerrors.Remote("catalog.list-portfolios", err)
		}
		for _, detail := range out.PortfolioDetails {
			portfolios = append(portfolios, PortfolioSummary{
				ID:          aws.ToString(detail.Id),
				Name:        aws.ToString(detail.DisplayName),
				Provider:    aws.ToString(detail.ProviderName),
				Description: aws.ToString(detail.Description),
			})
		}
		if out.NextPageToken == nil {
			return portfolios, nil
		}
		token = out.NextPageToken
	}
}

// ListPortfoliosForProduct returns the ids of every portfolio the product is
// associated with.
func (c *Catalog) ListPortfoliosForProduct(ctx context.Context, productID string) ([]string, error) {
	var ids []string
	var token *string
	for {
		out, err := c.api.ListPortfoliosForProduct(ctx, &servicecatalog.ListPortfoliosForProductInput{
			ProductId: aws.String(productID),
			PageToken: token,
		})
		if err != nil {
			return nil, cerrors.Remote("catalog.list-portfolios-for-product", err).WithEntity("product", productID)
		}
		for _, detail := range out.PortfolioDetails {
			ids = append(ids, aws.ToString(detail.Id))
		}
		if out.NextPageToken == nil {
			return ids, nil
		}
		token = out.NextPageToken
	}
}

// AssociatePrincipal grants an IAM principal access to a portfolio.
// Safe to repeat; the catalog treats re-association as a no-op.
func (c *Catalog) AssociatePrincipal(ctx context.Context, portfolioID, principalARN string) error {
	_, err := c.api.AssociatePrincipalWithPortfolio(ctx, &servicecatalog.AssociatePrincipalWithPortfolioInput{
		PortfolioId:   aws.String(portfolioID),
		PrincipalARN:  aws.String(principalARN),
		PrincipalType: types.PrincipalTypeIam,
	})
	if err != nil {
		return cerrors.Remote("catalog.associate-principal", err).WithEntity("portfolio", portfolioID)
	}
	return nil
}

// CreateProduct registers a new product with an initial provisioning artifact
// and returns the product id.
func (c *Catalog) CreateProduct(ctx context.Context, in ProductInput) (string, error) {
	out, err := c.api.CreateProduct(ctx, &servicecatalog.CreateProductInput{
		Name:               aws.String(in.Name),
		Owner:              aws.String(in.Owner),
		Description:        aws.String(in.Description),
		Distributor:        aws.String(in.Owner),
		SupportDescription: aws.String(in.SupportDescription),
		SupportEmail:       aws.String(in.SupportEmail),
		SupportUrl:         aws.String(in.SupportURL),
		ProductType:        types.ProductTypeCloudFormationTemplate,
		Tags:               sdkTags(in.Tags),
		ProvisioningArtifactParameters: &types.ProvisioningArtifactProperties{
			Name:        aws.String(in.Version),
			Description: aws.String("Initial product creation."),
			Info:        map[string]string{"LoadTemplateFromURL": in.TemplateURL},
			Type:        types.ProvisioningArtifactTypeCloudFormationTemplate,
		},
		IdempotencyToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		return "", cerrors.Remote("catalog.create-product", err).WithEntity("product", in.Name)
	}
	return aws.ToString(out.ProductViewDetail.ProductViewSummary.ProductId), nil
}

// UpdateProduct pushes product metadata and support details.
func (c *Catalog) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	_, err := c.api.UpdateProduct(ctx, &servicecatalog.UpdateProductInput{
		Id:                 aws.String(id),
		Name:               aws.String(in.Name),
		Owner:              aws.String(in.Owner),
		Description:        aws.String(in.Description),
		Distributor:        aws.String(in.Owner),
		SupportDescription: aws.String(in.SupportDescription),
		SupportEmail:       aws.String(in.SupportEmail),
		SupportUrl:         aws.String(in.SupportURL),
	})
	if err != nil {
		return cerrors.Remote("catalog.update-product", err).WithEntity("product", in.Name)
	}
	return nil
}

// DeleteProduct removes a product by id.
func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.api.DeleteProduct(ctx, &servicecatalog.DeleteProductInput{Id: aws.String(id)})
	if err != nil {
		return cerrors.Remote("catalog.delete-product", err).WithEntity("product", id)
	}
	return nil
}

// SearchProducts runs an admin full-text search, draining page tokens.
func (c *Catalog) SearchProducts(ctx context.Context, term string) ([]ProductSummary, error) {
	var products []ProductSummary
	var token *string
	for {
		out, err := c.api.SearchProductsAsAdmin(ctx, &servicecatalog.SearchProductsAsAdminInput{
			Filters: map[string][]string{
				string(types.ProductViewFilterByFullTextSearch): {term},
			},
			PageToken: token,
		})
		if err != nil {
			return nil, cerrors.Remote("catalog.search-products", err)
		}
		for _, detail := range out.ProductViewDetails {
			summary := detail.ProductViewSummary
			if summary == nil {
				continue
			}
			products = append(products, ProductSummary{
				ID:          aws.ToString(summary.ProductId),
				Name:        aws.ToString(summary.Name),
				Owner:       aws.ToString(summary.Owner),
				Description: aws.ToString(summary.ShortDescription),
			})
		}
		if out.NextPageToken == nil {
			return products, nil
		}
		token = out.NextPageToken
	}
}

// ListAllProducts returns every product in the account via an unfiltered
// admin search.
func (c *Catalog) ListAllProducts(ctx context.Context) ([]ProductSummary, error) {
	var products []ProductSummary
	var token *string
	for {
		out, err := c.api.SearchProductsAsAdmin(ctx, &servicecatalog.SearchProductsAsAdminInput{
			PageToken: token,
		})
		if err != nil {
			return nil, cerrors.Remote("catalog.list-products", err)
		}
		for _, detail := range out.ProductViewDetails {
			summary := detail.ProductViewSummary
			if summary == nil {
				continue
			}
			products = append(products, ProductSummary{
				ID:          aws.ToString(summary.ProductId),
				Name:        aws.ToString(summary.Name),
				Owner:       aws.ToString(summary.Owner),
				Description: aws.ToString(summary.ShortDescription),
			})
		}
		if out.NextPageToken == nil {
			return products, nil
		}
		token = out.NextPageToken
	}
}

// AssociateProduct associates a product with a portfolio.
func (c *Catalog) AssociateProduct(ctx context.Context, productID, portfolioID string) error {
	_, err := c.api.AssociateProductWithPortfolio(ctx, &servicecatalog.AssociateProductWithPortfolioInput{
		ProductId:   aws.String(productID),
		PortfolioId: aws.String(portfolioID),
	})
	if err != nil {
		return cerrors.Remote("catalog.associate-product", err).WithEntity("product", productID)
	}
	return nil
}

// DisassociateProduct removes the portfolio/product association.
func (c *Catalog) DisassociateProduct(ctx context.Context, productID, portfolioID string) error {
	_, err := c.api.DisassociateProductFromPortfolio(ctx, &servicecatalog.DisassociateProductFromPortfolioInput{
		ProductId:   aws.String(productID),
		PortfolioId: aws.String(portfolioID),
	})
	if err != nil {
		return cerrors.Remote("catalog.disassociate-product", err).WithEntity("product", productID)
	}
	return nil
}

// ListArtifacts returns every provisioning artifact registered for a product.
func (c *Catalog) ListArtifacts(ctx context.Context, productID string) ([]ArtifactSummary, error) {
	out, err := c.api.ListProvisioningArtifacts(ctx, &servicecatalog.ListProvisioningArtifactsInput{
		ProductId: aws.String(productID),
	})
	if err != nil {
		return nil, cerrors.Remote("catalog.list-artifacts", err).WithEntity("product", productID)
	}
	artifacts := make([]ArtifactSummary, 0, len(out.ProvisioningArtifactDetails))
	for _, detail := range out.ProvisioningArtifactDetails {
		artifacts = append(artifacts, ArtifactSummary{
			ID:          aws.ToString(detail.Id),
			Name:        aws.ToString(detail.Name),
			Description: aws.ToString(detail.Description),
			Created:     aws.ToTime(detail.CreatedTime),
		})
	}
	return artifacts, nil
}

// CreateArtifact registers a new provisioning artifact (product version)
// pointing at an uploaded template URL.
func (c *Catalog) CreateArtifact(ctx context.Context, productID, name, description, templateURL string) error {
	_, err := c.api.CreateProvisioningArtifact(ctx, &servicecatalog.CreateProvisioningArtifactInput{
		ProductId: aws.String(productID),
		Parameters: &types.ProvisioningArtifactProperties{
			Name:        aws.String(name),
			Description: aws.String(description),
			Info:        map[string]string{"LoadTemplateFromURL": templateURL},
			Type:        types.ProvisioningArtifactTypeCloudFormationTemplate,
		},
		IdempotencyToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		return cerrors.Remote("catalog.create-artifact", err).WithEntity("product", productID)
	}
	return nil
}

// DeleteArtifact removes a provisioning artifact from a product.
func (c *Catalog) DeleteArtifact(ctx context.Context, productID, artifactID string) error {
	_, err := c.api.DeleteProvisioningArtifact(ctx, &servicecatalog.DeleteProvisioningArtifactInput{
		ProductId:              aws.String(productID),
		ProvisioningArtifactId: aws.String(artifactID),
	})
	if err != nil {
		return cerrors.Remote("catalog.delete-artifact", err).WithEntity("product", productID)
	}
	return nil
}

// ListLaunchPaths returns the launch paths available for a product.
func (c *Catalog) ListLaunchPaths(ctx context.Context, productID string) ([]LaunchPath, error) {
	var paths []LaunchPath
	var token *string
	for {
		out, err := c.api.ListLaunchPaths(ctx, &servicecatalog.ListLaunchPathsInput{
			ProductId: aws.String(productID),
			PageToken: token,
		})
		if err != nil {
			return nil, cerrors.Remote("catalog.list-launch-paths", err).WithEntity("product", productID)
		}
		for _, summary := range out.LaunchPathSummaries {
			paths = append(paths, LaunchPath{
				ID:   aws.ToString(summary.Id),
				Name: aws.ToString(summary.Name),
			})
		}
		if out.NextPageToken == nil {
			return paths, nil
		}
		token = out.NextPageToken
	}
}

// DescribeParameters returns the provisioning parameters a product version
// accepts on a launch path.
func (c *Catalog) DescribeParameters(ctx context.Context, productID, artifactID, pathID string) ([]ProvisioningParameter, error) {
	out, err := c.api.DescribeProvisioningParameters(ctx, &servicecatalog.DescribeProvisioningParametersInput{
		ProductId:              aws.String(productID),
		ProvisioningArtifactId: aws.String(artifactID),
		PathId:                 aws.String(pathID),
	})
	if err != nil {
		return nil, cerrors.Remote("catalog.describe-parameters", err).WithEntity("product", productID)
	}
	params := make([]ProvisioningParameter, 0, len(out.ProvisioningArtifactParameters))
	for _, p := range out.ProvisioningArtifactParameters {
		params = append(params, ProvisioningParameter{
			Key:         aws.ToString(p.ParameterKey),
			Description: aws.ToString(p.Description),
			Default:     aws.ToString(p.DefaultValue),
		})
	}
	return params, nil
}

// Provision launches a new provisioned instance of a product version.
func (c *Catalog) Provision(ctx context.Context, productID, artifactID, name string, params map[string]string) error {
	input := &servicecatalog.ProvisionProductInput{
		ProductId:              aws.String(productID),
		ProvisioningArtifactId: aws.String(artifactID),
		ProvisionedProductName: aws.String(name),
		ProvisionToken:         aws.String(uuid.NewString()),
	}
	for key, value := range params {
		input.ProvisioningParameters = append(input.ProvisioningParameters, types.ProvisioningParameter{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	if _, err := c.api.ProvisionProduct(ctx, input); err != nil {
		return cerrors.Remote("catalog.provision", err).WithEntity("provisioned product", name)
	}
	return nil
}

// UpdateProvisioned updates an existing provisioned instance in place.
func (c *Catalog) UpdateProvisioned(ctx context.Context, productID, artifactID, name string, params map[string]string) error {
	input := &servicecatalog.UpdateProvisionedProductInput{
		ProductId:              aws.String(productID),
		ProvisioningArtifactId: aws.String(artifactID),
		ProvisionedProductName: aws.String(name),
		UpdateToken:            aws.String(uuid.NewString()),
	}
	for key, value := range params {
		input.ProvisioningParameters = append(input.ProvisioningParameters, types.UpdateProvisioningParameter{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	if _, err := c.api.UpdateProvisionedProduct(ctx, input); err != nil {
		return cerrors.Remote("catalog.update-provisioned", err).WithEntity("provisioned product", name)
	}
	return nil
}

// TerminateProvisioned tears down a provisioned instance by name.
func (c *Catalog) TerminateProvisioned(ctx context.Context, name string) error {
	_, err := c.api.TerminateProvisionedProduct(ctx, &servicecatalog.TerminateProvisionedProductInput{
		ProvisionedProductName: aws.String(name),
		TerminateToken:         aws.String(uuid.NewString()),
	})
	if err != nil {
		return cerrors.Remote("catalog.terminate-provisioned", err).WithEntity("provisioned product", name)
	}
	return nil
}

// FindProvisioned scans every provisioned product in the account for one with
// the given name. Returns nil when no instance matches.
func (c *Catalog) FindProvisioned(ctx context.Context, name string) (*ProvisionedSummary, error) {
	var token *string
	for {
		out, err := c.api.ScanProvisionedProducts(ctx, &servicecatalog.ScanProvisionedProductsInput{
			AccessLevelFilter: &types.AccessLevelFilter{
				Key:   types.AccessLevelFilterKeyAccount,
				Value: aws.String("self"),
			},
			PageToken: token,
		})
		if err != nil {
			return nil, cerrors.Remote("catalog.scan-provisioned", err)
		}
		for _, detail := range out.ProvisionedProducts {
			if aws.ToString(detail.Name) == name {
				return &ProvisionedSummary{
					ID:     aws.ToString(detail.Id),
					Name:   aws.ToString(detail.Name),
					Status: string(detail.Status),
				}, nil
			}
		}
		if out.NextPageToken == nil {
			return nil, nil
		}
		token = out.NextPageToken
	}
}

// CreateLaunchConstraint binds a deploy role to a product within a portfolio.
func (c *Catalog) CreateLaunchConstraint(ctx context.Context, portfolioID, productID, roleARN, name string) error {
	params, err := json.Marshal(map[string]string{"RoleArn": roleARN})
	if err != nil {
		return cerrors.NewError("catalog.create-constraint", err)
	}
	_, err = c.api.CreateConstraint(ctx, &servicecatalog.CreateConstraintInput{
		PortfolioId:      aws.String(portfolioID),
		ProductId:        aws.String(productID),
		Parameters:       aws.String(string(params)),
		Type:             aws.String("LAUNCH"),
		Description:      aws.String("Launch configuration for " + name),
		IdempotencyToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		return cerrors.Remote("catalog.create-constraint", err).WithEntity("product", productID)
	}
	return nil
}

// ListConstraints returns the constraints declared for a product in a portfolio.
func (c *Catalog) ListConstraints(ctx context.Context, portfolioID, productID string) ([]ConstraintSummary, error) {
	var constraints []ConstraintSummary
	var token *string
	for {
		out, err := c.api.ListConstraintsForPortfolio(ctx, &servicecatalog.ListConstraintsForPortfolioInput{
			PortfolioId: aws.String(portfolioID),
			ProductId:   aws.String(productID),
			PageToken:   token,
		})
		if err != nil {
			return nil, cerrors.Remote("catalog.list-constraints", err).WithEntity("product", productID)
		}
		for _, detail := range out.ConstraintDetails {
			constraints = append(constraints, ConstraintSummary{
				ID:          aws.ToString(detail.ConstraintId),
				Type:        aws.ToString(detail.Type),
				Description: aws.ToString(detail.Description),
			})
		}
		if out.NextPageToken == nil {
			return constraints, nil
		}
		token = out.NextPageToken
	}
}
