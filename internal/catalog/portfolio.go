package catalog

import (
	"context"
	"fmt"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/gateway"
)

// DefaultPortfolioDescription is used when a portfolio is created without one.
const DefaultPortfolioDescription = "No description set"

// Portfolio represents a Service Catalog portfolio. The name is unique within
// the account and acts as the alternate key; the remote id is cached in the
// document once resolved and never re-queried.
type Portfolio struct {
	Name        string              `yaml:"name"`
	Provider    string              `yaml:"provider"`
	Description string              `yaml:"description"`
	ID          string              `yaml:"portfolio_id,omitempty"`
	Products    []*Product          `yaml:"products,omitempty"`
	Unmanaged   []*UnmanagedProduct `yaml:"unmanaged,omitempty"`
}

// NewPortfolio creates an unpersisted portfolio handle.
func NewPortfolio(name, provider, description string) *Portfolio {
	if description == "" {
		description = DefaultPortfolioDescription
	}
	return &Portfolio{
		Name:        name,
		Provider:    provider,
		Description: description,
	}
}

// Create registers the portfolio remotely and caches the returned id.
// The entity transitions from unpersisted to persisted.
func (p *Portfolio) Create(ctx context.Context, cat *gateway.Catalog, tags []gateway.Tag) error {
	id, err := cat.CreatePortfolio(ctx, p.Name, p.Description, p.Provider, tags)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update pushes the current name, description and provider to the remote
// portfolio. Fails when the id was never resolved.
func (p *Portfolio) Update(ctx context.Context, cat *gateway.Catalog) error {
	if p.ID == "" {
		return cerrors.NewEntityError("portfolio.update", "portfolio", p.Name,
			fmt.Errorf("%w: portfolio id was never resolved", cerrors.ErrInvalidInput))
	}
	return cat.UpdatePortfolio(ctx, p.ID, p.Name, p.Description, p.Provider)
}

// Delete disassociates every owned product from this portfolio, remotely and
// in the document, then deletes the portfolio remotely. The caller removes
// the entity from the document afterwards.
func (p *Portfolio) Delete(ctx context.Context, cat *gateway.Catalog) error {
	id, err := p.ResolveID(ctx, cat)
	if err != nil {
		return err
	}
	for _, product := range p.Products {
		if err := product.ResolveID(ctx, cat); err != nil {
			return err
		}
		if err := product.Disassociate(ctx, cat, id); err != nil {
			return err
		}
		product.Portfolio = ""
	}
	p.Products = nil
	return cat.DeletePortfolio(ctx, id)
}

// Exists re-queries the remote catalog by display name, draining every page
// before concluding absence. The check is name-based even when the id is
// cached, tolerating id/name desync after manual changes.
func (p *Portfolio) Exists(ctx context.Context, cat *gateway.Catalog) (bool, error) {
	portfolios, err := cat.ListPortfolios(ctx)
	if err != nil {
		return false, err
	}
	for _, remote := range portfolios {
		if remote.Name == p.Name {
			return true, nil
		}
	}
	return false, nil
}

// ResolveID returns the portfolio id, resolving it by display-name match
// against the remote listing on first use and caching it afterwards.
func (p *Portfolio) ResolveID(ctx context.Context, cat *gateway.Catalog) (string, error) {
	if p.ID != "" {
		return p.ID, nil
	}
	portfolios, err := cat.ListPortfolios(ctx)
	if err != nil {
		return "", err
	}
	for _, remote := range portfolios {
		if remote.Name == p.Name {
			p.ID = remote.ID
			return p.ID, nil
		}
	}
	return "", cerrors.NewEntityError("portfolio.resolve-id", "portfolio", p.Name, cerrors.ErrNotFound)
}

// AssociateConduit grants the fixed conduit provisioner role access to this
// portfolio. Idempotent; safe to repeat.
func (p *Portfolio) AssociateConduit(ctx context.Context, cat *gateway.Catalog, accountID string) error {
	id, err := p.ResolveID(ctx, cat)
	if err != nil {
		return err
	}
	return cat.AssociatePrincipal(ctx, id, gateway.ProvisionerRoleARN(accountID))
}

// FindProduct returns the owned product with the given name, or nil.
func (p *Portfolio) FindProduct(name string) *Product {
	for _, product := range p.Products {
		if product.Name == name {
			return product
		}
	}
	return nil
}

// AddProduct records a product under this portfolio, enforcing name
// uniqueness within the portfolio.
func (p *Portfolio) AddProduct(product *Product) error {
	if p.FindProduct(product.Name) != nil {
		return cerrors.NewEntityError("portfolio.add-product", "product", product.Name,
			fmt.Errorf("%w: product already recorded in portfolio %q", cerrors.ErrInvalidInput, p.Name))
	}
	p.Products = append(p.Products, product)
	return nil
}

// RemoveProduct drops the named product from this portfolio's records.
// Returns false when the product was not recorded.
func (p *Portfolio) RemoveProduct(name string) bool {
	for i, product := range p.Products {
		if product.Name == name {
			p.Products = append(p.Products[:i], p.Products[i+1:]...)
			return true
		}
	}
	return false
}

// FindUnmanaged returns the storage-only product record with the given name,
// or nil.
func (p *Portfolio) FindUnmanaged(name string) *UnmanagedProduct {
	for _, record := range p.Unmanaged {
		if record.Name == name {
			return record
		}
	}
	return nil
}
