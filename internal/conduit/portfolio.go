package conduit

import (
	"context"
	"fmt"

	"github.com/concon121/aws-conduit/internal/catalog"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/store"
)

// rowFormat lays the list commands out in three fixed-width columns.
const rowFormat = "%-30.28s%-30.28s%-30.28s\n"

// NewPortfolio creates a portfolio remotely and records it in the document.
// The account alias becomes the portfolio provider, so an alias must be set
// on the account before portfolios can be created.
func (c *Conduit) NewPortfolio(ctx context.Context, name, description string) error {
	if name == "" {
		return cerrors.NewError("conduit.new-portfolio",
			fmt.Errorf("%w: a portfolio name is required", cerrors.ErrInvalidInput))
	}
	alias, err := c.gw.Identity.Alias(ctx)
	if err != nil {
		return err
	}
	if alias == "" {
		return cerrors.NewEntityError("conduit.new-portfolio", "portfolio", name, cerrors.ErrNoAccountAlias)
	}
	accountID, err := c.gw.Identity.AccountID(ctx)
	if err != nil {
		return err
	}
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		portfolio := catalog.NewPortfolio(name, alias, description)
		if err := doc.AddPortfolio(portfolio); err != nil {
			return err
		}
		if err := portfolio.Create(ctx, c.gw.Catalog, nil); err != nil {
			return err
		}
		if err := portfolio.AssociateConduit(ctx, c.gw.Catalog, accountID); err != nil {
			return err
		}
		c.log.Info("created portfolio", "name", name, "id", portfolio.ID)
		return nil
	})
}

// lookupPortfolio resolves a tracked portfolio by name, or by remote id when
// one is given. One of the two is required.
func lookupPortfolio(doc *catalog.ConfigDocument, name, id string) (*catalog.Portfolio, error) {
	if id != "" {
		return catalog.FindPortfolioByID(doc, id)
	}
	if name == "" {
		return nil, cerrors.NewError("conduit.lookup-portfolio",
			fmt.Errorf("%w: a portfolio name or id is required", cerrors.ErrInvalidInput))
	}
	return catalog.FindPortfolio(doc, name)
}

// UpdatePortfolio pushes new metadata for a tracked portfolio, addressed by
// name or by id.
func (c *Conduit) UpdatePortfolio(ctx context.Context, name, id, description string) error {
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		portfolio, err := lookupPortfolio(doc, name, id)
		if err != nil {
			return err
		}
		if description != "" {
			portfolio.Description = description
		}
		return portfolio.Update(ctx, c.gw.Catalog)
	})
}

// DeletePortfolio removes a portfolio, addressed by name or by id, remotely
// and from the document.
func (c *Conduit) DeletePortfolio(ctx context.Context, name, id string) error {
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		portfolio, err := lookupPortfolio(doc, name, id)
		if err != nil {
			return err
		}
		if err := portfolio.Delete(ctx, c.gw.Catalog); err != nil {
			return err
		}
		doc.RemovePortfolio(portfolio.Name)
		c.log.Info("deleted portfolio", "name", portfolio.Name)
		return nil
	})
}

// ListPortfolios prints every remote portfolio in a fixed-width table.
func (c *Conduit) ListPortfolios(ctx context.Context) error {
	portfolios, err := c.gw.Catalog.ListPortfolios(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, rowFormat, "Name", "Description", "Id")
	for _, portfolio := range portfolios {
		fmt.Fprintf(c.out, rowFormat, portfolio.Name, portfolio.Description, portfolio.ID)
	}
	return nil
}
