package conduit

import (
	"context"
	"fmt"

	"github.com/concon121/aws-conduit/internal/catalog"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/store"
)

// NewProduct registers a product remotely under a tracked portfolio and
// records it in the document. The account alias becomes the product owner.
func (c *Conduit) NewProduct(ctx context.Context, name, description, cfnType, portfolioName string) error {
	if name == "" || cfnType == "" || portfolioName == "" {
		return cerrors.NewError("conduit.new-product",
			fmt.Errorf("%w: product name, template type and portfolio are required", cerrors.ErrInvalidInput))
	}
	alias, err := c.gw.Identity.Alias(ctx)
	if err != nil {
		return err
	}
	if alias == "" {
		return cerrors.NewEntityError("conduit.new-product", "product", name, cerrors.ErrNoAccountAlias)
	}
	return c.store.WithDocument(ctx, func(bucket store.Bucket, doc *catalog.ConfigDocument) error {
		portfolio, err := catalog.FindPortfolio(doc, portfolioName)
		if err != nil {
			return err
		}
		product := catalog.NewProduct(name, alias, description, cfnType, portfolioName)
		if err := portfolio.AddProduct(product); err != nil {
			return err
		}
		if err := product.Create(ctx, c.gw, bucket.Name, doc.Support, nil); err != nil {
			return err
		}
		portfolioID, err := portfolio.ResolveID(ctx, c.gw.Catalog)
		if err != nil {
			return err
		}
		if err := product.AddToPortfolio(ctx, c.gw.Catalog, portfolioID); err != nil {
			return err
		}
		c.log.Info("created product", "name", name, "portfolio", portfolioName, "id", product.ID)
		return nil
	})
}

// lookupProduct resolves a tracked product by name, or by remote id when one
// is given. One of the two is required.
func lookupProduct(doc *catalog.ConfigDocument, name, id string) (*catalog.Portfolio, *catalog.Product, error) {
	if id != "" {
		return catalog.FindProductByID(doc, id)
	}
	if name == "" {
		return nil, nil, cerrors.NewError("conduit.lookup-product",
			fmt.Errorf("%w: a product name or id is required", cerrors.ErrInvalidInput))
	}
	return catalog.FindProduct(doc, name)
}

// UpdateProduct pushes new metadata for a tracked product, addressed by name
// or by id.
func (c *Conduit) UpdateProduct(ctx context.Context, name, id, description string) error {
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		_, product, err := lookupProduct(doc, name, id)
		if err != nil {
			return err
		}
		if description != "" {
			product.Description = description
		}
		return product.Update(ctx, c.gw.Catalog, doc.Support)
	})
}

// DeleteProduct removes a product, addressed by name or by id, remotely and
// from its portfolio in the document.
func (c *Conduit) DeleteProduct(ctx context.Context, name, id string) error {
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		portfolio, product, err := lookupProduct(doc, name, id)
		if err != nil {
			return err
		}
		if err := product.Delete(ctx, c.gw.Catalog); err != nil {
			return err
		}
		portfolio.RemoveProduct(product.Name)
		c.log.Info("deleted product", "name", product.Name)
		return nil
	})
}

// ListProducts prints every remote product in a fixed-width table.
func (c *Conduit) ListProducts(ctx context.Context) error {
	products, err := c.gw.Catalog.ListAllProducts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, rowFormat, "Name", "Description", "Id")
	for _, product := range products {
		fmt.Fprintf(c.out, rowFormat, product.Name, product.Description, product.ID)
	}
	return nil
}

// AssociateProduct associates a tracked product with another tracked
// portfolio and records the edge in the document.
func (c *Conduit) AssociateProduct(ctx context.Context, productName, portfolioName string) error {
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		portfolio, err := catalog.FindPortfolio(doc, portfolioName)
		if err != nil {
			return err
		}
		_, product, err := catalog.FindProduct(doc, productName)
		if err != nil {
			return err
		}
		portfolioID, err := portfolio.ResolveID(ctx, c.gw.Catalog)
		if err != nil {
			return err
		}
		if err := product.AddToPortfolio(ctx, c.gw.Catalog, portfolioID); err != nil {
			return err
		}
		if portfolio.FindProduct(productName) == nil {
			if err := portfolio.AddProduct(product); err != nil {
				return err
			}
		}
		return nil
	})
}
