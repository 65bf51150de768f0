package catalog

import (
	"context"
	"fmt"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/gateway"
)

// FindPortfolio looks a portfolio up in the document by name.
func FindPortfolio(doc *ConfigDocument, name string) (*Portfolio, error) {
	for _, portfolio := range doc.Portfolios {
		if portfolio.Name == name {
			return portfolio, nil
		}
	}
	return nil, cerrors.NewEntityError("catalog.find-portfolio", "portfolio", name, cerrors.ErrNotFound)
}

// FindPortfolioByID looks a portfolio up in the document by its cached
// remote id.
func FindPortfolioByID(doc *ConfigDocument, id string) (*Portfolio, error) {
	for _, portfolio := range doc.Portfolios {
		if portfolio.ID == id {
			return portfolio, nil
		}
	}
	return nil, cerrors.NewEntityError("catalog.find-portfolio", "portfolio", id, cerrors.ErrNotFound)
}

// FindProduct looks a product up across every portfolio in the document.
func FindProduct(doc *ConfigDocument, name string) (*Portfolio, *Product, error) {
	for _, portfolio := range doc.Portfolios {
		if product := portfolio.FindProduct(name); product != nil {
			return portfolio, product, nil
		}
	}
	return nil, nil, cerrors.NewEntityError("catalog.find-product", "product", name, cerrors.ErrNotFound)
}

// FindProductByID looks a product up across every portfolio in the document
// by its cached remote id.
func FindProductByID(doc *ConfigDocument, id string) (*Portfolio, *Product, error) {
	for _, portfolio := range doc.Portfolios {
		for _, product := range portfolio.Products {
			if product.ID == id {
				return portfolio, product, nil
			}
		}
	}
	return nil, nil, cerrors.NewEntityError("catalog.find-product", "product", id, cerrors.ErrNotFound)
}

// ResolveBuildTarget locates a product under the named portfolio and checks
// both still exist remotely. The lookup is scoped to that portfolio: a
// portfolio or product missing from the document or from the account means
// the build specification, the document, and the account have drifted, which
// is reported as an inconsistency rather than a plain miss.
func ResolveBuildTarget(ctx context.Context, cat *gateway.Catalog, doc *ConfigDocument, portfolioName, name string) (*Portfolio, *Product, error) {
	portfolio, err := FindPortfolio(doc, portfolioName)
	if err != nil {
		return nil, nil, cerrors.NewEntityError("catalog.resolve-target", "portfolio", portfolioName,
			fmt.Errorf("%w: portfolio is not in the config document", cerrors.ErrConfigInconsistent))
	}
	exists, err := portfolio.Exists(ctx, cat)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, cerrors.NewEntityError("catalog.resolve-target", "portfolio", portfolioName,
			fmt.Errorf("%w: portfolio is in the config document but does not exist remotely", cerrors.ErrConfigInconsistent))
	}
	product := portfolio.FindProduct(name)
	if product == nil {
		return nil, nil, cerrors.NewEntityError("catalog.resolve-target", "product", name,
			fmt.Errorf("%w: product is not tracked under portfolio %q", cerrors.ErrConfigInconsistent, portfolioName))
	}
	exists, err = product.Exists(ctx, cat)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, cerrors.NewEntityError("catalog.resolve-target", "product", name,
			fmt.Errorf("%w: product is in the config document but does not exist remotely", cerrors.ErrConfigInconsistent))
	}
	return portfolio, product, nil
}

// SyncDocument reconciles the document against the remote catalog: cached ids
// are refreshed from name lookups, and entities whose remote counterpart no
// longer exists are dropped. Returns the names of the dropped entities.
func SyncDocument(ctx context.Context, cat *gateway.Catalog, doc *ConfigDocument) ([]string, error) {
	var dropped []string
	kept := doc.Portfolios[:0]
	for _, portfolio := range doc.Portfolios {
		portfolio.ID = ""
		if _, err := portfolio.ResolveID(ctx, cat); err != nil {
			if !cerrors.IsNotFound(err) {
				return nil, err
			}
			dropped = append(dropped, portfolio.Name)
			continue
		}
		keptProducts := portfolio.Products[:0]
		for _, product := range portfolio.Products {
			product.ID = ""
			if err := product.ResolveID(ctx, cat); err != nil {
				if !cerrors.IsNotFound(err) {
					return nil, err
				}
				dropped = append(dropped, product.Name)
				continue
			}
			keptProducts = append(keptProducts, product)
		}
		portfolio.Products = keptProducts
		kept = append(kept, portfolio)
	}
	doc.Portfolios = kept
	return dropped, nil
}
