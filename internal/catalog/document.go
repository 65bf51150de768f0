package catalog

import (
	"fmt"
	"time"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

// ConfigDocument is the root aggregate persisted to the configuration bucket.
// One document exists per AWS account; it is read and fully rewritten around
// every mutating command. Last writer wins.
type ConfigDocument struct {
	Created    time.Time    `yaml:"created"`
	Support    *Support     `yaml:"support,omitempty"`
	Portfolios []*Portfolio `yaml:"portfolios,omitempty"`
}

// Support holds the default support details applied to new products.
// Fields the user never set stay absent from the persisted document; the
// documented defaults are applied at product-creation time only.
type Support struct {
	Description string `yaml:"description,omitempty"`
	Email       string `yaml:"email,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

// Support defaults used when a product is created or updated without a
// support configuration. These literals are part of the product contract.
const (
	DefaultSupportDescription = "NotSet"
	DefaultSupportEmail       = "noone@home.com"
	DefaultSupportURL         = "http://notset.com"
)

// orDefault fills absent support fields with the documented defaults.
// A nil Support yields all defaults.
func (s *Support) orDefault() (description, email, url string) {
	description = DefaultSupportDescription
	email = DefaultSupportEmail
	url = DefaultSupportURL
	if s == nil {
		return description, email, url
	}
	if s.Description != "" {
		description = s.Description
	}
	if s.Email != "" {
		email = s.Email
	}
	if s.URL != "" {
		url = s.URL
	}
	return description, email, url
}

// NewDocument creates an empty configuration document stamped with the
// current time.
func NewDocument() *ConfigDocument {
	return &ConfigDocument{Created: time.Now().UTC()}
}

// Validate asserts the document invariants: portfolio names are unique within
// the document and product names are unique within their portfolio.
func (d *ConfigDocument) Validate() error {
	portfolioNames := make(map[string]struct{}, len(d.Portfolios))
	for _, portfolio := range d.Portfolios {
		if _, dup := portfolioNames[portfolio.Name]; dup {
			return cerrors.NewEntityError("document.validate", "portfolio", portfolio.Name,
				fmt.Errorf("%w: duplicate portfolio name", cerrors.ErrInvalidInput))
		}
		portfolioNames[portfolio.Name] = struct{}{}

		productNames := make(map[string]struct{}, len(portfolio.Products))
		for _, product := range portfolio.Products {
			if _, dup := productNames[product.Name]; dup {
				return cerrors.NewEntityError("document.validate", "product", product.Name,
					fmt.Errorf("%w: duplicate product name in portfolio %q", cerrors.ErrInvalidInput, portfolio.Name))
			}
			productNames[product.Name] = struct{}{}
		}
	}
	return nil
}

// AddPortfolio appends a portfolio, enforcing name uniqueness.
func (d *ConfigDocument) AddPortfolio(portfolio *Portfolio) error {
	for _, existing := range d.Portfolios {
		if existing.Name == portfolio.Name {
			return cerrors.NewEntityError("document.add-portfolio", "portfolio", portfolio.Name,
				fmt.Errorf("%w: portfolio already recorded", cerrors.ErrInvalidInput))
		}
	}
	d.Portfolios = append(d.Portfolios, portfolio)
	return nil
}

// RemovePortfolio drops the named portfolio from the document.
// Returns false when the portfolio was not recorded.
func (d *ConfigDocument) RemovePortfolio(name string) bool {
	for i, portfolio := range d.Portfolios {
		if portfolio.Name == name {
			d.Portfolios = append(d.Portfolios[:i], d.Portfolios[i+1:]...)
			return true
		}
	}
	return false
}
