package catalog

import (
	"gopkg.in/yaml.v3"
)

// Entity tags used in the persisted configuration document. A tagged node
// always deserializes back into its typed entity, never a plain mapping.
const (
	tagPortfolio = "!Portfolio"
	tagProduct   = "!Product"
	tagUnmanaged = "!UnmanagedProduct"
	tagRole      = "!Role"
)

// marshalTagged encodes v as a mapping node carrying the given entity tag.
func marshalTagged(tag string, v any) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	node.Tag = tag
	return node, nil
}

// unmarshalTagged decodes a tagged mapping node into v, stripping the entity
// tag first so the decoder treats it as an ordinary mapping.
func unmarshalTagged(value *yaml.Node, v any) error {
	value.Tag = "!!map"
	return value.Decode(v)
}

// portfolioAlias and friends break the MarshalYAML/UnmarshalYAML recursion.
type (
	portfolioAlias Portfolio
	productAlias   Product
	unmanagedAlias UnmanagedProduct
	roleAlias      Role
)

// MarshalYAML emits the portfolio as a !Portfolio tagged node.
func (p *Portfolio) MarshalYAML() (any, error) {
	return marshalTagged(tagPortfolio, (*portfolioAlias)(p))
}

// UnmarshalYAML decodes a !Portfolio node, applying entity defaults for
// fields absent from the document.
func (p *Portfolio) UnmarshalYAML(value *yaml.Node) error {
	alias := portfolioAlias{Description: DefaultPortfolioDescription}
	if err := unmarshalTagged(value, &alias); err != nil {
		return err
	}
	*p = Portfolio(alias)
	return nil
}

// MarshalYAML emits the product as a !Product tagged node.
func (p *Product) MarshalYAML() (any, error) {
	return marshalTagged(tagProduct, (*productAlias)(p))
}

// UnmarshalYAML decodes a !Product node, applying entity defaults for fields
// absent from the document.
func (p *Product) UnmarshalYAML(value *yaml.Node) error {
	alias := productAlias{
		Description: DefaultProductDescription,
		Version:     InitialVersion,
	}
	if err := unmarshalTagged(value, &alias); err != nil {
		return err
	}
	*p = Product(alias)
	return nil
}

// MarshalYAML emits the record as an !UnmanagedProduct tagged node.
func (u *UnmanagedProduct) MarshalYAML() (any, error) {
	return marshalTagged(tagUnmanaged, (*unmanagedAlias)(u))
}

// UnmarshalYAML decodes an !UnmanagedProduct node.
func (u *UnmanagedProduct) UnmarshalYAML(value *yaml.Node) error {
	alias := unmanagedAlias{Version: InitialVersion}
	if err := unmarshalTagged(value, &alias); err != nil {
		return err
	}
	*u = UnmanagedProduct(alias)
	return nil
}

// MarshalYAML emits the role as a !Role tagged node.
func (r *Role) MarshalYAML() (any, error) {
	return marshalTagged(tagRole, (*roleAlias)(r))
}

// UnmarshalYAML decodes a !Role node.
func (r *Role) UnmarshalYAML(value *yaml.Node) error {
	var alias roleAlias
	if err := unmarshalTagged(value, &alias); err != nil {
		return err
	}
	*r = Role(alias)
	return nil
}
