package catalog

import (
	"context"

	"github.com/concon121/aws-conduit/internal/gateway"
)

// deployerPolicyName is the inline policy carrying a product's deploy profile.
const deployerPolicyName = "deployer-policy"

// Role is an IAM role a product deploys through. Ensure resolves or creates
// the remote role under the conduit path; the id and ARN are cached in the
// document once known.
type Role struct {
	Name string `yaml:"name"`
	ID   string `yaml:"role_id,omitempty"`
	ARN  string `yaml:"role_arn,omitempty"`
}

// Ensure resolves the role against IAM, creating it when absent. Lookup is
// name-based within the conduit path so a stale cached id never masks a
// recreated role.
func (r *Role) Ensure(ctx context.Context, ident *gateway.Identity, accountID string) error {
	roles, err := ident.ListRoles(ctx, gateway.RolePath)
	if err != nil {
		return err
	}
	for _, remote := range roles {
		if remote.Name == r.Name {
			r.ID = remote.ID
			r.ARN = remote.ARN
			return nil
		}
	}
	created, err := ident.CreateRole(ctx, accountID, r.Name, "Deployment role for conduit managed products")
	if err != nil {
		return err
	}
	r.ID = created.ID
	r.ARN = created.ARN
	return nil
}

// UpdatePolicy writes the product's deploy profile as the role's inline
// deployer policy.
func (r *Role) UpdatePolicy(ctx context.Context, ident *gateway.Identity, policy any) error {
	return ident.PutRolePolicy(ctx, r.Name, deployerPolicyName, policy)
}
