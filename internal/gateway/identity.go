package gateway

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/concon121/aws-conduit/internal/awsapi"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

// Identity wraps the IAM and STS operations conduit needs: caller identity,
// account aliases, and the deploy/provisioner role plumbing.
type Identity struct {
	iamAPI awsapi.IAMAPI
	stsAPI awsapi.STSAPI
}

// NewIdentity creates an Identity wrapper around the given API implementations.
func NewIdentity(iamAPI awsapi.IAMAPI, stsAPI awsapi.STSAPI) *Identity {
	return &Identity{iamAPI: iamAPI, stsAPI: stsAPI}
}

// RoleSummary describes an IAM role under the conduit path.
type RoleSummary struct {
	Name string
	ID   string
	ARN  string
}

// AccountID returns the id of the calling account.
func (i *Identity) AccountID(ctx context.Context) (string, error) {
	out, err := i.stsAPI.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", cerrors.Remote("identity.caller-identity", err)
	}
	return aws.ToString(out.Account), nil
}

// Alias returns the first account alias, or the empty string when none is set.
func (i *Identity) Alias(ctx context.Context) (string, error) {
	out, err := i.iamAPI.ListAccountAliases(ctx, &iam.ListAccountAliasesInput{})
	if err != nil {
		return "", cerrors.Remote("identity.list-aliases", err)
	}
	if len(out.AccountAliases) == 0 {
		return "", nil
	}
	return out.AccountAliases[0], nil
}

// assumeRolePolicy is the trust policy applied to every conduit role: the
// owning account and the Service Catalog service may assume it.
func assumeRolePolicy(accountID string) (string, error) {
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Principal": map[string]any{"AWS": accountID},
				"Effect":    "Allow",
				"Action":    []string{"sts:AssumeRole"},
			},
			{
				"Principal": map[string]any{"Service": "servicecatalog.amazonaws.com"},
				"Effect":    "Allow",
				"Action":    []string{"sts:AssumeRole"},
			},
		},
	}
	data, err := json.Marshal(policy)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CreateRole creates a role under the conduit path with the standard trust
// policy and returns its id and ARN.
func (i *Identity) CreateRole(ctx context.Context, accountID, name, description string) (RoleSummary, error) {
	trust, err := assumeRolePolicy(accountID)
	if err != nil {
		return RoleSummary{}, cerrors.NewError("identity.create-role", err)
	}
	out, err := i.iamAPI.CreateRole(ctx, &iam.CreateRoleInput{
		Path:                     aws.String(RolePath),
		RoleName:                 aws.String(name),
		AssumeRolePolicyDocument: aws.String(trust),
		Description:              aws.String(description),
	})
	if err != nil {
		return RoleSummary{}, cerrors.Remote("identity.create-role", err).WithEntity("role", name)
	}
	return RoleSummary{
		Name: aws.ToString(out.Role.RoleName),
		ID:   aws.ToString(out.Role.RoleId),
		ARN:  aws.ToString(out.Role.Arn),
	}, nil
}

// ListRoles returns every role under the given path prefix, following markers
// until exhausted.
func (i *Identity) ListRoles(ctx context.Context, pathPrefix string) ([]RoleSummary, error) {
	var roles []RoleSummary
	var marker *string
	for {
		out, err := i.iamAPI.ListRoles(ctx, &iam.ListRolesInput{
			PathPrefix: aws.String(pathPrefix),
			Marker:     marker,
		})
		if err != nil {
			return nil, cerrors.Remote("identity.list-roles", err)
		}
		for _, role := range out.Roles {
			roles = append(roles, RoleSummary{
				Name: aws.ToString(role.RoleName),
				ID:   aws.ToString(role.RoleId),
				ARN:  aws.ToString(role.Arn),
			})
		}
		if !out.IsTruncated {
			return roles, nil
		}
		marker = out.Marker
	}
}

// AttachManagedPolicy attaches an AWS managed policy to a role by policy name.
func (i *Identity) AttachManagedPolicy(ctx context.Context, roleName, policyName string) error {
	_, err := i.iamAPI.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String("arn:aws:iam::aws:policy/" + policyName),
	})
	if err != nil {
		return cerrors.Remote("identity.attach-policy", err).WithEntity("role", roleName)
	}
	return nil
}

// PutRolePolicy writes an inline policy document on a role.
func (i *Identity) PutRolePolicy(ctx context.Context, roleName, policyName string, policy any) error {
	data, err := json.Marshal(policy)
	if err != nil {
		return cerrors.NewError("identity.put-role-policy", err).WithEntity("role", roleName)
	}
	_, err = i.iamAPI.PutRolePolicy(ctx, &iam.PutRolePolicyInput{
		RoleName:       aws.String(roleName),
		PolicyName:     aws.String(policyName),
		PolicyDocument: aws.String(string(data)),
	})
	if err != nil {
		return cerrors.Remote("identity.put-role-policy", err).WithEntity("role", roleName)
	}
	return nil
}
