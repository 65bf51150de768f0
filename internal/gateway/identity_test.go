package gateway

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concon121/aws-conduit/internal/testutil"
)

func TestAccountID(t *testing.T) {
	stsAPI := &testutil.MockSTSAPI{
		GetCallerIdentityFunc: func(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
			return &sts.GetCallerIdentityOutput{Account: aws.String("111122223333")}, nil
		},
	}
	ident := NewIdentity(&testutil.MockIAMAPI{}, stsAPI)
	got, err := ident.AccountID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "111122223333", got)
}

func TestAliasEmptyWhenUnset(t *testing.T) {
	ident := NewIdentity(&testutil.MockIAMAPI{}, &testutil.MockSTSAPI{})
	alias, err := ident.Alias(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alias)
}

func TestAliasReturnsFirst(t *testing.T) {
	iamAPI := &testutil.MockIAMAPI{
		ListAccountAliasesFunc: func(_ context.Context, _ *iam.ListAccountAliasesInput, _ ...func(*iam.Options)) (*iam.ListAccountAliasesOutput, error) {
			return &iam.ListAccountAliasesOutput{AccountAliases: []string{"example-account", "legacy-alias"}}, nil
		},
	}
	ident := NewIdentity(iamAPI, &testutil.MockSTSAPI{})
	alias, err := ident.Alias(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "example-account", alias)
}

func TestCreateRoleTrustPolicyAndPath(t *testing.T) {
	var captured *iam.CreateRoleInput
	iamAPI := &testutil.MockIAMAPI{
		CreateRoleFunc: func(_ context.Context, in *iam.CreateRoleInput, _ ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
			captured = in
			return &iam.CreateRoleOutput{Role: &iamtypes.Role{
				RoleName: in.RoleName,
				RoleId:   aws.String("AROA123"),
				Arn:      aws.String("arn:aws:iam::111122223333:role/conduit/vpc-deployer"),
			}}, nil
		},
	}
	ident := NewIdentity(iamAPI, &testutil.MockSTSAPI{})
	role, err := ident.CreateRole(context.Background(), "111122223333", "vpc-deployer", "test role")
	require.NoError(t, err)

	assert.Equal(t, "vpc-deployer", role.Name)
	assert.Equal(t, "AROA123", role.ID)
	require.NotNil(t, captured)
	assert.Equal(t, RolePath, aws.ToString(captured.Path))

	trust := aws.ToString(captured.AssumeRolePolicyDocument)
	assert.Contains(t, trust, "111122223333")
	assert.Contains(t, trust, "servicecatalog.amazonaws.com")
	assert.Contains(t, trust, "sts:AssumeRole")
}

func TestListRolesDrainsMarkers(t *testing.T) {
	iamAPI := &testutil.MockIAMAPI{
		ListRolesFunc: func(_ context.Context, in *iam.ListRolesInput, _ ...func(*iam.Options)) (*iam.ListRolesOutput, error) {
			assert.Equal(t, RolePath, aws.ToString(in.PathPrefix))
			if in.Marker == nil {
				return &iam.ListRolesOutput{
					Roles:       []iamtypes.Role{{RoleName: aws.String("one"), RoleId: aws.String("id1"), Arn: aws.String("arn1")}},
					IsTruncated: true,
					Marker:      aws.String("m"),
				}, nil
			}
			return &iam.ListRolesOutput{
				Roles: []iamtypes.Role{{RoleName: aws.String("two"), RoleId: aws.String("id2"), Arn: aws.String("arn2")}},
			}, nil
		},
	}
	ident := NewIdentity(iamAPI, &testutil.MockSTSAPI{})
	roles, err := ident.ListRoles(context.Background(), RolePath)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "one", roles[0].Name)
	assert.Equal(t, "two", roles[1].Name)
}

func TestAttachManagedPolicyBuildsARN(t *testing.T) {
	var policyARN string
	iamAPI := &testutil.MockIAMAPI{
		AttachRolePolicyFunc: func(_ context.Context, in *iam.AttachRolePolicyInput, _ ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
			policyARN = aws.ToString(in.PolicyArn)
			return &iam.AttachRolePolicyOutput{}, nil
		},
	}
	ident := NewIdentity(iamAPI, &testutil.MockSTSAPI{})
	require.NoError(t, ident.AttachManagedPolicy(context.Background(), "a-role", "AWSServiceCatalogAdminFullAccess"))
	assert.Equal(t, "arn:aws:iam::aws:policy/AWSServiceCatalogAdminFullAccess", policyARN)
}

func TestProvisionerRoleARN(t *testing.T) {
	assert.Equal(t,
		"arn:aws:iam::111122223333:role/conduit/conduit-provisioner-role",
		ProvisionerRoleARN("111122223333"))
}
