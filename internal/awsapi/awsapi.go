// Package awsapi defines narrow interfaces over the AWS SDK v2 service
// clients used by conduit. The interfaces allow for mocking in tests and keep
// gateway code decoupled from concrete SDK clients.
package awsapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// S3API defines the S3 operations used by the storage gateway.
type S3API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)

	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)

	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)

	PutBucketVersioning(
		ctx context.Context,
		params *s3.PutBucketVersioningInput,
		optFns ...func(*s3.Options),
	) (*s3.PutBucketVersioningOutput, error)

	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)

	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)

	DeleteObject(
		ctx context.Context,
		params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteObjectOutput, error)

	DeleteObjects(
		ctx context.Context,
		params *s3.DeleteObjectsInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteObjectsOutput, error)

	ListObjectsV2(
		ctx context.Context,
		params *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)
}

// CatalogAPI defines the Service Catalog operations used by the catalog gateway.
type CatalogAPI interface {
	CreatePortfolio(
		ctx context.Context,
		params *servicecatalog.CreatePortfolioInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.CreatePortfolioOutput, error)

	UpdatePortfolio(
		ctx context.Context,
		params *servicecatalog.UpdatePortfolioInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.UpdatePortfolioOutput, error)

	DeletePortfolio(
		ctx context.Context,
		params *servicecatalog.DeletePortfolioInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.DeletePortfolioOutput, error)

	ListPortfolios(
		ctx context.Context,
		params *servicecatalog.ListPortfoliosInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.ListPortfoliosOutput, error)

	ListPortfoliosForProduct(
		ctx context.Context,
		params *servicecatalog.ListPortfoliosForProductInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.ListPortfoliosForProductOutput, error)

	AssociatePrincipalWithPortfolio(
		ctx context.Context,
		params *servicecatalog.AssociatePrincipalWithPortfolioInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.AssociatePrincipalWithPortfolioOutput, error)

	CreateProduct(
		ctx context.Context,
		params *servicecatalog.CreateProductInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.CreateProductOutput, error)

	UpdateProduct(
		ctx context.Context,
		params *servicecatalog.UpdateProductInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.UpdateProductOutput, error)

	DeleteProduct(
		ctx context.Context,
		params *servicecatalog.DeleteProductInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.DeleteProductOutput, error)

	SearchProductsAsAdmin(
		ctx context.Context,
		params *servicecatalog.SearchProductsAsAdminInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.SearchProductsAsAdminOutput, error)

	AssociateProductWithPortfolio(
		ctx context.Context,
		params *servicecatalog.AssociateProductWithPortfolioInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.AssociateProductWithPortfolioOutput, error)

	DisassociateProductFromPortfolio(
		ctx context.Context,
		params *servicecatalog.DisassociateProductFromPortfolioInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.DisassociateProductFromPortfolioOutput, error)

	ListProvisioningArtifacts(
		ctx context.Context,
		params *servicecatalog.ListProvisioningArtifactsInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.ListProvisioningArtifactsOutput, error)

	CreateProvisioningArtifact(
		ctx context.Context,
		params *servicecatalog.CreateProvisioningArtifactInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.CreateProvisioningArtifactOutput, error)

	DeleteProvisioningArtifact(
		ctx context.Context,
		params *servicecatalog.DeleteProvisioningArtifactInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.DeleteProvisioningArtifactOutput, error)

	ListLaunchPaths(
		ctx context.Context,
		params *servicecatalog.ListLaunchPathsInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.ListLaunchPathsOutput, error)

	DescribeProvisioningParameters(
		ctx context.Context,
		params *servicecatalog.DescribeProvisioningParametersInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.DescribeProvisioningParametersOutput, error)

	ProvisionProduct(
		ctx context.Context,
		params *servicecatalog.ProvisionProductInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.ProvisionProductOutput, error)

	UpdateProvisionedProduct(
		ctx context.Context,
		params *servicecatalog.UpdateProvisionedProductInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.UpdateProvisionedProductOutput, error)

	TerminateProvisionedProduct(
		ctx context.Context,
		params *servicecatalog.TerminateProvisionedProductInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.TerminateProvisionedProductOutput, error)

	ScanProvisionedProducts(
		ctx context.Context,
		params *servicecatalog.ScanProvisionedProductsInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.ScanProvisionedProductsOutput, error)

	CreateConstraint(
		ctx context.Context,
		params *servicecatalog.CreateConstraintInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.CreateConstraintOutput, error)

	ListConstraintsForPortfolio(
		ctx context.Context,
		params *servicecatalog.ListConstraintsForPortfolioInput,
		optFns ...func(*servicecatalog.Options),
	) (*servicecatalog.ListConstraintsForPortfolioOutput, error)
}

// IAMAPI defines the IAM operations used by the identity gateway.
type IAMAPI interface {
	ListAccountAliases(
		ctx context.Context,
		params *iam.ListAccountAliasesInput,
		optFns ...func(*iam.Options),
	) (*iam.ListAccountAliasesOutput, error)

	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)

	ListRoles(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error)

	AttachRolePolicy(
		ctx context.Context,
		params *iam.AttachRolePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.AttachRolePolicyOutput, error)

	PutRolePolicy(
		ctx context.Context,
		params *iam.PutRolePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.PutRolePolicyOutput, error)
}

// STSAPI defines the STS operations used by the identity gateway.
type STSAPI interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

// CloudFormationAPI defines the CloudFormation operations used for template
// inspection.
type CloudFormationAPI interface {
	GetTemplateSummary(
		ctx context.Context,
		params *cloudformation.GetTemplateSummaryInput,
		optFns ...func(*cloudformation.Options),
	) (*cloudformation.GetTemplateSummaryOutput, error)
}
