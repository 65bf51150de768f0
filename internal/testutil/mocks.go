// Package testutil provides function-field mocks for the awsapi interfaces.
// Tests set only the functions they care about; unset functions return empty
// responses so unrelated calls succeed quietly.
package testutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// MockS3API implements awsapi.S3API with overridable function fields.
type MockS3API struct {
	HeadBucketFunc          func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucketFunc        func(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	DeleteBucketFunc        func(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
	PutBucketVersioningFunc func(ctx context.Context, params *s3.PutBucketVersioningInput, optFns ...func(*s3.Options)) (*s3.PutBucketVersioningOutput, error)
	GetObjectFunc           func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObjectFunc           func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjectFunc        func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjectsFunc       func(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	ListObjectsV2Func       func(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

func (m *MockS3API) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if m.HeadBucketFunc != nil {
		return m.HeadBucketFunc(ctx, params, optFns...)
	}
	return &s3.HeadBucketOutput{}, nil
}

func (m *MockS3API) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	if m.CreateBucketFunc != nil {
		return m.CreateBucketFunc(ctx, params, optFns...)
	}
	return &s3.CreateBucketOutput{}, nil
}

func (m *MockS3API) DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	if m.DeleteBucketFunc != nil {
		return m.DeleteBucketFunc(ctx, params, optFns...)
	}
	return &s3.DeleteBucketOutput{}, nil
}

func (m *MockS3API) PutBucketVersioning(ctx context.Context, params *s3.PutBucketVersioningInput, optFns ...func(*s3.Options)) (*s3.PutBucketVersioningOutput, error) {
	if m.PutBucketVersioningFunc != nil {
		return m.PutBucketVersioningFunc(ctx, params, optFns...)
	}
	return &s3.PutBucketVersioningOutput{}, nil
}

func (m *MockS3API) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, params, optFns...)
	}
	return &s3.GetObjectOutput{}, nil
}

func (m *MockS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

func (m *MockS3API) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.DeleteObjectFunc != nil {
		return m.DeleteObjectFunc(ctx, params, optFns...)
	}
	return &s3.DeleteObjectOutput{}, nil
}

func (m *MockS3API) DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	if m.DeleteObjectsFunc != nil {
		return m.DeleteObjectsFunc(ctx, params, optFns...)
	}
	return &s3.DeleteObjectsOutput{}, nil
}

func (m *MockS3API) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if m.ListObjectsV2Func != nil {
		return m.ListObjectsV2Func(ctx, params, optFns...)
	}
	return &s3.ListObjectsV2Output{}, nil
}

// MockCatalogAPI implements awsapi.CatalogAPI with overridable function fields.
type MockCatalogAPI struct {
	CreatePortfolioFunc                  func(ctx context.Context, params *servicecatalog.CreatePortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreatePortfolioOutput, error)
	UpdatePortfolioFunc                  func(ctx context.Context, params *servicecatalog.UpdatePortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.UpdatePortfolioOutput, error)
	DeletePortfolioFunc                  func(ctx context.Context, params *servicecatalog.DeletePortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DeletePortfolioOutput, error)
	ListPortfoliosFunc                   func(ctx context.Context, params *servicecatalog.ListPortfoliosInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosOutput, error)
	ListPortfoliosForProductFunc         func(ctx context.Context, params *servicecatalog.ListPortfoliosForProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosForProductOutput, error)
	AssociatePrincipalWithPortfolioFunc  func(ctx context.Context, params *servicecatalog.AssociatePrincipalWithPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.AssociatePrincipalWithPortfolioOutput, error)
	CreateProductFunc                    func(ctx context.Context, params *servicecatalog.CreateProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreateProductOutput, error)
	UpdateProductFunc                    func(ctx context.Context, params *servicecatalog.UpdateProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.UpdateProductOutput, error)
	DeleteProductFunc                    func(ctx context.Context, params *servicecatalog.DeleteProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DeleteProductOutput, error)
	SearchProductsAsAdminFunc            func(ctx context.Context, params *servicecatalog.SearchProductsAsAdminInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.SearchProductsAsAdminOutput, error)
	AssociateProductWithPortfolioFunc    func(ctx context.Context, params *servicecatalog.AssociateProductWithPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.AssociateProductWithPortfolioOutput, error)
	DisassociateProductFromPortfolioFunc func(ctx context.Context, params *servicecatalog.DisassociateProductFromPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DisassociateProductFromPortfolioOutput, error)
	ListProvisioningArtifactsFunc        func(ctx context.Context, params *servicecatalog.ListProvisioningArtifactsInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListProvisioningArtifactsOutput, error)
	CreateProvisioningArtifactFunc       func(ctx context.Context, params *servicecatalog.CreateProvisioningArtifactInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreateProvisioningArtifactOutput, error)
	DeleteProvisioningArtifactFunc       func(ctx context.Context, params *servicecatalog.DeleteProvisioningArtifactInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DeleteProvisioningArtifactOutput, error)
	ListLaunchPathsFunc                  func(ctx context.Context, params *servicecatalog.ListLaunchPathsInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListLaunchPathsOutput, error)
	DescribeProvisioningParametersFunc   func(ctx context.Context, params *servicecatalog.DescribeProvisioningParametersInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DescribeProvisioningParametersOutput, error)
	ProvisionProductFunc                 func(ctx context.Context, params *servicecatalog.ProvisionProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ProvisionProductOutput, error)
	UpdateProvisionedProductFunc         func(ctx context.Context, params *servicecatalog.UpdateProvisionedProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.UpdateProvisionedProductOutput, error)
	TerminateProvisionedProductFunc      func(ctx context.Context, params *servicecatalog.TerminateProvisionedProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.TerminateProvisionedProductOutput, error)
	ScanProvisionedProductsFunc          func(ctx context.Context, params *servicecatalog.ScanProvisionedProductsInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ScanProvisionedProductsOutput, error)
	CreateConstraintFunc                 func(ctx context.Context, params *servicecatalog.CreateConstraintInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreateConstraintOutput, error)
	ListConstraintsForPortfolioFunc      func(ctx context.Context, params *servicecatalog.ListConstraintsForPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListConstraintsForPortfolioOutput, error)
}

func (m *MockCatalogAPI) CreatePortfolio(ctx context.Context, params *servicecatalog.CreatePortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreatePortfolioOutput, error) {
	if m.CreatePortfolioFunc != nil {
		return m.CreatePortfolioFunc(ctx, params, optFns...)
	}
	return &servicecatalog.CreatePortfolioOutput{}, nil
}

func (m *MockCatalogAPI) UpdatePortfolio(ctx context.Context, params *servicecatalog.UpdatePortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.UpdatePortfolioOutput, error) {
	if m.UpdatePortfolioFunc != nil {
		return m.UpdatePortfolioFunc(ctx, params, optFns...)
	}
	return &servicecatalog.UpdatePortfolioOutput{}, nil
}

func (m *MockCatalogAPI) DeletePortfolio(ctx context.Context, params *servicecatalog.DeletePortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DeletePortfolioOutput, error) {
	if m.DeletePortfolioFunc != nil {
		return m.DeletePortfolioFunc(ctx, params, optFns...)
	}
	return &servicecatalog.DeletePortfolioOutput{}, nil
}

func (m *MockCatalogAPI) ListPortfolios(ctx context.Context, params *servicecatalog.ListPortfoliosInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosOutput, error) {
	if m.ListPortfoliosFunc != nil {
		return m.ListPortfoliosFunc(ctx, params, optFns...)
	}
	return &servicecatalog.ListPortfoliosOutput{}, nil
}

func (m *MockCatalogAPI) ListPortfoliosForProduct(ctx context.Context, params *servicecatalog.ListPortfoliosForProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosForProductOutput, error) {
	if m.ListPortfoliosForProductFunc != nil {
		return m.ListPortfoliosForProductFunc(ctx, params, optFns...)
	}
	return &servicecatalog.ListPortfoliosForProductOutput{}, nil
}

func (m *MockCatalogAPI) AssociatePrincipalWithPortfolio(ctx context.Context, params *servicecatalog.AssociatePrincipalWithPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.AssociatePrincipalWithPortfolioOutput, error) {
	if m.AssociatePrincipalWithPortfolioFunc != nil {
		return m.AssociatePrincipalWithPortfolioFunc(ctx, params, optFns...)
	}
	return &servicecatalog.AssociatePrincipalWithPortfolioOutput{}, nil
}

func (m *MockCatalogAPI) CreateProduct(ctx context.Context, params *servicecatalog.CreateProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreateProductOutput, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, params, optFns...)
	}
	return &servicecatalog.CreateProductOutput{}, nil
}

func (m *MockCatalogAPI) UpdateProduct(ctx context.Context, params *servicecatalog.UpdateProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.UpdateProductOutput, error) {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, params, optFns...)
	}
	return &servicecatalog.UpdateProductOutput{}, nil
}

func (m *MockCatalogAPI) DeleteProduct(ctx context.Context, params *servicecatalog.DeleteProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DeleteProductOutput, error) {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, params, optFns...)
	}
	return &servicecatalog.DeleteProductOutput{}, nil
}

func (m *MockCatalogAPI) SearchProductsAsAdmin(ctx context.Context, params *servicecatalog.SearchProductsAsAdminInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.SearchProductsAsAdminOutput, error) {
	if m.SearchProductsAsAdminFunc != nil {
		return m.SearchProductsAsAdminFunc(ctx, params, optFns...)
	}
	return &servicecatalog.SearchProductsAsAdminOutput{}, nil
}

func (m *MockCatalogAPI) AssociateProductWithPortfolio(ctx context.Context, params *servicecatalog.AssociateProductWithPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.AssociateProductWithPortfolioOutput, error) {
	if m.AssociateProductWithPortfolioFunc != nil {
		return m.AssociateProductWithPortfolioFunc(ctx, params, optFns...)
	}
	return &servicecatalog.AssociateProductWithPortfolioOutput{}, nil
}

func (m *MockCatalogAPI) DisassociateProductFromPortfolio(ctx context.Context, params *servicecatalog.DisassociateProductFromPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DisassociateProductFromPortfolioOutput, error) {
	if m.DisassociateProductFromPortfolioFunc != nil {
		return m.DisassociateProductFromPortfolioFunc(ctx, params, optFns...)
	}
	return &servicecatalog.DisassociateProductFromPortfolioOutput{}, nil
}

func (m *MockCatalogAPI) ListProvisioningArtifacts(ctx context.Context, params *servicecatalog.ListProvisioningArtifactsInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListProvisioningArtifactsOutput, error) {
	if m.ListProvisioningArtifactsFunc != nil {
		return m.ListProvisioningArtifactsFunc(ctx, params, optFns...)
	}
	return &servicecatalog.ListProvisioningArtifactsOutput{}, nil
}

func (m *MockCatalogAPI) CreateProvisioningArtifact(ctx context.Context, params *servicecatalog.CreateProvisioningArtifactInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreateProvisioningArtifactOutput, error) {
	if m.CreateProvisioningArtifactFunc != nil {
		return m.CreateProvisioningArtifactFunc(ctx, params, optFns...)
	}
	return &servicecatalog.CreateProvisioningArtifactOutput{}, nil
}

func (m *MockCatalogAPI) DeleteProvisioningArtifact(ctx context.Context, params *servicecatalog.DeleteProvisioningArtifactInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DeleteProvisioningArtifactOutput, error) {
	if m.DeleteProvisioningArtifactFunc != nil {
		return m.DeleteProvisioningArtifactFunc(ctx, params, optFns...)
	}
	return &servicecatalog.DeleteProvisioningArtifactOutput{}, nil
}

func (m *MockCatalogAPI) ListLaunchPaths(ctx context.Context, params *servicecatalog.ListLaunchPathsInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListLaunchPathsOutput, error) {
	if m.ListLaunchPathsFunc != nil {
		return m.ListLaunchPathsFunc(ctx, params, optFns...)
	}
	return &servicecatalog.ListLaunchPathsOutput{}, nil
}

func (m *MockCatalogAPI) DescribeProvisioningParameters(ctx context.Context, params *servicecatalog.DescribeProvisioningParametersInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.DescribeProvisioningParametersOutput, error) {
	if m.DescribeProvisioningParametersFunc != nil {
		return m.DescribeProvisioningParametersFunc(ctx, params, optFns...)
	}
	return &servicecatalog.DescribeProvisioningParametersOutput{}, nil
}

func (m *MockCatalogAPI) ProvisionProduct(ctx context.Context, params *servicecatalog.ProvisionProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ProvisionProductOutput, error) {
	if m.ProvisionProductFunc != nil {
		return m.ProvisionProductFunc(ctx, params, optFns...)
	}
	return &servicecatalog.ProvisionProductOutput{}, nil
}

func (m *MockCatalogAPI) UpdateProvisionedProduct(ctx context.Context, params *servicecatalog.UpdateProvisionedProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.UpdateProvisionedProductOutput, error) {
	if m.UpdateProvisionedProductFunc != nil {
		return m.UpdateProvisionedProductFunc(ctx, params, optFns...)
	}
	return &servicecatalog.UpdateProvisionedProductOutput{}, nil
}

func (m *MockCatalogAPI) TerminateProvisionedProduct(ctx context.Context, params *servicecatalog.TerminateProvisionedProductInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.TerminateProvisionedProductOutput, error) {
	if m.TerminateProvisionedProductFunc != nil {
		return m.TerminateProvisionedProductFunc(ctx, params, optFns...)
	}
	return &servicecatalog.TerminateProvisionedProductOutput{}, nil
}

func (m *MockCatalogAPI) ScanProvisionedProducts(ctx context.Context, params *servicecatalog.ScanProvisionedProductsInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ScanProvisionedProductsOutput, error) {
	if m.ScanProvisionedProductsFunc != nil {
		return m.ScanProvisionedProductsFunc(ctx, params, optFns...)
	}
	return &servicecatalog.ScanProvisionedProductsOutput{}, nil
}

func (m *MockCatalogAPI) CreateConstraint(ctx context.Context, params *servicecatalog.CreateConstraintInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.CreateConstraintOutput, error) {
	if m.CreateConstraintFunc != nil {
		return m.CreateConstraintFunc(ctx, params, optFns...)
	}
	return &servicecatalog.CreateConstraintOutput{}, nil
}

func (m *MockCatalogAPI) ListConstraintsForPortfolio(ctx context.Context, params *servicecatalog.ListConstraintsForPortfolioInput, optFns ...func(*servicecatalog.Options)) (*servicecatalog.ListConstraintsForPortfolioOutput, error) {
	if m.ListConstraintsForPortfolioFunc != nil {
		return m.ListConstraintsForPortfolioFunc(ctx, params, optFns...)
	}
	return &servicecatalog.ListConstraintsForPortfolioOutput{}, nil
}

// MockIAMAPI implements awsapi.IAMAPI with overridable function fields.
type MockIAMAPI struct {
	ListAccountAliasesFunc func(ctx context.Context, params *iam.ListAccountAliasesInput, optFns ...func(*iam.Options)) (*iam.ListAccountAliasesOutput, error)
	CreateRoleFunc         func(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	ListRolesFunc          func(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error)
	AttachRolePolicyFunc   func(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	PutRolePolicyFunc      func(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error)
}

func (m *MockIAMAPI) ListAccountAliases(ctx context.Context, params *iam.ListAccountAliasesInput, optFns ...func(*iam.Options)) (*iam.ListAccountAliasesOutput, error) {
	if m.ListAccountAliasesFunc != nil {
		return m.ListAccountAliasesFunc(ctx, params, optFns...)
	}
	return &iam.ListAccountAliasesOutput{}, nil
}

func (m *MockIAMAPI) CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	if m.CreateRoleFunc != nil {
		return m.CreateRoleFunc(ctx, params, optFns...)
	}
	return &iam.CreateRoleOutput{}, nil
}

func (m *MockIAMAPI) ListRoles(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error) {
	if m.ListRolesFunc != nil {
		return m.ListRolesFunc(ctx, params, optFns...)
	}
	return &iam.ListRolesOutput{}, nil
}

func (m *MockIAMAPI) AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
	if m.AttachRolePolicyFunc != nil {
		return m.AttachRolePolicyFunc(ctx, params, optFns...)
	}
	return &iam.AttachRolePolicyOutput{}, nil
}

func (m *MockIAMAPI) PutRolePolicy(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error) {
	if m.PutRolePolicyFunc != nil {
		return m.PutRolePolicyFunc(ctx, params, optFns...)
	}
	return &iam.PutRolePolicyOutput{}, nil
}

// MockSTSAPI implements awsapi.STSAPI with overridable function fields.
type MockSTSAPI struct {
	GetCallerIdentityFunc func(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

func (m *MockSTSAPI) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if m.GetCallerIdentityFunc != nil {
		return m.GetCallerIdentityFunc(ctx, params, optFns...)
	}
	return &sts.GetCallerIdentityOutput{}, nil
}

// MockCloudFormationAPI implements awsapi.CloudFormationAPI with overridable
// function fields.
type MockCloudFormationAPI struct {
	GetTemplateSummaryFunc func(ctx context.Context, params *cloudformation.GetTemplateSummaryInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateSummaryOutput, error)
}

func (m *MockCloudFormationAPI) GetTemplateSummary(ctx context.Context, params *cloudformation.GetTemplateSummaryInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateSummaryOutput, error) {
	if m.GetTemplateSummaryFunc != nil {
		return m.GetTemplateSummaryFunc(ctx, params, optFns...)
	}
	return &cloudformation.GetTemplateSummaryOutput{}, nil
}
