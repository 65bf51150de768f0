package gateway

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	sctypes "github.com/aws/aws-sdk-go-v2/service/servicecatalog/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concon121/aws-conduit/internal/testutil"
)

func TestListPortfoliosDrainsPageTokens(t *testing.T) {
	api := &testutil.MockCatalogAPI{
		ListPortfoliosFunc: func(_ context.Context, in *servicecatalog.ListPortfoliosInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosOutput, error) {
			assert.Equal(t, int32(20), in.PageSize)
			if in.PageToken == nil {
				return &servicecatalog.ListPortfoliosOutput{
					PortfolioDetails: []sctypes.PortfolioDetail{
						{Id: aws.String("port-1"), DisplayName: aws.String("networking")},
					},
					NextPageToken: aws.String("page-2"),
				}, nil
			}
			return &servicecatalog.ListPortfoliosOutput{
				PortfolioDetails: []sctypes.PortfolioDetail{
					{Id: aws.String("port-2"), DisplayName: aws.String("security")},
				},
			}, nil
		},
	}
	cat := NewCatalog(api)
	portfolios, err := cat.ListPortfolios(context.Background())
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Equal(t, "port-1", portfolios[0].ID)
	assert.Equal(t, "security", portfolios[1].Name)
}

func TestSearchProductsSendsFullTextFilter(t *testing.T) {
	var gotFilters map[string][]string
	api := &testutil.MockCatalogAPI{
		SearchProductsAsAdminFunc: func(_ context.Context, in *servicecatalog.SearchProductsAsAdminInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.SearchProductsAsAdminOutput, error) {
			gotFilters = in.Filters
			return &servicecatalog.SearchProductsAsAdminOutput{}, nil
		},
	}
	cat := NewCatalog(api)
	_, err := cat.SearchProducts(context.Background(), "vpc")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		string(sctypes.ProductViewFilterByFullTextSearch): {"vpc"},
	}, gotFilters)
}

func TestCreateProductReturnsRemoteID(t *testing.T) {
	api := &testutil.MockCatalogAPI{
		CreateProductFunc: func(_ context.Context, in *servicecatalog.CreateProductInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.CreateProductOutput, error) {
			assert.Equal(t, "vpc", aws.ToString(in.Name))
			require.NotNil(t, in.ProvisioningArtifactParameters)
			assert.Equal(t, "Initial product creation.",
				aws.ToString(in.ProvisioningArtifactParameters.Description))
			return &servicecatalog.CreateProductOutput{
				ProductViewDetail: &sctypes.ProductViewDetail{
					ProductViewSummary: &sctypes.ProductViewSummary{ProductId: aws.String("prod-1")},
				},
			}, nil
		},
	}
	cat := NewCatalog(api)
	id, err := cat.CreateProduct(context.Background(), ProductInput{
		Name:        "vpc",
		Owner:       "example-account",
		Version:     "0.0.0",
		TemplateURL: "https://s3.eu-west-1.amazonaws.com/a-bucket/networking/vpc/0.0.0/vpc.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-1", id)
}

func TestFindProvisionedScansAllPages(t *testing.T) {
	api := &testutil.MockCatalogAPI{
		ScanProvisionedProductsFunc: func(_ context.Context, in *servicecatalog.ScanProvisionedProductsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ScanProvisionedProductsOutput, error) {
			require.NotNil(t, in.AccessLevelFilter)
			assert.Equal(t, sctypes.AccessLevelFilterKeyAccount, in.AccessLevelFilter.Key)
			if in.PageToken == nil {
				return &servicecatalog.ScanProvisionedProductsOutput{
					ProvisionedProducts: []sctypes.ProvisionedProductDetail{
						{Id: aws.String("pp-1"), Name: aws.String("vpc-dev")},
					},
					NextPageToken: aws.String("page-2"),
				}, nil
			}
			return &servicecatalog.ScanProvisionedProductsOutput{
				ProvisionedProducts: []sctypes.ProvisionedProductDetail{
					{Id: aws.String("pp-2"), Name: aws.String("vpc-prod")},
				},
			}, nil
		},
	}
	cat := NewCatalog(api)

	found, err := cat.FindProvisioned(context.Background(), "vpc-prod")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "pp-2", found.ID)

	missing, err := cat.FindProvisioned(context.Background(), "vpc-stage")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateLaunchConstraintParameters(t *testing.T) {
	var captured *servicecatalog.CreateConstraintInput
	api := &testutil.MockCatalogAPI{
		CreateConstraintFunc: func(_ context.Context, in *servicecatalog.CreateConstraintInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.CreateConstraintOutput, error) {
			captured = in
			return &servicecatalog.CreateConstraintOutput{}, nil
		},
	}
	cat := NewCatalog(api)
	roleARN := "arn:aws:iam::111122223333:role/conduit/vpc-deployer"
	require.NoError(t, cat.CreateLaunchConstraint(context.Background(), "port-1", "prod-1", roleARN, "vpc"))

	require.NotNil(t, captured)
	assert.Equal(t, "LAUNCH", aws.ToString(captured.Type))
	assert.JSONEq(t, `{"RoleArn":"`+roleARN+`"}`, aws.ToString(captured.Parameters))
	assert.Equal(t, "Launch configuration for vpc", aws.ToString(captured.Description))
	assert.NotEmpty(t, aws.ToString(captured.IdempotencyToken))
}
