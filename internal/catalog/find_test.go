package catalog

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	sctypes "github.com/aws/aws-sdk-go-v2/service/servicecatalog/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/testutil"
)

func testDocument() *ConfigDocument {
	doc := NewDocument()
	doc.Portfolios = []*Portfolio{
		{
			Name:     "networking",
			Provider: "example-account",
			ID:       "port-1",
			Products: []*Product{
				{Name: "vpc", Owner: "example-account", Portfolio: "networking", ID: "prod-1", Version: "1.0.0"},
			},
		},
	}
	return doc
}

func TestFindPortfolio(t *testing.T) {
	doc := testDocument()

	portfolio, err := FindPortfolio(doc, "networking")
	require.NoError(t, err)
	assert.Equal(t, "port-1", portfolio.ID)

	_, err = FindPortfolio(doc, "data")
	require.Error(t, err)
	assert.True(t, cerrors.IsNotFound(err))
}

func TestFindProduct(t *testing.T) {
	doc := testDocument()

	portfolio, product, err := FindProduct(doc, "vpc")
	require.NoError(t, err)
	assert.Equal(t, "networking", portfolio.Name)
	assert.Equal(t, "prod-1", product.ID)

	_, _, err = FindProduct(doc, "subnets")
	require.Error(t, err)
	assert.True(t, cerrors.IsNotFound(err))
}

func TestFindPortfolioByID(t *testing.T) {
	doc := testDocument()

	portfolio, err := FindPortfolioByID(doc, "port-1")
	require.NoError(t, err)
	assert.Equal(t, "networking", portfolio.Name)

	_, err = FindPortfolioByID(doc, "port-9")
	require.Error(t, err)
	assert.True(t, cerrors.IsNotFound(err))
}

func TestFindProductByID(t *testing.T) {
	doc := testDocument()

	portfolio, product, err := FindProductByID(doc, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "networking", portfolio.Name)
	assert.Equal(t, "vpc", product.Name)

	_, _, err = FindProductByID(doc, "prod-9")
	require.Error(t, err)
	assert.True(t, cerrors.IsNotFound(err))
}

func searchResult(name, owner, id string) *servicecatalog.SearchProductsAsAdminOutput {
	return &servicecatalog.SearchProductsAsAdminOutput{
		ProductViewDetails: []sctypes.ProductViewDetail{
			{ProductViewSummary: &sctypes.ProductViewSummary{
				ProductId: aws.String(id),
				Name:      aws.String(name),
				Owner:     aws.String(owner),
			}},
		},
	}
}

func portfolioListing(id, name string) *servicecatalog.ListPortfoliosOutput {
	return &servicecatalog.ListPortfoliosOutput{
		PortfolioDetails: []sctypes.PortfolioDetail{
			{Id: aws.String(id), DisplayName: aws.String(name)},
		},
	}
}

func TestResolveBuildTargetHappyPath(t *testing.T) {
	cat := &testutil.MockCatalogAPI{
		ListPortfoliosFunc: func(_ context.Context, _ *servicecatalog.ListPortfoliosInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosOutput, error) {
			return portfolioListing("port-1", "networking"), nil
		},
		SearchProductsAsAdminFunc: func(_ context.Context, _ *servicecatalog.SearchProductsAsAdminInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.SearchProductsAsAdminOutput, error) {
			return searchResult("vpc", "example-account", "prod-1"), nil
		},
	}
	gw := newTestGateway(cat, nil)

	portfolio, product, err := ResolveBuildTarget(context.Background(), gw.Catalog, testDocument(), "networking", "vpc")
	require.NoError(t, err)
	assert.Equal(t, "networking", portfolio.Name)
	assert.Equal(t, "vpc", product.Name)
}

func TestResolveBuildTargetPortfolioNotInDocument(t *testing.T) {
	gw := newTestGateway(nil, nil)

	_, _, err := ResolveBuildTarget(context.Background(), gw.Catalog, testDocument(), "data", "vpc")
	require.Error(t, err)
	assert.True(t, cerrors.IsConfigInconsistent(err))
}

func TestResolveBuildTargetPortfolioGoneRemotely(t *testing.T) {
	// The portfolio is tracked in the document but the remote listing comes
	// back empty: drift, not a plain miss.
	gw := newTestGateway(nil, nil)

	_, _, err := ResolveBuildTarget(context.Background(), gw.Catalog, testDocument(), "networking", "vpc")
	require.Error(t, err)
	assert.True(t, cerrors.IsConfigInconsistent(err))
}

func TestResolveBuildTargetProductNotUnderPortfolio(t *testing.T) {
	cat := &testutil.MockCatalogAPI{
		ListPortfoliosFunc: func(_ context.Context, _ *servicecatalog.ListPortfoliosInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosOutput, error) {
			return portfolioListing("port-1", "networking"), nil
		},
		SearchProductsAsAdminFunc: func(_ context.Context, _ *servicecatalog.SearchProductsAsAdminInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.SearchProductsAsAdminOutput, error) {
			return searchResult("subnets", "example-account", "prod-9"), nil
		},
	}
	gw := newTestGateway(cat, nil)

	_, _, err := ResolveBuildTarget(context.Background(), gw.Catalog, testDocument(), "networking", "subnets")
	require.Error(t, err)
	assert.True(t, cerrors.IsConfigInconsistent(err))
}

func TestResolveBuildTargetProductGoneRemotely(t *testing.T) {
	cat := &testutil.MockCatalogAPI{
		ListPortfoliosFunc: func(_ context.Context, _ *servicecatalog.ListPortfoliosInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosOutput, error) {
			return portfolioListing("port-1", "networking"), nil
		},
	}
	gw := newTestGateway(cat, nil)

	_, _, err := ResolveBuildTarget(context.Background(), gw.Catalog, testDocument(), "networking", "vpc")
	require.Error(t, err)
	assert.True(t, cerrors.IsConfigInconsistent(err))
}

func TestSyncDocumentDropsOrphans(t *testing.T) {
	cat := &testutil.MockCatalogAPI{
		ListPortfoliosFunc: func(_ context.Context, _ *servicecatalog.ListPortfoliosInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListPortfoliosOutput, error) {
			return &servicecatalog.ListPortfoliosOutput{
				PortfolioDetails: []sctypes.PortfolioDetail{
					{Id: aws.String("port-new"), DisplayName: aws.String("networking")},
				},
			}, nil
		},
		SearchProductsAsAdminFunc: func(_ context.Context, _ *servicecatalog.SearchProductsAsAdminInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.SearchProductsAsAdminOutput, error) {
			// Only vpc still exists remotely.
			return searchResult("vpc", "example-account", "prod-new"), nil
		},
	}
	gw := newTestGateway(cat, nil)

	doc := testDocument()
	doc.Portfolios[0].Products = append(doc.Portfolios[0].Products,
		&Product{Name: "subnets", Owner: "example-account", Portfolio: "networking", ID: "prod-2", Version: "1.0.0"})

	dropped, err := SyncDocument(context.Background(), gw.Catalog, doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"subnets"}, dropped)

	// Stale ids are re-resolved from the live listing.
	assert.Equal(t, "port-new", doc.Portfolios[0].ID)
	require.Len(t, doc.Portfolios[0].Products, 1)
	assert.Equal(t, "prod-new", doc.Portfolios[0].Products[0].ID)
}

func TestDocumentValidateUniqueness(t *testing.T) {
	doc := testDocument()
	require.NoError(t, doc.Validate())

	doc.Portfolios[0].Products = append(doc.Portfolios[0].Products,
		&Product{Name: "vpc", Owner: "example-account", Portfolio: "networking"})
	err := doc.Validate()
	require.Error(t, err)
	assert.True(t, cerrors.IsInvalidInput(err))

	doc = testDocument()
	doc.Portfolios = append(doc.Portfolios, &Portfolio{Name: "networking"})
	err = doc.Validate()
	require.Error(t, err)
	assert.True(t, cerrors.IsInvalidInput(err))
}
