package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	sctypes "github.com/aws/aws-sdk-go-v2/service/servicecatalog/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concon121/aws-conduit/internal/gateway"
	"github.com/concon121/aws-conduit/internal/params"
	"github.com/concon121/aws-conduit/internal/testutil"
	"github.com/concon121/aws-conduit/internal/version"
)

const testBucket = "conduit-config-111122223333"

func newTestGateway(cat *testutil.MockCatalogAPI, stor *testutil.MockS3API) *gateway.Gateway {
	if cat == nil {
		cat = &testutil.MockCatalogAPI{}
	}
	if stor == nil {
		stor = &testutil.MockS3API{}
	}
	return gateway.NewWithClients(cat, stor, &testutil.MockIAMAPI{}, &testutil.MockSTSAPI{}, &testutil.MockCloudFormationAPI{}, "eu-west-1")
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testProduct() *Product {
	return &Product{
		Name:      "vpc",
		Owner:     "example-account",
		CfnType:   "yaml",
		Portfolio: "networking",
		Version:   "1.2.3",
		ID:        "prod-1",
	}
}

func artifactList(artifacts ...sctypes.ProvisioningArtifactDetail) *servicecatalog.ListProvisioningArtifactsOutput {
	return &servicecatalog.ListProvisioningArtifactsOutput{ProvisioningArtifactDetails: artifacts}
}

func TestReleaseSubstitutesTokenAndAdvancesVersion(t *testing.T) {
	original := "Location: CONDUIT_TEMPLATE_STORE/nested.yaml\n"
	templatePath := writeTemplate(t, original)

	var uploadedKey, uploadedBody string
	stor := &testutil.MockS3API{
		PutObjectFunc: func(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			uploadedKey = aws.ToString(in.Key)
			data, err := io.ReadAll(in.Body)
			require.NoError(t, err)
			uploadedBody = string(data)
			return &s3.PutObjectOutput{}, nil
		},
	}
	var artifactName, artifactDescription string
	cat := &testutil.MockCatalogAPI{
		CreateProvisioningArtifactFunc: func(_ context.Context, in *servicecatalog.CreateProvisioningArtifactInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.CreateProvisioningArtifactOutput, error) {
			artifactName = aws.ToString(in.Parameters.Name)
			artifactDescription = aws.ToString(in.Parameters.Description)
			return &servicecatalog.CreateProvisioningArtifactOutput{}, nil
		},
	}
	gw := newTestGateway(cat, stor)

	product := testProduct()
	released, err := product.Release(context.Background(), gw, testBucket, version.Build, templatePath)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3+build.1", released)
	assert.Equal(t, "1.2.3+build.1", product.Version)
	assert.Equal(t, "networking/vpc/1.2.3+build.1/vpc.yaml", uploadedKey)
	assert.Equal(t, "1.2.3+build.1", artifactName)
	assert.Equal(t, "Incremental build; Not production ready!", artifactDescription)

	// The uploaded copy carries the resolved location, never the token.
	assert.Contains(t, uploadedBody, "https://s3.eu-west-1.amazonaws.com/"+testBucket+"/networking/vpc/1.2.3+build.1")
	assert.NotContains(t, uploadedBody, TemplateStoreToken)

	// The local file is restored to its original content.
	onDisk, err := os.ReadFile(templatePath)
	require.NoError(t, err)
	assert.Equal(t, original, string(onDisk))
}

func TestReleaseCandidateDescription(t *testing.T) {
	templatePath := writeTemplate(t, "Resources: {}\n")
	var artifactDescription string
	cat := &testutil.MockCatalogAPI{
		CreateProvisioningArtifactFunc: func(_ context.Context, in *servicecatalog.CreateProvisioningArtifactInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.CreateProvisioningArtifactOutput, error) {
			artifactDescription = aws.ToString(in.Parameters.Description)
			return &servicecatalog.CreateProvisioningArtifactOutput{}, nil
		},
	}
	gw := newTestGateway(cat, nil)

	product := testProduct()
	released, err := product.Release(context.Background(), gw, testBucket, version.Patch, templatePath)
	require.NoError(t, err)
	assert.Equal(t, "1.2.4", released)
	assert.Equal(t, "Release Candidate build increment", artifactDescription)
}

func TestReleaseDoesNotAdvanceVersionOnArtifactFailure(t *testing.T) {
	templatePath := writeTemplate(t, "Resources: {}\n")
	cat := &testutil.MockCatalogAPI{
		CreateProvisioningArtifactFunc: func(_ context.Context, _ *servicecatalog.CreateProvisioningArtifactInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.CreateProvisioningArtifactOutput, error) {
			return nil, errors.New("throttled")
		},
	}
	gw := newTestGateway(cat, nil)

	product := testProduct()
	_, err := product.Release(context.Background(), gw, testBucket, version.Build, templatePath)
	require.Error(t, err)
	assert.Equal(t, "1.2.3", product.Version)
}

func TestReleaseRevertsFileOnUploadFailure(t *testing.T) {
	original := "Key: CONDUIT_TEMPLATE_STORE/asset.zip\n"
	templatePath := writeTemplate(t, original)
	stor := &testutil.MockS3API{
		PutObjectFunc: func(_ context.Context, _ *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return nil, errors.New("access denied")
		},
	}
	gw := newTestGateway(nil, stor)

	product := testProduct()
	_, err := product.Release(context.Background(), gw, testBucket, version.Build, templatePath)
	require.Error(t, err)
	assert.Equal(t, "1.2.3", product.Version)

	onDisk, err := os.ReadFile(templatePath)
	require.NoError(t, err)
	assert.Equal(t, original, string(onDisk))
}

func TestReleaseRequiresTemplate(t *testing.T) {
	gw := newTestGateway(nil, nil)
	product := testProduct()
	_, err := product.Release(context.Background(), gw, testBucket, version.Build, "")
	require.Error(t, err)
	assert.Equal(t, "1.2.3", product.Version)
}

func TestTidyVersionsDeletesOnlyStaleBuilds(t *testing.T) {
	var deletedArtifacts []string
	var listedPrefixes []string
	cat := &testutil.MockCatalogAPI{
		ListProvisioningArtifactsFunc: func(_ context.Context, _ *servicecatalog.ListProvisioningArtifactsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListProvisioningArtifactsOutput, error) {
			return artifactList(
				sctypes.ProvisioningArtifactDetail{Id: aws.String("a1"), Name: aws.String("1.2.3+build.1")},
				sctypes.ProvisioningArtifactDetail{Id: aws.String("a2"), Name: aws.String("1.2.9")},
				sctypes.ProvisioningArtifactDetail{Id: aws.String("a3"), Name: aws.String("1.3.0")},
				sctypes.ProvisioningArtifactDetail{Id: aws.String("a4"), Name: aws.String("1.3.1+build.1")},
			), nil
		},
		DeleteProvisioningArtifactFunc: func(_ context.Context, in *servicecatalog.DeleteProvisioningArtifactInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.DeleteProvisioningArtifactOutput, error) {
			deletedArtifacts = append(deletedArtifacts, aws.ToString(in.ProvisioningArtifactId))
			return &servicecatalog.DeleteProvisioningArtifactOutput{}, nil
		},
	}
	stor := &testutil.MockS3API{
		ListObjectsV2Func: func(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			listedPrefixes = append(listedPrefixes, aws.ToString(in.Prefix))
			return &s3.ListObjectsV2Output{}, nil
		},
	}
	gw := newTestGateway(cat, stor)

	product := testProduct()
	product.Version = "1.3.0"
	require.NoError(t, product.TidyVersions(context.Background(), gw.Catalog, gw.Storage, testBucket))

	// Only the build-tagged artifact below the current version goes.
	assert.Equal(t, []string{"a1"}, deletedArtifacts)
	assert.Equal(t, []string{"networking/vpc/1.2.3+build.1/"}, listedPrefixes)
}

func TestProvisionUpdatesExistingInstance(t *testing.T) {
	var provisioned, updated bool
	var sentParams map[string]string
	cat := &testutil.MockCatalogAPI{
		ListProvisioningArtifactsFunc: func(_ context.Context, _ *servicecatalog.ListProvisioningArtifactsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListProvisioningArtifactsOutput, error) {
			return artifactList(
				sctypes.ProvisioningArtifactDetail{Id: aws.String("a1"), Name: aws.String("1.2.3")},
			), nil
		},
		ListLaunchPathsFunc: func(_ context.Context, _ *servicecatalog.ListLaunchPathsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListLaunchPathsOutput, error) {
			return &servicecatalog.ListLaunchPathsOutput{
				LaunchPathSummaries: []sctypes.LaunchPathSummary{{Id: aws.String("lp-1")}},
			}, nil
		},
		DescribeProvisioningParametersFunc: func(_ context.Context, _ *servicecatalog.DescribeProvisioningParametersInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.DescribeProvisioningParametersOutput, error) {
			return &servicecatalog.DescribeProvisioningParametersOutput{
				ProvisioningArtifactParameters: []sctypes.ProvisioningArtifactParameter{
					{ParameterKey: aws.String("CidrBlock"), DefaultValue: aws.String("10.0.0.0/16")},
				},
			}, nil
		},
		ScanProvisionedProductsFunc: func(_ context.Context, _ *servicecatalog.ScanProvisionedProductsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ScanProvisionedProductsOutput, error) {
			return &servicecatalog.ScanProvisionedProductsOutput{
				ProvisionedProducts: []sctypes.ProvisionedProductDetail{
					{Id: aws.String("pp-1"), Name: aws.String("vpc-dev")},
				},
			}, nil
		},
		ProvisionProductFunc: func(_ context.Context, _ *servicecatalog.ProvisionProductInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ProvisionProductOutput, error) {
			provisioned = true
			return &servicecatalog.ProvisionProductOutput{}, nil
		},
		UpdateProvisionedProductFunc: func(_ context.Context, in *servicecatalog.UpdateProvisionedProductInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.UpdateProvisionedProductOutput, error) {
			updated = true
			sentParams = map[string]string{}
			for _, p := range in.ProvisioningParameters {
				sentParams[aws.ToString(p.Key)] = aws.ToString(p.Value)
			}
			return &servicecatalog.UpdateProvisionedProductOutput{}, nil
		},
	}
	gw := newTestGateway(cat, nil)

	product := testProduct()
	src := params.Static{"CidrBlock": "10.1.0.0/16"}
	require.NoError(t, product.Provision(context.Background(), gw, src, "111122223333", "vpc-dev"))

	assert.True(t, updated)
	assert.False(t, provisioned)
	assert.Equal(t, map[string]string{"CidrBlock": "10.1.0.0/16"}, sentParams)
	assert.Contains(t, product.Provisioned, "vpc-dev")
}

func TestProvisionLaunchesNewInstance(t *testing.T) {
	var provisionedName string
	cat := &testutil.MockCatalogAPI{
		ListProvisioningArtifactsFunc: func(_ context.Context, _ *servicecatalog.ListProvisioningArtifactsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListProvisioningArtifactsOutput, error) {
			return artifactList(
				sctypes.ProvisioningArtifactDetail{Id: aws.String("a1"), Name: aws.String("1.2.3")},
			), nil
		},
		ListLaunchPathsFunc: func(_ context.Context, _ *servicecatalog.ListLaunchPathsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListLaunchPathsOutput, error) {
			return &servicecatalog.ListLaunchPathsOutput{
				LaunchPathSummaries: []sctypes.LaunchPathSummary{{Id: aws.String("lp-1")}},
			}, nil
		},
		ProvisionProductFunc: func(_ context.Context, in *servicecatalog.ProvisionProductInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ProvisionProductOutput, error) {
			provisionedName = aws.ToString(in.ProvisionedProductName)
			return &servicecatalog.ProvisionProductOutput{}, nil
		},
	}
	gw := newTestGateway(cat, nil)

	product := testProduct()
	require.NoError(t, product.Provision(context.Background(), gw, params.Static{}, "111122223333", "vpc-prod"))
	assert.Equal(t, "vpc-prod", provisionedName)
	assert.Equal(t, []string{"vpc-prod"}, product.Provisioned)
}

func TestTerminateMissingInstanceIsNoOp(t *testing.T) {
	var terminated bool
	cat := &testutil.MockCatalogAPI{
		TerminateProvisionedProductFunc: func(_ context.Context, _ *servicecatalog.TerminateProvisionedProductInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.TerminateProvisionedProductOutput, error) {
			terminated = true
			return &servicecatalog.TerminateProvisionedProductOutput{}, nil
		},
	}
	gw := newTestGateway(cat, nil)

	product := testProduct()
	product.Provisioned = []string{"vpc-dev"}
	done, err := product.Terminate(context.Background(), gw, "111122223333", "vpc-stage")
	require.NoError(t, err)
	assert.False(t, done)
	assert.False(t, terminated)
	assert.Equal(t, []string{"vpc-dev"}, product.Provisioned)
}

func TestTerminateRemovesTrackedInstance(t *testing.T) {
	cat := &testutil.MockCatalogAPI{
		ScanProvisionedProductsFunc: func(_ context.Context, _ *servicecatalog.ScanProvisionedProductsInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ScanProvisionedProductsOutput, error) {
			return &servicecatalog.ScanProvisionedProductsOutput{
				ProvisionedProducts: []sctypes.ProvisionedProductDetail{
					{Id: aws.String("pp-1"), Name: aws.String("vpc-dev")},
				},
			}, nil
		},
	}
	gw := newTestGateway(cat, nil)

	product := testProduct()
	product.Provisioned = []string{"vpc-dev"}
	done, err := product.Terminate(context.Background(), gw, "111122223333", "vpc-dev")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, product.Provisioned)
}

func TestEnsureLaunchConstraintSkipsExisting(t *testing.T) {
	var created bool
	cat := &testutil.MockCatalogAPI{
		ListConstraintsForPortfolioFunc: func(_ context.Context, _ *servicecatalog.ListConstraintsForPortfolioInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.ListConstraintsForPortfolioOutput, error) {
			return &servicecatalog.ListConstraintsForPortfolioOutput{
				ConstraintDetails: []sctypes.ConstraintDetail{
					{ConstraintId: aws.String("c-1"), Type: aws.String("LAUNCH")},
				},
			}, nil
		},
		CreateConstraintFunc: func(_ context.Context, _ *servicecatalog.CreateConstraintInput, _ ...func(*servicecatalog.Options)) (*servicecatalog.CreateConstraintOutput, error) {
			created = true
			return &servicecatalog.CreateConstraintOutput{}, nil
		},
	}
	gw := newTestGateway(cat, nil)

	product := testProduct()
	product.Role = &Role{Name: "vpc-deployer", ARN: "arn:aws:iam::111122223333:role/conduit/vpc-deployer"}
	require.NoError(t, product.EnsureLaunchConstraint(context.Background(), gw.Catalog, "port-1"))
	assert.False(t, created)
}
