// Package gateway provides thin call wrappers around the remote AWS services
// conduit depends on: Service Catalog, S3, IAM/STS and CloudFormation.
//
// The wrappers translate SDK responses into small domain summaries, drain all
// paginated list operations, and wrap failures in the conduit error taxonomy.
// Every client is injected at construction; there is no ambient global state.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/concon121/aws-conduit/internal/awsapi"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

const (
	// ProvisionerRoleName is the fixed deploy identity conduit provisions
	// products with.
	ProvisionerRoleName = "conduit-provisioner-role"

	// RolePath is the IAM path under which all conduit roles live.
	RolePath = "/conduit/"
)

// Gateway bundles the per-service wrappers behind a single handle.
type Gateway struct {
	Catalog        *Catalog
	Storage        *Storage
	Identity       *Identity
	CloudFormation *CloudFormation

	cfg aws.Config
	log *slog.Logger

	// provisioner mints a Service Catalog client from an assumed role.
	// Replaceable in tests via WithProvisionerFactory.
	provisioner func(ctx context.Context, roleARN string) (awsapi.CatalogAPI, error)
}

// Option configures the Gateway constructor.
type Option func(*options)

type options struct {
	region      string
	awsConfig   *aws.Config
	logger      *slog.Logger
	httpTimeout time.Duration
	provisioner func(ctx context.Context, roleARN string) (awsapi.CatalogAPI, error)
}

// WithRegion sets the AWS region for all service clients.
// If not specified, the default credential chain region is used.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithAWSConfig supplies a pre-built AWS configuration instead of loading the
// default credential chain. Useful for tests and custom endpoints.
func WithAWSConfig(cfg aws.Config) Option {
	return func(o *options) {
		o.awsConfig = &cfg
	}
}

// WithLogger sets the structured logger used for operational messages.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPTimeout sets a timeout on the underlying HTTP client.
// Default is no timeout; the SDK's own retry behavior still applies.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.httpTimeout = timeout
	}
}

// WithProvisionerFactory replaces the assume-role catalog client factory.
// This is primarily used for testing provision/terminate flows.
func WithProvisionerFactory(fn func(ctx context.Context, roleARN string) (awsapi.CatalogAPI, error)) Option {
	return func(o *options) {
		o.provisioner = fn
	}
}

// New creates a Gateway with real AWS SDK clients resolved from the default
// credential chain (or a supplied configuration).
func New(ctx context.Context, opts ...Option) (*Gateway, error) {
	o := &options{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	var cfg aws.Config
	var err error
	if o.awsConfig != nil {
		cfg = *o.awsConfig
	} else {
		cfg, err = config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, cerrors.NewError("gateway.init", err)
		}
	}
	if o.region != "" {
		cfg.Region = o.region
	} else if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if o.httpTimeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: o.httpTimeout}
	}

	stsClient := sts.NewFromConfig(cfg)
	g := &Gateway{
		Catalog:        NewCatalog(servicecatalog.NewFromConfig(cfg)),
		Storage:        NewStorage(s3.NewFromConfig(cfg), cfg.Region),
		Identity:       NewIdentity(iam.NewFromConfig(cfg), stsClient),
		CloudFormation: NewCloudFormation(cloudformation.NewFromConfig(cfg)),
		cfg:            cfg,
		log:            o.logger,
	}
	g.provisioner = o.provisioner
	if g.provisioner == nil {
		g.provisioner = func(_ context.Context, roleARN string) (awsapi.CatalogAPI, error) {
			assumed := cfg.Copy()
			assumed.Credentials = aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(stsClient, roleARN))
			return servicecatalog.NewFromConfig(assumed), nil
		}
	}
	return g, nil
}

// NewWithClients creates a Gateway from pre-built API implementations.
// This is primarily used for testing with mocked clients.
func NewWithClients(
	catalog awsapi.CatalogAPI,
	storage awsapi.S3API,
	iamClient awsapi.IAMAPI,
	stsClient awsapi.STSAPI,
	cfn awsapi.CloudFormationAPI,
	region string,
) *Gateway {
	g := &Gateway{
		Catalog:        NewCatalog(catalog),
		Storage:        NewStorage(storage, region),
		Identity:       NewIdentity(iamClient, stsClient),
		CloudFormation: NewCloudFormation(cfn),
		log:            slog.Default(),
	}
	g.provisioner = func(_ context.Context, _ string) (awsapi.CatalogAPI, error) {
		return catalog, nil
	}
	return g
}

// ProvisionerRoleARN builds the ARN of the fixed provisioner role for an account.
func ProvisionerRoleARN(accountID string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role%s%s", accountID, RolePath, ProvisionerRoleName)
}

// ProvisionerCatalog returns a Catalog wrapper whose calls run under the
// assumed conduit provisioner role, cross-account-session style.
func (g *Gateway) ProvisionerCatalog(ctx context.Context, accountID string) (*Catalog, error) {
	api, err := g.provisioner(ctx, ProvisionerRoleARN(accountID))
	if err != nil {
		return nil, cerrors.Remote("gateway.assume-role", err)
	}
	return NewCatalog(api), nil
}

// Log exposes the gateway logger so callers share one configured handler.
func (g *Gateway) Log() *slog.Logger {
	return g.log
}
