// Package store persists the conduit configuration document in a dedicated,
// account-scoped S3 bucket. The document is the single source of truth for
// everything conduit manages; every command loads it, acts, and saves it back.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/concon121/aws-conduit/internal/catalog"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/gateway"
)

const (
	// ConfigKey is the fixed object key of the configuration document.
	ConfigKey = "conduit.yaml"

	// BucketPrefix prefixes the account id to form the config bucket name.
	BucketPrefix = "conduit-config-"
)

// Bucket identifies the account-scoped configuration bucket.
type Bucket struct {
	Name   string
	Region string
}

// BucketName derives the config bucket name for an account.
func BucketName(accountID string) string {
	return BucketPrefix + accountID
}

// Store reads and writes the configuration document.
type Store struct {
	gw  *gateway.Gateway
	log *slog.Logger
}

// New creates a Store over the given gateway.
func New(gw *gateway.Gateway) *Store {
	return &Store{gw: gw, log: gw.Log()}
}

// Bucket resolves the config bucket for the calling account.
func (s *Store) Bucket(ctx context.Context) (Bucket, error) {
	accountID, err := s.gw.Identity.AccountID(ctx)
	if err != nil {
		return Bucket{}, err
	}
	return Bucket{Name: BucketName(accountID), Region: s.gw.Storage.Region()}, nil
}

// Ensure bootstraps the configuration bucket and document. Both steps are
// idempotent: an existing bucket or document is left untouched, so Ensure can
// run on every invocation.
func (s *Store) Ensure(ctx context.Context) (Bucket, error) {
	bucket, err := s.Bucket(ctx)
	if err != nil {
		return Bucket{}, err
	}
	exists, err := s.gw.Storage.BucketExists(ctx, bucket.Name)
	if err != nil {
		return Bucket{}, err
	}
	if !exists {
		s.log.Info("creating config bucket", "bucket", bucket.Name, "region", bucket.Region)
		if err := s.gw.Storage.CreateBucket(ctx, bucket.Name); err != nil {
			return Bucket{}, err
		}
	}
	hasDoc, err := s.gw.Storage.ObjectExists(ctx, bucket.Name, ConfigKey)
	if err != nil {
		return Bucket{}, err
	}
	if !hasDoc {
		s.log.Info("writing initial config document", "bucket", bucket.Name, "key", ConfigKey)
		if err := s.save(ctx, bucket, catalog.NewDocument()); err != nil {
			return Bucket{}, err
		}
	}
	return bucket, nil
}

// Load fetches and decodes the configuration document.
func (s *Store) Load(ctx context.Context, bucket Bucket) (*catalog.ConfigDocument, error) {
	data, err := s.gw.Storage.GetObject(ctx, bucket.Name, ConfigKey)
	if err != nil {
		return nil, err
	}
	doc := &catalog.ConfigDocument{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, cerrors.NewEntityError("store.load", "object", ConfigKey,
			fmt.Errorf("%w: %v", cerrors.ErrConfigInconsistent, err))
	}
	return doc, nil
}

// Save validates and persists the configuration document.
func (s *Store) Save(ctx context.Context, bucket Bucket, doc *catalog.ConfigDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return s.save(ctx, bucket, doc)
}

func (s *Store) save(ctx context.Context, bucket Bucket, doc *catalog.ConfigDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return cerrors.NewEntityError("store.save", "object", ConfigKey, err)
	}
	return s.gw.Storage.PutObject(ctx, bucket.Name, ConfigKey, data)
}

// WithDocument loads the document, runs fn against it, and saves the result.
// The save only happens when fn succeeds, so a failed operation never leaves
// a half-applied document behind.
func (s *Store) WithDocument(ctx context.Context, fn func(bucket Bucket, doc *catalog.ConfigDocument) error) error {
	bucket, err := s.Ensure(ctx)
	if err != nil {
		return err
	}
	doc, err := s.Load(ctx, bucket)
	if err != nil {
		return err
	}
	if err := fn(bucket, doc); err != nil {
		return err
	}
	return s.Save(ctx, bucket, doc)
}
