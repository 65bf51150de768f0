package conduit

import (
	"context"
	"fmt"

	"github.com/concon121/aws-conduit/internal/catalog"
	"github.com/concon121/aws-conduit/internal/params"
	"github.com/concon121/aws-conduit/internal/release"
	"github.com/concon121/aws-conduit/internal/store"
	"github.com/concon121/aws-conduit/internal/version"
)

// Build releases every entry of the working directory's build specification
// at the given bump kind.
func (c *Conduit) Build(ctx context.Context, kindArg string) error {
	kind, err := version.ParseKind(kindArg)
	if err != nil {
		return err
	}
	spec, err := release.Load(release.DefaultSpecFile)
	if err != nil {
		return err
	}
	accountID, err := c.gw.Identity.AccountID(ctx)
	if err != nil {
		return err
	}
	engine := release.NewEngine(c.gw)
	return c.store.WithDocument(ctx, func(bucket store.Bucket, doc *catalog.ConfigDocument) error {
		return engine.Run(ctx, spec, doc, bucket.Name, accountID, kind)
	})
}

// Package versions and uploads every entry of the build specification as a
// storage-only release, with no catalog registration.
func (c *Conduit) Package(ctx context.Context, kindArg string) error {
	kind, err := version.ParseKind(kindArg)
	if err != nil {
		return err
	}
	spec, err := release.Load(release.DefaultSpecFile)
	if err != nil {
		return err
	}
	engine := release.NewEngine(c.gw)
	return c.store.WithDocument(ctx, func(bucket store.Bucket, doc *catalog.ConfigDocument) error {
		return engine.Package(ctx, spec, doc, bucket.Name, kind)
	})
}

// PackageProduct versions and uploads a single named entry of the build
// specification as a storage-only release.
func (c *Conduit) PackageProduct(ctx context.Context, productName, kindArg string) error {
	kind, err := version.ParseKind(kindArg)
	if err != nil {
		return err
	}
	spec, err := release.Load(release.DefaultSpecFile)
	if err != nil {
		return err
	}
	engine := release.NewEngine(c.gw)
	return c.store.WithDocument(ctx, func(bucket store.Bucket, doc *catalog.ConfigDocument) error {
		return engine.PackageProduct(ctx, spec, doc, bucket.Name, productName, kind)
	})
}

// Provision launches, or updates, a named instance of a tracked product at
// its current version, prompting for provisioning parameters.
func (c *Conduit) Provision(ctx context.Context, productName, instanceName string) error {
	if instanceName == "" {
		instanceName = productName
	}
	accountID, err := c.gw.Identity.AccountID(ctx)
	if err != nil {
		return err
	}
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		_, product, err := catalog.FindProduct(doc, productName)
		if err != nil {
			return err
		}
		src := params.NewInteractive()
		src.Out = c.out
		return product.Provision(ctx, c.gw, src, accountID, instanceName)
	})
}

// Terminate tears down a named provisioned instance of a tracked product.
// Reports, without failing, when nothing is provisioned under the name.
func (c *Conduit) Terminate(ctx context.Context, productName, instanceName string) error {
	if instanceName == "" {
		instanceName = productName
	}
	accountID, err := c.gw.Identity.AccountID(ctx)
	if err != nil {
		return err
	}
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		_, product, err := catalog.FindProduct(doc, productName)
		if err != nil {
			return err
		}
		terminated, err := product.Terminate(ctx, c.gw, accountID, instanceName)
		if err != nil {
			return err
		}
		if !terminated {
			fmt.Fprintf(c.out, "Nothing is provisioned as %q; nothing to terminate.\n", instanceName)
		}
		return nil
	})
}
