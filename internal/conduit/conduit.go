// Package conduit implements the application operations behind each CLI
// command: bootstrap, support configuration, portfolio and product lifecycle,
// releases, provisioning and document reconciliation.
package conduit

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/concon121/aws-conduit/internal/catalog"
	"github.com/concon121/aws-conduit/internal/gateway"
	"github.com/concon121/aws-conduit/internal/store"
)

// Managed policies attached to the provisioner role at bootstrap.
const (
	adminPolicyName   = "AWSServiceCatalogAdminFullAccess"
	endUserPolicyName = "AWSServiceCatalogEndUserFullAccess"
)

// Conduit binds the gateway and the document store behind the operations the
// CLI exposes.
type Conduit struct {
	gw    *gateway.Gateway
	store *store.Store
	out   io.Writer
	log   *slog.Logger
}

// New creates a Conduit writing human-readable output to stdout.
func New(gw *gateway.Gateway) *Conduit {
	return &Conduit{
		gw:    gw,
		store: store.New(gw),
		out:   os.Stdout,
		log:   gw.Log(),
	}
}

// NewWithOutput creates a Conduit writing human-readable output to out.
func NewWithOutput(gw *gateway.Gateway, out io.Writer) *Conduit {
	c := New(gw)
	c.out = out
	return c
}

// Configure bootstraps the account for conduit: the config bucket and
// document, and the fixed provisioner role with its catalog policies. Safe to
// run repeatedly.
func (c *Conduit) Configure(ctx context.Context) error {
	bucket, err := c.store.Ensure(ctx)
	if err != nil {
		return err
	}
	c.log.Info("config store ready", "bucket", bucket.Name, "key", store.ConfigKey)
	return c.ensureProvisionerRole(ctx)
}

// ensureProvisionerRole creates the fixed provisioner role and attaches the
// catalog policies. Role creation is not idempotent on the remote side, so a
// failure here is taken to mean the role already exists and is logged rather
// than propagated.
func (c *Conduit) ensureProvisionerRole(ctx context.Context) error {
	accountID, err := c.gw.Identity.AccountID(ctx)
	if err != nil {
		return err
	}
	_, err = c.gw.Identity.CreateRole(ctx, accountID, gateway.ProvisionerRoleName, "Provisioning role for conduit managed products")
	if err != nil {
		c.log.Warn("provisioner role creation failed, assuming it already exists",
			"role", gateway.ProvisionerRoleName, "cause", err)
		return nil
	}
	if err := c.gw.Identity.AttachManagedPolicy(ctx, gateway.ProvisionerRoleName, adminPolicyName); err != nil {
		return err
	}
	return c.gw.Identity.AttachManagedPolicy(ctx, gateway.ProvisionerRoleName, endUserPolicyName)
}

// SetSupport records default support details in the document. The record is
// rebuilt from only the fields provided on each call; omitted fields stay
// absent from the document and the documented defaults apply at
// product-creation time instead.
func (c *Conduit) SetSupport(ctx context.Context, description, email, url string) error {
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		doc.Support = &catalog.Support{
			Description: description,
			Email:       email,
			URL:         url,
		}
		return nil
	})
}

// Sync reconciles the document against the live catalog: ids are refreshed
// and entries whose remote entity is gone are dropped.
func (c *Conduit) Sync(ctx context.Context) error {
	return c.store.WithDocument(ctx, func(_ store.Bucket, doc *catalog.ConfigDocument) error {
		dropped, err := catalog.SyncDocument(ctx, c.gw.Catalog, doc)
		if err != nil {
			return err
		}
		for _, name := range dropped {
			c.log.Info("dropped entry with no remote counterpart", "name", name)
		}
		return nil
	})
}
