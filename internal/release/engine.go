package release

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/concon121/aws-conduit/internal/catalog"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/gateway"
	"github.com/concon121/aws-conduit/internal/version"
)

// CommandRunner executes one pre-build shell step.
type CommandRunner interface {
	Run(ctx context.Context, command string) error
}

// shellRunner runs build steps through the shell, inheriting the process
// streams so build output reaches the caller's terminal.
type shellRunner struct{}

func (shellRunner) Run(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return cerrors.NewEntityError("release.build-step", "command", command, err)
	}
	return nil
}

// Engine drives a release run over every entry of a build specification.
type Engine struct {
	gw     *gateway.Gateway
	runner CommandRunner
	log    *slog.Logger
}

// NewEngine creates an Engine with the default shell runner.
func NewEngine(gw *gateway.Gateway) *Engine {
	return &Engine{gw: gw, runner: shellRunner{}, log: gw.Log()}
}

// NewEngineWithRunner creates an Engine with a custom build-step runner.
func NewEngineWithRunner(gw *gateway.Gateway, runner CommandRunner) *Engine {
	return &Engine{gw: gw, runner: runner, log: gw.Log()}
}

// Run releases every entry of the specification against the document.
// Catalog-backed entries go through the full product release; entries marked
// storage-only are versioned and uploaded without a catalog registration.
// The caller persists the mutated document afterwards.
func (e *Engine) Run(ctx context.Context, spec *Spec, doc *catalog.ConfigDocument, bucket, accountID string, kind version.Kind) error {
	for _, entry := range spec.Entries() {
		for _, step := range entry.Build {
			e.log.Info("running build step", "product", entry.EntryName(), "command", step)
			if err := e.runner.Run(ctx, step); err != nil {
				return err
			}
		}
		if entry.CatalogBacked() {
			if err := e.releaseCatalog(ctx, spec, entry, doc, bucket, accountID, kind); err != nil {
				return err
			}
			continue
		}
		if err := e.releaseStorage(ctx, spec, entry, doc, bucket, kind); err != nil {
			return err
		}
	}
	return nil
}

// Package runs every entry as a storage-only release: build steps, version
// bump and artifact upload, skipping catalog registration entirely.
func (e *Engine) Package(ctx context.Context, spec *Spec, doc *catalog.ConfigDocument, bucket string, kind version.Kind) error {
	for _, entry := range spec.Entries() {
		if err := e.packageEntry(ctx, spec, entry, doc, bucket, kind); err != nil {
			return err
		}
	}
	return nil
}

// PackageProduct runs a storage-only release for the single named entry of the
// specification.
func (e *Engine) PackageProduct(ctx context.Context, spec *Spec, doc *catalog.ConfigDocument, bucket, name string, kind version.Kind) error {
	for _, entry := range spec.Entries() {
		if entry.EntryName() != name {
			continue
		}
		return e.packageEntry(ctx, spec, entry, doc, bucket, kind)
	}
	return cerrors.NewEntityError("release.package", "product", name, cerrors.ErrNotFound)
}

func (e *Engine) packageEntry(ctx context.Context, spec *Spec, entry *ProductSpec, doc *catalog.ConfigDocument, bucket string, kind version.Kind) error {
	for _, step := range entry.Build {
		e.log.Info("running build step", "product", entry.EntryName(), "command", step)
		if err := e.runner.Run(ctx, step); err != nil {
			return err
		}
	}
	return e.releaseStorage(ctx, spec, entry, doc, bucket, kind)
}

// releaseCatalog performs a full catalog release for one entry: deployer role
// maintenance, resource attachment, artifact release, and stale build cleanup
// for everything above a build increment.
func (e *Engine) releaseCatalog(ctx context.Context, spec *Spec, entry *ProductSpec, doc *catalog.ConfigDocument, bucket, accountID string, kind version.Kind) error {
	name := entry.EntryName()
	portfolio, product, err := catalog.ResolveBuildTarget(ctx, e.gw.Catalog, doc, spec.Portfolio, name)
	if err != nil {
		return err
	}

	if entry.RoleName != "" {
		if product.Role == nil || product.Role.Name != entry.RoleName {
			product.Role = &catalog.Role{Name: entry.RoleName}
		}
		if err := product.Role.Ensure(ctx, e.gw.Identity, accountID); err != nil {
			return err
		}
		if len(entry.DeployProfile) > 0 {
			if err := product.Role.UpdatePolicy(ctx, e.gw.Identity, entry.PolicyDocument()); err != nil {
				return err
			}
		}
		portfolioID, err := portfolio.ResolveID(ctx, e.gw.Catalog)
		if err != nil {
			return err
		}
		if err := product.EnsureLaunchConstraint(ctx, e.gw.Catalog, portfolioID); err != nil {
			return err
		}
	}

	if resources := entry.ResourceFiles(); len(resources) > 0 {
		product.Resources = resources
	}

	released, err := product.Release(ctx, e.gw, bucket, kind, entry.Artifact)
	if err != nil {
		return err
	}
	e.log.Info("released product version", "product", name, "version", released)

	if kind != version.Build {
		if err := product.TidyVersions(ctx, e.gw.Catalog, e.gw.Storage, bucket); err != nil {
			return err
		}
	}
	return nil
}

// releaseStorage versions and uploads a storage-only entry, tracking it as an
// unmanaged product on the spec's portfolio.
func (e *Engine) releaseStorage(ctx context.Context, spec *Spec, entry *ProductSpec, doc *catalog.ConfigDocument, bucket string, kind version.Kind) error {
	name := entry.EntryName()
	portfolio, err := catalog.FindPortfolio(doc, spec.Portfolio)
	if err != nil {
		return err
	}
	unmanaged := portfolio.FindUnmanaged(name)
	if unmanaged == nil {
		unmanaged = catalog.NewUnmanagedProduct(name)
		portfolio.Unmanaged = append(portfolio.Unmanaged, unmanaged)
	}
	next, err := version.Bump(kind, unmanaged.Version)
	if err != nil {
		return err
	}

	prefix := path.Join(spec.Portfolio, name, next)
	artifacts := entry.ResourceFiles()
	if entry.Artifact != "" {
		artifacts = append([]string{entry.Artifact}, artifacts...)
	}
	var keys []string
	for _, artifact := range artifacts {
		key := path.Join(prefix, filepath.Base(artifact))
		if entry.Sls && strings.HasSuffix(artifact, ".json") {
			if err := e.uploadSlsManifest(ctx, bucket, key, artifact, prefix); err != nil {
				return err
			}
		} else {
			if err := e.gw.Storage.UploadFile(ctx, bucket, key, artifact); err != nil {
				return err
			}
		}
		keys = append(keys, key)
	}

	unmanaged.Version = next
	unmanaged.Artifacts = keys
	e.log.Info("released storage-only version", "product", name, "version", next)
	return nil
}

// uploadSlsManifest rewrites a serverless deployment manifest so its artifact
// references point at the conduit bucket and version prefix, then uploads the
// rewritten copy. The file on disk is left untouched.
func (e *Engine) uploadSlsManifest(ctx context.Context, bucket, key, file, prefix string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return cerrors.NewEntityError("release.sls-manifest", "file", file, err)
	}
	rewritten, err := rewriteSlsManifest(data, bucket, prefix)
	if err != nil {
		return cerrors.NewEntityError("release.sls-manifest", "file", file, err)
	}
	return e.gw.Storage.PutObject(ctx, bucket, key, rewritten)
}

// rewriteSlsManifest walks the manifest and retargets every S3Bucket value at
// the conduit bucket and every S3Key underneath the version prefix.
func rewriteSlsManifest(data []byte, bucket, prefix string) ([]byte, error) {
	var manifest any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	retargetArtifacts(manifest, bucket, prefix)
	return json.Marshal(manifest)
}

func retargetArtifacts(node any, bucket, prefix string) {
	switch typed := node.(type) {
	case map[string]any:
		for key, value := range typed {
			switch key {
			case "S3Bucket":
				if _, ok := value.(string); ok {
					typed[key] = bucket
					continue
				}
			case "S3Key":
				if s, ok := value.(string); ok {
					typed[key] = path.Join(prefix, s)
					continue
				}
			}
			retargetArtifacts(value, bucket, prefix)
		}
	case []any:
		for _, value := range typed {
			retargetArtifacts(value, bucket, prefix)
		}
	}
}
