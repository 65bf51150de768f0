package catalog

import (
	"bytes"
	"context"
	"io/fs"
	"os"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
	"github.com/concon121/aws-conduit/internal/gateway"
)

// TemplateStoreToken is the reserved placeholder authors write inside
// templates and resource files wherever the definitive S3 location of the
// release is needed. It is substituted at upload time, once the versioned
// location is known, and never persists past the upload.
const TemplateStoreToken = "CONDUIT_TEMPLATE_STORE"

// uploadSubstituted uploads a local file after replacing every occurrence of
// the template-store token with the resolved location. The file is rewritten
// on disk for the upload and restored to its original content afterwards,
// even when the upload fails.
func uploadSubstituted(ctx context.Context, stor *gateway.Storage, bucket, key, path, location string) (err error) {
	original, readErr := os.ReadFile(path)
	if readErr != nil {
		return cerrors.NewError("catalog.upload", readErr)
	}
	substituted := bytes.ReplaceAll(original, []byte(TemplateStoreToken), []byte(location))
	if !bytes.Equal(original, substituted) {
		mode := fs.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if writeErr := os.WriteFile(path, substituted, mode); writeErr != nil {
			return cerrors.NewError("catalog.upload", writeErr)
		}
		defer func() {
			if revertErr := os.WriteFile(path, original, mode); revertErr != nil && err == nil {
				err = cerrors.NewError("catalog.upload.revert", revertErr)
			}
		}()
	}
	return stor.UploadFile(ctx, bucket, key, path)
}
