package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/youruser/cardmaker/internal/util"
)

// ErrAssetNotFound is matched by every asset failure.
var ErrAssetNotFound = errors.New("asset not found")

// ErrAssetTooLarge is wrapped by failures for images over the size limits.
var ErrAssetTooLarge = errors.New("asset too large")

// AssetNotFoundError names the asset that could not be loaded.
type AssetNotFoundError struct {
	Key  Key
	Path string
	Err  error
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s (%s): %v", e.Path, e.Key, e.Err)
}

func (e *AssetNotFoundError) Unwrap() error { return e.Err }

func (e *AssetNotFoundError) Is(target error) bool {
	return target == ErrAssetNotFound
}

// Resolver opens an asset by its slash separated path.
type Resolver interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// FSResolver serves assets from a file system.
type FSResolver struct {
	FS fs.FS
}

func NewDirResolver(dir string) FSResolver {
	return FSResolver{FS: os.DirFS(dir)}
}

func (r FSResolver) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.FS.Open(path)
}

// HTTPResolver fetches assets below a base URL.
type HTTPResolver struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPResolver(baseURL string) HTTPResolver {
	return HTTPResolver{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 12 * time.Second},
	}
}

func (r HTTPResolver) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	b, err := util.GetBytes(ctx, r.Client, r.BaseURL+"/"+path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}
