package inventory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// FetchInventories downloads the objects.inv of every mapped package from
// the documentation server into the cache directory, fanning the fetches out
// across goroutines. This is a diagnostic helper for priming the inventory
// cache; fetch failures are logged and skipped so one missing package does
// not abort the rest.
func FetchInventories(ctx context.Context, server string, mapping Mapping, cacheDir string) error {
	var wg sync.WaitGroup
	for pkg, entry := range mapping {
		wg.Add(1)
		go func(pkg string, entry Entry) {
			defer wg.Done()
			if err := fetchInventory(ctx, server+entry.BaseUrl+"objects.inv", filepath.Join(cacheDir, pkg, "objects.inv")); err != nil {
				log.Warn().Err(err).Str("package", pkg).Msg("Failed to fetch inventory")
			}
		}(pkg, entry)
	}
	wg.Wait()
	return nil
}

func fetchInventory(ctx context.Context, url string, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d fetching %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, resp.Body)
	return err
}
