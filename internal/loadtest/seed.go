package loadtest

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type createRequest struct {
	OriginalURL string `json:"originalUrl"`
}

type createResponse struct {
	Slug string `json:"slug"`
}

func NewHTTPClient(workers int, timeout time.Duration, insecureSkipVerify bool) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: insecureSkipVerify},
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}
}

// Seed creates count links through the public API and returns their slugs
// in creation order.
func Seed(ctx context.Context, client *http.Client, baseURL string, count, workers int, progress io.Writer) ([]string, error) {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Fprintf(progress, "Seeding %d links (workers: %d)...\n", count, workers)

	slugs := make([]string, count)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range count {
		g.Go(func() error {
			slug, err := createLink(ctx, client, baseURL, fmt.Sprintf("https://example.com/seed/%d", i))
			if err != nil {
				return fmt.Errorf("failed to create link %d: %w", i, err)
			}
			slugs[i] = slug
			if n := done.Add(1); n%100 == 0 || int(n) == count {
				fmt.Fprintf(progress, "\rProgress: %d/%d", n, count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Fprintf(progress, "\nSeeding complete: %d slugs\n", len(slugs))
	return slugs, nil
}

func createLink(ctx context.Context, client *http.Client, baseURL, originalURL string) (string, error) {
	body, err := json.Marshal(createRequest{OriginalURL: originalURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/urls", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Slug == "" {
		return "", fmt.Errorf("response has no slug")
	}
	return result.Slug, nil
}
