package ingestion

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-interviewer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a profile or online resume page, extracts its text,
// and cleans it. When useBrowser is set, pages that come back nearly empty
// over plain HTTP are re-rendered in a headless browser.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	textContent, err := fetch.ExtractMainText(result.HTML, fetch.ProfilePageSelectors())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars), falling back to browser rendering...", len(textContent))
		}
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, fetch.ProfilePageSelectors()); extractErr == nil {
			textContent = rendered
		}
	}

	cleanedText := CleanText(textContent)
	metadata := NewMetadata(cleanedText, urlStr)
	return cleanedText, metadata, nil
}

// maxConcurrentFetches bounds parallel page fetches.
const maxConcurrentFetches = 4

// IngestURLs fetches several pages concurrently and returns the cleaned text
// per URL. One bad URL fails the batch; callers pass URLs the user gave
// explicitly, so surfacing the failure beats silently dropping a source.
func IngestURLs(ctx context.Context, urls []string, useBrowser, verbose bool) (map[string]string, error) {
	texts := make([]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, urlStr := range urls {
		g.Go(func() error {
			text, _, err := IngestFromURL(gctx, urlStr, useBrowser, verbose)
			if err != nil {
				return fmt.Errorf("ingest %s: %w", urlStr, err)
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(urls))
	for i, urlStr := range urls {
		out[urlStr] = texts[i]
	}
	return out, nil
}
