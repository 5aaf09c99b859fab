package textblock

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/textblock/model"
)

// ClusterPages processes multiple pages concurrently with default options,
// one pipeline invocation per page. Pages share no state, so the work
// parallelizes freely. Results and warnings are indexed by page.
func ClusterPages(ctx context.Context, pages []model.Page) ([][]model.Block, [][]Warning, error) {
	return ClusterPagesWithOptions(ctx, pages, DefaultOptions(), 0)
}

// ClusterPagesWithOptions processes multiple pages concurrently with the
// given options. concurrency bounds the number of pages in flight; zero or
// negative means one goroutine per page.
//
// The first page error aborts the remaining work and is returned wrapped
// with its page index. An empty page is an error here like anywhere else;
// callers expecting blank pages should filter them out first.
func ClusterPagesWithOptions(ctx context.Context, pages []model.Page, options Options, concurrency int) ([][]model.Block, [][]Warning, error) {
	blocks := make([][]model.Block, len(pages))
	warnings := make([][]Warning, len(pages))

	group, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		group.SetLimit(concurrency)
	}

	for i := range pages {
		i := i
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pageBlocks, pageWarnings, err := FromOptions(pages[i], options).Blocks()
			if err != nil {
				return fmt.Errorf("page %d: %w", i, err)
			}
			blocks[i] = pageBlocks
			warnings[i] = pageWarnings
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return blocks, warnings, nil
}
