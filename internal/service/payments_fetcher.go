package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

const (
	// DefaultPageSize is the page size used when fetching a full payments collection
	DefaultPageSize = 100
	// DefaultMaxConcurrentPages bounds page requests in flight after page 1
	DefaultMaxConcurrentPages = 8
	// MaxPages is the largest page count a single fetch will follow
	MaxPages = 1000
)

// ErrTooManyPages is returned when the upstream reports more pages than MaxPages
var ErrTooManyPages = errors.New("payments collection has too many pages")

// PaymentsSource returns one page of the upstream payments collection
type PaymentsSource interface {
	GetPayments(ctx context.Context, token string, q domain.PaymentsQuery) (*domain.PaymentsPage, error)
}

// PaymentsFetcher reads every page of a payments query
type PaymentsFetcher struct {
	source        PaymentsSource
	pageSize      int
	maxConcurrent int
}

// NewPaymentsFetcher creates a fetcher. maxConcurrent bounds the number of
// page requests in flight after the first page; values below 1 use
// DefaultMaxConcurrentPages.
func NewPaymentsFetcher(source PaymentsSource, pageSize, maxConcurrent int) *PaymentsFetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentPages
	}
	return &PaymentsFetcher{
		source:        source,
		pageSize:      pageSize,
		maxConcurrent: maxConcurrent,
	}
}

// FetchAll requests page 1 to learn the page count, then requests the
// remaining pages concurrently. Items are concatenated in page order and the
// summary is taken from page 1. If any page fails the whole fetch fails and
// no items are returned.
func (f *PaymentsFetcher) FetchAll(ctx context.Context, token string, q domain.PaymentsQuery) (*domain.PaymentCollection, error) {
	q.PageSize = f.pageSize
	q.Page = 1

	first, err := f.source.GetPayments(ctx, token, q)
	if err != nil {
		return nil, &ReportServiceError{Op: "fetch_payments_page_1", Err: err}
	}

	total := first.PageCount()
	if total > MaxPages {
		return nil, &ReportServiceError{
			Op:  "fetch_payments_page_1",
			Err: fmt.Errorf("%w: upstream reported %d pages, limit is %d", ErrTooManyPages, total, MaxPages),
		}
	}

	pages := make([]*domain.PaymentsPage, total)
	pages[0] = first

	if total > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(f.maxConcurrent)

		for n := 2; n <= total; n++ {
			pageQuery := q
			pageQuery.Page = n
			slot := n - 1
			g.Go(func() error {
				page, err := f.source.GetPayments(gctx, token, pageQuery)
				if err != nil {
					return err
				}
				pages[slot] = page
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, &ReportServiceError{Op: "fetch_payments_pages", Err: err}
		}
	}

	size := 0
	for _, p := range pages {
		size += len(p.Items)
	}

	items := make([]domain.PaymentLineItem, 0, size)
	for _, p := range pages {
		items = append(items, p.Items...)
	}

	return &domain.PaymentCollection{
		Items:     items,
		Summary:   first.Summary,
		PageCount: total,
	}, nil
}
