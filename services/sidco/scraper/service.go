package scraper

import (
	"context"
	"log/slog"
	"sidco-backend/lib/scrapers/sidco/incendios"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Fetcher is the portal surface Scrape needs. *core.Client satisfies
// it; tests substitute a canned implementation.
type Fetcher interface {
	ListingPage(ctx context.Context) (string, error)
	Page(ctx context.Context, link string) (string, error)
}

// Scrape pulls the national listing and enriches every record that
// links a ficha with its coordinates and initial conditions. A broken
// listing aborts the run; a broken ficha only costs that one record its
// enrichment.
func Scrape(ctx context.Context, client Fetcher) ([]incendios.FireRecord, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	listing, err := client.ListingPage(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	records, err := incendios.ParseListing(listing)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.KeyValue{
		Key:   "record_count",
		Value: attribute.IntValue(len(records)),
	})

	for i := range records {
		if records[i].UrlFicha == "" {
			continue
		}
		slog.InfoContext(ctx, "processing ficha",
			"index", i+1,
			"total", len(records),
			"nombre", records[i].Nombre,
		)

		ficha, err := scrapeFicha(ctx, client, records[i].UrlFicha)
		if err != nil {
			slog.WarnContext(ctx, "skipping ficha",
				"url", records[i].UrlFicha,
				"err", err,
			)
			continue
		}
		records[i].ApplyFicha(ficha)
	}

	warnSparseFields(ctx, records)
	return records, nil
}

func scrapeFicha(ctx context.Context, client Fetcher, link string) (incendios.Ficha, error) {
	ctx, span := tracer.Start(ctx, "scrapeFicha")
	defer span.End()

	span.SetAttributes(attribute.KeyValue{
		Key:   "url",
		Value: attribute.StringValue(link),
	})

	page, err := client.Page(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return incendios.Ficha{}, err
	}
	ficha, err := incendios.ParseFicha(page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return incendios.Ficha{}, err
	}
	return ficha, nil
}

// warnSparseFields flags columns that came back mostly empty. The
// portal's markup drifts quietly; a column going dark is usually the
// first symptom.
func warnSparseFields(ctx context.Context, records []incendios.FireRecord) {
	if len(records) == 0 {
		return
	}

	empty := map[string]int{}
	for _, r := range records {
		if r.Fecha == nil {
			empty["fecha"]++
		}
		if r.Region == "" {
			empty["region"]++
		}
		if r.Estado == "" {
			empty["estado"]++
		}
		if r.SuperficieHa == nil {
			empty["superficie_ha"]++
		}
		if r.UrlFicha == "" {
			empty["url_ficha"]++
		}
	}

	for column, count := range empty {
		if float64(count)/float64(len(records)) <= 0.5 {
			continue
		}
		slog.WarnContext(ctx, "column is mostly empty, markup may have drifted",
			"column", column,
			"empty", count,
			"total", len(records),
		)
	}
}
