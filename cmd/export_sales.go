package cmd

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"takeout/internal/adapters/out/s3"
	"takeout/internal/adapters/out/salesexport"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/pkg/page"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const exportPageSize = 100

type exportOptions struct {
	merchantID string
	from       string
	to         string
	out        string
}

var exportOpts exportOptions

var exportSalesCmd = &cobra.Command{
	Use:   "export-sales",
	Short: "Write a merchant's sales to a parquet file, locally or on S3",
	Example: `  takeout export-sales --merchant-id 7c1d... --out sales.parquet
  takeout export-sales --merchant-id 7c1d... --from 2026-01-01T00:00:00Z --out s3://reports/sales.parquet`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		query, err := exportQuery(exportOpts)
		if err != nil {
			return err
		}

		var w *salesexport.SalesWriter
		if bucket, key, ok := parseS3URL(exportOpts.out); ok {
			client, clientErr := s3.NewClient(ctx, cfg.S3Region, cfg.S3Endpoint)
			if clientErr != nil {
				return clientErr
			}
			w, err = salesexport.NewSalesWriter(s3.NewWriter(ctx, client, bucket, key))
		} else {
			w, err = salesexport.NewLocalSalesWriter(exportOpts.out)
		}
		if err != nil {
			return err
		}

		gormDB, pool, err := openDatabases(ctx, cfg)
		if err != nil {
			_ = w.Abort()
			return err
		}
		defer pool.Close()
		defer closeGorm(gormDB)

		bar := progressbar.Default(-1, "exporting sales")
		progress := func(written int, total int64) {
			bar.ChangeMax64(total)
			_ = bar.Set(written)
		}

		lister := queries.NewListMerchantSalesQueryHandler(pool)
		if err = salesexport.ExportMerchantSales(ctx, lister, query, w, progress); err != nil {
			_ = w.Abort()
			return err
		}
		if err = w.Close(); err != nil {
			return err
		}
		_ = bar.Finish()

		fmt.Fprintf(cmd.OutOrStdout(), "\nwrote %d sales to %s\n", w.Count(), exportOpts.out)
		return nil
	},
}

func init() {
	f := exportSalesCmd.Flags()
	f.StringVar(&exportOpts.merchantID, "merchant-id", "", "merchant whose sales are exported")
	f.StringVar(&exportOpts.from, "from", "", "earliest order time, RFC 3339")
	f.StringVar(&exportOpts.to, "to", "", "latest order time, RFC 3339")
	f.StringVar(&exportOpts.out, "out", "sales.parquet", "local path or s3://bucket/key")
	_ = exportSalesCmd.MarkFlagRequired("merchant-id")
}

func exportQuery(opts exportOptions) (queries.ListMerchantSalesQuery, error) {
	merchantID, err := kernel.UUIDFromString(opts.merchantID)
	if err != nil {
		return queries.ListMerchantSalesQuery{}, fmt.Errorf("merchant-id: %w", err)
	}
	from, err := optionalTime("from", opts.from)
	if err != nil {
		return queries.ListMerchantSalesQuery{}, err
	}
	to, err := optionalTime("to", opts.to)
	if err != nil {
		return queries.ListMerchantSalesQuery{}, err
	}
	req, err := page.NewRequest(0, exportPageSize)
	if err != nil {
		return queries.ListMerchantSalesQuery{}, err
	}
	return queries.NewListMerchantSalesQuery(merchantID, from, to, req)
}

func optionalTime(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", flag, err)
	}
	return &t, nil
}

// parseS3URL splits s3://bucket/key. ok is false for anything else.
func parseS3URL(raw string) (bucket, key string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return "", "", false
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", false
	}
	return u.Host, key, true
}
