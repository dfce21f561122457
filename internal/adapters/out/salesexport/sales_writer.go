// Package salesexport writes merchant sales to Parquet files, either on the
// local disk or to any io.WriteCloser such as an S3 object writer.
package salesexport

import (
	"context"
	"fmt"
	"io"
	"os"

	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/pkg/page"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

const parallelism = 4

// SaleRow is one exported order. Amounts are kept as decimal strings.
type SaleRow struct {
	OrderID          string `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID       string `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CourierID        string `parquet:"name=courier_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status           string `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Total            string `parquet:"name=total, type=BYTE_ARRAY, convertedtype=UTF8"`
	Items            int32  `parquet:"name=items, type=INT32"`
	DeliveryLocation string `parquet:"name=delivery_location, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderTime        int64  `parquet:"name=order_time, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	DeliveryTime     int64  `parquet:"name=delivery_time, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	Rating           *int32 `parquet:"name=rating, type=INT32, repetitiontype=OPTIONAL"`
}

func NewSaleRow(v queries.OrderView) SaleRow {
	row := SaleRow{
		OrderID:          v.ID.String(),
		CustomerID:       v.CustomerID.String(),
		Status:           v.Status.String(),
		Total:            v.Total.String(),
		Items:            int32(len(v.Items)),
		DeliveryLocation: v.DeliveryLocation,
		OrderTime:        v.OrderTime.UnixMilli(),
		DeliveryTime:     v.DeliveryTime.UnixMilli(),
	}
	if v.CourierID != nil {
		row.CourierID = v.CourierID.String()
	}
	if v.Review != nil {
		rating := int32(v.Review.Rating)
		row.Rating = &rating
	}
	return row
}

type SalesWriter struct {
	pw    *writer.ParquetWriter
	file  source.ParquetFile
	sink  io.Closer
	path  string
	count int
}

// aborter is implemented by sinks that can discard what was written to them,
// such as the S3 object writer.
type aborter interface {
	Abort()
}

// NewLocalSalesWriter creates or truncates the file at path.
func NewLocalSalesWriter(path string) (*SalesWriter, error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	w, err := newSalesWriter(fw, nil)
	if err != nil {
		return nil, err
	}
	w.path = path
	return w, nil
}

// NewSalesWriter writes to sink and closes it after the footer is written.
func NewSalesWriter(sink io.WriteCloser) (*SalesWriter, error) {
	return newSalesWriter(writerfile.NewWriterFile(sink), sink)
}

func newSalesWriter(fw source.ParquetFile, sink io.Closer) (*SalesWriter, error) {
	pw, err := writer.NewParquetWriter(fw, new(SaleRow), parallelism)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	return &SalesWriter{pw: pw, file: fw, sink: sink}, nil
}

func (w *SalesWriter) Write(v queries.OrderView) error {
	if err := w.pw.Write(NewSaleRow(v)); err != nil {
		return fmt.Errorf("write order %s: %w", v.ID, err)
	}
	w.count++
	return nil
}

// Count is the number of rows written so far.
func (w *SalesWriter) Count() int { return w.count }

// Close flushes the footer and closes the underlying file.
func (w *SalesWriter) Close() error {
	if err := w.pw.WriteStop(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("finish parquet file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return err
	}
	if w.sink != nil {
		return w.sink.Close()
	}
	return nil
}

// Abort gives up on a failed export. The local file is removed and an
// abortable sink is told to discard its contents, so no truncated file is
// left at the destination.
func (w *SalesWriter) Abort() error {
	_ = w.file.Close()
	if a, ok := w.sink.(aborter); ok {
		a.Abort()
	}
	if w.sink != nil {
		if err := w.sink.Close(); err != nil {
			return err
		}
	}
	if w.path != "" {
		if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", w.path, err)
		}
	}
	return nil
}

type salesLister interface {
	Handle(ctx context.Context, query queries.ListMerchantSalesQuery) (page.Page[queries.OrderView], error)
}

// ExportMerchantSales walks every page of query, starting at its current
// page, and writes each order to w. progress, if not nil, is called with the
// total number of orders once it is known and then after each page with the
// number of rows written.
func ExportMerchantSales(
	ctx context.Context,
	lister salesLister,
	query queries.ListMerchantSalesQuery,
	w *SalesWriter,
	progress func(written int, total int64),
) error {
	for {
		result, err := lister.Handle(ctx, query)
		if err != nil {
			return err
		}
		for _, v := range result.Content {
			if err = w.Write(v); err != nil {
				return err
			}
		}
		if progress != nil {
			progress(w.Count(), result.TotalElements)
		}
		if result.Last || len(result.Content) == 0 {
			return nil
		}

		next, err := page.NewRequest(query.Page().Number()+1, query.Page().Size())
		if err != nil {
			return err
		}
		query = query.WithPage(next)
	}
}
