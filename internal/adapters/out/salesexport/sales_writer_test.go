package salesexport

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/kernel"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

type MockSalesLister struct {
	mock.Mock
}

func (m *MockSalesLister) Handle(
	ctx context.Context, query queries.ListMerchantSalesQuery,
) (page.Page[queries.OrderView], error) {
	args := m.Called(ctx, query.Page().Number())
	return args.Get(0).(page.Page[queries.OrderView]), args.Error(1)
}

func view(t *testing.T, status order.Status, total string) queries.OrderView {
	t.Helper()
	amount, err := kernel.MoneyFromString(total)
	require.NoError(t, err)
	at := time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC)
	return queries.OrderView{
		ID:               kernel.NewUUID(),
		CustomerID:       kernel.NewUUID(),
		MerchantID:       kernel.NewUUID(),
		Items:            []queries.ItemView{{Name: "Tacos", Price: amount}},
		Total:            amount,
		DeliveryLocation: "3 Dock Rd",
		OrderTime:        at,
		DeliveryTime:     at.Add(time.Hour),
		Status:           status,
	}
}

func readRows(t *testing.T, path string) []SaleRow {
	t.Helper()
	fr, err := local.NewLocalFileReader(path)
	require.NoError(t, err)
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(SaleRow), 1)
	require.NoError(t, err)
	defer pr.ReadStop()

	rows := make([]SaleRow, pr.GetNumRows())
	require.NoError(t, pr.Read(&rows))
	return rows
}

func TestSalesWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.parquet")
	w, err := NewLocalSalesWriter(path)
	require.NoError(t, err)

	reviewed := view(t, order.Reviewed, "21.40")
	courier := kernel.NewUUID()
	reviewed.CourierID = &courier
	reviewed.Review = &queries.ReviewView{Rating: 5}

	require.NoError(t, w.Write(view(t, order.PendingConfirmation, "9.99")))
	require.NoError(t, w.Write(reviewed))
	require.NoError(t, w.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "PENDING_CONFIRMATION", rows[0].Status)
	assert.Equal(t, "9.99", rows[0].Total)
	assert.Empty(t, rows[0].CourierID)
	assert.Nil(t, rows[0].Rating)

	assert.Equal(t, "21.40", rows[1].Total)
	assert.Equal(t, courier.String(), rows[1].CourierID)
	require.NotNil(t, rows[1].Rating)
	assert.Equal(t, int32(5), *rows[1].Rating)
	assert.Equal(t, reviewed.OrderTime.UnixMilli(), rows[1].OrderTime)
}

func TestExportMerchantSales_WalksAllPages(t *testing.T) {
	ctx := context.Background()
	req, err := page.NewRequest(0, 2)
	require.NoError(t, err)
	query, err := queries.NewListMerchantSalesQuery(kernel.NewUUID(), nil, nil, req)
	require.NoError(t, err)

	first := []queries.OrderView{view(t, order.Delivered, "1.00"), view(t, order.Delivered, "2.00")}
	second := []queries.OrderView{view(t, order.Reviewed, "3.00")}

	lister := new(MockSalesLister)
	next, err := page.NewRequest(1, 2)
	require.NoError(t, err)
	lister.On("Handle", ctx, 0).Return(page.New(first, req, 3), nil).Once()
	lister.On("Handle", ctx, 1).Return(page.New(second, next, 3), nil).Once()

	path := filepath.Join(t.TempDir(), "sales.parquet")
	w, err := NewLocalSalesWriter(path)
	require.NoError(t, err)

	var reported []int
	err = ExportMerchantSales(ctx, lister, query, w, func(written int, total int64) {
		assert.Equal(t, int64(3), total)
		reported = append(reported, written)
	})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, []int{2, 3}, reported)
	assert.Len(t, readRows(t, path), 3)
	lister.AssertExpectations(t)
}

// uploadSink stands in for an object writer that uploads on Close.
type uploadSink struct {
	buf      bytes.Buffer
	aborted  bool
	uploaded []byte
}

func (s *uploadSink) Write(p []byte) (int, error) { return s.buf.Write(p) }

func (s *uploadSink) Abort() {
	s.aborted = true
	s.buf.Reset()
}

func (s *uploadSink) Close() error {
	if !s.aborted {
		s.uploaded = s.buf.Bytes()
	}
	return nil
}

func TestSalesWriter_AbortAfterFailedPage(t *testing.T) {
	ctx := context.Background()
	req, err := page.NewRequest(0, 1)
	require.NoError(t, err)
	query, err := queries.NewListMerchantSalesQuery(kernel.NewUUID(), nil, nil, req)
	require.NoError(t, err)
	next, err := page.NewRequest(1, 1)
	require.NoError(t, err)

	newLister := func() *MockSalesLister {
		lister := new(MockSalesLister)
		lister.On("Handle", ctx, 0).
			Return(page.New([]queries.OrderView{view(t, order.Delivered, "4.00")}, req, 2), nil).Once()
		lister.On("Handle", ctx, 1).
			Return(page.New([]queries.OrderView{}, next, 2), errors.New("connection reset")).Once()
		return lister
	}

	t.Run("object sink uploads nothing", func(t *testing.T) {
		sink := &uploadSink{}
		w, err := NewSalesWriter(sink)
		require.NoError(t, err)

		require.Error(t, ExportMerchantSales(ctx, newLister(), query, w, nil))
		require.NoError(t, w.Abort())

		assert.True(t, sink.aborted)
		assert.Nil(t, sink.uploaded)
	})

	t.Run("local file is removed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sales.parquet")
		w, err := NewLocalSalesWriter(path)
		require.NoError(t, err)

		require.Error(t, ExportMerchantSales(ctx, newLister(), query, w, nil))
		require.NoError(t, w.Abort())

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}
