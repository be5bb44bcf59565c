package bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubService struct {
	exportData     []byte
	exportFilename string
	exportErr      error
}

func (s *stubService) Create(ctx context.Context, req CreateBookingRequest) (*BookingView, error) {
	return nil, nil
}

func (s *stubService) GetPartnerView(ctx context.Context, partnerID string, query ViewQuery) (*BookingListResponse, error) {
	return nil, nil
}

func (s *stubService) GetUserView(ctx context.Context, mobile string, query ViewQuery) (*BookingListResponse, error) {
	return nil, nil
}

func (s *stubService) Confirm(ctx context.Context, bookingID string) (*BookingView, error) {
	return nil, nil
}

func (s *stubService) Cancel(ctx context.Context, bookingID string) error {
	return nil
}

func (s *stubService) ExportPartnerCSV(ctx context.Context, partnerID string, query ViewQuery) ([]byte, string, error) {
	return s.exportData, s.exportFilename, s.exportErr
}

func exportRequest(t *testing.T, svc Service) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/bookings/partner/p-1/export", nil)
	ctx.Params = gin.Params{{Key: "partnerId", Value: "p-1"}}

	NewController(svc).ExportPartnerBookings(ctx)
	return w
}

func TestExportPartnerBookingsEmptyIsBadRequest(t *testing.T) {
	w := exportRequest(t, &stubService{exportErr: ErrNothingToExport})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestExportPartnerBookingsAttachment(t *testing.T) {
	w := exportRequest(t, &stubService{
		exportData:     []byte("\"Venue Name\",\"Date\",\"Status\",\"Slots\",\"Total Amount\"\n"),
		exportFilename: "bookings-2025-02-20.csv",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="bookings-2025-02-20.csv"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q", got)
	}
}
