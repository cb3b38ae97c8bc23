package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/internal/usecases/reporting/mocks"
)

func TestGetDashboardReport_ReturnsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	builder := mocks.NewMockReportBuilder(ctrl)
	builder.EXPECT().BuildReport(gomock.Any()).Return(&domain.DashboardReport{
		Date: "Saturday, June 15, 2024",
		Revenue: &domain.RevenueMetrics{
			ActiveCount: 12,
			MRR:         1200,
			ARR:         14400,
		},
		ChurnRisks:   []*domain.ConversationRisk{},
		HighPriority: []*domain.ConversationRisk{},
		Normal:       []*domain.ConversationRisk{},
		TotalUnread:  0,
	}, nil)

	handler := GetDashboardReport(builder)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"mrr":1200`)
	assert.Contains(t, rec.Body.String(), `"churn_risks":[]`)
}

func TestGetDashboardReport_UpstreamFailureIsBadGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	builder := mocks.NewMockReportBuilder(ctrl)
	builder.EXPECT().BuildReport(gomock.Any()).
		Return(nil, &domain.UpstreamError{Service: "stripe", Status: 500, Message: "server error"})

	handler := GetDashboardReport(builder)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXT_001")
}

func TestGetDashboardReport_OtherFailureIsInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	builder := mocks.NewMockReportBuilder(ctrl)
	builder.EXPECT().BuildReport(gomock.Any()).Return(nil, assert.AnError)

	handler := GetDashboardReport(builder)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
