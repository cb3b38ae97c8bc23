package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/internal/usecases/reporting"
	"github.com/automateboss/ops-portal-api/pkg/apiErrors"
	"github.com/automateboss/ops-portal-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboardReport builds the dashboard snapshot on demand. Nothing
// is cached: each request fans out to the subscription and CRM
// providers and either returns a complete report or an error.
func GetDashboardReport(service reporting.ReportBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.BuildReport(r.Context())
		if err != nil {
			logger.WithError(err).Error("Failed to build dashboard report")

			code := apiErrors.ErrInternalServer
			if domain.IsUpstreamError(err) {
				code = apiErrors.ErrUpstreamService
			}
			apiErrors.WriteError(w, code, "Failed to build dashboard report", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("Failed to encode dashboard report")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
			return
		}
	}
}
