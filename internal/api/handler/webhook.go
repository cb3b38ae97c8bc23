package handler

import (
	"crypto/subtle"
	"io"
	"net/http"

	"github.com/automateboss/ops-portal-api/internal/config"
	"github.com/automateboss/ops-portal-api/internal/domain"
	"github.com/automateboss/ops-portal-api/internal/usecases/ingesting"
	"github.com/automateboss/ops-portal-api/pkg/apiErrors"
	"github.com/automateboss/ops-portal-api/pkg/log"
)

// webhookSecretHeader carries the optional shared secret agreed with
// the CRM. Validation only runs when a secret is configured.
const webhookSecretHeader = "x-automateboss-webhook-secret"

const maxWebhookBodyBytes = 1 << 20 // 1 MiB

type webhookResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ReceiveHighLevelWebhook accepts a CRM event payload and hands it to
// the ingestor. Callers always get a definitive success/failure body.
func ReceiveHighLevelWebhook(service ingesting.Ingestor, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if secret := cfg.Webhook.Secret; secret != "" {
			provided := r.Header.Get(webhookSecretHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				logger.Warn("Webhook rejected: shared secret mismatch")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid webhook secret", nil)
				return
			}
		}

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("Failed to read webhook body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to read request body", nil)
			return
		}

		if err := service.Ingest(r.Context(), payload); err != nil {
			logger.WithError(err).Error("Webhook processing failed")

			status := http.StatusInternalServerError
			if domain.IsValidationError(err) {
				status = http.StatusBadRequest
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(webhookResult{Success: false, Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(webhookResult{Success: true})
	}
}
