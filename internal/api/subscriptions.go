package api

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ignite/newsletter/internal/pkg/httputil"
	"github.com/ignite/newsletter/internal/pkg/logger"
	"github.com/ignite/newsletter/internal/pkg/metrics"
	"github.com/ignite/newsletter/internal/service/subscription"
)

// Public failure messages. Infrastructure causes are logged, never sent.
const (
	msgInvalidForm        = "invalid form body"
	msgInsertFailed       = "Failed to insert subscriber"
	msgConfirmationFailed = "Unable to send confirmation email"
)

const maxFormBytes = 1 << 20

// SubscriptionHandler serves the subscription form endpoint.
type SubscriptionHandler struct {
	svc     *subscription.Service
	metrics *metrics.Manager
}

// NewSubscriptionHandler creates the handler.
func NewSubscriptionHandler(svc *subscription.Service, m *metrics.Manager) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc, metrics: m}
}

// Subscribe accepts a url-encoded form with name and email.
//
//	POST /subscriptions
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeForm(w, r)
	if !ok {
		h.metrics.RecordSubscription(string(subscription.OutcomeRejectedInput))
		return
	}

	reqID := middleware.GetReqID(r.Context())
	logger.Info("Adding a new subscriber", "request_id", reqID,
		"subscriber_name", form.Name, "subscriber_email", form.Email)

	outcome, err := h.svc.Subscribe(r.Context(), form)
	h.metrics.RecordSubscription(string(outcome))

	switch outcome {
	case subscription.OutcomeAccepted:
		httputil.OK(w)
	case subscription.OutcomeRejectedInput:
		httputil.BadRequest(w, err.Error())
	case subscription.OutcomePersistenceFailed:
		httputil.InternalError(w, err, msgInsertFailed, "request_id", reqID)
	default:
		httputil.InternalError(w, err, msgConfirmationFailed, "request_id", reqID)
	}
}

func decodeForm(w http.ResponseWriter, r *http.Request) (subscription.Form, bool) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/x-www-form-urlencoded" {
		httputil.BadRequest(w, msgInvalidForm)
		return subscription.Form{}, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		httputil.BadRequest(w, msgInvalidForm)
		return subscription.Form{}, false
	}

	return subscription.Form{
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
	}, true
}
