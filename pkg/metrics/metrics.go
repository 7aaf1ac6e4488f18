package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	VerifyLocalAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sessiongate", Name: "verify_local_accepted_total", Help: "Number of verifications accepted locally without contacting the session authority."},
	)
	VerifyEscalated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sessiongate", Name: "verify_escalated_total", Help: "Number of verifications escalated to the session authority, by reason."},
		[]string{"reason"},
	)
	VerifyRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sessiongate", Name: "verify_rejected_total", Help: "Number of verifications rejected, by error kind."},
		[]string{"kind"},
	)
	RefreshOutcome = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sessiongate", Name: "refresh_total", Help: "Number of refresh attempts by outcome status."},
		[]string{"status"},
	)
	TokenTheftDetected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sessiongate", Name: "token_theft_detected_total", Help: "Number of refresh calls classified as token theft by the session authority."},
	)
	SigningKeyUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sessiongate", Name: "signing_key_updated_total", Help: "Number of signing-key cache updates from authority responses."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(VerifyLocalAccepted)
	reg.MustRegister(VerifyEscalated)
	reg.MustRegister(VerifyRejected)
	reg.MustRegister(RefreshOutcome)
	reg.MustRegister(TokenTheftDetected)
	reg.MustRegister(SigningKeyUpdated)
}
