package jobs

import (
	"mountainride-backoffice/internal/logger"
)

// SessionExpiredMessage is queued once per token when its expiry has passed
const SessionExpiredMessage = "Your session has expired. Sign in again if the server refuses your changes."

// CheckSessionExpiry warns the operator when the bearer token's expiry claim
// has passed. The session itself is left alone: only the remote API decides
// whether the token is still accepted.
func (jr *JobRunner) CheckSessionExpiry() {
	jr.runWithRecovery("CheckSessionExpiry", func() {
		if !jr.sessions.IsAuthenticated() {
			return
		}
		expiresAt := jr.sessions.ExpiresAt()
		if expiresAt == nil || jr.now().Before(*expiresAt) {
			return
		}

		jr.mu.Lock()
		defer jr.mu.Unlock()
		if jr.reportedUntil.Equal(*expiresAt) {
			return
		}
		jr.reportedUntil = *expiresAt

		logger.Warn("Session token expired", "expired_at", expiresAt.UTC())
		jr.notifier.Error(SessionExpiredMessage)
	})
}
