package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sidapp/mongo-user-service/internal/domain/entity"
	"github.com/sidapp/mongo-user-service/pkg/helpers"
)

// Audit actions.
const (
	AuditUserCreated = "user.created"
	AuditUserUpdated = "user.updated"
	AuditUserDeleted = "user.deleted"
)

// AuditEvent is the message published to the audit queue after every
// successful mutation.
type AuditEvent struct {
	Action string    `json:"action"`
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

// AuditPublisher forwards mutation events to RabbitMQ. Publishing is best
// effort: a broker failure is logged and never fails the request.
type AuditPublisher struct {
	pub    *helpers.RabbitPublisher
	logger *logrus.Logger
}

func NewAuditPublisher(pub *helpers.RabbitPublisher, logger *logrus.Logger) *AuditPublisher {
	return &AuditPublisher{pub: pub, logger: logger}
}

func (a *AuditPublisher) Record(ctx context.Context, action string, u *entity.User) {
	if a == nil || a.pub == nil {
		return
	}
	evt := AuditEvent{Action: action, UserID: u.ID, Email: u.Email, At: time.Now().UTC()}
	if err := a.pub.PublishJSON(ctx, evt); err != nil && a.logger != nil {
		a.logger.WithError(err).WithFields(logrus.Fields{
			"action":  action,
			"user_id": u.ID,
		}).Warn("audit publish failed")
	}
}
