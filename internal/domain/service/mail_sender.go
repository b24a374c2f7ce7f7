package service

import (
	"context"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
)

// MailSender delivers the account verification mail. The mail embeds a link of
// the form <base-url>/verification?token=<token>.
type MailSender interface {
	SendVerificationMail(ctx context.Context, user *entity.User, token string) error
}
