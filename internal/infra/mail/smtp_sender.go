package mail

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"

	"github.com/kevindev10/ecommerce-api/config"
	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
)

const verificationSubject = "SokoKubwa Ecommerce Account Verification Email"

const verificationTemplate = `<!DOCTYPE html>
<html>
<head></head>
<body>
    <div style="display: flex; justify-content: center; align-items: center; flex-direction: column;">
        <h3>Account Verification</h3>
        <br>
        <p>Thanks for choosing SokoKubwa Ecommerce, click the button below to verify your account:</p>
        <a href="%s"
           style="margin-top: 1rem; padding: 1rem; background-color: #0275d8; color: white; text-decoration: none; border-radius: 0.5rem; font-size: 1rem;">
            Verify your email
        </a>
        <p>Or scan the attached QR code with your phone.</p>
        <p>Please ignore this email if you did not register for SokoKubwa Ecommerce.</p>
    </div>
</body>
</html>`

// smtpSender delivers account verification mail over SMTP.
type smtpSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	baseURL  string
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config, qrcodeSvc service.QRCodeService, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil {
		return nil, errors.New("mail configuration is required")
	}

	dialer := gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)

	return &smtpSender{
		dialer:   dialer,
		from:     cfg.Mail.From,
		fromName: cfg.Mail.FromName,
		baseURL:  cfg.HTTP.BaseURL,
		qrcode:   qrcodeSvc,
		logger:   logger,
	}, nil
}

// SendVerificationMail sends the account verification link to the user's
// email address. The link is also attached as a QR code image so it can be
// opened from a phone camera.
func (s *smtpSender) SendVerificationMail(ctx context.Context, user *entity.User, token string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "verification mail cancelled")
	}

	link := fmt.Sprintf("%s/verification?token=%s", s.baseURL, token)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.from, s.fromName)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", verificationSubject)
	msg.SetBody("text/html", fmt.Sprintf(verificationTemplate, link))

	qrPNG, err := s.qrcode.GenerateLinkQR(link)
	if err != nil {
		// The link in the body is still usable without the QR code.
		s.logger.WarnContext(ctx, "failed to generate verification QR code",
			slog.String("email", user.Email),
			slog.Any("error", err))
	} else {
		msg.Attach("verification-qr.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, writeErr := w.Write(qrPNG)

				return writeErr
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"image/png"}}))
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send verification mail")
	}

	return nil
}
