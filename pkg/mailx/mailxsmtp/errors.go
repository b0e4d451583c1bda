package mailxsmtp

import "github.com/jmvelez/portfolio-api/pkg/errx"

var smtpErrors = errx.NewRegistry("MAILX_SMTP")

var (
	ErrConnectFailed = smtpErrors.Register("CONNECT_FAILED", errx.TypeExternal, 500, "Mail server is unreachable")
	ErrAuthFailed    = smtpErrors.Register("AUTH_FAILED", errx.TypeExternal, 500, "Mail server rejected the configured credentials")
	ErrSendFailed    = smtpErrors.Register("SEND_FAILED", errx.TypeExternal, 500, "Failed to send email")
	ErrBuildMessage  = smtpErrors.Register("BUILD_MESSAGE", errx.TypeInternal, 500, "Failed to build email message")
)
