package mailxses

import "github.com/jmvelez/portfolio-api/pkg/errx"

var sesErrors = errx.NewRegistry("MAILX_SES")

var (
	ErrSendFailed   = sesErrors.Register("SEND_FAILED", errx.TypeExternal, 500, "SES send email failed")
	ErrVerifyFailed = sesErrors.Register("VERIFY_FAILED", errx.TypeExternal, 500, "SES account is not reachable")
	ErrLoadConfig   = sesErrors.Register("LOAD_CONFIG", errx.TypeInternal, 500, "Failed to load AWS configuration")
)
