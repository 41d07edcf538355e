package services

import "github.com/rs/zerolog"

// Mailer delivers password-reset codes. Delivery formatting lives outside
// this system; the default sink just logs the code.
type Mailer interface {
	SendResetCode(email, code string) error
}

type LogMailer struct {
	Log zerolog.Logger
}

func (m LogMailer) SendResetCode(email, code string) error {
	m.Log.Info().Str("email", email).Str("code", code).Msg("password reset code issued")
	return nil
}
