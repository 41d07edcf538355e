package services

import (
	"testing"
	"time"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	email string
	code  string
	sent  int
}

func (m *captureMailer) SendResetCode(email, code string) error {
	m.email = email
	m.code = code
	m.sent++
	return nil
}

func newAuthFixture(t *testing.T, resetTTL time.Duration) (*AuthService, *captureMailer) {
	db := openTestDB(t)
	mailer := &captureMailer{}
	svc := NewAuthService(repository.NewUserRepository(db), mailer, "test-secret", time.Hour, resetTTL)
	return svc, mailer
}

func TestRegisterPasswordPolicy(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Minute)

	_, _, err := svc.Register("ana@example.com", "abcdefgh", "Ana María")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	token, user, err := svc.Register("ana@example.com", "Abcdef1!", "Ana María")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.False(t, user.IsProfileComplete)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Minute)

	_, _, err := svc.Register("ana@example.com", "Abcdef1!", "Ana")
	require.NoError(t, err)

	// Recovered from the unique index, not a pre-check lookup.
	_, _, err = svc.Register("Ana@Example.com", "Abcdef1!", "Otra Ana")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	assert.EqualError(t, err, "email already registered")
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Minute)

	_, _, err := svc.Register("ana@example.com", "Abcdef1!", "Ana")
	require.NoError(t, err)

	token, user, err := svc.Login("ana@example.com", "Abcdef1!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ana", user.Name)

	_, _, err = svc.Login("ana@example.com", "wrong-password")
	assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))

	_, _, err = svc.Login("nobody@example.com", "Abcdef1!")
	assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))
}

func TestCompleteSetup(t *testing.T) {
	svc, _ := newAuthFixture(t, time.Minute)

	_, user, err := svc.Register("ana@example.com", "Abcdef1!", "Ana")
	require.NoError(t, err)

	updated, err := svc.CompleteSetup(user.ID, []string{"Mariscos", "Parrilla"}, "Valles")
	require.NoError(t, err)
	assert.True(t, updated.IsProfileComplete)
	assert.Equal(t, "Valles", updated.Location)
	assert.Equal(t, []string{"Mariscos", "Parrilla"}, updated.FoodTypes)

	_, err = svc.CompleteSetup(user.ID, []string{"Sushi"}, "Valles")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	_, err = svc.CompleteSetup(user.ID, nil, "Marte")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mailer := newAuthFixture(t, time.Minute)

	_, _, err := svc.Register("ana@example.com", "Abcdef1!", "Ana")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset("ana@example.com"))
	require.Equal(t, 1, mailer.sent)
	require.Len(t, mailer.code, 6)

	// wrong code is rejected
	_, err = svc.VerifyResetCode("ana@example.com", "000000x")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	token, err := svc.VerifyResetCode("ana@example.com", mailer.code)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// wrong token is rejected
	err = svc.ResetPassword("ana@example.com", "bogus", "Nuevo123!")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	// weak replacement password is rejected
	err = svc.ResetPassword("ana@example.com", token, "weak")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	require.NoError(t, svc.ResetPassword("ana@example.com", token, "Nuevo123!"))

	// old password no longer works, new one does
	_, _, err = svc.Login("ana@example.com", "Abcdef1!")
	assert.Error(t, err)
	_, _, err = svc.Login("ana@example.com", "Nuevo123!")
	assert.NoError(t, err)

	// the token was consumed
	err = svc.ResetPassword("ana@example.com", token, "Tercero1!")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestPasswordResetExpiredCode(t *testing.T) {
	svc, mailer := newAuthFixture(t, -time.Minute)

	_, _, err := svc.Register("ana@example.com", "Abcdef1!", "Ana")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset("ana@example.com"))

	_, err = svc.VerifyResetCode("ana@example.com", mailer.code)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestPasswordResetRequestHidesAccountExistence(t *testing.T) {
	svc, mailer := newAuthFixture(t, time.Minute)

	// unknown account: same nil outcome, nothing sent
	require.NoError(t, svc.RequestPasswordReset("ghost@example.com"))
	assert.Equal(t, 0, mailer.sent)
}
