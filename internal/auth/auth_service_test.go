package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/auth"
	autherrors "github.com/KATBlackCoder/rapportflow/internal/auth/errors"
	"github.com/KATBlackCoder/rapportflow/internal/provisioning"
	provisioningMock "github.com/KATBlackCoder/rapportflow/internal/provisioning/mock"
	"github.com/KATBlackCoder/rapportflow/internal/user"
	userMock "github.com/KATBlackCoder/rapportflow/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type serviceDeps struct {
	users       *userMock.MockRepository
	provisioner *provisioningMock.MockService
	svc         auth.Service
}

func setupServiceTest(t *testing.T) serviceDeps {
	ctrl := gomock.NewController(t)
	users := userMock.NewMockRepository(ctrl)
	provisioner := provisioningMock.NewMockService(ctrl)
	svc := auth.NewService(users, provisioner, auth.TokenConfig{
		Secret:     testSecret,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})
	return serviceDeps{users: users, provisioner: provisioner, svc: svc}
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	return parsed.Claims.(jwt.MapClaims)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success with default password", func(t *testing.T) {
		d := setupServiceTest(t)
		u := &user.User{ID: 7, Name: "Awa Traoré", Username: "traore@70123456.org", Password: hash(t, "ML70123456")}
		d.users.EXPECT().FindByUsername(ctx, u.Username).Return(u, nil)

		resp, err := d.svc.Login(ctx, u.Username, "ML70123456")

		assert.NoError(t, err)
		assert.Equal(t, "traore@70123456.org", resp.User.Username)
		assert.True(t, resp.User.MustChangePassword)

		access := parseClaims(t, resp.AccessToken)
		assert.Equal(t, "7", access["user_id"])
		assert.Equal(t, "access", access["typ"])
		assert.Equal(t, true, access["must_change_password"])

		refresh := parseClaims(t, resp.RefreshToken)
		assert.Equal(t, "refresh", refresh["typ"])
	})

	t.Run("wrong password and unknown username share one error", func(t *testing.T) {
		d := setupServiceTest(t)
		u := &user.User{ID: 7, Username: "traore@70123456.org", Password: hash(t, "ML70123456")}
		d.users.EXPECT().FindByUsername(ctx, u.Username).Return(u, nil)
		d.users.EXPECT().FindByUsername(ctx, "awa@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, errWrongPassword := d.svc.Login(ctx, u.Username, "nope")
		_, errUnknown := d.svc.Login(ctx, "awa@example.com", "ML70123456")

		assert.ErrorIs(t, errWrongPassword, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, autherrors.ErrInvalidCredentials)
	})

	t.Run("repository failure is passed through", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByUsername(ctx, "x").Return(nil, errors.New("db down"))

		_, err := d.svc.Login(ctx, "x", "y")

		assert.EqualError(t, err, "db down")
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	changed := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("refresh token issues a new pair", func(t *testing.T) {
		d := setupServiceTest(t)
		u := &user.User{ID: 3, Username: "diallo@76000000.org", PasswordChangedAt: &changed}
		d.users.EXPECT().FindByUsername(ctx, u.Username).Return(&user.User{ID: 3, Username: u.Username, Password: hash(t, "secret123"), PasswordChangedAt: &changed}, nil)
		d.users.EXPECT().FindByID(ctx, uint(3)).Return(u, nil)

		login, err := d.svc.Login(ctx, u.Username, "secret123")
		assert.NoError(t, err)

		resp, err := d.svc.RefreshToken(ctx, login.RefreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, false, parseClaims(t, resp.AccessToken)["must_change_password"])
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByUsername(ctx, "a").Return(&user.User{ID: 3, Username: "a", Password: hash(t, "secret123")}, nil)

		login, err := d.svc.Login(ctx, "a", "secret123")
		assert.NoError(t, err)

		_, err = d.svc.RefreshToken(ctx, login.AccessToken)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage and empty tokens", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)

		_, err = d.svc.RefreshToken(ctx, "")
		assert.ErrorIs(t, err, autherrors.ErrMissingRefreshToken)
	})
}

func TestService_FirstLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("keep stamps the change time", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByID(ctx, uint(5)).Return(&user.User{ID: 5, Username: "u"}, nil)
		d.users.EXPECT().MarkPasswordChanged(ctx, uint(5), gomock.Any()).Return(nil)

		resp, err := d.svc.FirstLogin(ctx, 5, auth.FirstLoginRequest{Action: "keep"})

		assert.NoError(t, err)
		assert.False(t, resp.User.MustChangePassword)
		assert.Equal(t, false, parseClaims(t, resp.AccessToken)["must_change_password"])
	})

	t.Run("change stores a new hash", func(t *testing.T) {
		d := setupServiceTest(t)
		d.users.EXPECT().FindByID(ctx, uint(5)).Return(&user.User{ID: 5, Username: "u"}, nil)
		d.users.EXPECT().UpdatePassword(ctx, uint(5), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, h string, _ time.Time) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("newsecret")))
				return nil
			})

		resp, err := d.svc.FirstLogin(ctx, 5, auth.FirstLoginRequest{
			Action:               "change",
			Password:             "newsecret",
			PasswordConfirmation: "newsecret",
		})

		assert.NoError(t, err)
		assert.False(t, resp.User.MustChangePassword)
	})

	t.Run("change validation", func(t *testing.T) {
		cases := []struct {
			name string
			req  auth.FirstLoginRequest
			want error
		}{
			{"missing password", auth.FirstLoginRequest{Action: "change"}, autherrors.ErrPasswordRequired},
			{"too short", auth.FirstLoginRequest{Action: "change", Password: "short", PasswordConfirmation: "short"}, autherrors.ErrPasswordTooShort},
			{"mismatch", auth.FirstLoginRequest{Action: "change", Password: "newsecret", PasswordConfirmation: "newsecreT"}, autherrors.ErrPasswordConfirmation},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := setupServiceTest(t)
				d.users.EXPECT().FindByID(ctx, uint(5)).Return(&user.User{ID: 5}, nil)

				_, err := d.svc.FirstLogin(ctx, 5, tc.req)

				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("already changed is a no-op", func(t *testing.T) {
		d := setupServiceTest(t)
		changed := time.Now()
		d.users.EXPECT().FindByID(ctx, uint(5)).Return(&user.User{ID: 5, PasswordChangedAt: &changed}, nil)

		resp, err := d.svc.FirstLogin(ctx, 5, auth.FirstLoginRequest{Action: "change"})

		assert.NoError(t, err)
		assert.False(t, resp.User.MustChangePassword)
	})
}

func TestService_MeAndRegister(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)
	dept := "Ventes"

	d.users.EXPECT().FindByID(ctx, uint(9)).Return(&user.User{
		ID:       9,
		Username: "traore@70123456.org",
		Employee: &user.UserEmployee{ID: 2, LastName: "Traoré", Position: "superviseur", Department: &dept},
	}, nil)
	d.users.EXPECT().FindByID(ctx, uint(10)).Return(nil, gorm.ErrRecordNotFound)

	me, err := d.svc.Me(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, "TRAORE", me.Employee.DisplayLastName)

	_, err = d.svc.Me(ctx, 10)
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)

	req := provisioning.Request{FirstName: "Awa", LastName: "Traoré", Phone: "70123456", Position: "employer"}
	d.provisioner.EXPECT().Provision(ctx, req).Return(provisioning.Result{Username: "traore@70123456.org"}, nil)

	res, err := d.svc.Register(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "traore@70123456.org", res.Username)
}
