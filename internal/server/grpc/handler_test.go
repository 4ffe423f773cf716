package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/logging"
	pb "github.com/dmitrijs2005/authbridge/internal/proto"
	"github.com/dmitrijs2005/authbridge/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/testing/protocmp"
)

// ---- fakes ----

type fakeAuth struct {
	otpOK  bool
	otpErr error

	pwdOK  bool
	pwdErr error

	appOK  bool
	appErr error

	profile    *models.Profile
	profileErr error

	identity  *models.Identity
	assertion string
	loginErr  error

	pingErr error

	gotLogin    string
	gotSecret   string
	gotDeadline bool
}

func (f *fakeAuth) CheckOTP(ctx context.Context, login, code string) (bool, error) {
	f.gotLogin, f.gotSecret = login, code
	_, f.gotDeadline = ctx.Deadline()
	return f.otpOK, f.otpErr
}

func (f *fakeAuth) CheckPassword(ctx context.Context, login, password string) (bool, error) {
	f.gotLogin, f.gotSecret = login, password
	return f.pwdOK, f.pwdErr
}

func (f *fakeAuth) CheckAppPassword(ctx context.Context, login, password string) (bool, error) {
	f.gotLogin, f.gotSecret = login, password
	return f.appOK, f.appErr
}

func (f *fakeAuth) GetProfile(ctx context.Context, login string) (*models.Profile, error) {
	f.gotLogin = login
	return f.profile, f.profileErr
}

func (f *fakeAuth) VerifyLogin(ctx context.Context, login, password, code string) (*models.Identity, string, error) {
	f.gotLogin = login
	return f.identity, f.assertion, f.loginErr
}

func (f *fakeAuth) Ping(ctx context.Context) error {
	return f.pingErr
}

// startBufconn serves s over an in-memory listener and returns a client.
func startBufconn(t *testing.T, fa *fakeAuth) pb.AuthBridgeClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := NewGRPCServer("bufconn", logging.Nop{}, fa, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return pb.NewAuthBridgeClient(conn)
}

func TestCheckOTP_RoundTrip(t *testing.T) {
	fa := &fakeAuth{otpOK: true}
	c := startBufconn(t, fa)

	var header metadata.MD
	resp, err := c.CheckOTP(context.Background(), &pb.CheckOTPRequest{Login: "alice@example.com", Code: "007"}, grpc.Header(&header))
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "alice@example.com", fa.gotLogin)
	assert.Equal(t, "007", fa.gotSecret)
	assert.True(t, fa.gotDeadline)
	assert.NotEmpty(t, header.Get(common.RequestIDHeaderName))
}

func TestCheck_AuthFailuresLookLikeWrongSecret(t *testing.T) {
	for _, err := range []error{nil, common.ErrNoSuchUser, common.ErrNoSuchCredential, common.ErrMalformedCredential} {
		t.Run(fmt.Sprint(err), func(t *testing.T) {
			c := startBufconn(t, &fakeAuth{otpErr: err, pwdErr: err, appErr: err})

			otp, rpcErr := c.CheckOTP(context.Background(), &pb.CheckOTPRequest{Login: "a@example.com", Code: "1"})
			require.NoError(t, rpcErr)
			assert.False(t, otp.Valid)

			pwd, rpcErr := c.CheckPassword(context.Background(), &pb.CheckPasswordRequest{Login: "a@example.com", Password: "p"})
			require.NoError(t, rpcErr)
			assert.False(t, pwd.Valid)

			app, rpcErr := c.CheckAppPassword(context.Background(), &pb.CheckPasswordRequest{Login: "a@example.com", Password: "p"})
			require.NoError(t, rpcErr)
			assert.False(t, app.Valid)
		})
	}
}

func TestCheck_ErrorCodes(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{err: fmt.Errorf("%w: dial", common.ErrStoreUnavailable), code: codes.Unavailable},
		{err: fmt.Errorf("%w: syntax", common.ErrQueryFailed), code: codes.Unavailable},
		{err: common.ErrRateLimited, code: codes.ResourceExhausted},
		{err: errors.New("boom"), code: codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			c := startBufconn(t, &fakeAuth{otpErr: tt.err, appErr: tt.err})

			_, err := c.CheckOTP(context.Background(), &pb.CheckOTPRequest{Login: "a@example.com", Code: "1"})
			assert.Equal(t, tt.code, status.Code(err))

			_, err = c.CheckAppPassword(context.Background(), &pb.CheckPasswordRequest{Login: "a@example.com"})
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestCheckOTP_MissingLoginIsInvalidArgument(t *testing.T) {
	c := startBufconn(t, &fakeAuth{})

	_, err := c.CheckOTP(context.Background(), &pb.CheckOTPRequest{Code: "123456"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetProfile(t *testing.T) {
	fa := &fakeAuth{profile: &models.Profile{ID: 7, State: models.StateActive, Email: "a@example.com", Login: "a@example.com", Name: "A B", Username: "a@example.com"}}
	c := startBufconn(t, fa)

	resp, err := c.GetProfile(context.Background(), &pb.GetProfileRequest{Login: "a@example.com"})
	require.NoError(t, err)
	want := &pb.ProfileResponse{Id: 7, State: "active", Email: "a@example.com", Login: "a@example.com", Name: "A B", Username: "a@example.com"}
	if diff := cmp.Diff(want, resp, protocmp.Transform()); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	c := startBufconn(t, &fakeAuth{profileErr: common.ErrNoSuchUser})

	_, err := c.GetProfile(context.Background(), &pb.GetProfileRequest{Login: "ghost@example.com"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestVerifyLogin(t *testing.T) {
	c := startBufconn(t, &fakeAuth{identity: &models.Identity{UserID: 7, Login: "a@example.com"}, assertion: "signed"})

	resp, err := c.VerifyLogin(context.Background(), &pb.VerifyLoginRequest{Login: "a@example.com", Password: "p", Otp: "123456"})
	require.NoError(t, err)
	if diff := cmp.Diff(&pb.VerifyLoginResponse{UserId: 7, Login: "a@example.com", Assertion: "signed"}, resp, protocmp.Transform()); diff != "" {
		t.Errorf("login mismatch (-want +got):\n%s", diff)
	}
}

func TestVerifyLogin_Rejected(t *testing.T) {
	for _, err := range []error{common.ErrorUnauthorized, common.ErrNoSuchUser, common.ErrMalformedCredential} {
		c := startBufconn(t, &fakeAuth{loginErr: err})

		_, rpcErr := c.VerifyLogin(context.Background(), &pb.VerifyLoginRequest{Login: "a@example.com", Password: "p", Otp: "1"})
		require.Equal(t, codes.Unauthenticated, status.Code(rpcErr))
		assert.Equal(t, msgAuthFailed, status.Convert(rpcErr).Message())
	}
}

func TestPing(t *testing.T) {
	c := startBufconn(t, &fakeAuth{})
	resp, err := c.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)

	c = startBufconn(t, &fakeAuth{pingErr: common.ErrStoreUnavailable})
	_, err = c.Ping(context.Background(), &pb.PingRequest{})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}
