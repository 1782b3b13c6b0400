package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"SoundX/adapter"
	"SoundX/adapter/native"
	"SoundX/adapter/subsonic"
	"SoundX/config"
	"SoundX/logger"
	"SoundX/model"
	"SoundX/store"
)

// Login authenticates against the bound backend. Credentials are persisted
// only after a successful (code 200) outcome; a transport failure or a denied
// login writes nothing.
func Login(ctx context.Context, creds adapter.Credentials) (model.SuccessResponse[model.User], error) {
	if creds.DeviceName == "" {
		creds.DeviceName = store.DeviceName()
	}
	if creds.DeviceID == "" {
		creds.DeviceID = store.DeviceID(ctx)
	}

	a := Current()
	res, err := a.Auth().Login(ctx, creds)
	if err != nil {
		return res, err
	}
	if res.Code != 200 {
		return res, nil
	}
	persistBinding(ctx, a, creds, res.Data)
	return res, nil
}

func persistBinding(ctx context.Context, a adapter.MusicAdapter, creds adapter.Credentials, user model.User) {
	if !store.Configured() {
		return
	}
	stored := store.Credentials{
		Source:   a.Source(),
		Username: creds.Username,
	}
	switch impl := a.(type) {
	case *native.Adapter:
		stored.BaseURL = impl.BaseURL()
		stored.Token = user.Token
	case *subsonic.Adapter:
		stored.BaseURL = impl.BaseURL()
		// Subsonic re-derives a token per request; the password must stay
		// recoverable.
		stored.Password = creds.Password
	}
	if err := store.SaveCredentials(ctx, stored); err != nil {
		logger.Warn("failed to persist credentials", logger.ErrorField(err))
	}
}

// Register creates an account on backends that support it.
func Register(ctx context.Context, creds adapter.Credentials) (model.SuccessResponse[model.User], error) {
	return Current().Auth().Register(ctx, creds)
}

// Check probes connectivity. Callers bound the wait with ctx.
func Check(ctx context.Context) (model.SuccessResponse[bool], error) {
	return Current().Auth().Check(ctx)
}

// Hello is the greeting probe.
func Hello(ctx context.Context) (model.SuccessResponse[string], error) {
	return Current().Auth().Hello(ctx)
}

// ForceLogout clears stored credentials and rebinds to the anonymous native
// default. Triggered by a 401 outcome instead of a silent retry.
func ForceLogout(ctx context.Context) {
	if err := store.ClearCredentials(ctx); err != nil {
		logger.Warn("failed to clear credentials", logger.ErrorField(err))
	}
	cfg := config.Load()
	UseNative(cfg.APIBaseURL, "")
	logger.Info("forced logout, rebound to anonymous native backend")
}

// RestoreBinding rebinds from persisted credentials at startup. Missing or
// expired credentials leave the default binding in place.
func RestoreBinding(ctx context.Context) error {
	creds, err := store.LoadCredentials(ctx)
	if err != nil {
		return err
	}
	if creds == nil {
		return nil
	}
	switch creds.Source {
	case "subsonic":
		UseSubsonic(subsonic.Config{
			BaseURL:    creds.BaseURL,
			Username:   creds.Username,
			Password:   creds.Password,
			ClientName: config.Load().ClientName,
		})
	case "native":
		if SessionExpired(creds.Token) {
			logger.Info("stored session token expired, staying logged out")
			return store.ClearCredentials(ctx)
		}
		UseNative(creds.BaseURL, creds.Token)
	}
	return nil
}

// SessionExpired reports whether a native session token is past its exp
// claim. The token is decoded without verification; the backend owns the
// signing key and still authoritatively rejects bad tokens with a 401.
func SessionExpired(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
