package subsonic

import (
	"context"

	"SoundX/adapter"
	"SoundX/logger"
	"SoundX/model"
)

type authAPI struct {
	client *Client
}

// Login validates the configured credentials with a ping, then fills in real
// user details with a best-effort getUser call. Authentication itself is
// per-request (token+salt); there is no session on the server side.
func (a *authAPI) Login(ctx context.Context, creds adapter.Credentials) (model.SuccessResponse[model.User], error) {
	var ping pingResponse
	if err := a.client.Get(ctx, "ping", nil, &ping); err != nil {
		return model.SuccessResponse[model.User]{}, err
	}

	username := creds.Username
	if username == "" {
		username = a.client.cfg.Username
	}
	deviceName := creds.DeviceName
	if deviceName == "" {
		deviceName = "Subsonic Device"
	}

	user := model.User{
		ID:       model.ID(username),
		Username: username,
		Token:    "subsonic-session-token", // auth is via config, not a session
		Device:   model.Device{ID: "1", Name: deviceName},
	}

	var res userResponse
	if err := a.client.Get(ctx, "getUser", map[string]string{"username": username}, &res); err != nil {
		// Some servers restrict getUser; the ping already proved the binding.
		logger.Debug("getUser failed after successful ping", logger.ErrorField(err))
		return model.OK(user), nil
	}
	user.Username = res.User.Username
	user.Email = res.User.Email
	user.IsAdmin = res.User.AdminRole
	return model.OK(user), nil
}

func (a *authAPI) Register(ctx context.Context, _ adapter.Credentials) (model.SuccessResponse[model.User], error) {
	return model.SuccessResponse[model.User]{}, adapter.Unsupported("register")
}

// Check is the connectivity probe. It reports reachability as data; the
// caller bounds the wait through ctx.
func (a *authAPI) Check(ctx context.Context) (model.SuccessResponse[bool], error) {
	if err := a.client.Get(ctx, "ping", nil, nil); err != nil {
		logger.Debug("connectivity probe failed", logger.ErrorField(err))
		return model.OK(false), nil
	}
	return model.OK(true), nil
}

func (a *authAPI) Hello(ctx context.Context) (model.SuccessResponse[string], error) {
	return model.OK("Hello from Subsonic Adapter"), nil
}
