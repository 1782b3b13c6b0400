package native

import (
	"context"

	"SoundX/adapter"
	"SoundX/model"
)

type authAPI struct {
	client *Client
}

// Login exchanges credentials for a session token. A 401 envelope code comes
// back as data, not as an error; only transport failures error out.
func (a *authAPI) Login(ctx context.Context, creds adapter.Credentials) (model.SuccessResponse[model.User], error) {
	body := map[string]string{
		"username":   creds.Username,
		"password":   creds.Password,
		"deviceName": creds.DeviceName,
		"deviceId":   creds.DeviceID,
	}
	return post[model.User](ctx, a.client, "/user/login", body)
}

func (a *authAPI) Register(ctx context.Context, creds adapter.Credentials) (model.SuccessResponse[model.User], error) {
	body := map[string]string{
		"username":   creds.Username,
		"password":   creds.Password,
		"email":      creds.Email,
		"deviceName": creds.DeviceName,
		"deviceId":   creds.DeviceID,
	}
	return post[model.User](ctx, a.client, "/user/register", body)
}

func (a *authAPI) Check(ctx context.Context) (model.SuccessResponse[bool], error) {
	if _, err := get[string](ctx, a.client, "/hello", nil); err != nil {
		return model.OK(false), nil
	}
	return model.OK(true), nil
}

func (a *authAPI) Hello(ctx context.Context) (model.SuccessResponse[string], error) {
	return get[string](ctx, a.client, "/hello", nil)
}
