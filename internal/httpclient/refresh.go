package httpclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/evizor/console/internal/api"
)

type refreshData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refreshAccessToken performs the one-shot token refresh. Concurrent 401s
// share a single in-flight refresh call and every waiter receives its
// outcome. Any unrecoverable path clears the session and yields the
// terminal api.ErrSessionExpired.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		refreshToken := c.session.RefreshToken()
		if refreshToken == "" {
			c.session.Logout(ctx)
			return nil, api.ErrSessionExpired
		}

		// skipAuth also keeps this call out of the 401 interceptor,
		// so a rejected refresh cannot recurse into another refresh
		res, err := c.do(ctx, http.MethodPost, "/auth/refresh",
			map[string]string{"refreshToken": refreshToken},
			SkipAuth())
		if err != nil {
			c.log.Warn(ctx, "token refresh failed", "error", err)
			c.session.Logout(ctx)
			return nil, api.ErrSessionExpired
		}

		var env api.Response[refreshData]
		if err := json.Unmarshal(res.body, &env); err != nil || !env.Status || env.Data.AccessToken == "" {
			c.log.Warn(ctx, "malformed refresh response, forcing logout")
			c.session.Logout(ctx)
			return nil, api.ErrSessionExpired
		}

		newRefresh := env.Data.RefreshToken
		if newRefresh == "" {
			// rotation is optional server-side, keep the current one
			newRefresh = refreshToken
		}
		c.session.SetTokens(ctx, env.Data.AccessToken, newRefresh)
		c.log.Info(ctx, "access token refreshed")

		return env.Data.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
