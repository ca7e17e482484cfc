package zenodo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// OAuthScope is the scope requested for depositing and publishing.
const OAuthScope = "deposit:write deposit:actions"

// OAuth drives the archival service's redirect-based code grant and
// refresh-token grant against its web origin.
type OAuth struct {
	endpoint     string
	clientID     string
	clientSecret string
	redirectURI  string
	http         *http.Client
	logger       *slog.Logger
}

func NewOAuth(endpoint, clientID, clientSecret, redirectURI string, logger *slog.Logger) *OAuth {
	if logger == nil {
		logger = slog.Default()
	}
	return &OAuth{
		endpoint:     strings.TrimRight(endpoint, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		http:         &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}
}

// AuthorizeURL builds the URL the user is sent to for consent. state is
// carried through the redirect and used to route back to the poster being
// published.
func (o *OAuth) AuthorizeURL(state string) string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {o.clientID},
		"redirect_uri":  {o.redirectURI},
		"state":         {state},
		"scope":         {OAuthScope},
	}
	return o.endpoint + "/oauth/authorize?" + params.Encode()
}

// ExchangeCode trades an authorization code for a token pair.
func (o *OAuth) ExchangeCode(ctx context.Context, code string) (*TokenPair, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {o.redirectURI},
		"client_id":     {o.clientID},
		"client_secret": {o.clientSecret},
		"scope":         {OAuthScope},
	}
	return o.tokenRequest(ctx, "code exchange", form)
}

// Refresh trades a refresh token for a fresh pair.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {o.clientID},
		"client_secret": {o.clientSecret},
	}
	return o.tokenRequest(ctx, "token refresh", form)
}

func (o *OAuth) tokenRequest(ctx context.Context, op string, form url.Values) (*TokenPair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint+"/oauth/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.http.Do(req)
	if err != nil {
		o.logger.Error("zenodo.oauth.send_error", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		o.logger.Warn("zenodo.oauth.rejected", "op", op, "status", resp.StatusCode)
		return nil, &OpError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var pair TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &pair, nil
}

// ExpiryTime converts the pair's expires_in into an absolute timestamp.
func (p *TokenPair) ExpiryTime(now time.Time) time.Time {
	return now.Add(time.Duration(p.ExpiresIn) * time.Second)
}
