package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/repository"
	"github.com/posters-science/poster-tracker/internal/zenodo"
)

// oauthState packs the user and poster ids into the OAuth state parameter so
// the callback can store the token for the right user and route back to the
// poster being published.
func oauthState(userID, posterID uuid.UUID) string {
	return userID.String() + ":" + posterID.String()
}

func parseOAuthState(state string) (userID, posterID uuid.UUID, err error) {
	parts := strings.SplitN(state, ":", 2)
	if len(parts) != 2 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed state parameter")
	}
	if userID, err = uuid.Parse(parts[0]); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed state parameter")
	}
	if posterID, err = uuid.Parse(parts[1]); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed state parameter")
	}
	return userID, posterID, nil
}

// OAuthCallbackHandler completes the redirect leg of the Zenodo sign-in: it
// exchanges the authorization code, stores the token pair, and sends the
// user back to the poster review page.
type OAuthCallbackHandler struct {
	oauth  *zenodo.OAuth
	tokens repository.ZenodoTokenRepository
	logger *slog.Logger
}

func NewOAuthCallbackHandler(oauth *zenodo.OAuth, tokens repository.ZenodoTokenRepository, logger *slog.Logger) *OAuthCallbackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OAuthCallbackHandler{oauth: oauth, tokens: tokens, logger: logger}
}

// Routes returns the HTTP mux for the callback listener.
func (h *OAuthCallbackHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /zenodo/callback", h.handleCallback)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (h *OAuthCallbackHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := common.WithRequestID(r.Context(), uuid.NewString())

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing or invalid authorization code", http.StatusBadRequest)
		return
	}
	state := r.URL.Query().Get("state")
	if state == "" {
		http.Error(w, "Missing or invalid state parameter", http.StatusBadRequest)
		return
	}
	userID, posterID, err := parseOAuthState(state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pair, err := h.oauth.ExchangeCode(ctx, code)
	if err != nil {
		h.logger.Error("zenodo.oauth.exchange_failed",
			"request_id", common.RequestIDFromContext(ctx), "user_id", userID, "error", err)
		http.Error(w, "Failed to obtain Zenodo access token", http.StatusInternalServerError)
		return
	}

	if _, err := h.tokens.Upsert(ctx, userID, pair.AccessToken, pair.RefreshToken, pair.ExpiryTime(time.Now())); err != nil {
		h.logger.Error("zenodo.oauth.store_failed",
			"request_id", common.RequestIDFromContext(ctx), "user_id", userID, "error", err)
		http.Error(w, "Failed to store Zenodo access token", http.StatusInternalServerError)
		return
	}

	h.logger.Info("zenodo.oauth.connected", "user_id", userID, "poster_id", posterID)
	http.Redirect(w, r, "/share/"+posterID.String()+"/review", http.StatusFound)
}
