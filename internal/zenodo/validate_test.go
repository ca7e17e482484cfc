package zenodo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/entity"
)

type fakeTokenRepo struct {
	token    *entity.ZenodoToken
	deleted  bool
	upserted *entity.ZenodoToken
}

func (r *fakeTokenRepo) Get(_ context.Context, userID uuid.UUID) (*entity.ZenodoToken, error) {
	if r.token == nil {
		return nil, common.WrapError(common.ErrNotFound, "zenodo token")
	}
	return r.token, nil
}

func (r *fakeTokenRepo) Upsert(_ context.Context, userID uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) (*entity.ZenodoToken, error) {
	r.upserted = &entity.ZenodoToken{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}
	return r.upserted, nil
}

func (r *fakeTokenRepo) Delete(context.Context, uuid.UUID) error {
	r.deleted = true
	return nil
}

type fakeLister struct {
	deps  []Deposition
	err   error
	calls int
}

func (l *fakeLister) ListDepositions(context.Context, string) ([]Deposition, error) {
	l.calls++
	return l.deps, l.err
}

type fakeRefresher struct {
	pair  *TokenPair
	err   error
	calls int
}

func (r *fakeRefresher) Refresh(context.Context, string) (*TokenPair, error) {
	r.calls++
	return r.pair, r.err
}

func TestValidateNoToken(t *testing.T) {
	repo := &fakeTokenRepo{}
	lister := &fakeLister{}
	svc := NewTokenService(repo, lister, &fakeRefresher{}, nil)

	res, err := svc.Validate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.Valid {
		t.Error("missing token reported valid")
	}
	if res.Message != "No Zenodo token found" {
		t.Errorf("message = %q", res.Message)
	}
	if lister.calls != 0 {
		t.Error("remote probe attempted with no stored token")
	}
}

func TestValidateRejectedTokenIsDeleted(t *testing.T) {
	repo := &fakeTokenRepo{token: &entity.ZenodoToken{AccessToken: "stale"}}
	lister := &fakeLister{err: &OpError{Op: "list depositions", Status: 401, Body: "invalid token"}}
	svc := NewTokenService(repo, lister, &fakeRefresher{}, nil)

	res, err := svc.Validate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.Valid {
		t.Error("rejected token reported valid")
	}
	if res.Message != "Zenodo token is invalid or expired" {
		t.Errorf("message = %q", res.Message)
	}
	if !repo.deleted {
		t.Error("rejected token was not deleted")
	}
}

func TestValidateTransportFailureKeepsToken(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"plain error", errors.New("dial tcp: connection refused")},
		{"op error without status", &OpError{Op: "list depositions", Err: errors.New("dial tcp: connection refused")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeTokenRepo{token: &entity.ZenodoToken{AccessToken: "good"}}
			lister := &fakeLister{err: tc.err}
			svc := NewTokenService(repo, lister, &fakeRefresher{}, nil)

			res, err := svc.Validate(context.Background(), uuid.New())
			if err == nil {
				t.Fatalf("Validate = %+v, want error", res)
			}
			if repo.deleted {
				t.Error("token deleted on a failure the remote never saw")
			}
		})
	}
}

func TestValidateWorkingToken(t *testing.T) {
	repo := &fakeTokenRepo{token: &entity.ZenodoToken{AccessToken: "good", RefreshToken: "refresh"}}
	lister := &fakeLister{deps: []Deposition{
		{ID: 1, Title: "Earlier Poster", State: "done", Submitted: true, ConceptRecID: "100"},
	}}
	refresher := &fakeRefresher{pair: &TokenPair{AccessToken: "new", RefreshToken: "new-refresh", ExpiresIn: 3600}}
	svc := NewTokenService(repo, lister, refresher, nil)

	res, err := svc.Validate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.Valid {
		t.Fatalf("working token reported invalid: %s", res.Message)
	}
	if res.Message != "Zenodo token is valid" {
		t.Errorf("message = %q", res.Message)
	}
	if len(res.ExistingDepositions) != 1 || res.ExistingDepositions[0].Title != "Earlier Poster" {
		t.Errorf("depositions = %+v", res.ExistingDepositions)
	}
	if refresher.calls != 1 {
		t.Errorf("refresh calls = %d, want 1", refresher.calls)
	}
	if repo.upserted == nil || repo.upserted.AccessToken != "new" {
		t.Errorf("refreshed pair not stored: %+v", repo.upserted)
	}
}

func TestValidateRefreshFailureIsNonFatal(t *testing.T) {
	repo := &fakeTokenRepo{token: &entity.ZenodoToken{AccessToken: "good", RefreshToken: "refresh"}}
	lister := &fakeLister{}
	refresher := &fakeRefresher{err: errors.New("token endpoint down")}
	svc := NewTokenService(repo, lister, refresher, nil)

	res, err := svc.Validate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.Valid {
		t.Error("refresh failure must not invalidate a working token")
	}
	if repo.deleted {
		t.Error("working token deleted after failed refresh")
	}
}

func TestDisconnect(t *testing.T) {
	repo := &fakeTokenRepo{token: &entity.ZenodoToken{AccessToken: "good"}}
	svc := NewTokenService(repo, &fakeLister{}, &fakeRefresher{}, nil)
	if err := svc.Disconnect(context.Background(), uuid.New()); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if !repo.deleted {
		t.Error("Disconnect did not delete the stored token")
	}
}
