package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codnextech/anchored-api/internal/application/waitlist"
	"github.com/codnextech/anchored-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockWaitlistRepo struct{ mock.Mock }

func (m *mockWaitlistRepo) Upsert(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, e)
	if stored, _ := args.Get(0).(*domain.WaitlistEntry); stored != nil {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWaitlistRepo) ListByRecency(ctx context.Context) ([]domain.WaitlistEntry, error) {
	args := m.Called(ctx)
	if entries, _ := args.Get(0).([]domain.WaitlistEntry); entries != nil {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func postJSON(t *testing.T, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
}

// --- Submit tests ---

func TestSubmit_InvalidBody(t *testing.T) {
	h := NewWaitlistHandler(waitlist.NewService(&mockWaitlistRepo{}))
	r := httptest.NewRequest(http.MethodPost, "/waitlist", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()

	h.Submit(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_ValidationFailure(t *testing.T) {
	repo := &mockWaitlistRepo{}
	h := NewWaitlistHandler(waitlist.NewService(repo))
	r := postJSON(t, "/waitlist", map[string]interface{}{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ada@x.com",
		"gdprConsent": false,
	})
	rr := httptest.NewRecorder()

	h.Submit(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSubmit_Success(t *testing.T) {
	stored := &domain.WaitlistEntry{
		EntryID:     "01HZX",
		Email:       "ada@x.com",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		GDPRConsent: true,
		CreatedAt:   time.Now().UTC(),
	}
	repo := &mockWaitlistRepo{}
	repo.On("Upsert", mock.Anything, mock.Anything).Return(stored, nil)

	h := NewWaitlistHandler(waitlist.NewService(repo))
	r := postJSON(t, "/waitlist", map[string]interface{}{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ADA@X.COM",
		"gdprConsent": true,
	})
	rr := httptest.NewRecorder()

	h.Submit(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	var env SubmitEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.True(t, env.Success)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "ada@x.com", env.Data[0].Email)
}

func TestSubmit_StorageConnectivity(t *testing.T) {
	repo := &mockWaitlistRepo{}
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil, domain.ErrStoreUnavailable)

	h := NewWaitlistHandler(waitlist.NewService(repo))
	rr := httptest.NewRecorder()
	h.Submit(rr, postJSON(t, "/waitlist", map[string]interface{}{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@x.com", "gdprConsent": true,
	}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "unable to reach the data store")
}

func TestSubmit_StoragePermission(t *testing.T) {
	repo := &mockWaitlistRepo{}
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil, domain.ErrStoreDenied)

	h := NewWaitlistHandler(waitlist.NewService(repo))
	rr := httptest.NewRecorder()
	h.Submit(rr, postJSON(t, "/waitlist", map[string]interface{}{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@x.com", "gdprConsent": true,
	}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "access denied")
}

// --- List tests ---

func TestList_Success(t *testing.T) {
	repo := &mockWaitlistRepo{}
	repo.On("ListByRecency", mock.Anything).Return([]domain.WaitlistEntry{
		{Email: "newest@x.com"},
		{Email: "oldest@x.com"},
	}, nil)

	h := NewWaitlistHandler(waitlist.NewService(repo))
	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/admin/waitlist", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var entries []domain.WaitlistEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "newest@x.com", entries[0].Email)
}

func TestList_Empty_ReturnsArray(t *testing.T) {
	repo := &mockWaitlistRepo{}
	repo.On("ListByRecency", mock.Anything).Return([]domain.WaitlistEntry{}, nil)

	h := NewWaitlistHandler(waitlist.NewService(repo))
	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/admin/waitlist", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestList_StorageFailure(t *testing.T) {
	repo := &mockWaitlistRepo{}
	repo.On("ListByRecency", mock.Anything).Return(nil, domain.ErrStorage)

	h := NewWaitlistHandler(waitlist.NewService(repo))
	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/admin/waitlist", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to fetch waitlist")
}
