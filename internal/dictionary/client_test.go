package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path  string
	key   string
	limit string
	has   bool
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, has := r.URL.Query()["limit"]
		reqs = append(reqs, recordedRequest{
			path:  r.URL.EscapedPath(),
			key:   r.URL.Query().Get("key"),
			limit: r.URL.Query().Get("limit"),
			has:   has,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func TestDefineDefinitions(t *testing.T) {
	body := `[{"meta":{"id":"infarction","stems":["infarction"]},"hwi":{"hw":"in*farc*tion"},"fl":"noun",` +
		`"shortdef":["death of tissue due to lack of blood supply"]}]`
	srv, reqs := newTestServer(t, http.StatusOK, body)

	c := NewClient(srv.URL, "secret")
	res, err := c.Define(context.Background(), "infarction")
	require.NoError(t, err)

	assert.Equal(t, ResultDefinitions, res.Kind)
	assert.Equal(t, []string{"death of tissue due to lack of blood supply"}, res.Definitions)
	assert.Empty(t, res.RelatedTerms)
	assert.Equal(t, "infarction", res.Entry.DisplayHeadword())
	assert.Equal(t, "noun", res.Entry.FunctionalLabel)

	require.Len(t, *reqs, 1)
	assert.Equal(t, "/api/v3/references/medical/json/infarction", (*reqs)[0].path)
	assert.Equal(t, "secret", (*reqs)[0].key)
	assert.False(t, (*reqs)[0].has, "full lookup carries no limit")
}

func TestDefineRelatedTerms(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `["diabetes", "diabetic"]`)

	res, err := NewClient(srv.URL, "k").Define(context.Background(), "diabetis")
	require.NoError(t, err)

	assert.Equal(t, ResultRelated, res.Kind)
	assert.Equal(t, []string{"diabetes", "diabetic"}, res.RelatedTerms)
	assert.Empty(t, res.Definitions)
}

func TestDefineNotFound(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)

	res, err := NewClient(srv.URL, "k").Define(context.Background(), "zzzznotaword")
	require.NoError(t, err)

	assert.Equal(t, ResultNotFound, res.Kind)
	assert.Empty(t, res.Definitions)
	assert.Empty(t, res.RelatedTerms)
}

func TestDefineErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `oops`, ErrUnexpectedStatus},
		{"invalid key", http.StatusOK, `Invalid API key. Not subscribed for this reference.`, ErrInvalidAPIKey},
		{"not json", http.StatusOK, `<html></html>`, ErrMalformedResponse},
		{"broken array", http.StatusOK, `["a",`, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)

			_, err := NewClient(srv.URL, "k").Define(context.Background(), "term")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDefineTransportError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "k").Define(context.Background(), "term")
	assert.Error(t, err)
}

func TestDefineEmptyTerm(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", "k").Define(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTerm)
}

func TestSuggestFiltersAndLimits(t *testing.T) {
	body := `["diabetes", {"meta":{"id":"x"},"shortdef":["y"]}, "diabetic", "diabetology", "diabetogenic", "diabetid", "diabetes mellitus"]`
	srv, reqs := newTestServer(t, http.StatusOK, body)

	got, err := NewClient(srv.URL, "k").Suggest(context.Background(), "diab", 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"diabetes", "diabetic", "diabetology", "diabetogenic", "diabetid"}, got)
	require.Len(t, *reqs, 1)
	assert.Equal(t, "5", (*reqs)[0].limit)
}

func TestSuggestObjectsOnly(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[{"meta":{"id":"heart"},"shortdef":["organ"]}]`)

	got, err := NewClient(srv.URL, "k").Suggest(context.Background(), "heart", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookupURLEscapesTerm(t *testing.T) {
	c := NewClient("https://example.com/", "k")

	assert.Equal(t,
		"https://example.com/api/v3/references/medical/json/heart%20attack?key=k&limit=5",
		c.LookupURL("heart attack", 5))
	assert.Equal(t,
		"https://example.com/api/v3/references/medical/json/a%2Fb?key=k",
		c.LookupURL("a/b", 0))
}

func TestClientHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, "k").Suggest(ctx, "heart", 5)
	assert.ErrorIs(t, err, context.Canceled)
}
