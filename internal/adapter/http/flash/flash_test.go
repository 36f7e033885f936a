package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadAndClear(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/campaign/0xabc", nil)
	rec := httptest.NewRecorder()

	Write(rec, req, Success("Tier added successfully!"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	req.AddCookie(cookies[0])

	rec = httptest.NewRecorder()
	notice, ok := ReadAndClear(rec, req)
	require.True(t, ok)
	assert.Equal(t, KindSuccess, notice.Kind)
	assert.Equal(t, "Tier added successfully!", notice.Message)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestReadAndClearInvalidValueStillClears(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%"})
	rec := httptest.NewRecorder()

	_, ok := ReadAndClear(rec, req)
	assert.False(t, ok)
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))
}

func TestReadWithoutCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := ReadAndClear(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestWriteDropsEmptyAndUnknownKinds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, n := range []Notice{Success("  "), {Kind: "banner", Message: "hi"}} {
		rec := httptest.NewRecorder()
		Write(rec, req, n)
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
	}
}
