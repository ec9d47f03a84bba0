package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmap-server/internal/shared/config"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings(
		config.AuthConfig{TokenExpiration: time.Hour, CookieSecure: true, CookieSameSite: "strict"},
		config.FrontendConfig{URL: "https://maps.example.com:8443"},
	)

	assert.Equal(t, "maps.example.com", s.Domain)
	assert.True(t, s.Secure)
	assert.Equal(t, http.SameSiteStrictMode, s.SameSite)
	assert.Equal(t, time.Hour, s.MaxAge)
}

func TestExtractDomain(t *testing.T) {
	tests := map[string]string{
		"http://localhost:3000":   "",
		"http://127.0.0.1:3000":   "",
		"https://starmap.example": "starmap.example",
		"::bad":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, extractDomain(in), in)
	}
}

func TestSetAndClearAuthCookie(t *testing.T) {
	s := Settings{MaxAge: 2 * time.Hour, SameSite: http.SameSiteLaxMode}

	rec := httptest.NewRecorder()
	SetAuthCookie(rec, s, "tok")
	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, AuthCookieName, set[0].Name)
	assert.Equal(t, "tok", set[0].Value)
	assert.Equal(t, 7200, set[0].MaxAge)
	assert.True(t, set[0].HttpOnly)

	rec = httptest.NewRecorder()
	ClearAuthCookie(rec, s)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}
