package cookies

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"starmap-server/internal/shared/config"
)

// AuthCookieName carries the access token for browser clients
const AuthCookieName = "auth_token"

type Settings struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

func NewSettings(auth config.AuthConfig, frontend config.FrontendConfig) Settings {
	return Settings{
		Domain:   extractDomain(frontend.URL),
		Secure:   auth.CookieSecure,
		SameSite: parseSameSite(auth.CookieSameSite),
		MaxAge:   auth.TokenExpiration,
	}
}

func SetAuthCookie(w http.ResponseWriter, s Settings, token string) {
	cookie := createAuthCookie(s)
	cookie.Value = token
	cookie.MaxAge = int(s.MaxAge.Seconds())

	http.SetCookie(w, cookie)
}

func ClearAuthCookie(w http.ResponseWriter, s Settings) {
	cookie := createAuthCookie(s)
	cookie.Value = ""
	cookie.MaxAge = -1

	http.SetCookie(w, cookie)
}

func createAuthCookie(s Settings) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Path:     "/",
		Domain:   s.Domain,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	}
}

func extractDomain(frontendURL string) string {
	parsedURL, err := url.Parse(frontendURL)
	if err != nil || parsedURL.Host == "" {
		return ""
	}

	host := parsedURL.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return ""
	}

	return host
}

func parseSameSite(sameSiteStr string) http.SameSite {
	switch strings.ToLower(sameSiteStr) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
