package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/atelier/internal/auth/session"
)

func TestReadMissingOrBlank(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("expected no cookie on bare request")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "   "})
	if _, ok := Read(req); ok {
		t.Fatal("expected blank cookie to read as absent")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	recorder := httptest.NewRecorder()
	Write(recorder, " token-123 ", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range recorder.Result().Cookies() {
		req.AddCookie(cookie)
	}
	value, ok := Read(req)
	if !ok || value != "token-123" {
		t.Fatalf("read = %q/%t, want trimmed token", value, ok)
	}
}

func TestWriteSetsHardening(t *testing.T) {
	recorder := httptest.NewRecorder()
	Write(recorder, "token", true)

	cookies := recorder.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if !cookie.HttpOnly {
		t.Fatal("cookie must be HttpOnly")
	}
	if !cookie.Secure {
		t.Fatal("cookie must be Secure when requested")
	}
	if cookie.Path != "/" {
		t.Fatalf("path = %q, want /", cookie.Path)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("samesite = %v, want lax", cookie.SameSite)
	}
	if want := int(session.TTL / time.Second); cookie.MaxAge != want {
		t.Fatalf("max age = %d, want %d", cookie.MaxAge, want)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	Clear(recorder, false)

	cookies := recorder.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("max age = %d, want negative", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Fatalf("value = %q, want empty", cookies[0].Value)
	}
}
