package mysession

import (
	"net/http"

	"github.com/warungberkah/storefront/lib/myuuid"
)

const cookieName = "session"

// UID returns the caller's session uid, minting a new one (and setting the
// cookie) when the request does not carry one yet.
func UID(w http.ResponseWriter, r *http.Request, uuider myuuid.UUIDer) string {
	cookie, err := r.Cookie(cookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	uid := uuider.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    uid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return uid
}
