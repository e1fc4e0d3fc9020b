package web

import (
	"net/http"
	"time"

	"github.com/sandevgo/factbot/internal/ledger"
)

const (
	ledgerCookieName   = "recent_facts_v1"
	ledgerCookieMaxAge = 24 * time.Hour
)

// readLedger never fails; a missing or malformed cookie is an empty ledger.
func readLedger(r *http.Request) ledger.Ledger {
	c, err := r.Cookie(ledgerCookieName)
	if err != nil {
		return ledger.Ledger{}
	}
	return ledger.Decode(c.Value)
}

func writeLedger(w http.ResponseWriter, l ledger.Ledger, secure bool) error {
	value, err := ledger.Encode(l)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ledgerCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ledgerCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
