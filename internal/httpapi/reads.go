package httpapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/orders-admin/internal/pkg/circuit"
)

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	list, st, err := s.service.Orders(r.Context(), r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st)
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	order, st, err := s.service.Order(r.Context(), chi.URLParam(r, "id"), r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st)
	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}

func (s *Server) handleOrderPreview(w http.ResponseWriter, r *http.Request) {
	preview, st, err := s.service.OrderPreview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st)
	writeJSON(w, http.StatusOK, map[string]any{"order": preview})
}

func (s *Server) handlePayment(w http.ResponseWriter, r *http.Request) {
	payment, st, err := s.service.Payment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st)
	writeJSON(w, http.StatusOK, map[string]any{"payment": payment})
}

func (s *Server) handleReturns(w http.ResponseWriter, r *http.Request) {
	list, st, err := s.service.Returns(r.Context(), r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st)
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	ret, st, err := s.service.Return(r.Context(), chi.URLParam(r, "id"), r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLookup(w, st)
	writeJSON(w, http.StatusOK, map[string]any{"return": ret})
}

const (
	defaultJournalLimit = 50
	maxJournalLimit     = 500
)

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	limit := defaultJournalLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, r, &badRequestError{msg: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxJournalLimit)
	}

	entries, err := s.opts.Journal.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries, "count": len(entries)})
}

type health struct {
	Status  string         `json:"status"`
	Uptime  string         `json:"uptime"`
	Breaker *circuit.Stats `json:"breaker,omitempty"`
}

// handleHealth stays 200 while the commerce circuit is open. The admin
// itself is up and cached reads are still served.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h := health{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
	}
	if s.opts.Breaker != nil {
		st := s.opts.Breaker.Stats()
		h.Breaker = &st
		if st.State != circuit.Closed.String() {
			h.Status = "degraded"
		}
	}
	writeJSON(w, http.StatusOK, h)
}

// handleSessionProbe lets the login screen check that the auth surface is
// reachable from its origin and whether its session cookie still verifies.
func (s *Server) handleSessionProbe(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	resp := map[string]any{"has_session_cookie": err == nil}
	if err == nil && s.opts.CookieSecret != "" {
		_, ok := unsignCookie(c.Value, s.opts.CookieSecret)
		resp["valid_session"] = ok
	}
	writeJSON(w, http.StatusOK, resp)
}

const sessionCookie = "connect.sid"

// unsignCookie checks a signed cookie of the form s:<value>.<sig>, where sig
// is the unpadded base64 HMAC-SHA256 of value. The raw cookie may be
// URL-encoded.
func unsignCookie(raw, secret string) (string, bool) {
	if v, err := url.PathUnescape(raw); err == nil {
		raw = v
	}
	signed, ok := strings.CutPrefix(raw, "s:")
	if !ok {
		return "", false
	}
	dot := strings.LastIndexByte(signed, '.')
	if dot < 0 {
		return "", false
	}
	value, sig := signed[:dot], signed[dot+1:]
	if !hmac.Equal([]byte(sig), []byte(signCookie(value, secret))) {
		return "", false
	}
	return value, true
}

func signCookie(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *Server) handleStoreHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
