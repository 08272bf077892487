package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adityab24840/SwachItHackathon/internal/rank"
	"github.com/adityab24840/SwachItHackathon/internal/rewards"
	"github.com/adityab24840/SwachItHackathon/internal/stats"
	"github.com/adityab24840/SwachItHackathon/internal/synth"
)

const sessionCookie = "session"

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "Missing username or password", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUser(credentials.Username)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{userID: user.ID, username: user.Username}
	s.mu.Unlock()

	s.store.UpdateStatus(user.ID, "active")

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400, // 24 hours
	})

	s.log.Infow("user logged in", "username", user.Username)
	s.broadcastRankingUpdate()

	writeJSON(w, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		sess, ok := s.sessions[cookie.Value]
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
		if ok {
			s.store.UpdateStatus(sess.userID, "inactive")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	writeJSON(w, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := s.store.GetUser(sess.username)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, user)
}

// handleDashboard regenerates the overview from scratch on every request:
// identity-keyed daily series, category split, cleanliness score, and the
// full ward ranking.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ward := s.wardFrom(r)
	now := time.Now()

	userKey := sess.username + ":" + ward
	userRecords := synth.DailySeries(userKey, s.cfg.WindowDays, now)
	wardRecords := synth.DailySeries(ward, s.cfg.WindowDays, now)

	userSummary := stats.Summarize(userRecords, synth.NewRand("trend:"+userKey))
	wardSummary := stats.Summarize(wardRecords, synth.NewRand("trend:"+ward))
	byType := stats.ByTypeEntries(synth.TypeSeries(userKey, userRecords))

	ranking := rank.Zones(rank.Wards())

	writeJSON(w, map[string]interface{}{
		"ward":         ward,
		"user_summary": userSummary,
		"ward_summary": wardSummary,
		"by_type":      byType,
		"cleanliness":  synth.CleanlinessScore(userKey),
		"ranking":      ranking,
		"your_ward":    rank.Find(ranking, ward),
		"map":          synth.WardMapPoints("city", rank.Wards()),
	})
}

// handleMetrics serves the detailed analytics view: the daily series, the
// per-category trend entries, the weekday profile, the recycling breakdown,
// and the persisted city-level samples.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ward := s.wardFrom(r)
	key := sess.username + ":" + ward
	records := synth.DailySeries(key, s.cfg.WindowDays, time.Now())

	cityMetrics, err := s.store.RecentMetrics(7)
	if err != nil {
		s.log.Errorw("city metrics lookup failed", "error", err)
	}

	writeJSON(w, map[string]interface{}{
		"ward":            ward,
		"series":          records,
		"summary":         stats.Summarize(records, synth.NewRand("trend:"+key)),
		"type_series":     synth.TypeSeries(key, records),
		"weekday_profile": synth.WeekdayProfile(key),
		"recycling":       synth.RecyclingBreakdown(ward),
		"city_metrics":    cityMetrics,
	})
}

func (s *Server) handleWards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"ranking": rank.Zones(rank.Wards()),
	})
}

func (s *Server) handleRewards(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile := rewards.Compute(sess.username)

	writeJSON(w, map[string]interface{}{
		"profile":         profile,
		"verified_points": s.store.Points(sess.userID),
		"available_discounts": []map[string]string{
			{"name": "Local Grocery Store", "discount": "10% off"},
			{"name": "Community Center", "discount": "Free entry"},
			{"name": "Recycling Workshop", "discount": "50% off"},
		},
	})
}

// handleCalendar serves the disposal-history calendar, optionally filtered
// to a month/year for the monthly statistics block.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	month := now.Month()
	year := now.Year()
	if mStr := r.URL.Query().Get("month"); mStr != "" {
		if m, err := strconv.Atoi(mStr); err == nil && m >= 1 && m <= 12 {
			month = time.Month(m)
		}
	}
	if yStr := r.URL.Query().Get("year"); yStr != "" {
		if y, err := strconv.Atoi(yStr); err == nil {
			year = y
		}
	}

	history := synth.DisposalHistory(sess.username, s.cfg.WindowDays, now)

	writeJSON(w, map[string]interface{}{
		"history": history,
		"month":   month.String(),
		"year":    year,
		"stats":   stats.MonthStats(history, month, year),
	})
}

func (s *Server) handleGetComplaints(w http.ResponseWriter, r *http.Request) {
	ward := s.wardFrom(r)
	writeJSON(w, map[string]interface{}{
		"ward":       ward,
		"complaints": synth.Complaints(ward, time.Now()),
	})
}

func (s *Server) handleReportComplaint(w http.ResponseWriter, r *http.Request) {
	var report struct {
		Type        string `json:"type"`
		Location    string `json:"location"`
		Ward        string `json:"ward"`
		Description string `json:"description"`
		Contact     string `json:"contact"`
		Priority    string `json:"priority"`
	}

	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if report.Location == "" || report.Description == "" {
		http.Error(w, "Location and description are required", http.StatusBadRequest)
		return
	}

	trackingID := fmt.Sprintf("BBMP-%s", uuid.NewString()[:8])
	s.log.Infow("complaint reported",
		"tracking_id", trackingID, "ward", report.Ward, "type", report.Type)

	s.broadcastUpdate("complaint-reported", map[string]interface{}{
		"tracking_id": trackingID,
		"ward":        report.Ward,
		"type":        report.Type,
	})

	writeJSON(w, map[string]interface{}{
		"success":     true,
		"tracking_id": trackingID,
		"message":     "Complaint registered successfully! A BBMP official will respond within 24-48 hours.",
	})
}

// Helper functions

func (s *Server) sessionFrom(r *http.Request) (session, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return session{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[cookie.Value]
	return sess, ok
}

func (s *Server) wardFrom(r *http.Request) string {
	if ward := r.URL.Query().Get("ward"); ward != "" {
		return ward
	}
	return s.cfg.DefaultWard
}

func (s *Server) broadcastRankingUpdate() {
	s.broadcastUpdate("ranking-update", map[string]interface{}{
		"ranking": rank.Zones(rank.Wards()),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
