// Package stub is an in-memory implementation of the maintenance API, used
// to run the dashboard without the real backend and to drive integration
// tests. It enforces the same rules the real server does: usage_percent is
// computed server-side, usage_limit_hours must be >= 1, deleting a plane
// deletes its parts, and registration always assigns role "user".
package stub

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
	passwordHash []byte
}

type plane struct {
	ID         int    `json:"id"`
	TailNumber string `json:"tail_number"`
	Model      string `json:"model"`
	CreatedAt  string `json:"created_at"`
}

type part struct {
	ID              int     `json:"id"`
	PlaneID         int     `json:"plane_id"`
	PartName        string  `json:"part_name"`
	SerialNumber    string  `json:"serial_number"`
	Category        string  `json:"category"`
	UsageHours      float64 `json:"usage_hours"`
	UsageLimitHours float64 `json:"usage_limit_hours"`
	UsagePercent    float64 `json:"usage_percent"`
	InstalledAt     string  `json:"installed_at"`
}

type Server struct {
	mu       sync.Mutex
	users    map[int]*user
	planes   map[int]*plane
	parts    map[int]*part
	sessions map[string]int // token -> user id
	nextID   int

	router *mux.Router
}

func New() *Server {
	s := &Server{
		users:    make(map[int]*user),
		planes:   make(map[int]*plane),
		parts:    make(map[int]*part),
		sessions: make(map[string]int),
		nextID:   1,
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/users/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/users/logout", s.handleLogout).Methods(http.MethodPost)

	auth := api.PathPrefix("/").Subrouter()
	auth.Use(s.requireSession)
	auth.HandleFunc("/users", s.handleCurrentUsers).Methods(http.MethodGet)
	auth.HandleFunc("/users/{id:[0-9]+}", s.handleGetUser).Methods(http.MethodGet)

	auth.HandleFunc("/planes", s.handleListPlanes).Methods(http.MethodGet)
	auth.HandleFunc("/planes", s.handleCreatePlane).Methods(http.MethodPost)
	auth.HandleFunc("/planes/parts", s.handleAllParts).Methods(http.MethodGet)
	auth.HandleFunc("/planes/parts/{id:[0-9]+}", s.handleGetPart).Methods(http.MethodGet)
	auth.HandleFunc("/planes/parts/{id:[0-9]+}", s.handleUpdatePart).Methods(http.MethodPut)
	auth.HandleFunc("/planes/parts/{id:[0-9]+}", s.handleDeletePart).Methods(http.MethodDelete)
	auth.HandleFunc("/planes/parts/{id:[0-9]+}/usage", s.handleUpdateUsage).Methods(http.MethodPut)
	auth.HandleFunc("/planes/maintenance/alerts", s.handleAlerts).Methods(http.MethodGet)
	auth.HandleFunc("/planes/tail/{tail}", s.handlePlaneByTail).Methods(http.MethodGet)
	auth.HandleFunc("/planes/{id:[0-9]+}", s.handleGetPlane).Methods(http.MethodGet)
	auth.HandleFunc("/planes/{id:[0-9]+}", s.handleUpdatePlane).Methods(http.MethodPut)
	auth.HandleFunc("/planes/{id:[0-9]+}", s.handleDeletePlane).Methods(http.MethodDelete)
	auth.HandleFunc("/planes/{id:[0-9]+}/with-parts", s.handlePlaneWithParts).Methods(http.MethodGet)
	auth.HandleFunc("/planes/{id:[0-9]+}/parts", s.handlePartsByPlane).Methods(http.MethodGet)
	auth.HandleFunc("/planes/{id:[0-9]+}/parts", s.handleAddPart).Methods(http.MethodPost)

	return r
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.sessionUser(r) == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionUser resolves the session from the bearer header or the
// auth_token cookie, in that order.
func (s *Server) sessionUser(r *http.Request) *user {
	token := ""
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		token = strings.TrimPrefix(h, "Bearer ")
	} else if ck, err := r.Cookie("auth_token"); err == nil {
		token = ck.Value
	}
	if token == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[token]
	if !ok {
		return nil
	}
	return s.users[id]
}

// --- users ---

type credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Name == req.Name {
			writeError(w, http.StatusConflict, "name already taken")
			return
		}
	}
	u := &user{
		ID:           s.nextID,
		Name:         req.Name,
		Role:         "user", // role is never taken from the client
		CreatedAt:    now(),
		passwordHash: hash,
	}
	s.nextID++
	s.users[u.ID] = u
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	var found *user
	for _, u := range s.users {
		if u.Name == req.Name {
			found = u
			break
		}
	}
	s.mu.Unlock()

	if found == nil || bcrypt.CompareHashAndPassword(found.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid name or password")
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = found.ID
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]*user{"user": found})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		token = strings.TrimPrefix(h, "Bearer ")
	} else if ck, err := r.Cookie("auth_token"); err == nil {
		token = ck.Value
	}
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:   "auth_token",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentUsers(w http.ResponseWriter, r *http.Request) {
	u := s.sessionUser(r)
	writeJSON(w, http.StatusOK, []*user{u})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	u, ok := s.users[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// --- planes ---

type planeRequest struct {
	TailNumber *string `json:"tail_number"`
	Model      *string `json:"model"`
}

func (s *Server) handleCreatePlane(w http.ResponseWriter, r *http.Request) {
	var req planeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TailNumber == nil || strings.TrimSpace(*req.TailNumber) == "" ||
		req.Model == nil || strings.TrimSpace(*req.Model) == "" {
		writeError(w, http.StatusBadRequest, "tail_number and model are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := &plane{
		ID:         s.nextID,
		TailNumber: strings.TrimSpace(*req.TailNumber),
		Model:      strings.TrimSpace(*req.Model),
		CreatedAt:  now(),
	}
	s.nextID++
	s.planes[p.ID] = p
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListPlanes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]*plane, 0, len(s.planes))
	for _, p := range s.planes {
		out = append(out, p)
	}
	s.mu.Unlock()
	sortByID(out, func(p *plane) int { return p.ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPlane(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	p, ok := s.planes[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "plane not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePlaneByTail(w http.ResponseWriter, r *http.Request) {
	tail := mux.Vars(r)["tail"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.planes {
		if p.TailNumber == tail {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "plane not found")
}

func (s *Server) handleUpdatePlane(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req planeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.planes[id]
	if !ok {
		writeError(w, http.StatusNotFound, "plane not found")
		return
	}
	if req.TailNumber != nil {
		p.TailNumber = strings.TrimSpace(*req.TailNumber)
	}
	if req.Model != nil {
		p.Model = strings.TrimSpace(*req.Model)
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePlane(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.planes[id]; !ok {
		writeError(w, http.StatusNotFound, "plane not found")
		return
	}
	delete(s.planes, id)
	// Cascade to the plane's parts
	for pid, pt := range s.parts {
		if pt.PlaneID == id {
			delete(s.parts, pid)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePlaneWithParts(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.planes[id]
	if !ok {
		writeError(w, http.StatusNotFound, "plane not found")
		return
	}
	parts := s.partsOf(id)
	writeJSON(w, http.StatusOK, map[string]any{"plane": p, "parts": parts})
}

// --- parts ---

type partRequest struct {
	PartName        *string  `json:"part_name"`
	SerialNumber    *string  `json:"serial_number"`
	Category        *string  `json:"category"`
	UsageHours      *float64 `json:"usage_hours"`
	UsageLimitHours *float64 `json:"usage_limit_hours"`
}

func (s *Server) handleAddPart(w http.ResponseWriter, r *http.Request) {
	planeID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PartName == nil || strings.TrimSpace(*req.PartName) == "" ||
		req.SerialNumber == nil || strings.TrimSpace(*req.SerialNumber) == "" ||
		req.Category == nil || strings.TrimSpace(*req.Category) == "" {
		writeError(w, http.StatusBadRequest, "part_name, serial_number and category are required")
		return
	}
	if req.UsageLimitHours == nil || *req.UsageLimitHours < 1 {
		writeError(w, http.StatusBadRequest, "usage_limit_hours must be at least 1")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.planes[planeID]; !ok {
		writeError(w, http.StatusNotFound, "plane not found")
		return
	}

	pt := &part{
		ID:              s.nextID,
		PlaneID:         planeID,
		PartName:        strings.TrimSpace(*req.PartName),
		SerialNumber:    strings.TrimSpace(*req.SerialNumber),
		Category:        strings.TrimSpace(*req.Category),
		UsageLimitHours: *req.UsageLimitHours,
		InstalledAt:     now(),
	}
	if req.UsageHours != nil {
		pt.UsageHours = *req.UsageHours
	}
	pt.UsagePercent = pt.UsageHours / pt.UsageLimitHours * 100
	s.nextID++
	s.parts[pt.ID] = pt
	writeJSON(w, http.StatusCreated, pt)
}

func (s *Server) handlePartsByPlane(w http.ResponseWriter, r *http.Request) {
	planeID, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.planes[planeID]; !ok {
		writeError(w, http.StatusNotFound, "plane not found")
		return
	}
	writeJSON(w, http.StatusOK, s.partsOf(planeID))
}

func (s *Server) handleAllParts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]*part, 0, len(s.parts))
	for _, pt := range s.parts {
		out = append(out, pt)
	}
	s.mu.Unlock()
	sortByID(out, func(p *part) int { return p.ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPart(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	pt, ok := s.parts[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	writeJSON(w, http.StatusOK, pt)
}

func (s *Server) handleUpdatePart(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UsageLimitHours != nil && *req.UsageLimitHours < 1 {
		writeError(w, http.StatusBadRequest, "usage_limit_hours must be at least 1")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pt, ok := s.parts[id]
	if !ok {
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	if req.PartName != nil {
		pt.PartName = strings.TrimSpace(*req.PartName)
	}
	if req.SerialNumber != nil {
		pt.SerialNumber = strings.TrimSpace(*req.SerialNumber)
	}
	if req.Category != nil {
		pt.Category = strings.TrimSpace(*req.Category)
	}
	if req.UsageLimitHours != nil {
		pt.UsageLimitHours = *req.UsageLimitHours
	}
	if req.UsageHours != nil {
		pt.UsageHours = *req.UsageHours
	}
	pt.UsagePercent = pt.UsageHours / pt.UsageLimitHours * 100
	writeJSON(w, http.StatusOK, pt)
}

func (s *Server) handleUpdateUsage(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		UsageHours *float64 `json:"usage_hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UsageHours == nil {
		writeError(w, http.StatusBadRequest, "usage_hours is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pt, ok := s.parts[id]
	if !ok {
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	pt.UsageHours = *req.UsageHours
	pt.UsagePercent = pt.UsageHours / pt.UsageLimitHours * 100
	writeJSON(w, http.StatusOK, pt)
}

func (s *Server) handleDeletePart(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[id]; !ok {
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	delete(s.parts, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	threshold := 80.0
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid threshold")
			return
		}
		threshold = v
	}

	s.mu.Lock()
	out := make([]*part, 0)
	for _, pt := range s.parts {
		if pt.UsagePercent >= threshold {
			out = append(out, pt)
		}
	}
	s.mu.Unlock()
	sortByID(out, func(p *part) int { return p.ID })
	writeJSON(w, http.StatusOK, out)
}

// --- helpers ---

// partsOf must be called with the lock held.
func (s *Server) partsOf(planeID int) []*part {
	out := make([]*part, 0)
	for _, pt := range s.parts {
		if pt.PlaneID == planeID {
			out = append(out, pt)
		}
	}
	sortByID(out, func(p *part) int { return p.ID })
	return out
}

func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
