package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/game"
	"github.com/oghanim/triviarena/internal/service"
)

// memStore is an in-memory storage.Repository for handler tests. Reads
// hand out deep copies so a failed command never leaks partial
// mutations into stored state, mirroring how the real repository
// re-fetches rows per command.
type memStore struct {
	sessions map[uint]*game.Session
	nextID   uint
}

func newMemStore() *memStore {
	return &memStore{sessions: map[uint]*game.Session{}}
}

func cloneSession(s *game.Session) *game.Session {
	out := *s
	out.AbilityCatalog = append([]game.AbilityDef(nil), s.AbilityCatalog...)
	out.Participants = append([]game.Participant(nil), s.Participants...)
	out.Questions = append([]game.Question(nil), s.Questions...)
	out.Cells = append([]game.Cell(nil), s.Cells...)
	if s.OpenRow != nil {
		r := *s.OpenRow
		out.OpenRow = &r
	}
	if s.OpenCol != nil {
		c := *s.OpenCol
		out.OpenCol = &c
	}
	return &out
}

func (m *memStore) CreateSession(s *game.Session) error {
	m.nextID++
	s.ID = m.nextID
	m.assignIDs(s)
	m.sessions[s.ID] = cloneSession(s)
	return nil
}

func (m *memStore) assignIDs(s *game.Session) {
	for i := range s.Participants {
		if s.Participants[i].ID == 0 {
			m.nextID++
			s.Participants[i].ID = m.nextID
		}
	}
	for i := range s.Questions {
		if s.Questions[i].ID == 0 {
			m.nextID++
			s.Questions[i].ID = m.nextID
		}
	}
	for i := range s.Cells {
		if s.Cells[i].ID == 0 {
			m.nextID++
			s.Cells[i].ID = m.nextID
		}
	}
}

func (m *memStore) GetSessionByID(id uint) (*game.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (m *memStore) FindSessionByJoinCode(code string) (*game.Session, error) {
	for _, s := range m.sessions {
		if s.JoinCode == code {
			return cloneSession(s), nil
		}
	}
	return nil, service.ErrSessionNotFound
}

func (m *memStore) UpdateSession(s *game.Session) error {
	m.assignIDs(s)
	m.sessions[s.ID] = cloneSession(s)
	return nil
}

func (m *memStore) RemoveParticipantByUUID(sessionID uint, participantUUID string) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return service.ErrSessionNotFound
	}
	kept := s.Participants[:0]
	for _, p := range s.Participants {
		if p.ParticipantUUID != participantUUID {
			kept = append(kept, p)
		}
	}
	s.Participants = kept
	return nil
}

func (m *memStore) ReplaceAbilityCatalog(sessionID uint, catalog []game.AbilityDef) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return service.ErrSessionNotFound
	}
	s.AbilityCatalog = catalog
	return nil
}

func (m *memStore) ReplaceCells(sessionID uint, cells []game.Cell) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return service.ErrSessionNotFound
	}
	for i := range cells {
		if cells[i].ID == 0 {
			m.nextID++
			cells[i].ID = m.nextID
		}
	}
	s.Cells = cells
	return nil
}

func newTestRouter() (*gin.Engine, *memStore) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	h := NewSessionHandler(store, service.SessionDefaults{
		BoardSize:       3,
		MaxParticipants: 4,
		UseAbilities:    true,
	})
	router := gin.New()
	RegisterRoutes(router, h)
	return router, store
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndJoinSession(t *testing.T) {
	router, _ := newTestRouter()

	w := do(t, router, "POST", "/api/sessions", `{"name": "Host"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		JoinCode        string `json:"join_code"`
		ParticipantUUID string `json:"participant_uuid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create body: %v", err)
	}
	if created.JoinCode == "" || created.ParticipantUUID == "" {
		t.Fatalf("create response incomplete: %s", w.Body.String())
	}

	// Codes are normalized before lookup, so lowercase input joins fine.
	payload := fmt.Sprintf(`{"join_code": %q, "name": "alice"}`, strings.ToLower(created.JoinCode))
	w = do(t, router, "POST", "/api/sessions/join", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("join status = %d, body %s", w.Code, w.Body.String())
	}

	w = do(t, router, "GET", "/api/sessions/"+created.JoinCode, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var got struct {
		Session struct {
			Participants []game.Participant `json:"participants"`
		} `json:"session"`
		CountdownRemaining *int `json:"countdown_remaining"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad get body: %v", err)
	}
	if len(got.Session.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(got.Session.Participants))
	}
}

func TestJoinSession_BadCode(t *testing.T) {
	router, _ := newTestRouter()

	w := do(t, router, "POST", "/api/sessions/join", `{"join_code": "no", "name": "alice"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed code status = %d", w.Code)
	}
	w = do(t, router, "POST", "/api/sessions/join", `{"join_code": "ZZZZZZ", "name": "alice"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown code status = %d", w.Code)
	}
}

func TestServiceErrorMapping(t *testing.T) {
	router, store := newTestRouter()
	do(t, router, "POST", "/api/sessions", `{"name": "Host"}`)

	var s *game.Session
	for _, stored := range store.sessions {
		s = stored
	}
	gmUUID := s.Participants[0].ParticipantUUID
	code := s.JoinCode

	// Phase violation maps to 409.
	w := do(t, router, "POST", "/api/sessions/"+code+"/start-match", fmt.Sprintf(`{"participant_uuid": %q}`, gmUUID))
	if w.Code != http.StatusConflict {
		t.Fatalf("phase violation status = %d, body %s", w.Code, w.Body.String())
	}

	// Role violation maps to 403.
	w = do(t, router, "POST", "/api/sessions/"+code+"/kick", `{"participant_uuid": "nobody", "target_uuid": "x"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("role violation status = %d, body %s", w.Code, w.Body.String())
	}

	// Validation failure maps to 400.
	w = do(t, router, "POST", "/api/sessions/"+code+"/rename", fmt.Sprintf(`{"participant_uuid": %q, "name": "  "}`, gmUUID))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("validation failure status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestFailedCommandLeavesStoredStateUntouched(t *testing.T) {
	router, store := newTestRouter()
	do(t, router, "POST", "/api/sessions", `{"name": "Host"}`)

	var s *game.Session
	for _, stored := range store.sessions {
		s = stored
	}
	gmUUID := s.Participants[0].ParticipantUUID
	code := s.JoinCode

	w := do(t, router, "POST", "/api/sessions/"+code+"/rename", fmt.Sprintf(`{"participant_uuid": %q, "name": "  "}`, gmUUID))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank rename status = %d", w.Code)
	}
	if store.sessions[s.ID].Participants[0].Name != "Host" {
		t.Fatalf("failed rename leaked into stored state: %q", store.sessions[s.ID].Participants[0].Name)
	}
}

func TestExportEndpoint(t *testing.T) {
	router, store := newTestRouter()
	do(t, router, "POST", "/api/sessions", `{"name": "Host"}`)

	var s *game.Session
	for _, stored := range store.sessions {
		s = stored
	}
	s.Questions = []game.Question{
		{QuestionUUID: "q-1", Category: "History", Points: 100, Prompt: "p", Answer: "a", Status: game.StatusApproved},
		{QuestionUUID: "q-2", Category: "History", Points: 200, Prompt: "p2", Answer: "a2", Status: game.StatusPending},
	}

	w := do(t, router, "GET", "/api/sessions/"+s.JoinCode+"/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("missing attachment disposition: %q", cd)
	}
	var entries []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("bad export body: %v", err)
	}
	// Only the approved question is exported.
	if len(entries) != 1 || entries[0]["category"] != "History" {
		t.Fatalf("unexpected export entries: %v", entries)
	}

	w = do(t, router, "GET", "/api/sessions/"+s.JoinCode+"/export?format=text", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Category: History") {
		t.Fatalf("text export wrong: %d %s", w.Code, w.Body.String())
	}
	w = do(t, router, "GET", "/api/sessions/"+s.JoinCode+"/export?format=xml", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unsupported format status = %d", w.Code)
	}
}

func TestVersionEndpoint(t *testing.T) {
	router, _ := newTestRouter()
	w := do(t, router, "GET", "/version", "")
	if w.Code != http.StatusOK {
		t.Fatalf("version status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad version body: %v", err)
	}
	if _, ok := body["version"]; !ok {
		t.Fatalf("version field missing: %v", body)
	}
}
