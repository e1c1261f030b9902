package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/NavindyaD/cv-chat/internal/parser"
	"github.com/NavindyaD/cv-chat/internal/qa"
	"github.com/NavindyaD/cv-chat/internal/session"
)

// handleLoadCV loads a CV into a session, either from an uploaded file
// (multipart form) or from a server-side path (JSON body). The loaded
// document replaces any previous one in the session wholesale.
func (s *Server) handleLoadCV(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	var filename, text, sessionID string
	var err error

	if strings.HasPrefix(contentType, "multipart/form-data") {
		filename, text, sessionID, err = s.loadFromUpload(w, r)
	} else {
		filename, text, sessionID, err = s.loadFromPath(w, r)
	}
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, parser.ErrUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		jsonError(w, err.Error(), status)
		return
	}

	sess := s.sessions.Put(sessionID, filename, text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id":     sess.ID,
		"filename":       sess.Filename,
		"content_length": sess.ContentLen,
		"message":        fmt.Sprintf("CV loaded successfully from %s. Content length: %d characters.", filename, sess.ContentLen),
	})
}

func (s *Server) loadFromUpload(w http.ResponseWriter, r *http.Request) (filename, text, sessionID string, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return "", "", "", fmt.Errorf("invalid multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", "", "", fmt.Errorf("file is required: %w", err)
	}
	defer file.Close()

	filename = sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		return "", "", "", fmt.Errorf("%w: %s", parser.ErrUnsupportedFormat, filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", "", "", fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		return "", "", "", err
	}
	text, err = p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return "", "", "", fmt.Errorf("extract %s: %w", filename, err)
	}

	return filename, text, r.FormValue("session_id"), nil
}

func (s *Server) loadFromPath(w http.ResponseWriter, r *http.Request) (filename, text, sessionID string, err error) {
	// A path payload is tiny; cap the body like the upload path does.
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)

	var req struct {
		Path      string `json:"path"`
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", "", fmt.Errorf("invalid request body: %w", err)
	}
	if req.Path == "" {
		return "", "", "", fmt.Errorf("path is required")
	}

	text, err = parser.ExtractFile(req.Path)
	if err != nil {
		return "", "", "", err
	}
	return filepath.Base(req.Path), text, req.SessionID, nil
}

// handleChat answers a question against a session's CV. The default
// session is lazily filled from CV_FILE_PATH so a single-user setup
// works without an explicit load call.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question  string `json:"question"`
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		jsonError(w, "question is required", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = session.DefaultID
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok && req.SessionID == session.DefaultID && s.cfg.CVFilePath != "" {
		sess, ok = s.loadDefaultSession()
	}
	if !ok {
		jsonError(w, "no CV loaded for this session; load one via /api/cv/load", http.StatusConflict)
		return
	}

	start := time.Now()
	answer, intent := qa.Answer(sess.Document(), req.Question)
	s.stats.Record(intent, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"answer":     answer,
		"intent":     intent,
		"session_id": sess.ID,
	})
}

func (s *Server) loadDefaultSession() (session.Session, bool) {
	text, err := parser.ExtractFile(s.cfg.CVFilePath)
	if err != nil {
		s.log.Error("default CV load failed", "path", s.cfg.CVFilePath, "error", err)
		return session.Session{}, false
	}
	s.log.Info("default CV loaded", "path", s.cfg.CVFilePath, "content_length", len(text))
	return s.sessions.Put(session.DefaultID, filepath.Base(s.cfg.CVFilePath), text), true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess)
}

func (s *Server) handleQueryStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.stats.Snapshot())
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
