package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/agent/tool"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/usecase"
	"github.com/nexus-lab/frontdesk/pkg/utils/errutil"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "invalid JSON body")
	}
	return nil
}

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Query    string `json:"query"`
		TenantID string `json:"tenant_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("query is required"), http.StatusBadRequest)
		return
	}

	// Tool progress messages have no channel back to the HTTP client, so they
	// go to the request log.
	ctx = tool.WithUpdate(ctx, func(ctx context.Context, message string) {
		logging.From(ctx).Info("tool progress", "message", message)
	})

	answer, err := s.uc.Respond(ctx, req.Query, types.TenantID(req.TenantID))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID := types.TenantID(r.URL.Query().Get("tenant_id"))
	profile, err := s.knowledge.GetProfile(ctx, tenantID)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var profile model.BusinessProfile
	if err := decodeJSON(r, &profile); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	tenantID := types.TenantID(r.URL.Query().Get("tenant_id"))
	if err := s.knowledge.SaveProfile(ctx, &profile, tenantID); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sources, err := s.knowledge.ListSources(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sources": sources})
}

func (s *Server) handleAddSource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Kind     string `json:"kind"`
		Title    string `json:"title"`
		Content  string `json:"content"`
		FileName string `json:"file_name"`
		TenantID string `json:"tenant_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	kind, err := types.ParseSourceKind(req.Kind)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	src, err := s.knowledge.AddSource(ctx, model.NewSourceInput{
		Kind:     kind,
		Title:    req.Title,
		Content:  req.Content,
		FileName: req.FileName,
		TenantID: types.TenantID(req.TenantID),
	})
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, src)
}

func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := types.SourceID(chi.URLParam(r, "sourceID"))
	if err := s.knowledge.DeleteSource(ctx, id); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleDraftEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Content string `json:"content"`
		Tone    string `json:"tone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	draft, err := s.uc.DraftEmailReply(ctx, req.Content, req.Tone)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"draft": draft})
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	msg, err := s.uc.SendOutboundEmail(ctx, req.To, req.Subject, req.Content)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleSummarizeNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	summary, err := s.uc.SummarizeNotes(ctx, req.Notes)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleRegisterTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		CompanyName string `json:"company_name"`
		Plan        string `json:"plan"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	tenant, err := s.uc.RegisterTenant(ctx, usecase.RegisterTenantInput{
		Name:        req.Name,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Plan:        req.Plan,
	})
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

func (s *Server) handleImportCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := s.importer.ImportCustomers(ctx, r.Body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
}
