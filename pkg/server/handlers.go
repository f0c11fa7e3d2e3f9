package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

const maxBodyBytes = 1 << 16

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	markup, err := s.pages.Page(s.page)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", s.pages.ContentType())
	_, _ = w.Write(markup)
}

func (s *Server) handleFormPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	sess, err := s.newSession(valuesFromForm(r.PostForm), true)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	report, err := sess.submit(r.Context(), valuesFromForm(r.PostForm), true)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeReport(w, r, s.pages.Name(), report)
}

type fieldRequest struct {
	Value    string `json:"value"`
	Password string `json:"password,omitempty"`
}

type fieldResponse struct {
	Field   rules.Field      `json:"field"`
	Valid   bool             `json:"valid"`
	Code    rules.Code       `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
	State   form.FieldState  `json:"state"`
	Panel   *form.PanelState `json:"panel,omitempty"`
}

func (s *Server) handleFieldInput(w http.ResponseWriter, r *http.Request) {
	field, err := rules.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		s.fail(w, r, http.StatusNotFound, err)
		return
	}
	var req fieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	sess, err := s.newSession(rules.Values{}, false)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	resp, err := sess.input(r.Context(), field, req.Value, req.Password)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if _, err := s.registry.Get(format); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	var values rules.Values
	if err := decodeJSON(w, r, &values); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	sess, err := s.newSession(rules.Values{}, false)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	report, err := sess.submit(r.Context(), values, format == s.pages.Name())
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeReport(w, r, format, report)
}

func (sess *session) submit(ctx context.Context, values rules.Values, withDocument bool) (render.Report, error) {
	outcome, err := sess.controller.Submit(ctx, values)
	if err != nil {
		return render.Report{}, err
	}
	report := render.Report{
		Outcome:       &outcome,
		Snapshot:      sess.controller.Snapshot(),
		Notifications: sess.notes.Messages(),
	}
	if withDocument {
		doc, err := sess.controller.HTML()
		if err != nil {
			return render.Report{}, err
		}
		report.Document = doc
	}
	return report, nil
}

// input applies an input event. Confirmation checks compare against the
// password carried in the same request.
func (sess *session) input(ctx context.Context, field rules.Field, value, password string) (fieldResponse, error) {
	if field == rules.FieldConfirmPassword && password != "" {
		if _, err := sess.controller.Input(ctx, rules.FieldPassword, password); err != nil {
			return fieldResponse{}, err
		}
	}
	result, err := sess.controller.Input(ctx, field, value)
	if err != nil {
		return fieldResponse{}, err
	}

	snap := sess.controller.Snapshot()
	state, _ := snap.Field(field)
	resp := fieldResponse{
		Field:   field,
		Valid:   result.Valid,
		Code:    result.Code,
		Message: result.Message(),
		State:   state,
	}
	if field == rules.FieldPassword {
		resp.Panel = &snap.Panel
	}
	return resp, nil
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, format string, report render.Report) {
	renderer, err := s.registry.Get(format)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	out, err := renderer.Render(r.Context(), report)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}

	status := http.StatusOK
	if report.Outcome != nil && !report.Outcome.Accepted {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func valuesFromForm(form url.Values) rules.Values {
	var values rules.Values
	for _, field := range rules.Fields() {
		values.Set(field, form.Get(string(field)))
	}
	return values
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("server: empty request body")
		}
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
