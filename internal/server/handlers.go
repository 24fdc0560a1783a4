package server

// handlers.go — request handlers. Every response body is JSON except the
// report downloads (text, CSV and PDF).

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/export"
	"resilience/internal/feedback"
	"resilience/internal/model"
	"resilience/internal/report"
	"resilience/internal/session"
)

// ---------------------------------------------------------------------------
// Response bodies
// ---------------------------------------------------------------------------

type errorBody struct {
	Error string `json:"error"`
}

// resultView is the full result screen: the raw result plus everything the
// collector shows around it.
type resultView struct {
	Result          model.Result         `json:"result"`
	Summary         assess.Summary       `json:"summary"`
	Recommendations []model.Ranked       `json:"prioritized_recommendations"`
	Guidance        []feedback.Advice    `json:"guidance"`
	Answers         []answers.ReviewItem `json:"answers"`
}

type feedbackView struct {
	Question string             `json:"question"`
	Answer   string             `json:"answer"`
	Feedback feedback.Record    `json:"feedback"`
	Severity feedback.Severity  `json:"severity"`
	Hint     feedback.HintLevel `json:"hint,omitempty"`
	HintText string             `json:"hint_text,omitempty"`
}

type previewView struct {
	Phase  answers.Phase      `json:"phase"`
	Domain model.DomainResult `json:"domain"`
	Max    int                `json:"max"`
	Band   assess.Band        `json:"band"`
}

func newResultView(res model.Result, a answers.Set) resultView {
	g := feedback.Guidance(a)
	if g == nil {
		g = []feedback.Advice{}
	}
	return resultView{
		Result:          res,
		Summary:         assess.Summarize(res),
		Recommendations: assess.Prioritize(res.Recommendations, assess.ViewPriority),
		Guidance:        g,
		Answers:         answers.Review(a),
	}
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.As(err, new(*http.MaxBytesError)):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, answers.ErrInvalid), errors.Is(err, session.ErrWrongPhase):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrFinished),
		errors.Is(err, session.ErrAtStart),
		errors.Is(err, session.ErrNotFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "error", err)
	}
	render.Status(r, code)
	render.JSON(w, r, errorBody{Error: err.Error()})
}

// maxAnswersBody caps answer payloads; a full answer set is well under 4KiB.
const maxAnswersBody = 1 << 20

// decodeAnswers reads a JSON answer map from the request body. Any decode
// failure other than an oversized body is reported as invalid input.
func decodeAnswers(w http.ResponseWriter, r *http.Request) (answers.Set, error) {
	var a answers.Set
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, maxAnswersBody), &a); err != nil {
		if errors.As(err, new(*http.MaxBytesError)) {
			return answers.Set{}, fmt.Errorf("answers body: %w", err)
		}
		if errors.Is(err, io.EOF) {
			return answers.Set{}, fmt.Errorf("%w: empty body", answers.ErrInvalid)
		}
		if !errors.Is(err, answers.ErrInvalid) {
			err = fmt.Errorf("%w: %v", answers.ErrInvalid, err)
		}
		return answers.Set{}, err
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Stateless endpoints
// ---------------------------------------------------------------------------

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// questions lists the catalog, optionally filtered by ?phase=<slug>.
func (s *Server) questions(w http.ResponseWriter, r *http.Request) {
	qs := answers.Catalog()
	if raw := r.URL.Query().Get("phase"); raw != "" {
		var p answers.Phase
		if err := p.UnmarshalText([]byte(raw)); err != nil {
			s.fail(w, r, fmt.Errorf("%w: %v", answers.ErrInvalid, err))
			return
		}
		filtered := []answers.Question{}
		for _, q := range qs {
			if q.Phase == p {
				filtered = append(filtered, q)
			}
		}
		qs = filtered
	}
	render.JSON(w, r, qs)
}

func (s *Server) feedback(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("question")
	answer := r.URL.Query().Get("answer")
	q, ok := answers.Lookup(question)
	if !ok {
		s.fail(w, r, fmt.Errorf("%w: unknown question %q", answers.ErrInvalid, question))
		return
	}
	rec := feedback.Lookup(question, answer)
	level, hint := feedback.Hint(q, answer)
	render.JSON(w, r, feedbackView{
		Question: question,
		Answer:   answer,
		Feedback: rec,
		Severity: rec.Status.Severity(),
		Hint:     level,
		HintText: hint,
	})
}

// evaluate scores a complete answer set in one call.
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	a, err := decodeAnswers(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res := assess.Assess(a)
	s.metrics.ObserveAssessment(sourceEvaluate, res)
	render.JSON(w, r, newResultView(res, a))
}

// ---------------------------------------------------------------------------
// Session workflow
// ---------------------------------------------------------------------------

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Create()
	s.log.Info("session created", "id", snap.ID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, snap)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, snap)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(chi.URLParam(r, "id")) {
		s.fail(w, r, session.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// putAnswers records answers for the session's current phase.
func (s *Server) putAnswers(w http.ResponseWriter, r *http.Request) {
	a, err := decodeAnswers(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	snap, err := s.store.Update(chi.URLParam(r, "id"), func(sess *session.Session) error {
		return sess.Record(a)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, snap)
}

// next advances the session. Reaching the results phase counts one
// assessment; later reads of the result or the reports do not.
func (s *Server) next(w http.ResponseWriter, r *http.Request) {
	var (
		res      model.Result
		finished bool
	)
	snap, err := s.store.Update(chi.URLParam(r, "id"), func(sess *session.Session) error {
		if err := sess.Next(); err != nil {
			return err
		}
		if sess.Phase() != answers.PhaseResults {
			return nil
		}
		var err error
		res, err = sess.Result()
		finished = err == nil
		return err
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if finished {
		s.metrics.ObserveAssessment(sourceSession, res)
	}
	render.JSON(w, r, snap)
}

// step wraps a phase transition as a handler.
func (s *Server) step(fn func(*session.Session) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.store.Update(chi.URLParam(r, "id"), fn)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		render.JSON(w, r, snap)
	}
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	var (
		dr model.DomainResult
		ok bool
	)
	snap, err := s.store.Update(chi.URLParam(r, "id"), func(sess *session.Session) error {
		dr, ok = sess.Preview()
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !ok {
		s.fail(w, r, session.ErrFinished)
		return
	}
	render.JSON(w, r, previewView{
		Phase:  snap.Phase,
		Domain: dr,
		Max:    model.MaxDomainScore,
		Band:   assess.PreviewBand(dr.Score),
	})
}

// sessionResult assesses a finished session.
func (s *Server) sessionResult(r *http.Request) (model.Result, answers.Set, error) {
	var res model.Result
	snap, err := s.store.Update(chi.URLParam(r, "id"), func(sess *session.Session) error {
		var err error
		res, err = sess.Result()
		return err
	})
	if err != nil {
		return model.Result{}, answers.Set{}, err
	}
	return res, snap.Answers, nil
}

func (s *Server) result(w http.ResponseWriter, r *http.Request) {
	res, a, err := s.sessionResult(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, newResultView(res, a))
}

func (s *Server) reportText(w http.ResponseWriter, r *http.Request) {
	res, a, err := s.sessionResult(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	meta := report.MetaFrom(a, s.now())
	w.Header().Set("Content-Disposition", attachment(meta, ".txt"))
	render.PlainText(w, r, report.Text(res, meta))
}

func (s *Server) reportCSV(w http.ResponseWriter, r *http.Request) {
	res, a, err := s.sessionResult(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	meta := report.MetaFrom(a, s.now())
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, res, meta); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(meta, ".csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) reportPDF(w http.ResponseWriter, r *http.Request) {
	res, a, err := s.sessionResult(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	meta := report.MetaFrom(a, s.now())
	data, err := report.PDF(res, meta)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment(meta, ".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func attachment(meta report.Meta, ext string) string {
	return fmt.Sprintf("attachment; filename=%q", export.Stem(meta)+ext)
}
