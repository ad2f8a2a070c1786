package webform

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/schema"
)

// SubmitFunc receives accepted values. A non-empty redirect sends the
// browser there; otherwise the success view is shown. Returning FieldErrors
// rejects the submission with those messages.
type SubmitFunc func(ctx context.Context, values Values) (redirect string, err error)

// Host serves one form definition.
type Host struct {
	def     *schema.Definition
	fields  []schema.Field
	cfg     Config
	formCfg form.Config
	views   Views
	submit  SubmitFunc
	catalog schema.Catalog
	logger  *slog.Logger
	router  chi.Router
}

// New compiles def and builds its routes.
func New(def *schema.Definition, opts ...Option) (*Host, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}

	h := &Host{
		def:    def,
		cfg:    DefaultConfig(),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	fields, err := def.Compile(h.catalog)
	if err != nil {
		return nil, err
	}
	h.fields = fields
	h.formCfg = def.FormConfig(h.cfg.Form)
	h.views = h.views.withDefaults()
	h.logger = h.logger.With(logger.Component("webform"), logger.Form(h.formID()))

	r := chi.NewRouter()
	r.Get("/", h.handlePage)
	r.Post("/", h.handleSubmit)
	r.Post("/validate", h.handleValidate)
	h.router = r

	return h, nil
}

// ServeHTTP dispatches to the form routes.
func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Host) formID() string {
	if h.def.Name != "" {
		return h.def.Name
	}
	return "form"
}

func (h *Host) handlePage(w http.ResponseWriter, r *http.Request) {
	out, err := h.run(Values{}, false)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	d := h.pageData(out)
	h.renderHTML(w, r, http.StatusOK, h.views.Page(d, h.views.Form(d)))
}

func (h *Host) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !isDataStar(r) {
		http.Error(w, "datastar request expected", http.StatusBadRequest)
		return
	}

	values, err := h.readValues(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := h.run(values, false)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchSignals(liveSignals(out.Fields)); err != nil {
		h.log(r).Error("patch signals", logger.Error(err))
	}
}

func (h *Host) handleSubmit(w http.ResponseWriter, r *http.Request) {
	values, err := h.readValues(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := h.run(values, true)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if out.Accepted {
		redirect, err := h.accept(r.Context(), values)
		var fieldErrs FieldErrors
		switch {
		case errors.As(err, &fieldErrs) && !fieldErrs.IsEmpty():
			h.reject(out, fieldErrs)
		case err != nil:
			h.fail(w, r, err)
			return
		default:
			h.log(r).Debug("submit accepted")
			h.respondAccepted(w, r, out, redirect)
			return
		}
	}

	h.log(r).Debug("submit rejected", logger.FieldKey(attentionID(out)))
	h.respondRejected(w, r, out)
}

func (h *Host) accept(ctx context.Context, values Values) (string, error) {
	if h.submit == nil {
		return "", nil
	}
	return h.submit(ctx, values)
}

func (h *Host) respondAccepted(w http.ResponseWriter, r *http.Request, out *outcome, redirect string) {
	d := h.pageData(out)

	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		var err error
		if redirect != "" {
			err = sse.Redirect(redirect)
		} else {
			err = sse.PatchElementTempl(h.views.Success(d),
				datastar.WithSelector("#"+d.FormID),
				datastar.WithMode(datastar.ElementPatchModeOuter),
			)
		}
		if err != nil {
			h.log(r).Error("datastar response", logger.Error(err))
		}
		return
	}

	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}
	h.renderHTML(w, r, http.StatusOK, h.views.Page(d, h.views.Success(d)))
}

func (h *Host) respondRejected(w http.ResponseWriter, r *http.Request, out *outcome) {
	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchSignals(submitSignals(out.Fields)); err != nil {
			h.log(r).Error("patch signals", logger.Error(err))
			return
		}
		if out.Attention != nil {
			if err := sse.ExecuteScript(attentionScript(out.Attention)); err != nil {
				h.log(r).Error("execute script", logger.Error(err))
			}
		}
		return
	}

	d := h.pageData(out)
	h.renderHTML(w, r, http.StatusUnprocessableEntity, h.views.Page(d, h.views.Form(d)))
}

// readValues reads the known fields from r and sanitizes them.
func (h *Host) readValues(r *http.Request) (Values, error) {
	values := make(Values, len(h.fields))

	if isDataStar(r) {
		var s signals
		if err := datastar.ReadSignals(r, &s); err != nil {
			return nil, errors.Join(ErrReadValues, err)
		}
		for _, f := range h.fields {
			values[f.Def.ID] = f.Sanitize(s.Values[f.Def.ID])
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, errors.Join(ErrReadValues, err)
	}
	for _, f := range h.fields {
		values[f.Def.ID] = f.Sanitize(r.PostForm.Get(f.Def.ID))
	}
	return values, nil
}

func (h *Host) pageData(out *outcome) PageData {
	title := h.cfg.Title
	if title == "" {
		title = h.def.Name
	}
	action := h.cfg.BasePath
	if action == "" {
		action = "/"
	}

	return PageData{
		Title:       title,
		FormID:      h.formID(),
		Action:      action,
		ValidateURL: path.Join(action, "validate"),
		SubmitLabel: h.cfg.SubmitLabel,
		ScriptURL:   h.cfg.ScriptURL,
		Message:     h.cfg.SuccessMessage,
		Signals:     string(initialSignals(out.Fields)),
		Fields:      out.Fields,
	}
}

func (h *Host) renderHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.log(r).Error("render", logger.Error(errors.Join(ErrRender, err)))
	}
}

func (h *Host) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log(r).Error("form request failed", logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Host) log(r *http.Request) *slog.Logger {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return h.logger.With(logger.RequestID(id))
	}
	return h.logger
}

func attentionID(out *outcome) string {
	if out.Attention == nil {
		return ""
	}
	return out.Attention.ID
}

// attentionScript selects and scrolls to the input, mirroring what the
// coordinator did on the server side element.
func attentionScript(a *attention) string {
	id, _ := json.Marshal(a.ID)

	var b strings.Builder
	b.WriteString("(() => { const el = document.getElementById(")
	b.Write(id)
	b.WriteString("); if (!el) return;")
	if a.Select {
		b.WriteString(" el.focus(); if (typeof el.select === 'function') el.select();")
	}
	if a.Scroll != nil {
		opts, _ := json.Marshal(scrollOptions{
			Behavior: a.Scroll.Behavior,
			Block:    a.Scroll.Block,
			Inline:   a.Scroll.Inline,
		})
		b.WriteString(" el.scrollIntoView(")
		b.Write(opts)
		b.WriteString(");")
	}
	b.WriteString(" })()")
	return b.String()
}

type scrollOptions struct {
	Behavior string `json:"behavior"`
	Block    string `json:"block"`
	Inline   string `json:"inline"`
}
