// Command formd serves a declarative form with live validation.
//
// The form definition is read from FORM_FILE, or the bundled signup form
// when unset. Accepted submissions are logged and answered with the
// configured success message.
package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/schema"
	"github.com/dmitrymomot/formrules/pkg/webform"
)

//go:embed signup.yaml
var defaultForm []byte

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(requestIDExtractor),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("formd stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	def, err := loadDefinition(cfg.FormFile)
	if err != nil {
		return err
	}

	router, err := newRouter(cfg, def, log)
	if err != nil {
		return err
	}
	return serve(ctx, cfg.HTTP, router, log)
}

func loadDefinition(path string) (*schema.Definition, error) {
	if path == "" {
		return schema.Parse(defaultForm)
	}
	return schema.LoadFile(path)
}

func newRouter(cfg appConfig, def *schema.Definition, log *slog.Logger) (http.Handler, error) {
	wcfg := cfg.Webform
	wcfg.BasePath = cfg.MountPath

	host, err := webform.New(def,
		webform.WithConfig(wcfg),
		webform.WithLogger(log),
		webform.WithSubmit(func(ctx context.Context, values webform.Values) (string, error) {
			log.InfoContext(ctx, "form accepted", logger.Form(def.Name), logger.Count(len(values)))
			return "", nil
		}),
	)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.MountPath, http.StatusFound)
	})
	r.Mount(cfg.MountPath, host)
	return r, nil
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}
