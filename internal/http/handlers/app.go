package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/infra"
	"server/internal/storage"
)

// App bundles the dependencies shared by every HTTP handler.
type App struct {
	SQL     infra.SQLExecutor
	Logger  zerolog.Logger
	Cfg     *infra.Config
	Resumes *storage.ResumeStore
	Tmpl    *template.Template
}

func NewApp(sqlExec infra.SQLExecutor, logger zerolog.Logger, cfg *infra.Config, resumes *storage.ResumeStore, tmpl *template.Template) *App {
	return &App{SQL: sqlExec, Logger: logger, Cfg: cfg, Resumes: resumes, Tmpl: tmpl}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// submissionResult is the envelope every public intake endpoint answers with.
type submissionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (a *App) result(w http.ResponseWriter, code int, status, message string) {
	a.json(w, code, submissionResult{Status: status, Message: message})
}

func (a *App) render(w http.ResponseWriter, name string, data any) {
	if err := a.Tmpl.ExecuteTemplate(w, name, data); err != nil {
		a.Logger.Error().Err(err).Msgf("render %s failed", name)
	}
}
