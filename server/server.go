package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/yuin/goldmark"

	"code_error_explainer/batch"
	"code_error_explainer/explainer"
)

//go:embed web
var embeddedStatic embed.FS

// Server exposes the two core entry points over HTTP: single analysis and
// batch analysis, plus an HTML preview of the last written report.
type Server struct {
	bot      *explainer.Bot
	runner   *batch.Runner
	cfg      explainer.Config
	staticFS http.Handler
}

func New(bot *explainer.Bot, cfg explainer.Config) (*Server, error) {
	if bot == nil {
		return nil, errors.New("explainer bot required")
	}
	runner, err := batch.NewRunner(bot, "", log.Default())
	if err != nil {
		return nil, err
	}
	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		return nil, err
	}
	return &Server{
		bot:      bot,
		runner:   runner,
		cfg:      cfg,
		staticFS: http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/explain", s.handleExplain)
	mux.HandleFunc("/api/batch", s.handleBatch)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.Handle("/", s.staticFS)
	return mux
}

// --- Handlers ---

type explainReq struct {
	Code         string `json:"code"`
	ErrorMessage string `json:"error_message"`
}

type explainResp struct {
	OK          bool   `json:"ok"`
	Explanation string `json:"explanation"`
	FailureKind string `json:"failure_kind,omitempty"`
}

type batchReq struct {
	InputDir   string `json:"input_dir,omitempty"`
	ReportPath string `json:"report_path,omitempty"`
}

type batchResp struct {
	Status     string `json:"status"`
	Cases      int    `json:"cases"`
	ReportPath string `json:"report_path,omitempty"`
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req explainReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	res := s.bot.ExplainError(ctx, req.Code, req.ErrorMessage)
	resp := explainResp{OK: res.OK, Explanation: res.TextOrReason()}
	if !res.OK {
		resp.FailureKind = res.Kind.String()
	}
	writeJSON(w, resp)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req batchReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	inputDir := req.InputDir
	if inputDir == "" {
		inputDir = s.cfg.InputDir
	}
	reportPath := req.ReportPath
	if reportPath == "" {
		reportPath = s.cfg.ReportPath
	}

	cases, status := s.runner.Run(r.Context(), inputDir)
	resp := batchResp{Status: status.String(), Cases: len(cases)}
	if len(cases) > 0 {
		if err := batch.WriteReport(reportPath, batch.Render(cases)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.ReportPath = reportPath
	}
	writeJSON(w, resp)
}

// handleReport renders the last written report to HTML.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	md, err := os.ReadFile(s.cfg.ReportPath)
	if err != nil {
		http.Error(w, "no report generated yet", http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(md, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
