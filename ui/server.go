package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/dhamidi/showif/format"
	"github.com/dhamidi/showif/rdparse"
	"github.com/dhamidi/showif/showif"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tliron/commonlog"
)

//go:embed static templates
var embeddedFS embed.FS

const defaultInput = `question[q.survey.do.you.have.health.insurance] IN ["Yes", "No"] AND (question[q.survey.individual] EQ true OR question[q.survey.height] IN [123])`

type Server struct {
	staticFS   fs.FS
	templateFS fs.FS
	mux        *http.ServeMux
	funcMap    template.FuncMap
	metrics    *metrics
	log        commonlog.Logger
}

func NewServer() (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"lines": func(s string) int {
			n := 1
			for _, c := range s {
				if c == '\n' {
					n++
				}
			}
			return max(n, 5)
		},
	}

	// Fail early on broken templates; render parses them again per request.
	if _, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		staticFS:   staticFS,
		templateFS: templateFS,
		mux:        http.NewServeMux(),
		funcMap:    funcMap,
		metrics:    newMetrics(),
		log:        commonlog.GetLogger("showif.ui"),
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("GET /grammar", s.handleGrammar)
	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		s.log.Errorf("parse templates: %s", err)
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Errorf("render %s: %s", name, err)
	}
}

type pageData struct {
	Input   string
	Output  string
	Failed  bool
	Partial bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", pageData{Input: defaultInput})
}

func (s *Server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, showif.EBNFSource)
}

type parseRequest struct {
	Input   string `json:"input"`
	Partial bool   `json:"partial"`
}

type parseResponse struct {
	AST       any    `json:"ast,omitempty"`
	Error     string `json:"error,omitempty"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	Remainder string `json:"remainder,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest

	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Input = r.FormValue("input")
		req.Partial = r.FormValue("partial") != ""
	}

	start := time.Now()
	parse := showif.Parse
	if req.Partial {
		parse = showif.ParsePartial
	}
	expr, err := parse(req.Input)
	s.metrics.observe(err, time.Since(start))

	if err != nil {
		s.log.Debugf("parse %q: %s", req.Input, err)
	} else {
		s.log.Debugf("parse %q: ok", req.Input)
	}

	if r.Header.Get("Accept") == "application/json" {
		s.writeJSON(w, expr, err)
		return
	}

	data := pageData{Input: req.Input, Partial: req.Partial}
	if err != nil {
		data.Output = "Error: " + err.Error()
		data.Failed = true
	} else {
		text, err := json.MarshalIndent(format.Data(expr), "", "  ")
		if err != nil {
			http.Error(w, "encode: "+err.Error(), http.StatusInternalServerError)
			return
		}
		data.Output = string(text)
	}
	s.render(w, "index.html", data)
}

func (s *Server) writeJSON(w http.ResponseWriter, expr showif.Expr, err error) {
	var resp parseResponse
	status := http.StatusOK
	if err != nil {
		status = http.StatusUnprocessableEntity
		resp.Error = err.Error()
		var perr *rdparse.ParseError
		if errors.As(err, &perr) {
			resp.Line = perr.Pos.Line
			resp.Column = perr.Pos.Column
			resp.Remainder = perr.Remainder
		}
	} else {
		resp.AST = format.Data(expr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Errorf("write response: %s", err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

// overlayFS prefers files from primaryPath on disk, so templates can be
// edited without rebuilding when running from the repository root.
func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
