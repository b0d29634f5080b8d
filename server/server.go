// Package server serves the arcade pages and wasm builds over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrPortInUse is returned by ListenAndServe when the address is already bound.
var ErrPortInUse = errors.New("server: port already in use")

const (
	DefaultAddr = ":8080"

	indexPage    = "home.html"
	notFoundPage = "404.html"
)

var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".woff": "application/font-woff",
	".ttf":  "application/font-ttf",
	".eot":  "application/vnd.ms-fontobject",
	".otf":  "application/font-otf",
	".wasm": "application/wasm",
}

// ContentType maps a file name to its content type by extension.
func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Server serves files from root.
type Server struct {
	root   fs.FS
	addr   string
	logger *log.Logger

	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New creates a server for root listening on addr. An empty addr means
// DefaultAddr.
func New(root fs.FS, addr string) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{
		root:            root,
		addr:            addr,
		logger:          log.New(os.Stdout, "[server] ", log.LstdFlags),
		shutdownTimeout: 5 * time.Second,
	}
}

// SetLogger replaces the server's logger.
func (s *Server) SetLogger(l *log.Logger) {
	s.logger = l
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Handle("/*", http.HandlerFunc(s.handleFile))

	return r
}

// ListenAndServe binds the address and serves until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			s.logger.Printf("Port %s is already in use. Try another port.", port(s.addr))
			return ErrPortInUse
		}
		return fmt.Errorf("server: listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()
	s.logger.Printf("Server running at http://%s/", displayAddr(ln.Addr()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Println("Server stopped")
	return nil
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = indexPage
	}

	content, err := fs.ReadFile(s.root, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || !fs.ValidPath(name) {
			s.notFound(w)
			return
		}
		s.logger.Printf("read %s: %v [%s]", name, err, middleware.GetReqID(r.Context()))
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "Sorry, check with the site admin for error: %s ..\n", errorCode(err))
		return
	}

	w.Header().Set("Content-Type", ContentType(name))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (s *Server) notFound(w http.ResponseWriter) {
	content, _ := fs.ReadFile(s.root, notFoundPage)
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	w.Write(content)
}

// errorCode names a read failure the way the operating system does.
func errorCode(err error) string {
	var errno syscall.Errno
	switch {
	case errors.Is(err, syscall.EISDIR):
		return "EISDIR"
	case errors.Is(err, fs.ErrPermission):
		return "EACCES"
	case errors.Is(err, fs.ErrInvalid):
		return "EINVAL"
	case errors.As(err, &errno):
		return fmt.Sprintf("errno %d", uintptr(errno))
	}
	return "EIO"
}

func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}

func displayAddr(a net.Addr) string {
	host, p, err := net.SplitHostPort(a.String())
	if err != nil {
		return a.String()
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "localhost"
	}
	return net.JoinHostPort(host, p)
}
