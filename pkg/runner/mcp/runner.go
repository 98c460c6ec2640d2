package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/logging"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

const (
	defaultName       = "xisnul"
	defaultListenAddr = "127.0.0.1:8080"
	shutdownGrace     = 5 * time.Second
)

// Runner coordinates MCP server startup.
type Runner struct {
	App     *app.Service
	Logger  *zap.Logger
	Name    string
	Version string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// EndpointPath cleans a user supplied HTTP path, defaulting to /mcp.
func EndpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (r Runner) withDefaults() Runner {
	if r.Name == "" {
		r.Name = defaultName
	}
	if r.Version == "" {
		r.Version = "dev"
	}
	if r.Transport == "" {
		r.Transport = TransportHTTP
	}
	if r.HTTPListenAddr == "" {
		r.HTTPListenAddr = defaultListenAddr
	}
	r.HTTPEndpointPath = EndpointPath(r.HTTPEndpointPath)
	if r.Stdin == nil {
		r.Stdin = os.Stdin
	}
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	r.Logger = logging.OrNop(r.Logger)
	return r
}

func (r Runner) secure() bool {
	return r.HTTPServerCert != "" && r.HTTPServerKey != ""
}

// NewServer builds the MCP server with the catalog tools and resources
// registered.
func (r Runner) NewServer() *server.MCPServer {
	r = r.withDefaults()
	srv := server.NewMCPServer(
		r.Name+" MCP",
		r.Version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Browse and search the Xisnul Muslim supplication catalog and manage favorites and bookmarks."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(r.App)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do serves until ctx is cancelled or the transport fails.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp: runner requires a catalog service")
	}
	if (r.HTTPServerCert == "") != (r.HTTPServerKey == "") {
		return errors.New("mcp: both http tls cert and key must be provided")
	}
	r = r.withDefaults()
	srv := r.NewServer()

	switch r.Transport {
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		r.Logger.Debug("serving mcp over stdio")
		return server.NewStdioServer(srv).Listen(ctx, r.Stdin, r.Stdout)
	default:
		return fmt.Errorf("mcp: unknown transport %q", r.Transport)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	mux := http.NewServeMux()
	mux.Handle(r.HTTPEndpointPath, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", r.HTTPListenAddr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", r.HTTPListenAddr, err)
	}
	r.Logger.Info("mcp http server listening",
		zap.Stringer("addr", ln.Addr()),
		zap.String("path", r.HTTPEndpointPath),
		zap.Bool("tls", r.secure()))
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			r.Logger.Warn("mcp http shutdown", zap.Error(err))
		}
	})
	defer stop()

	if r.secure() {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
