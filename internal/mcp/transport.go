//go:build !nofs

package mcp

import (
	"context"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/Fuabioo/tzkit/internal/core"
	"github.com/Fuabioo/tzkit/internal/errors"
)

// ServeIO serves MCP over the given streams until ctx is done or in is
// closed. Transport errors are logged through the service logger, never
// to out, which carries only protocol messages.
func (s *Server) ServeIO(ctx context.Context, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s.mcp)
	stdioServer.SetErrorLogger(zap.NewStdLog(s.svc.Logger().Named("mcp")))

	if err := stdioServer.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return errors.Context(err, "failed to serve MCP")
	}
	return nil
}

// Serve creates a new MCP server for svc and serves it on stdio.
func Serve(ctx context.Context, svc *core.Service) error {
	return NewServer(svc).ServeIO(ctx, os.Stdin, os.Stdout)
}
