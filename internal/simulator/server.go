package simulator

import (
	"net"

	"google.golang.org/grpc"

	"brainball/api/pkg/w2apb"
)

// Server hosts a Service on a TCP listener. Used by cmd/word2animal-sim and
// by tests that need a live backend on an ephemeral port.
type Server struct {
	grpc *grpc.Server
	lis  net.Listener
}

// NewServer wraps svc in a gRPC server speaking the word2animal wire
// protocol.
func NewServer(svc *Service) *Server {
	gs := grpc.NewServer(grpc.ForceServerCodec(w2apb.Codec{}))
	w2apb.RegisterWord2AnimalServer(gs, svc)
	return &Server{grpc: gs}
}

// Start listens on addr ("127.0.0.1:0" for an ephemeral port) and serves in
// a background goroutine.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = lis
	go s.grpc.Serve(lis)
	return nil
}

// Serve listens on addr and blocks until the server stops.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = lis
	return s.grpc.Serve(lis)
}

// Addr returns the bound address, or "" before Start/Serve.
func (s *Server) Addr() string {
	if s.lis == nil {
		return ""
	}
	return s.lis.Addr().String()
}

// Stop tears the server down immediately, closing all live connections.
func (s *Server) Stop() { s.grpc.Stop() }

// GracefulStop drains in-flight RPCs before stopping.
func (s *Server) GracefulStop() { s.grpc.GracefulStop() }
