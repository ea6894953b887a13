package electrum

import (
	"bufio"
	"net"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type handler func(params []jsoniter.RawMessage) (interface{}, *RPCError)

// fakeServer speaks plain TCP newline delimited JSON-RPC.
type fakeServer struct {
	ln net.Listener

	mu       sync.Mutex
	handlers map[string]handler
	silent   map[string]bool
	conns    []net.Conn
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &fakeServer{
		ln:     ln,
		silent: make(map[string]bool),
		handlers: map[string]handler{
			"server.version": func([]jsoniter.RawMessage) (interface{}, *RPCError) {
				return []string{"FakeX 1.0", "1.4"}, nil
			},
			methodHeadersSubscribe: func([]jsoniter.RawMessage) (interface{}, *RPCError) {
				return HeaderNotification{Height: 100, Hex: ""}, nil
			},
			"server.ping": func([]jsoniter.RawMessage) (interface{}, *RPCError) {
				return nil, nil
			},
		},
	}
	go s.serve()
	t.Cleanup(s.close)
	return s
}

func (s *fakeServer) handle(method string, h handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
}

func (s *fakeServer) ignore(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.silent[method] = true
}

func (s *fakeServer) server() Server {
	return Server{Host: "127.0.0.1", Port: s.ln.Addr().(*net.TCPAddr).Port}
}

func (s *fakeServer) serve() {
	for {
		c, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns = append(s.conns, c)
		s.mu.Unlock()
		go s.serveConn(c)
	}
}

func (s *fakeServer) serveConn(c net.Conn) {
	scanner := bufio.NewScanner(c)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	for scanner.Scan() {
		var req struct {
			ID     uint64                `json:"id"`
			Method string                `json:"method"`
			Params []jsoniter.RawMessage `json:"params"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			return
		}
		s.mu.Lock()
		h, ok := s.handlers[req.Method]
		silent := s.silent[req.Method]
		s.mu.Unlock()
		if silent {
			continue
		}
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if !ok {
			resp["error"] = &RPCError{Code: -32601, Message: "unknown method " + req.Method}
		} else if result, rpcErr := h(req.Params); rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		s.write(c, resp)
	}
}

func (s *fakeServer) write(c net.Conn, msg interface{}) {
	line, _ := json.Marshal(msg)
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = c.SetWriteDeadline(time.Now().Add(time.Second))
	_, _ = c.Write(append(line, '\n'))
}

func (s *fakeServer) notifyHeader(height int32) {
	s.mu.Lock()
	conns := append([]net.Conn(nil), s.conns...)
	s.mu.Unlock()
	for _, c := range conns {
		s.write(c, map[string]interface{}{
			"jsonrpc": "2.0",
			"method":  methodHeadersSubscribe,
			"params":  []HeaderNotification{{Height: height}},
		})
	}
}

func (s *fakeServer) close() {
	_ = s.ln.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conns {
		_ = c.Close()
	}
}
