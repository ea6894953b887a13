// Package transport exposes the query service as a bitcoind-compatible
// JSON-RPC endpoint and carries the gRPC health service.
package transport

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// RPCConfig configures the JSON-RPC endpoint.
type RPCConfig struct {
	User           string
	Password       string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	AllowedOrigins []string
}

const defaultMaxBodyBytes = 4 << 20

type request struct {
	Method string                `json:"method"`
	Params []jsoniter.RawMessage `json:"params"`
	ID     interface{}           `json:"id"`
}

type response struct {
	Result interface{}       `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
	ID     interface{}       `json:"id"`
}

// RPCServer answers JSON-RPC 1.0 calls over HTTP POST, single or batched.
type RPCServer struct {
	svc      QueryService
	cfg      RPCConfig
	metrics  Metrics
	logger   *zap.Logger
	handlers map[string]handlerFunc
}

func NewRPCServer(svc QueryService, cfg RPCConfig, metrics Metrics, logger *zap.Logger) *RPCServer {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	s := &RPCServer{
		svc:     svc,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("jsonrpc"),
	}
	s.handlers = s.routes()
	return s
}

// Handler wraps the server with CORS handling.
func (s *RPCServer) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(s)
}

func (s *RPCServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "JSON-RPC server handles only POST requests", http.StatusMethodNotAllowed)
		return
	}
	if !s.authorized(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="jsonrpc"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "read request body", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	var out interface{}
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		out = s.serveBatch(ctx, body)
	} else {
		out = s.serveSingle(ctx, body)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Warn("write response failed", zap.Error(err))
	}
}

func (s *RPCServer) serveSingle(ctx context.Context, body []byte) response {
	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		return response{Error: btcjson.ErrRPCParse}
	}
	return s.call(ctx, req)
}

func (s *RPCServer) serveBatch(ctx context.Context, body []byte) interface{} {
	var reqs []jsoniter.RawMessage
	if err := json.Unmarshal(body, &reqs); err != nil {
		return response{Error: btcjson.ErrRPCParse}
	}
	if len(reqs) == 0 {
		return response{Error: btcjson.ErrRPCInvalidRequest}
	}
	out := make([]response, 0, len(reqs))
	for _, raw := range reqs {
		var req request
		if err := json.Unmarshal(raw, &req); err != nil {
			out = append(out, response{Error: btcjson.ErrRPCInvalidRequest})
			continue
		}
		out = append(out, s.call(ctx, req))
	}
	return out
}

func (s *RPCServer) call(ctx context.Context, req request) response {
	started := time.Now()
	handler, known := s.handlers[req.Method]
	if !known {
		s.metrics.Observe(req.Method, false, btcjson.ErrRPCMethodNotFound, started)
		return response{Error: btcjson.ErrRPCMethodNotFound, ID: req.ID}
	}

	result, err := handler(ctx, params(req.Params))
	s.metrics.Observe(req.Method, true, err, started)
	if err != nil {
		s.logger.Debug("call failed", zap.String("method", req.Method), zap.Error(err))
		return response{Error: rpcError(err), ID: req.ID}
	}
	return response{Result: result, ID: req.ID}
}

func (s *RPCServer) authorized(r *http.Request) bool {
	if s.cfg.User == "" && s.cfg.Password == "" {
		return true
	}
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	// compare digests so the comparison time does not depend on length
	userOK := digestEqual(user, s.cfg.User)
	passOK := digestEqual(pass, s.cfg.Password)
	return userOK && passOK
}

func digestEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
