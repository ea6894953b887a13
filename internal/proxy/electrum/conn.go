package electrum

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	methodHeadersSubscribe = "blockchain.headers.subscribe"
	maxLineSize            = 16 << 20
)

// RPCError is an error object returned by the server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("electrum error %d: %s", e.Code, e.Message)
}

type request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type response struct {
	ID     *uint64             `json:"id"`
	Result jsoniter.RawMessage `json:"result"`
	Error  *RPCError           `json:"error"`
	Method string              `json:"method"`
	Params jsoniter.RawMessage `json:"params"`
}

// HeaderNotification is a new tip announced by a server.
type HeaderNotification struct {
	Height int32  `json:"height"`
	Hex    string `json:"hex"`
}

// conn is one newline delimited JSON-RPC session.
type conn struct {
	server  Server
	netConn net.Conn
	timeout time.Duration
	logger  *zap.Logger
	notify  func(*conn, HeaderNotification)

	writeMu sync.Mutex
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]chan response
	closed  chan struct{}
	err     error

	connectedAt   time.Time
	serverVersion string
	tipHeight     atomic.Int32
}

func dial(ctx context.Context, server Server, cfg Config, logger *zap.Logger, notify func(*conn, HeaderNotification)) (*conn, error) {
	dialer := &net.Dialer{Timeout: cfg.Timeout}
	netConn, err := dialer.DialContext(ctx, "tcp", server.Addr())
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", server, err)
	}
	if server.TLS {
		tlsConn := tls.Client(netConn, &tls.Config{
			ServerName:         server.Host,
			InsecureSkipVerify: cfg.TLSSkipVerify, //nolint:gosec
		})
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			_ = netConn.Close()
			return nil, fmt.Errorf("tls handshake %s: %w", server, err)
		}
		netConn = tlsConn
	}
	c := newConn(server, netConn, cfg.Timeout, logger, notify)
	go c.readLoop()
	return c, nil
}

func newConn(server Server, netConn net.Conn, timeout time.Duration, logger *zap.Logger, notify func(*conn, HeaderNotification)) *conn {
	c := &conn{
		server:      server,
		netConn:     netConn,
		timeout:     timeout,
		logger:      logger.With(zap.String("server", server.String())),
		notify:      notify,
		pending:     make(map[uint64]chan response),
		closed:      make(chan struct{}),
		connectedAt: time.Now(),
	}
	c.tipHeight.Store(-1)
	return c
}

func (c *conn) call(ctx context.Context, method string, params ...interface{}) (jsoniter.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	ch := make(chan response, 1)

	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return nil, err
	}
	c.nextID++
	id := c.nextID
	c.pending[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	line, err := json.Marshal(request{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", method, err)
	}
	line = append(line, '\n')

	c.writeMu.Lock()
	_ = c.netConn.SetWriteDeadline(time.Now().Add(c.timeout))
	_, err = c.netConn.Write(line)
	c.writeMu.Unlock()
	if err != nil {
		c.fail(fmt.Errorf("%w: write %s: %v", ErrMissingResponse, method, err))
		return nil, c.closeErr()
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()
	select {
	case resp := <-ch:
		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w: %s timed out after %s", ErrMissingResponse, method, c.timeout)
	case <-c.closed:
		return nil, c.closeErr()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *conn) readLoop() {
	reader := bufio.NewReaderSize(c.netConn, 64<<10)
	for {
		line, err := readLine(reader)
		if err != nil {
			c.fail(fmt.Errorf("%w: read: %v", ErrMissingResponse, err))
			return
		}
		var resp response
		if err := json.Unmarshal(line, &resp); err != nil {
			c.logger.Warn("drop malformed electrum message", zap.Error(err))
			continue
		}
		if resp.ID != nil {
			c.mu.Lock()
			ch, ok := c.pending[*resp.ID]
			c.mu.Unlock()
			if ok {
				select {
				case ch <- resp:
				default:
				}
			}
			continue
		}
		if resp.Method == methodHeadersSubscribe {
			var params []HeaderNotification
			if err := json.Unmarshal(resp.Params, &params); err != nil || len(params) == 0 {
				continue
			}
			c.tipHeight.Store(params[0].Height)
			if c.notify != nil {
				c.notify(c, params[0])
			}
		}
	}
}

func readLine(reader *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			return nil, err
		}
		line = append(line, chunk...)
		if len(line) > maxLineSize {
			return nil, errors.New("message too large")
		}
		if !isPrefix {
			return line, nil
		}
	}
}

func (c *conn) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return
	}
	c.err = err
	close(c.closed)
	_ = c.netConn.Close()
}

func (c *conn) closeErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *conn) alive() bool {
	select {
	case <-c.closed:
		return false
	default:
		return true
	}
}

func (c *conn) close() {
	c.fail(fmt.Errorf("%w: connection closed", ErrMissingResponse))
}
