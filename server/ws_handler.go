package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pfactor/PFactor-core/factor"
)

var factorUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	wsSendQueueSize = 1024
	wsWriteTimeout  = 5 * time.Second
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsConn is the slice of *websocket.Conn the session needs; tests swap in a
// recording fake.
type wsConn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	ReadJSON(v interface{}) error
	Close() error
}

type wsFactorSession struct {
	conn       wsConn
	sendCh     chan wsEnvelope
	writerDone chan struct{}
	closeOnce  sync.Once
}

func newWSFactorSession(conn wsConn, queueSize int) *wsFactorSession {
	if queueSize <= 0 {
		queueSize = wsSendQueueSize
	}
	s := &wsFactorSession{
		conn:       conn,
		sendCh:     make(chan wsEnvelope, queueSize),
		writerDone: make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

func (s *wsFactorSession) writeLoop() {
	defer close(s.writerDone)
	for env := range s.sendCh {
		_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := s.conn.WriteJSON(env); err != nil {
			return
		}
	}
}

// send enqueues without blocking; a consumer too slow for the attempt stream
// loses events rather than stalling the search.
func (s *wsFactorSession) send(env wsEnvelope) {
	select {
	case s.sendCh <- env:
	default:
	}
}

func (s *wsFactorSession) finish() {
	s.closeOnce.Do(func() {
		close(s.sendCh)
		<-s.writerDone
		_ = s.conn.Close()
	})
}

func wsFactorHandler(c *gin.Context) {
	conn, err := factorUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	var req factorRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.Close()
		return
	}

	runWSFactor(conn, req)
}

// runWSFactor streams one attempt event per envelope, then the final result.
func runWSFactor(conn wsConn, req factorRequest) {
	sess := newWSFactorSession(conn, wsSendQueueSize)
	defer sess.finish()

	exec, err := newExecution(req)
	if err != nil {
		sess.send(wsEnvelope{Type: "error", Error: err.Error()})
		return
	}

	factorMu.Lock()
	defer factorMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), exec.timeout)
	defer cancel()
	exec.cfg.Context = ctx
	exec.cfg.OnProgress = func(ev factor.Event) {
		sess.send(wsEnvelope{Type: "attempt", Data: ev})
	}

	res, err := factor.Find(exec.method, exec.num, exec.cfg)
	if err != nil {
		sess.send(wsEnvelope{Type: "error", Error: err.Error()})
		return
	}
	sess.send(wsEnvelope{Type: "result", Data: resultPayload(res)})
}
