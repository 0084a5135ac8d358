package server

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pfactor/PFactor-core/factor"
	"github.com/pfactor/PFactor-core/util"
)

const (
	defaultTimeoutMs = 30000
	maxTimeoutMs     = 10 * 60 * 1000
	maxBound         = 10_000_000
	maxAttempts      = 10_000
	maxParallel      = 64
)

// One heavy search at a time; the CPU is the shared resource here.
var factorMu sync.Mutex

type factorRequest struct {
	Num       string `json:"num"`
	Bound     int64  `json:"bound"`
	Attempts  int    `json:"attempts"`
	Parallel  int    `json:"parallel"`
	Method    string `json:"method"`
	Seed      int64  `json:"seed"`
	TimeoutMs int    `json:"timeout_ms"`
}

type factorExecution struct {
	num     *big.Int
	method  factor.Method
	cfg     factor.Config
	timeout time.Duration
}

func newExecution(req factorRequest) (*factorExecution, error) {
	num, err := util.ParseNum(req.Num)
	if err != nil {
		return nil, err
	}
	if num.Sign() < 0 {
		return nil, factor.ErrInvalidInput
	}

	method := factor.Method(req.Method)
	if method == "" {
		method = factor.PMinus1Method
	}
	if !util.StringInSlice(string(method), factor.Methods()) {
		return nil, factor.ErrInvalidMethod
	}

	if req.Bound < 0 || req.Bound > maxBound {
		return nil, errors.New("bound out of range")
	}
	if req.Attempts < 0 || req.Attempts > maxAttempts {
		return nil, errors.New("attempts out of range")
	}
	if req.Parallel < 0 || req.Parallel > maxParallel {
		return nil, errors.New("parallel out of range")
	}

	timeoutMs := req.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = defaultTimeoutMs
	}
	if timeoutMs > maxTimeoutMs {
		timeoutMs = maxTimeoutMs
	}

	return &factorExecution{
		num:    num,
		method: method,
		cfg: factor.Config{
			Bound:    req.Bound,
			Attempts: req.Attempts,
			Parallel: req.Parallel,
			Seed:     req.Seed,
		},
		timeout: time.Duration(timeoutMs) * time.Millisecond,
	}, nil
}

func resultPayload(res *factor.Result) gin.H {
	payload := gin.H{
		"num":           res.Num.String(),
		"found":         res.Found(),
		"method":        string(res.Method),
		"attempts_used": res.AttemptsUsed,
		"elapsed_ms":    res.Elapsed.Milliseconds(),
	}
	if res.Found() {
		payload["divisor"] = res.Divisor.String()
		payload["cofactor"] = res.Cofactor.String()
	}
	return payload
}

func factorHandler(c *gin.Context) {
	var req factorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exec, err := newExecution(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	factorMu.Lock()
	defer factorMu.Unlock()

	ctx, cancel := context.WithTimeout(c.Request.Context(), exec.timeout)
	defer cancel()
	exec.cfg.Context = ctx

	res, err := factor.Find(exec.method, exec.num, exec.cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, factor.ErrInvalidInput) || errors.Is(err, factor.ErrInvalidMethod) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if !res.Found() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "search timed out"})
		return
	}

	c.JSON(http.StatusOK, resultPayload(res))
}
