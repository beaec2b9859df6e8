package backend

import (
	// 外部依赖
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"
	gobreaker "github.com/sony/gobreaker"

	// 内部引用
	config "github.com/scienceol/labdesk/internal/config"
	code "github.com/scienceol/labdesk/pkg/common/code"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
)

// Transport is the single authenticated pipe to the backend: it owns the
// resty client, injects the bearer token from the session store, trips a
// circuit breaker on repeated backend faults, and translates every non-2xx
// into a typed error. Callers get decoded JSON or an error, nothing else.
type Transport struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	sess    *session.Store
}

func NewTransport(sess *session.Store) *Transport {
	conf := config.Global()

	client := resty.New().
		EnableTrace().
		SetBaseURL(conf.Backend.Addr).
		SetTimeout(time.Duration(conf.Client.TimeoutSec) * time.Second).
		SetHeader("Content-Type", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok := sess.Token(); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		if id := logger.RequestID(req.Context()); id != "" {
			req.SetHeader("X-Request-ID", id)
		}
		return nil
	})

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "backend",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     time.Duration(conf.Client.BreakerCooldown) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(conf.Client.BreakerFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf(context.Background(), "circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Transport{
		client:  client,
		breaker: breaker,
		sess:    sess,
	}
}

func (t *Transport) Get(ctx context.Context, path string, query map[string]string, out any) error {
	return t.do(ctx, http.MethodGet, path, nil, query, out)
}

func (t *Transport) Post(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPost, path, body, nil, out)
}

func (t *Transport) Put(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPut, path, body, nil, out)
}

func (t *Transport) Delete(ctx context.Context, path string, query map[string]string) error {
	return t.do(ctx, http.MethodDelete, path, nil, query, nil)
}

func (t *Transport) do(ctx context.Context, method, path string, body any, query map[string]string, out any) error {
	req := t.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if out != nil {
		req.SetResult(out)
	}

	raw, execErr := t.breaker.Execute(func() (any, error) {
		res, err := req.Execute(method, path)
		if err != nil {
			return nil, err
		}
		// 5xx counts against the breaker, 4xx is a business outcome
		if res.StatusCode() >= http.StatusInternalServerError {
			return res, fmt.Errorf("backend status %d", res.StatusCode())
		}
		return res, nil
	})

	res, _ := raw.(*resty.Response)
	if res == nil {
		logger.Errorf(ctx, "%s %s err: %+v", method, path, execErr)
		return code.RPCHttpErr.WithErr(execErr)
	}

	if res.IsSuccess() {
		return nil
	}

	if res.StatusCode() == http.StatusUnauthorized {
		// stale token must never be resent
		if err := t.sess.Clear(); err != nil {
			logger.Warnf(ctx, "clear session err: %+v", err)
		}
		logger.Warnf(ctx, "%s %s unauthorized, session cleared", method, path)
		return code.Unauthorized
	}

	if msg := errorMessage(res.Body()); msg != "" {
		logger.Errorf(ctx, "%s %s http code: %d msg: %s", method, path, res.StatusCode(), msg)
		return code.BackendErr.WithMsg(msg)
	}

	logger.Errorf(ctx, "%s %s http code: %d", method, path, res.StatusCode())
	return code.RPCHttpCodeErr.WithMsgf("%s %s failed: status %d", method, path, res.StatusCode())
}

// errorMessage pulls the message field from a backend error body, if the
// body is JSON at all.
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	parsed := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Message
}
