// Copyright 2024 The SafeCalc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main (API) implements the HTTP API server for the SafeCalc
// expression evaluator.
package main

import (
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	cal "github.com/safecalc/safecalc/pkg/calculator"
	cmn "github.com/safecalc/safecalc/pkg/common"
	cfg "github.com/safecalc/safecalc/pkg/config"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const (
	errTooManyRequests = "Too Many Requests"
	errRateLimitExceed = "Rate limit exceeded"
)

var (
	config      cfg.Config
	configMutex sync.Mutex
	configFile  *string

	limiter *rate.Limiter

	sysReadyMtx sync.RWMutex // protects sysReady
	sysReady    int          // 0 = not ready, 1 = starting up, 2 = ready

	// Counters for monitoring (atomic)
	totalRequests atomic.Int64
	totalErrors   atomic.Int64
	totalSuccess  atomic.Int64
)

func setSysReady(newStatus int) {
	if newStatus < 0 || newStatus > 2 {
		return
	}
	sysReadyMtx.Lock()
	defer sysReadyMtx.Unlock()
	sysReady = newStatus
}

func getSysReady() int {
	sysReadyMtx.RLock()
	defer sysReadyMtx.RUnlock()
	return sysReady
}

// initAll loads (or reloads) the configuration and rebuilds everything
// derived from it.
func initAll(configFile *string, config *cfg.Config, lmt **rate.Limiter) error {
	currentSysReady := getSysReady()
	setSysReady(1) // starting up or being reloaded

	loaded, err := cfg.LoadConfig(*configFile)
	if err != nil {
		// The defaults returned by LoadConfig are usable; a missing file is
		// not fatal for a self-contained service.
		cmn.DebugMsg(cmn.DbgLvlError, "Error reading config file, using defaults: %v", err)
	}
	*config = loaded
	if cfg.IsEmpty(*config) {
		*config = cfg.NewConfig()
	}

	cmn.SetDebugLevel(cmn.DbgLevel(config.DebugLevel))

	rl, bl := cfg.ParseRateLimit(config.API.RateLimit)
	*lmt = rate.NewLimiter(rate.Limit(rl), bl)

	setSysReady(currentSysReady)
	return nil
}

func main() {
	setSysReady(1)

	configFile = flag.String("config", "./config.yaml", "Path to the configuration file")
	flag.Parse()

	cmn.InitLogger("SafeCalcAPI")
	cmn.DebugMsg(cmn.DbgLvlInfo, "The SafeCalc API is starting...")

	// Setting up a channel to listen for termination signals
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for {
			sig := <-signals
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				cmn.DebugMsg(cmn.DbgLvlInfo, "%v received, shutting down...", sig)
				os.Exit(0)
			case syscall.SIGHUP:
				cmn.DebugMsg(cmn.DbgLvlInfo, "SIGHUP received, reloading configuration...")
				configMutex.Lock()
				if err := initAll(configFile, &config, &limiter); err != nil {
					configMutex.Unlock()
					cmn.DebugMsg(cmn.DbgLvlFatal, "Error reloading configuration: %v", err)
				}
				configMutex.Unlock()
			}
		}
	}()

	if err := initAll(configFile, &config, &limiter); err != nil {
		cmn.DebugMsg(cmn.DbgLvlFatal, "Error initializing the API: %v", err)
	}

	srv := &http.Server{
		Addr: config.API.Host + ":" + fmt.Sprintf("%d", config.API.Port),

		ReadHeaderTimeout: time.Duration(config.API.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.API.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.API.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.API.Timeout) * time.Second,
	}

	initAPIv1()

	cmn.DebugMsg(cmn.DbgLvlInfo, "Starting server on %s:%d", config.API.Host, config.API.Port)
	if strings.EqualFold(strings.TrimSpace(config.API.SSLMode), "enable") {
		setSysReady(2)
		cmn.DebugMsg(cmn.DbgLvlFatal, "Server return: %v", srv.ListenAndServeTLS(config.API.CertFile, config.API.KeyFile))
	} else {
		setSysReady(2)
		cmn.DebugMsg(cmn.DbgLvlFatal, "Server return: %v", srv.ListenAndServe())
	}
	setSysReady(0)
}

// -------------------------------------------
// Prometheus metrics
//--------------------------------------------

var (
	gaugeEvalTotalRequests = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "safecalc_eval_requests_total",
			Help: "Total number of eval requests received",
		},
		func() float64 { return float64(totalRequests.Load()) },
	)

	gaugeEvalTotalErrors = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "safecalc_eval_errors_total",
			Help: "Total number of eval requests that failed",
		},
		func() float64 { return float64(totalErrors.Load()) },
	)

	gaugeEvalTotalSuccess = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "safecalc_eval_success_total",
			Help: "Total number of eval requests that succeeded",
		},
		func() float64 { return float64(totalSuccess.Load()) },
	)
)

func init() {
	prometheus.MustRegister(
		gaugeEvalTotalRequests,
		gaugeEvalTotalErrors,
		gaugeEvalTotalSuccess,
	)
}

// -------------------------------------------
// API v1 Handlers and Middlewares
//--------------------------------------------

// initAPIv1 initializes the API v1 handlers
func initAPIv1() {
	healthCheckWithMiddlewares := SecurityHeadersMiddleware(RateLimitMiddleware(http.HandlerFunc(healthCheckHandler)))
	readyCheckWithMiddlewares := SecurityHeadersMiddleware(RateLimitMiddleware(http.HandlerFunc(readyCheckHandler)))

	http.Handle("/v1/health", healthCheckWithMiddlewares)
	http.Handle("/v1/health/", healthCheckWithMiddlewares)
	http.Handle("/v1/ready", readyCheckWithMiddlewares)
	http.Handle("/v1/ready/", readyCheckWithMiddlewares)

	http.Handle("/v1/eval", withPublicMiddlewares(evalHandler))

	if config.Prometheus.Enabled {
		http.Handle("/metrics", SecurityHeadersMiddleware(promhttp.Handler()))
	}
}

func withPublicMiddlewares(h http.HandlerFunc) http.Handler {
	return RecoverMiddleware(
		CORSHeadersMiddleware(
			SecurityHeadersMiddleware(
				RequestIDMiddleware(
					RateLimitMiddleware(h),
				),
			),
		),
	)
}

// CORSHeadersMiddleware enables CORS for requests
func CORSHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// For preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RecoverMiddleware recovers from panics and returns a 500 error
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				cmn.DebugMsg(cmn.DbgLvlError, "Recovered from panic: %v", rec)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware tags every request with an ID for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		cmn.DebugMsg(cmn.DbgLvlDebug2, "request %s: %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware is a middleware for rate limiting
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			cmn.DebugMsg(cmn.DbgLvlDebug, errRateLimitExceed)
			http.Error(w, errTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeadersMiddleware adds security-related headers to responses
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")

		next.ServeHTTP(w, r)
	})
}

// evalHandler evaluates the expression carried by the request. Evaluation
// errors are part of the API's normal vocabulary and answer with 200 and
// ok=false; only transport problems answer with a non-200 status.
func evalHandler(w http.ResponseWriter, r *http.Request) {
	totalRequests.Add(1)

	expr, err := extractExpr(r)
	if err != nil {
		totalErrors.Add(1)
		respondJSON(w, http.StatusBadRequest, EvalFailure{OK: false, Error: err.Error()})
		return
	}

	result, err := cal.Evaluate(expr)
	if err != nil {
		totalErrors.Add(1)
		cmn.DebugMsg(cmn.DbgLvlDebug3, "eval of %q failed: %v", expr, err)
		respondJSON(w, http.StatusOK, EvalFailure{OK: false, Error: err.Error()})
		return
	}

	if math.IsInf(result, 0) {
		// JSON has no encoding for infinities, so an overflow is reported
		// like any other evaluation failure.
		totalErrors.Add(1)
		respondJSON(w, http.StatusOK, EvalFailure{OK: false, Error: "result out of range"})
		return
	}

	totalSuccess.Add(1)
	respondJSON(w, http.StatusOK, EvalSuccess{OK: true, Result: result})
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthCheck{Status: "OK"})
}

func readyCheckHandler(w http.ResponseWriter, _ *http.Request) {
	msg := ""
	switch getSysReady() {
	case 1:
		msg = "STARTING UP"
	case 2:
		msg = "READY"
	default:
		msg = "NOT READY"
	}
	respondJSON(w, http.StatusOK, ReadyCheck{Status: msg})
}
