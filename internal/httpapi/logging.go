package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once
var defaultLogLevel = func() LogLevel {
	if v, ok := os.LookupEnv("MECJD_ACCESS_LOG"); ok {
		return parseLevel(v)
	}
	return LevelInfo
}()

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// accessLog writes one line per request once the handler has finished.
// Server errors are logged from LevelError up, everything else from LevelInfo.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lvl := requestLogLevel(r)
		if lvl == LevelOff {
			next.ServeHTTP(w, r)
			return
		}
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sr, r)
		dur := time.Since(start)
		if sr.status < http.StatusInternalServerError && lvl < LevelInfo {
			return
		}
		rid := middleware.GetReqID(r.Context())
		if zlog == nil {
			log.Printf("%s %s status=%d dur=%s request_id=%s", r.Method, r.URL.Path, sr.status, dur, rid)
			return
		}
		ev := zlog.Info()
		if sr.status >= http.StatusInternalServerError {
			ev = zlog.Error()
		}
		ev = ev.Str("method", r.Method).Str("path", r.URL.Path).Int("status", sr.status).Dur("dur", dur)
		if rid != "" {
			ev = ev.Str("request_id", rid)
		}
		if lvl >= LevelDebug {
			ev = ev.Str("query", r.URL.RawQuery).Str("remote", r.RemoteAddr)
		}
		ev.Msg("request")
	})
}
