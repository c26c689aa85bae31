// Package logger 提供统一的日志框架
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level 日志级别
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config 日志配置
type Config struct {
	Level      string `yaml:"level" json:"level"`
	Format     string `yaml:"format" json:"format"` // json/console
	Output     string `yaml:"output" json:"output"` // stdout/stderr/file
	FilePath   string `yaml:"file_path,omitempty" json:"file_path,omitempty"`
	TimeFormat string `yaml:"time_format,omitempty" json:"time_format,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init 初始化日志器
func Init(cfg Config) {
	once.Do(func() {
		level := parseLevel(cfg.Level)
		zerolog.SetGlobalLevel(level)

		var output io.Writer
		switch cfg.Output {
		case "stderr":
			output = os.Stderr
		case "file":
			if cfg.FilePath != "" {
				f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err == nil {
					output = f
				} else {
					output = os.Stdout
				}
			} else {
				output = os.Stdout
			}
		default:
			output = os.Stdout
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

// parseLevel 解析日志级别
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get 获取日志器
func Get() *zerolog.Logger {
	if logger.GetLevel() == zerolog.Disabled {
		Init(DefaultConfig())
	}
	return &logger
}

// WithContext 从上下文创建日志器
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Get().With().Logger()
	
	// 添加请求ID
	if reqID, ok := ctx.Value("request_id").(string); ok {
		l = l.With().Str("request_id", reqID).Logger()
	}
	
	// 添加组织ID
	if orgID, ok := ctx.Value("org_id").(string); ok {
		l = l.With().Str("org_id", orgID).Logger()
	}
	
	return &l
}

// Debug 记录调试日志
func Debug() *zerolog.Event {
	return Get().Debug()
}

// Info 记录信息日志
func Info() *zerolog.Event {
	return Get().Info()
}

// Warn 记录警告日志
func Warn() *zerolog.Event {
	return Get().Warn()
}

// Error 记录错误日志
func Error() *zerolog.Event {
	return Get().Error()
}

// Fatal 记录致命错误日志
func Fatal() *zerolog.Event {
	return Get().Fatal()
}

// WithError 添加错误信息
func WithError(err error) *zerolog.Event {
	return Get().Error().Err(err)
}

// WithField 添加字段
func WithField(key string, value interface{}) *zerolog.Logger {
	l := Get().With().Interface(key, value).Logger()
	return &l
}

// WithFields 添加多个字段
func WithFields(fields map[string]interface{}) *zerolog.Logger {
	ctx := Get().With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	l := ctx.Logger()
	return &l
}

// SolverLogger is the constraint solver's dedicated logger. One per run,
// tagged with the run id so epoch lines and phase lines can be correlated.
type SolverLogger struct {
	base *zerolog.Logger
}

// NewSolverLogger creates a solver logger scoped to a single run id.
func NewSolverLogger(runID string) *SolverLogger {
	l := Get().With().Str("component", "solver").Str("run_id", runID).Logger()
	return &SolverLogger{base: &l}
}

// StartRun logs the start of a solve over a W-week, E-employee schedule.
func (l *SolverLogger) StartRun(weeks, employees int) {
	l.base.Info().
		Int("weeks", weeks).
		Int("employees", employees).
		Msg("solver run starting")
}

// Phase logs a phase boundary (greedy/repair/fill/sweep) with its outcome score.
func (l *SolverLogger) Phase(name string, score float64, rolledBack bool) {
	l.base.Info().
		Str("phase", name).
		Float64("score", score).
		Bool("rolled_back", rolledBack).
		Msg("phase complete")
}

// Epoch logs greedy-search progress; callers are expected to call this
// every 100 epochs, per the solver's logging contract.
func (l *SolverLogger) Epoch(epoch int, score, temperature float64, accepted bool) {
	l.base.Info().
		Int("epoch", epoch).
		Float64("score", score).
		Float64("temperature", temperature).
		Bool("accepted", accepted).
		Msg("epoch progress")
}

// ConstraintViolation logs a single surviving absolute violation, e.g. at
// the end of the final sweep.
func (l *SolverLogger) ConstraintViolation(kind, detail string) {
	l.base.Warn().
		Str("kind", kind).
		Str("detail", detail).
		Msg("constraint violation")
}

// UnknownKind logs a constraint kind the catalogue doesn't recognise; the
// predicate still returns true (never crash), per the solver's contract.
func (l *SolverLogger) UnknownKind(kind string) {
	l.base.Warn().Str("kind", kind).Msg("unknown constraint kind, treated as satisfied")
}

// RunComplete logs the end of a solve run.
func (l *SolverLogger) RunComplete(duration time.Duration, score float64, unresolvedAbsolutes int) {
	l.base.Info().
		Dur("duration", duration).
		Float64("score", score).
		Int("unresolved_absolutes", unresolvedAbsolutes).
		Msg("solver run complete")
}

