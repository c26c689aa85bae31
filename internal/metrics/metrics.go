// Package metrics 提供Prometheus监控指标
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shiftsolver"

var (
	// HTTPRequestsTotal 请求计数器
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration 请求延迟直方图
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP请求延迟",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"method", "path"},
	)

	// SolverRunsTotal 求解器运行次数，按最终结果分类（solved/unfixable/infeasible）
	SolverRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "runs_total",
			Help:      "求解器运行次数",
		},
		[]string{"outcome"},
	)

	// SolverRunDuration 一次完整求解流水线（贪心退火+修复+补足+扫描）的耗时
	SolverRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "run_duration_seconds",
			Help:      "求解流水线耗时",
			Buckets:   []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0, 120.0},
		},
	)

	// SolverEpochsTotal 退火阶段实际运行的epoch数
	SolverEpochsTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "annealing_epochs",
			Help:      "退火阶段的epoch数",
			Buckets:   []float64{10, 50, 100, 300, 500, 1000},
		},
	)

	// SolverFinalScore 求解完成后的最终分数
	SolverFinalScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "final_score",
			Help:      "最近一次求解的最终分数（越低越好）",
		},
	)

	// UnresolvedAbsolutesTotal 扫描阶段结束后仍未消除的绝对约束违规数
	UnresolvedAbsolutesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "unresolved_absolute_violations",
			Help:      "绝对约束扫描后仍未消除的违规数",
		},
	)

	// FairnessGini 公平性基尼系数
	FairnessGini = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "fairness",
			Name:      "gini",
			Help:      "公平性基尼系数（workload/night/weekend）",
		},
		[]string{"metric_type"},
	)

	// DBConnections 数据库连接池状态
	DBConnections = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "connections",
			Help:      "数据库连接数",
		},
		[]string{"state"},
	)
)

// registry 独立注册表，而非默认的全局注册表，避免与同进程内其它包注册的
// collector 冲突（teacher 的 internal/httpserver 同样用独立 Registry）。
var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		SolverRunsTotal,
		SolverRunDuration,
		SolverEpochsTotal,
		SolverFinalScore,
		UnresolvedAbsolutesTotal,
		FairnessGini,
		DBConnections,
	)
}

// Handler 返回Prometheus抓取端点
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// RecordRequest 记录一次HTTP请求指标
func RecordRequest(method, path string, status int, duration time.Duration) {
	statusStr := http.StatusText(status)
	if statusStr == "" {
		statusStr = "unknown"
	}
	HTTPRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSolverRun 记录一次求解流水线运行结果
func RecordSolverRun(outcome string, duration time.Duration, epochs int, finalScore float64, unresolvedAbsolutes int) {
	SolverRunsTotal.WithLabelValues(outcome).Inc()
	SolverRunDuration.Observe(duration.Seconds())
	SolverEpochsTotal.Observe(float64(epochs))
	SolverFinalScore.Set(finalScore)
	UnresolvedAbsolutesTotal.Set(float64(unresolvedAbsolutes))
}

// RecordFairness 记录一次公平性分析的基尼系数
func RecordFairness(metricType string, gini float64) {
	FairnessGini.WithLabelValues(metricType).Set(gini)
}

// SetDBConnections 更新数据库连接池状态
func SetDBConnections(state string, count float64) {
	DBConnections.WithLabelValues(state).Set(count)
}
