// internal/metrics/metrics.go
package metrics

import (
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"go-atom-model/internal/event"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector собирает метрики цикла отрисовки
type Collector struct {
	registry      *prometheus.Registry
	framesTotal   prometheus.Counter
	frameDuration prometheus.Histogram
	eventsTotal   *prometheus.CounterVec
	rotation      prometheus.Gauge
	windowSize    *prometheus.GaugeVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		framesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "atom_frames_total",
				Help: "Total number of rendered frames",
			},
		),
		frameDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "atom_frame_duration_seconds",
				Help:    "Time spent building and drawing a frame",
				Buckets: []float64{0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1},
			},
		),
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atom_window_events_total",
				Help: "Window events handled by the render loop",
			},
			[]string{"type"},
		),
		rotation: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "atom_rotation_degrees",
				Help: "Accumulated model rotation about the X axis",
			},
		),
		windowSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "atom_window_size",
				Help: "Current window size after the minimum-size clamp",
			},
			[]string{"dimension"},
		),
	}

	c.registry.MustRegister(c.framesTotal)
	c.registry.MustRegister(c.frameDuration)
	c.registry.MustRegister(c.eventsTotal)
	c.registry.MustRegister(c.rotation)
	c.registry.MustRegister(c.windowSize)

	return c
}

// OnEvent считает события окна
func (c *Collector) OnEvent(e event.Event) {
	c.eventsTotal.WithLabelValues(string(e.Type)).Inc()
}

// Subscribe подписывает сборщик на все события цикла
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.Quit, c)
	d.Subscribe(event.Resize, c)
}

func (c *Collector) RecordFrame(duration time.Duration, rotation float64) {
	c.framesTotal.Inc()
	c.frameDuration.Observe(duration.Seconds())
	c.rotation.Set(rotation)
}

func (c *Collector) SetWindow(width, height int) {
	c.windowSize.WithLabelValues("width").Set(float64(width))
	c.windowSize.WithLabelValues("height").Set(float64(height))
}

// Handler отдаёт метрики в формате Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// NewDebugMux — pprof и /metrics на одном mux
func NewDebugMux(c *Collector) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// ServeDebug запускает отладочный сервер в фоне. Пустой адрес — сервер не нужен.
// Ошибки сервера только логируются: отрисовка от него не зависит.
func ServeDebug(addr string, c *Collector, log hclog.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewDebugMux(c),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("debug server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("debug server stopped", "error", err)
		}
	}()
	return srv
}
