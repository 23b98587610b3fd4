// Package statsview serves live runtime graphs (heap, GC, goroutines) while
// the game runs, for watching the tick goroutine and task queue under load.
// The pprof endpoints are served alongside at /debug/pprof/.
package statsview

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/lixenwraith/firemen/core"
)

// Address is the default listen address
const Address = "localhost:12600"

const graphPath = "/debug/statsview"

// Config selects where the server listens and how often graphs sample
type Config struct {
	Addr      string
	Interval  time.Duration
	MaxPoints int
}

// DefaultConfig samples every second and keeps two minutes of history
func DefaultConfig() Config {
	return Config{
		Addr:      Address,
		Interval:  time.Second,
		MaxPoints: 120,
	}
}

// withDefaults fills zero fields from DefaultConfig
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.Interval < time.Millisecond {
		c.Interval = def.Interval
	}
	if c.MaxPoints <= 0 {
		c.MaxPoints = def.MaxPoints
	}
	return c
}

// URL is the page showing the graphs
func (c Config) URL() string {
	return "http://" + c.withDefaults().Addr + graphPath
}

// Server is a running stats viewer
type Server struct {
	cfg Config
	mgr *statsview.ViewManager
}

// Launch configures the viewer and serves it on its own goroutine
// The URL is reported to output
func Launch(cfg Config, output io.Writer) *Server {
	cfg = cfg.withDefaults()

	// The viewer reads its configuration when the manager is built
	viewer.SetConfiguration(
		viewer.WithAddr(cfg.Addr),
		viewer.WithInterval(int(cfg.Interval/time.Millisecond)),
		viewer.WithMaxPoints(cfg.MaxPoints),
	)
	s := &Server{cfg: cfg, mgr: statsview.New()}
	core.Go(func() {
		s.mgr.Start()
	})

	fmt.Fprintf(output, "statsview: serving %s every %s\n", cfg.URL(), cfg.Interval)
	return s
}

// Stop shuts the server down
func (s *Server) Stop() {
	s.mgr.Stop()
}
