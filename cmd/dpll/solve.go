package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cdsolve/dpll"
	"github.com/cdsolve/dpll/internal/metrics"
	"github.com/cdsolve/dpll/internal/solverlog"
)

// metricsShutdownGrace is how long the metrics HTTP server is kept alive
// after Solve returns, so a scraper polling --metrics-addr can still pull
// the final Stats for this run before the process exits.
const metricsShutdownGrace = 500 * time.Millisecond

func newSolveCmd(v *viper.Viper) *cobra.Command {
	var (
		quiet       bool
		verbose     bool
		noWitness   bool
		reportStats bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "solve [path]",
		Short: "Solve a DIMACS CNF file, or read it from stdin if path is omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag("quiet", cmd.Flags().Lookup("quiet")); err != nil {
				return err
			}
			if err := v.BindPFlag("verbose", cmd.Flags().Lookup("verbose")); err != nil {
				return err
			}
			quiet = v.GetBool("quiet")
			verbose = v.GetBool("verbose")

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			code, err := runSolve(cmd, path, quiet, verbose, noWitness, reportStats, metricsAddr)
			if err != nil {
				return err
			}
			osExit(code)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output and the s-line verdict (the exit code still reports it)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every assign/decide/backtrack event")
	cmd.Flags().BoolVarP(&noWitness, "no-witness", "n", false, "do not print the satisfying model")
	cmd.Flags().BoolVar(&reportStats, "report-stats", false, "print Stats counters after solving")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "",
		"if set, serve this run's Stats as Prometheus metrics at http://<addr>/metrics")

	return cmd
}

// statsRecorder wraps a dpll.MetricsSink and remembers the last Stats it
// observed, so runSolve can print them for --report-stats without Solve
// having to return Stats directly.
type statsRecorder struct {
	inner dpll.MetricsSink
	last  dpll.Stats
}

func (s *statsRecorder) Observe(st dpll.Stats) {
	s.last = st
	if s.inner != nil {
		s.inner.Observe(st)
	}
}

// runSolve performs the parse/solve/report cycle and returns the process
// exit code to use on success (10 satisfiable, 20 unsatisfiable), or a
// non-nil error for anything that should abort with exitError instead.
func runSolve(cmd *cobra.Command, path string, quiet, verbose, noWitness, reportStats bool, metricsAddr string) (int, error) {
	var r io.Reader
	filename := path
	if path == "" {
		r = cmd.InOrStdin()
		filename = "<stdin>"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return 0, errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		r = f
	}

	cnf, err := dpll.ParseDIMACS(r, filename)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return 0, err
	}

	log := solverlog.NewCLILogger(cmd.ErrOrStderr(), levelFromFlags(quiet, verbose))
	tracer := solverlog.New(log.WithField("cmd", "solve"))
	collector := metrics.NewCollector()
	recorder := &statsRecorder{inner: collector}

	var srv *http.Server
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		if err := reg.Register(collector); err != nil {
			return 0, errors.Wrapf(err, "registering metrics collector")
		}
		srv, err = serveMetrics(metricsAddr, reg)
		if err != nil {
			return 0, err
		}
		if !quiet {
			log.Infof("serving metrics at http://%s/metrics", metricsAddr)
		}
		defer shutdownMetrics(srv)
	}

	start := time.Now()
	model, ok := dpll.Solve(cnf,
		dpll.WithTraceLogger(tracer),
		dpll.WithMetricsSink(recorder),
	)
	elapsed := time.Since(start)

	if !quiet {
		log.Infof("solved %s in %s", filename, elapsed)
	}
	if reportStats {
		printStats(cmd.OutOrStdout(), recorder.last)
	}

	if !ok {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "s UNSATISFIABLE")
		}
		return exitUnsatisfiable, nil
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "s SATISFIABLE")
	}
	if !noWitness {
		fmt.Fprintln(cmd.OutOrStdout(), model.WitnessLine())
	}
	if !model.Verify(cnf) {
		return 0, errors.New("internal error: model failed independent verification")
	}
	return exitSatisfiable, nil
}

func printStats(w io.Writer, s dpll.Stats) {
	fmt.Fprintf(w, "c added: %d\n", s.Added)
	fmt.Fprintf(w, "c fixed: %d\n", s.Fixed)
	fmt.Fprintf(w, "c decisions: %d\n", s.Decisions)
	fmt.Fprintf(w, "c propagations: %d\n", s.Propagations)
	fmt.Fprintf(w, "c conflicts: %d\n", s.Conflicts)
	fmt.Fprintf(w, "c reports: %d\n", s.Reports)
}

// serveMetrics binds addr and starts serving reg's metrics at /metrics in
// the background. The listener is bound synchronously so a bad address
// is reported immediately instead of being lost in a goroutine.
func serveMetrics(addr string, reg *prometheus.Registry) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "binding metrics listener on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux}
	go func() {
		_ = srv.Serve(ln)
	}()
	return srv, nil
}

// shutdownMetrics gives a scraper a short window to pull the final Stats
// for this run before tearing the listener down.
func shutdownMetrics(srv *http.Server) {
	time.Sleep(metricsShutdownGrace)
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownGrace)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// osExit is a var so tests can stub it out instead of terminating the
// test binary.
var osExit = os.Exit

func levelFromFlags(quiet, verbose bool) solverlog.Level {
	switch {
	case quiet:
		return solverlog.Quiet
	case verbose:
		return solverlog.Verbose
	default:
		return solverlog.Normal
	}
}
