package main

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdsolve/dpll"
)

func testCommand(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(stdin))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, out
}

func TestRunSolveSatisfiable(t *testing.T) {
	cmd, out := testCommand("p cnf 2 2\n1 2 0\n-1 2 0\n")

	code, err := runSolve(cmd, "", true, false, false, false, "")
	require.NoError(t, err)
	assert.Equal(t, exitSatisfiable, code)
	assert.Contains(t, out.String(), "v ")
}

func TestRunSolveUnsatisfiable(t *testing.T) {
	cmd, out := testCommand("p cnf 1 2\n1 0\n-1 0\n")

	code, err := runSolve(cmd, "", true, false, false, false, "")
	require.NoError(t, err)
	assert.Equal(t, exitUnsatisfiable, code)
	assert.Empty(t, out.String())
}

func TestRunSolveReportsVerdict(t *testing.T) {
	cmd, out := testCommand("p cnf 1 1\n1 0\n")

	code, err := runSolve(cmd, "", false, false, true, false, "")
	require.NoError(t, err)
	assert.Equal(t, exitSatisfiable, code)
	assert.Contains(t, out.String(), "s SATISFIABLE")
	assert.NotContains(t, out.String(), "v ")
}

func TestRunSolveParseError(t *testing.T) {
	cmd, _ := testCommand("p cnf one 2\n1 0\n")

	_, err := runSolve(cmd, "", true, false, false, false, "")
	assert.Error(t, err)
}

func TestRunSolveMissingFile(t *testing.T) {
	cmd, _ := testCommand("")

	_, err := runSolve(cmd, "/nonexistent/path.cnf", true, false, false, false, "")
	assert.Error(t, err)
}

func TestRunSolveReportStatsPrintsCounters(t *testing.T) {
	cmd, out := testCommand("p cnf 3 3\n1 2 0\n-1 2 0\n-2 3 0\n")

	code, err := runSolve(cmd, "", true, false, false, true, "")
	require.NoError(t, err)
	assert.Equal(t, exitSatisfiable, code)
	assert.Contains(t, out.String(), "c decisions:")
	assert.Contains(t, out.String(), "c propagations:")
	assert.Contains(t, out.String(), "c added:")
}

func TestPrintStatsFormatsAllFields(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, dpll.Stats{Added: 1, Conflicts: 2, Decisions: 3, Propagations: 4, Reports: 5, Fixed: 6})

	for _, want := range []string{
		"c added: 1", "c fixed: 6", "c decisions: 3",
		"c propagations: 4", "c conflicts: 2", "c reports: 5",
	} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestRunSolveMetricsAddrBindsAndExits(t *testing.T) {
	addr := freeAddr(t)
	cmd, _ := testCommand("p cnf 2 2\n1 2 0\n-1 2 0\n")

	code, err := runSolve(cmd, "", true, false, false, false, addr)
	require.NoError(t, err)
	assert.Equal(t, exitSatisfiable, code)
}

func TestRunSolveMetricsAddrRejectsBadAddress(t *testing.T) {
	cmd, _ := testCommand("p cnf 2 2\n1 2 0\n-1 2 0\n")

	_, err := runSolve(cmd, "", true, false, false, false, "not-a-valid-address")
	assert.Error(t, err)
}

func TestServeMetricsExposesCollector(t *testing.T) {
	addr := freeAddr(t)
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "dpll_test_total", Help: "test"})
	counter.Add(7)
	reg.MustRegister(counter)

	srv, err := serveMetrics(addr, reg)
	require.NoError(t, err)
	defer shutdownMetrics(srv)

	body := scrape(t, addr)
	assert.Contains(t, body, "dpll_test_total 7")
}

func TestServeMetricsRejectsBadAddress(t *testing.T) {
	_, err := serveMetrics("not-a-valid-address", prometheus.NewRegistry())
	assert.Error(t, err)
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, levelFromFlags(true, false), levelFromFlags(true, true))
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func scrape(t *testing.T, addr string) string {
	t.Helper()
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(fmt.Sprintf("http://%s/metrics", addr))
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
