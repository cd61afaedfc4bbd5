package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic log generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalAccessLines = 6400 // must stay below sources.access_tail_lines
	totalErrorLines  = 40
)

var (
	hours      = []string{"10", "11", "12", "13"}
	pages      = []page{{"/", 200, 512}, {"/about", 301, 0}, {"/missing", 404, 153}, {"/api/orders", 502, 166}}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
	errorLevels = []string{"error", "warn", "crit", "notice"}
	uniqueIPs   = 25
)

// ### End - fixed configs

type page struct {
	path   string
	status int
	bytes  int64
}

type rankedEntry struct {
	Key   json.RawMessage `json:"key"`
	Count int64           `json:"count"`
}

type stats struct {
	TotalRequests  int64            `json:"totalRequests"`
	UniqueIPs      int64            `json:"uniqueIps"`
	TotalBandwidth int64            `json:"totalBandwidth"`
	TopPages       []rankedEntry    `json:"topPages"`
	StatusSummary  map[string]int64 `json:"statusSummary"`
	BotRequests    int64            `json:"botRequests"`
	Hourly         []struct {
		Hour  string `json:"hour"`
		Count int64  `json:"count"`
	} `json:"hourly"`
	Errors struct {
		Levels         map[string]int64  `json:"levels"`
		RecentCritical []json.RawMessage `json:"recentCritical"`
	} `json:"errors"`
}

// main runs the e2e scenario: 001_basic_log_snapshot
//
// The scenario appends deterministic nginx access and error log lines from several writers while
// the server keeps refreshing, then asks for a manual refresh and checks the published stats.
//
// Start the server against the scenario's log directory first, for example:
//
//	NGINX_MONITOR_SOURCES_ACCESS_LOG_PATH=$PWD/.tmp/e2e-logs/access.log \
//	NGINX_MONITOR_SOURCES_ERROR_LOG_PATH=$PWD/.tmp/e2e-logs/error.log \
//	go run ./cmd/nginx-monitor
//
// Expected results:
//   - totalRequests is 6400, spread evenly over 4 hours, 4 pages and 4 user agents
//   - every status class holds 1600 requests and 1600 requests come from Googlebot
//   - totalBandwidth is 1600 * (512 + 0 + 153 + 166)
//   - the error summary counts 10 lines per level and keeps the last 5 crit lines
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	logDir := getEnv("LOG_DIR", ".tmp/e2e-logs")
	parallel := getEnvInt("PARALLEL", 4)
	timeout := time.Duration(getEnvInt("TIMEOUT_SECONDS", 30)) * time.Second

	accessPath := filepath.Join(logDir, "access.log")
	errorPath := filepath.Join(logDir, "error.log")

	fmt.Println("Starting e2e scenario: 001_basic_log_snapshot")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("ACCESS_LOG: %s\n", accessPath)
	fmt.Printf("ERROR_LOG: %s\n", errorPath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	if err := os.MkdirAll(logDir, 0755); err != nil {
		exitf("Failed to create log directory: %v", err)
	}
	for _, path := range []string{accessPath, errorPath} {
		if err := os.Truncate(path, 0); err != nil && !os.IsNotExist(err) {
			exitf("Failed to truncate %s: %v", path, err)
		}
	}

	if err := appendConcurrently(accessPath, totalAccessLines, parallel, accessLine); err != nil {
		exitf("Failed to write access log: %v", err)
	}
	if err := appendConcurrently(errorPath, totalErrorLines, 1, errorLine); err != nil {
		exitf("Failed to write error log: %v", err)
	}
	fmt.Printf("Wrote %d access lines and %d error lines\n", totalAccessLines, totalErrorLines)

	got, err := waitForStats(baseURL, timeout)
	if err != nil {
		exitf("%v", err)
	}

	if problems := verify(got); len(problems) > 0 {
		fmt.Fprintln(os.Stderr, "ERROR: unexpected stats")
		for _, problem := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", problem)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func accessLine(i int) string {
	hour := hours[i%len(hours)]
	p := pages[(i/len(hours))%len(pages)]
	agent := userAgents[(i/(len(hours)*len(pages)))%len(userAgents)]
	ip := fmt.Sprintf("10.0.0.%d", i%uniqueIPs+1)

	return fmt.Sprintf(`%s - - [10/Oct/2024:%s:%02d:%02d +0000] "GET %s HTTP/1.1" %d %d "-" "%s"`,
		ip, hour, (i/60)%60, i%60, p.path, p.status, p.bytes, agent)
}

func errorLine(i int) string {
	level := errorLevels[i%len(errorLevels)]
	return fmt.Sprintf(`2024/10/10 13:%02d:%02d [%s] 7#7: *%d upstream failure %d`, i/60, i%60, level, i, i%3)
}

// appendConcurrently splits [0,total) between workers; each line is a single write to an
// O_APPEND handle so lines never interleave.
func appendConcurrently(path string, total, workers int, line func(int) string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < total; i += workers {
				if _, err := file.WriteString(line(i) + "\n"); err != nil {
					errCh <- err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	return <-errCh
}

func waitForStats(baseURL string, timeout time.Duration) (*stats, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	deadline := time.Now().Add(timeout)

	var last *stats
	for time.Now().Before(deadline) {
		resp, err := client.Post(baseURL+"/scheduler/refresh", "application/json", nil)
		if err != nil {
			return nil, fmt.Errorf("refresh request failed: %w", err)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		time.Sleep(200 * time.Millisecond)

		got, statusCode, err := fetchStats(client, baseURL)
		if err != nil {
			return nil, err
		}
		fmt.Printf("GET /stats -> %d\n", statusCode)
		if got != nil {
			last = got
			if got.TotalRequests == totalAccessLines && got.Errors.Levels["crit"] == int64(totalErrorLines/len(errorLevels)) {
				return got, nil
			}
		}
	}
	if last != nil {
		return nil, fmt.Errorf("stats did not settle within %s (last totalRequests=%d)", timeout, last.TotalRequests)
	}
	return nil, fmt.Errorf("no snapshot published within %s", timeout)
}

func fetchStats(client *http.Client, baseURL string) (*stats, int, error) {
	resp, err := client.Get(baseURL + "/stats")
	if err != nil {
		return nil, 0, fmt.Errorf("stats request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	var got stats
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &got, resp.StatusCode, nil
}

func verify(got *stats) []string {
	perBucket := int64(totalAccessLines / 4)
	var problems []string
	expect := func(name string, want, have int64) {
		if want != have {
			problems = append(problems, fmt.Sprintf("%s: want %d, got %d", name, want, have))
		}
	}

	expect("totalRequests", totalAccessLines, got.TotalRequests)
	expect("uniqueIps", int64(uniqueIPs), got.UniqueIPs)
	expect("botRequests", perBucket, got.BotRequests)

	var bandwidth int64
	for _, p := range pages {
		bandwidth += perBucket * p.bytes
	}
	expect("totalBandwidth", bandwidth, got.TotalBandwidth)

	for _, class := range []string{"2xx", "3xx", "4xx", "5xx"} {
		expect("statusSummary."+class, perBucket, got.StatusSummary[class])
	}

	expect("len(topPages)", int64(len(pages)), int64(len(got.TopPages)))
	for _, entry := range got.TopPages {
		expect("topPages "+string(entry.Key), perBucket, entry.Count)
	}

	expect("len(hourly)", int64(len(hours)), int64(len(got.Hourly)))
	for i, bucket := range got.Hourly {
		if i < len(hours) && bucket.Hour != hours[i] {
			problems = append(problems, fmt.Sprintf("hourly[%d]: want hour %s, got %s", i, hours[i], bucket.Hour))
		}
		expect("hourly "+bucket.Hour, perBucket, bucket.Count)
	}

	for _, level := range errorLevels {
		expect("errors.levels."+level, int64(totalErrorLines/len(errorLevels)), got.Errors.Levels[level])
	}
	expect("len(errors.recentCritical)", 5, int64(len(got.Errors.RecentCritical)))

	return problems
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
