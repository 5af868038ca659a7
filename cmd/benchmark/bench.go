// Command benchmark drives an in-process mock server with vegeta and prints
// latency percentiles for one endpoint.
package main

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/nulzo/openai-mock/internal/config"
	"github.com/nulzo/openai-mock/internal/server"
	"github.com/spf13/pflag"
	vegeta "github.com/tsenart/vegeta/v12/lib"
	"go.uber.org/zap"
)

var bodies = map[string]struct {
	path string
	body string
}{
	"completions": {"/v1/completions", `{"model":"gpt-3.5-turbo-instruct","prompt":"Say this is a test %d","max_tokens":32}`},
	"chat":        {"/v1/chat/completions", `{"model":"gpt-4","messages":[{"role":"user","content":"Hello %d"}]}`},
	"embeddings":  {"/v1/embeddings", `{"model":"text-embedding-3-small","input":"benchmark input %d"}`},
}

func main() {
	fs := pflag.NewFlagSet("benchmark", pflag.ExitOnError)
	duration := fs.Duration("duration", 10*time.Second, "duration of the attack")
	rate := fs.Int("rate", 200, "requests per second")
	endpoint := fs.String("endpoint", "chat", "one of completions, chat, embeddings")
	_ = fs.Parse(os.Args[1:])

	target, ok := bodies[*endpoint]
	if !ok {
		log.Fatalf("unknown endpoint %q", *endpoint)
	}

	cfg, err := config.LoadConfig(nil)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Server.Env = "production"
	cfg.Server.EnableLogging = false

	srv, err := server.New(cfg, zap.NewNop(), nil)
	if err != nil {
		log.Fatalf("build server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer "+cfg.Auth.APIKey)
	header.Set("Content-Type", "application/json")

	// vary the body so the synthesizer does not answer one prompt only
	var seq atomic.Uint64
	targeter := func(t *vegeta.Target) error {
		n := seq.Add(1)
		t.Method = http.MethodPost
		t.URL = ts.URL + target.path
		t.Header = header
		t.Body = []byte(fmt.Sprintf(target.body, n%64))
		return nil
	}

	fmt.Printf("Attacking %s at %d req/s for %s...\n", target.path, *rate, *duration)

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "openai-mock") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Printf("Throughput:      %.2f req/s\n", metrics.Throughput)
	fmt.Println("Status codes:    ", statusSummary(metrics.StatusCodes))

	if len(metrics.Errors) > 0 {
		fmt.Println("\nErrors:")
		for i, msg := range metrics.Errors {
			if i == 5 {
				break
			}
			fmt.Println("  -", msg)
		}
	}
}

func statusSummary(codes map[string]int) string {
	out := ""
	for code, n := range codes {
		if out != "" {
			out += " "
		}
		out += code + "=" + strconv.Itoa(n)
	}
	return out
}
