// Command smoketest runs a shallow end-to-end check against a running
// boxing-arena API: health, boxer CRUD, ring management and one full
// fight. The first unexpected response aborts the run with exit code 1.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8080/api"

type sampleBoxer struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Height int     `json:"height"`
	Reach  float64 `json:"reach"`
	Age    int     `json:"age"`
}

var sampleBoxers = []sampleBoxer{
	{Name: "Rocky Balboa", Weight: 210, Height: 71, Reach: 74.5, Age: 32},
	{Name: "Apollo Creed", Weight: 205, Height: 74, Reach: 78.0, Age: 34},
	{Name: "Ivan Drago", Weight: 240, Height: 77, Reach: 80.0, Age: 30},
}

type tester struct {
	baseURL  string
	client   *http.Client
	echoJSON bool
}

func main() {
	echoJSON := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--echo-json":
			echoJSON = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown parameter passed: %s\n", arg)
			os.Exit(1)
		}
	}

	baseURL := os.Getenv("BOXING_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	t := &tester{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		echoJSON: echoJSON,
	}

	fmt.Println("Checking health status...")
	t.expect("health check", http.MethodGet, "/health", nil, "success")

	fmt.Println("Checking database connection...")
	t.expect("db check", http.MethodGet, "/db-check", nil, "success")

	// Leftovers from earlier runs would trip the unique-name constraint.
	t.cleanup()

	fmt.Println("Creating boxers...")
	ids := make([]int64, len(sampleBoxers))
	for i, b := range sampleBoxers {
		body := t.expect("create boxer "+b.Name, http.MethodPost, "/create-boxer", b, "success")
		ids[i] = extractBoxerID(body)
	}

	fmt.Println("Fetching boxers...")
	t.expect("get boxer by id", http.MethodGet, fmt.Sprintf("/get-boxer-by-id/%d", ids[0]), nil, "success")
	t.expect("get boxer by name", http.MethodGet, "/get-boxer-by-name/Rocky Balboa", nil, "success")

	fmt.Println("Updating boxer stats...")
	t.expect("update stats", http.MethodPost, "/update-boxer-stats",
		map[string]interface{}{"boxer_id": ids[0], "result": "win"}, "success")

	fmt.Println("Checking fight with an empty ring is rejected...")
	t.expect("clear ring", http.MethodPost, "/clear-ring", nil, "success")
	t.expect("premature fight", http.MethodPost, "/start-fight", nil, "error")

	fmt.Println("Entering the ring...")
	t.expect("first entrant", http.MethodPost, "/enter-ring",
		map[string]interface{}{"boxer_id": ids[0]}, "success")
	t.expect("second entrant", http.MethodPost, "/enter-ring",
		map[string]interface{}{"boxer_id": ids[1]}, "success")
	t.expect("get boxers in ring", http.MethodGet, "/get-boxers", nil, "success")

	fmt.Println("Checking a third entrant is rejected...")
	t.expect("third entrant", http.MethodPost, "/enter-ring",
		map[string]interface{}{"boxer_id": ids[2]}, "error")

	fmt.Println("Starting the fight...")
	t.expect("start fight", http.MethodPost, "/start-fight", nil, "success")

	fmt.Println("Fetching fighting skill...")
	t.expect("fighting skill", http.MethodGet, fmt.Sprintf("/get-fighting-skill?boxer_id=%d", ids[0]), nil, "success")

	fmt.Println("Fetching leaderboard...")
	t.expect("leaderboard by wins", http.MethodGet, "/leaderboard?sort=wins", nil, "success")
	t.expect("leaderboard by win pct", http.MethodGet, "/leaderboard?sort=win_pct", nil, "success")

	fmt.Println("Clearing the ring and deleting boxers...")
	t.expect("clear ring", http.MethodPost, "/clear-ring", nil, "success")
	for _, id := range ids {
		t.expect("delete boxer", http.MethodDelete, fmt.Sprintf("/delete-boxer/%d", id), nil, "success")
	}

	fmt.Println("All smoke tests passed!")
}

// call performs one request and returns the decoded status field plus
// the raw body.
func (t *tester) call(method, path string, payload interface{}) (string, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return "", nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, t.baseURL+path, body)
	if err != nil {
		return "", nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}

	if t.echoJSON {
		fmt.Printf("%s\n", raw)
	}

	var envelope struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", raw, fmt.Errorf("malformed JSON response: %w", err)
	}
	return envelope.Status, raw, nil
}

// expect aborts the whole run on any deviation from the wanted status.
func (t *tester) expect(desc, method, path string, payload interface{}, want string) []byte {
	status, raw, err := t.call(method, path, payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", desc, err)
		os.Exit(1)
	}
	if status != want {
		fmt.Fprintf(os.Stderr, "Failed: %s: expected status %q, got %q (body: %s)\n", desc, want, status, raw)
		os.Exit(1)
	}
	return raw
}

// cleanup deletes sample boxers surviving from a previous run. Best
// effort: missing boxers are fine, anything else is not checked here.
func (t *tester) cleanup() {
	_, _, _ = t.call(http.MethodPost, "/clear-ring", nil)
	for _, b := range sampleBoxers {
		status, raw, err := t.call(http.MethodGet, "/get-boxer-by-name/"+b.Name, nil)
		if err != nil || status != "success" {
			continue
		}
		if id := extractBoxerID(raw); id != 0 {
			_, _, _ = t.call(http.MethodDelete, fmt.Sprintf("/delete-boxer/%d", id), nil)
		}
	}
}

func extractBoxerID(raw []byte) int64 {
	var envelope struct {
		Boxer struct {
			ID int64 `json:"id"`
		} `json:"boxer"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return 0
	}
	return envelope.Boxer.ID
}
