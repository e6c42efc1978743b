package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout, LLM calls are slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Assistant API Smoke Test\n")

	// 1. List tools
	color.Yellow("\n1. List registered tools")
	resp, body, err := sendRequest("GET", "/tool/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 2. Create a task through the tool surface
	color.Yellow("\n2. Invoke create_task")
	resp, body, err = sendRequest("POST", "/tool/v1/create_task/invoke", map[string]interface{}{
		"args": map[string]interface{}{
			"title":    "Smoke test task",
			"priority": "high",
		},
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 3. Planning chat turn (should persist the exchange)
	color.Yellow("\n3. Chat: planning intent")
	resp, body, err = sendRequest("POST", "/chat/v1", map[string]interface{}{
		"message": "Help me plan my day around the smoke test task",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// Pull the session id out for the follow-up turn
	var envelope struct {
		Data struct {
			SessionId string `json:"session_id"`
		} `json:"data"`
	}
	_ = json.Unmarshal(body, &envelope)

	// 4. Follow-up turn on the same session
	color.Yellow("\n4. Chat: follow-up on session %s", envelope.Data.SessionId)
	resp, body, err = sendRequest("POST", "/chat/v1", map[string]interface{}{
		"message":    "What did I just ask you about?",
		"session_id": envelope.Data.SessionId,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 5. Semantic memory search
	color.Yellow("\n5. Search memory")
	resp, body, err = sendRequest("POST", "/memory/v1/search", map[string]interface{}{
		"query": "smoke test task",
		"limit": 3,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Cyan("\n✅ Smoke test finished")
}
