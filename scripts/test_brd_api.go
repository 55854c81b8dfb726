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
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{} // refine turns can be slow, no timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(body, &out)
	return out
}

func main() {
	token := os.Getenv("BRD_TEST_TOKEN")
	brdId := os.Getenv("BRD_TEST_ID")
	if token == "" || brdId == "" {
		color.Red("BRD_TEST_TOKEN and BRD_TEST_ID must be set (seed first, then mint a JWT)")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting BRD Refinement API Test\n")

	// 1. Show the document
	color.Yellow("\n1. Show BRD")
	resp, body, err := sendRequest("GET", "/brd/v1/"+brdId, token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 2. Render an annotated section
	color.Yellow("\n2. Render functional_requirements")
	resp, body, err = sendRequest("GET", "/brd/v1/"+brdId+"/section/functional_requirements/render", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 3. Open a refinement session on a selection
	color.Yellow("\n3. Init refinement session")
	initReq := map[string]interface{}{
		"brd_id":        brdId,
		"section_key":   "executive_summary",
		"selected_text": "replaces the legacy inventory tracker",
	}
	resp, body, err = sendRequest("POST", "/refinement/v1/session", token, initReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	initResp := decode(body)
	prettyPrint(initResp)

	data, _ := initResp["data"].(map[string]interface{})
	sessionId, _ := data["session_id"].(string)
	if sessionId == "" {
		color.Red("No session id in response")
		os.Exit(1)
	}

	// 4. First refinement turn
	color.Yellow("\n4. Send instruction")
	msgReq := map[string]interface{}{"instruction": "Make this sentence more concise"}
	resp, body, err = sendRequest("POST", "/refinement/v1/session/"+sessionId+"/message", token, msgReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 5. Accept the refinement into the section
	color.Yellow("\n5. Accept refinement")
	resp, body, err = sendRequest("POST", "/refinement/v1/session/"+sessionId+"/accept", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 6. Kick off AI conflict resolution
	color.Yellow("\n6. Resolve conflict 0 with AI")
	resolveReq := map[string]interface{}{
		"brd_id":             brdId,
		"conflict_position":  0,
		"active_section_key": "executive_summary",
	}
	resp, body, err = sendRequest("POST", "/conflict/v1/resolve-with-ai", token, resolveReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 7. Export
	color.Yellow("\n7. Export BRD")
	resp, body, err = sendRequest("GET", "/brd/v1/"+brdId+"/export", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Cyan("\n✅ Done")
}
