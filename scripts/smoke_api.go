package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"sentinel-kyc-be/pkg/sse"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func get(path string) map[string]interface{} {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	color.Green("Status: %s", resp.Status)

	body, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	json.Unmarshal(body, &parsed)
	return parsed
}

func main() {
	color.Cyan("🚀 Sentinel KYC API smoke test\n")

	color.Yellow("\n1. Health check")
	prettyPrint(get("/health"))

	color.Yellow("\n2. Customers filtered to High risk, sorted by name")
	customers := get("/customers?risk_tier=High&sort_by=legal_name&sort_order=asc")
	if data, ok := customers["data"].([]interface{}); ok {
		color.Green("Got %d customers", len(data))
	}

	color.Yellow("\n3. Customer jurisdictions lookup")
	prettyPrint(get("/customers/jurisdictions"))

	color.Yellow("\n4. Global search for 'Meridian'")
	prettyPrint(get("/search?q=Meridian"))

	color.Yellow("\n5. Dashboard KPIs")
	prettyPrint(get("/dashboard/kpis"))

	color.Yellow("\n6. Quarterly metrics report")
	prettyPrint(get("/reports/quarterly-metrics"))

	color.Yellow("\n7. Compliance narrative stream")
	resp, err := http.Post(baseURL+"/ai/compliance-narrative", "application/json", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	color.Green("Status: %s", resp.Status)

	var parser sse.Parser
	buf := make([]byte, 4096)
reading:
	for {
		n, readErr := resp.Body.Read(buf)
		for _, frame := range parser.Feed(buf[:n]) {
			switch {
			case frame.Done:
				color.Green("\n\nStream complete")
				break reading
			case frame.Err != "":
				color.Red("\nStream error: %s", frame.Err)
				break reading
			default:
				fmt.Print(frame.Text)
			}
		}
		if readErr != nil {
			break
		}
	}

	color.Cyan("\n✅ Smoke test finished")
}
