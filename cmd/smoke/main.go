package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Manual smoke test for the authenticated shift-edit path: installs a
// session on a running gateway, posts one shift correction and prints
// the responses. Tokens come from the environment so they never land in
// shell history.
func main() {
	var (
		gateway    = flag.String("gateway", "http://localhost:8080", "gateway base URL")
		tournament = flag.Int64("tournament", 0, "tournament id")
		team       = flag.Int64("team", 0, "team id")
		player     = flag.Int64("player", 0, "player id")
		shift      = flag.Float64("shift", 0, "manual shift value")
	)
	flag.Parse()

	if *tournament == 0 || *team == 0 || *player == 0 {
		log.Fatal("usage: smoke -tournament N -team N -player N -shift X")
	}

	access := os.Getenv("AQT_ACCESS_TOKEN")
	refresh := os.Getenv("AQT_REFRESH_TOKEN")
	if access == "" || refresh == "" {
		log.Fatal("AQT_ACCESS_TOKEN and AQT_REFRESH_TOKEN must be set")
	}

	client := &http.Client{Timeout: 10 * time.Second}

	session, _ := json.Marshal(map[string]string{
		"access_token":  access,
		"refresh_token": refresh,
	})
	post(client, *gateway+"/api/auth/session", session)

	body, _ := json.Marshal(map[string]interface{}{
		"team_id":   *team,
		"player_id": *player,
		"shift":     *shift,
	})
	post(client, fmt.Sprintf("%s/api/analytics/%d/shift", *gateway, *tournament), body)
}

func post(client *http.Client, url string, payload []byte) {
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	log.Printf("POST %s -> %d\n%s", url, resp.StatusCode, out)
}
