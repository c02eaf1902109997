// Copyright 2024 The SafeCalc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main (healthCheck) is a command line probe that checks whether a
// running SafeCalc API instance is reachable and ready. It is meant for use
// as a container health check and exits 0 on success, 1 on failure.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	cmn "github.com/safecalc/safecalc/pkg/common"
	cfg "github.com/safecalc/safecalc/pkg/config"
)

var config cfg.Config

type statusResponse struct {
	Status string `json:"status"`
}

func genCheckURL(endpoint string) string {
	url := fmt.Sprintf("%s:%d/v1/%s", config.API.Host, config.API.Port, endpoint)
	if strings.EqualFold(strings.TrimSpace(config.API.SSLMode), "enable") {
		return "https://" + url
	}
	return "http://" + url
}

func check(endpoint, wantStatus string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(genCheckURL(endpoint))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // best effort cleanup

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("unreadable response: %v", err)
	}
	if status.Status != wantStatus {
		return fmt.Errorf("service reported %q", status.Status)
	}
	return nil
}

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	probe := flag.String("probe", "health", "Probe to run (health, ready)")
	flag.Parse()

	cmn.InitLogger("healthCheck")

	var err error
	config, err = cfg.LoadConfig(*configFile)
	if err != nil {
		cmn.DebugMsg(cmn.DbgLvlError, "Health check failed to load the configuration: %v", err)
		os.Exit(1)
	}

	switch *probe {
	case "health":
		err = check("health", "OK")
	case "ready":
		err = check("ready", "READY")
	default:
		cmn.DebugMsg(cmn.DbgLvlError, "Unknown probe %q, use health or ready", *probe)
		os.Exit(1)
	}

	if err != nil {
		cmn.DebugMsg(cmn.DbgLvlError, "Health check failed: %v", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}
