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

package main

// EvalRequest is the JSON body accepted by POST /v1/eval. Expr is a pointer
// so that a missing field (a transport error) can be told apart from an
// empty expression (an evaluation error).
type EvalRequest struct {
	Expr *string `json:"expr"`
}

// EvalSuccess is the response for a successful evaluation.
type EvalSuccess struct {
	OK     bool    `json:"ok"`
	Result float64 `json:"result"`
}

// EvalFailure is the response for an evaluation or transport failure. The
// HTTP status tells the two apart: evaluation errors are 200, transport
// errors are 4xx.
type EvalFailure struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthCheck is the response of the health endpoint.
type HealthCheck struct {
	Status string `json:"status"`
}

// ReadyCheck is the response of the readiness endpoint.
type ReadyCheck struct {
	Status string `json:"status"`
}
