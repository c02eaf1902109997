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

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	cmn "github.com/safecalc/safecalc/pkg/common"
)

// maxBodySize bounds the request body; expressions are short strings.
const maxBodySize = 64 * 1024

var (
	errMissingExpr    = errors.New("missing 'expr'")
	errBadJSON        = errors.New("bad JSON")
	errBadForm        = errors.New("bad form body")
	errBadContentType = errors.New("unsupported content type")
	errMethodNotPost  = errors.New("method not allowed, use POST")
)

// extractExpr pulls the expression out of a request: the "expr" field of a
// JSON body, the "expr" field of a form body, or the "expr" query parameter
// for GET requests.
func extractExpr(r *http.Request) (string, error) {
	if r.Method == http.MethodGet {
		expr := r.URL.Query().Get("expr")
		if expr == "" {
			return "", errMissingExpr
		}
		return expr, nil
	}
	if r.Method != http.MethodPost {
		return "", errMethodNotPost
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)

	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && contentType != "" {
		return "", errBadContentType
	}

	switch mediaType {
	case "application/json", "":
		var req EvalRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			return "", errBadJSON
		}
		if req.Expr == nil {
			return "", errMissingExpr
		}
		return *req.Expr, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return "", errBadForm
		}
		if !r.PostForm.Has("expr") {
			return "", errMissingExpr
		}
		return r.PostForm.Get("expr"), nil
	default:
		return "", errBadContentType
	}
}

// respondJSON encapsulates the common JSON response logic.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		cmn.DebugMsg(cmn.DbgLvlError, "Error encoding JSON response: %v", err)
	}
}
