// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "voyager-client"

// APIClient is the resty client the voyager adapter talks to the server with.
type APIClient struct {
	*resty.Client
}

// NewAPIClient returns a client rooted at baseURL that sends and accepts JSON.
// A zero timeout leaves requests bounded only by their context.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)

	return &APIClient{Client: c}
}
