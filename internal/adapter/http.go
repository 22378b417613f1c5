// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const apiKeyHeader = "x-api-key"

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authedRequest prepares a request carrying the session token and the API
// key. The platform expects the raw JWT in Authorization, without a scheme.
func authedRequest(ctx context.Context, client *resty.Client, session SessionProvider, apiKey string) (*resty.Request, error) {
	req := client.R().SetContext(ctx)

	token, err := session.Token()
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.SetHeader("Authorization", token)
	}
	if apiKey != "" {
		req.SetHeader(apiKeyHeader, apiKey)
	}

	return req, nil
}
