// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// requestFromEvent rebuilds the http.Request the load balancer saw. The
// format service only routes on path and query, so the request URL stays
// relative; the original Host travels via headers.
func requestFromEvent(event events.ALBTargetGroupRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, errors.Wrap(err, "decoding base64 request body")
		}
		body = decoded
	}

	path := event.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	query := url.Values{}
	for key, vals := range event.MultiValueQueryStringParameters {
		for _, val := range vals {
			query.Add(key, val)
		}
	}
	target := url.URL{Path: path, RawQuery: query.Encode()}

	req, err := http.NewRequest(strings.ToUpper(event.HTTPMethod), target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "building request for '%s'", target.String())
	}

	for name, vals := range event.MultiValueHeaders {
		for _, val := range vals {
			req.Header.Add(name, val)
		}
	}
	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}

	return req, nil
}
