// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// ProxyResponseWriter implements http.ResponseWriter and collects the
// response into an ALB target group response.
type ProxyResponseWriter struct {
	headers http.Header
	body    bytes.Buffer
	status  int
}

var _ http.ResponseWriter = &ProxyResponseWriter{}

func NewProxyResponseWriter() *ProxyResponseWriter {
	return &ProxyResponseWriter{
		headers: make(http.Header),
		status:  0,
	}
}

func (w *ProxyResponseWriter) Header() http.Header {
	return w.headers
}

func (w *ProxyResponseWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(data)
}

func (w *ProxyResponseWriter) WriteHeader(status int) {
	w.status = status
}

func (w *ProxyResponseWriter) GetProxyResponse() (events.ALBTargetGroupResponse, error) {
	if w.status == 0 {
		return events.ALBTargetGroupResponse{}, errors.New("status code not set on response")
	}

	headers := map[string]string{}
	for k, vs := range w.headers {
		headers[k] = vs[len(vs)-1]
	}

	return events.ALBTargetGroupResponse{
		StatusCode:      w.status,
		StatusDescription: http.StatusText(w.status),
		Headers:         headers,
		Body:            w.body.String(),
		IsBase64Encoded: false,
	}, nil
}
