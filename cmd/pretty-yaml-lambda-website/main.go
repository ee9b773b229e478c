// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pkg/errors"

	"prettyyaml.dev/prettyyaml/pkg/cmd"
)

// HandlerAdapter feeds ALB target group events through the format
// service's regular http mux.
type HandlerAdapter struct {
	handler http.Handler
}

func NewHandlerAdapter(handler http.Handler) *HandlerAdapter {
	return &HandlerAdapter{handler: handler}
}

func (h *HandlerAdapter) Proxy(event events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	req, err := requestFromEvent(event)
	if err != nil {
		return events.ALBTargetGroupResponse{StatusCode: http.StatusBadRequest},
			errors.Wrap(err, "converting event to request")
	}

	w := NewProxyResponseWriter()
	h.handler.ServeHTTP(http.ResponseWriter(w), req)

	resp, err := w.GetProxyResponse()
	if err != nil {
		return events.ALBTargetGroupResponse{StatusCode: http.StatusInternalServerError},
			errors.Wrap(err, "generating response")
	}
	return resp, nil
}

func main() {
	websiteOpts := cmd.NewWebsiteOptions()
	lambda.Start(NewHandlerAdapter(websiteOpts.Server().Mux()).Proxy)
}
