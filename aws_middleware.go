package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
	"github.com/aws/smithy-go/transport/http"
)

// logRequests adds a finalize step to the s3 client that logs the method, path
// and duration of every request it sends, for use with -verbose.
func logRequests(opt *s3.Options) {
	opt.APIOptions = append(opt.APIOptions, func(stack *middleware.Stack) error {
		return stack.Finalize.Add(middleware.FinalizeMiddlewareFunc(
			"logRequests",
			func(ctx context.Context, in middleware.FinalizeInput, next middleware.FinalizeHandler) (
				out middleware.FinalizeOutput, metadata middleware.Metadata, err error,
			) {
				req, ok := in.Request.(*http.Request)
				if !ok {
					return next.HandleFinalize(ctx, in)
				}

				start := time.Now()
				out, metadata, err = next.HandleFinalize(ctx, in)

				if err != nil {
					log.Printf("s3 %s %s failed after %s: %s",
						req.Method, req.URL.Path, time.Since(start), err)
				} else {
					log.Printf("s3 %s %s completed in %s",
						req.Method, req.URL.Path, time.Since(start))
				}

				return out, metadata, err
			},
		), middleware.After)
	})
}
