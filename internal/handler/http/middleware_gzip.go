// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/voyager/internal/logger"
)

// withGZipRequest inflates request bodies sent with "Content-Encoding: gzip".
// Response compression is left to chi's middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("malformed gzip request body")
			writeError(w, r, ErrInvalidJSON)
			return
		}
		defer zr.Close()

		r.Body = gzipBody{Reader: zr, body: r.Body}
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type gzipBody struct {
	io.Reader
	body io.ReadCloser
}

func (b gzipBody) Close() error {
	return b.body.Close()
}
