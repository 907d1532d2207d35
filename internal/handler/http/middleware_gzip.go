// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently decompresses request bodies sent with
// "Content-Encoding: gzip". Response compression is left to chi's
// middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			writeFailure(w, r, http.StatusBadRequest, app.MsgInvalidGZipBody)
			return
		}

		r.Body = &pooledGZipBody{Reader: gzipReader, source: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// pooledGZipBody returns its reader to the pool on Close.
type pooledGZipBody struct {
	*gzip.Reader
	source io.Closer
	closed bool
}

func (b *pooledGZipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	_ = b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.source.Close()
}
