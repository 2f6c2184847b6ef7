// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package adapters

import (
	"time"

	"github.com/omkarjainak/defisocial/internal/metrics"
)

const (
	TransportDirect = "direct"
	TransportGRPC   = "grpc"
	TransportHTTP   = "http"
)

func observe(transport string, start time.Time, found bool, err error) {
	metrics.UserLookupDuration.WithLabelValues(transport).Observe(time.Since(start).Seconds())

	result := "absent"
	switch {
	case err != nil:
		result = "error"
	case found:
		result = "found"
	}
	metrics.UserLookups.WithLabelValues(transport, result).Inc()
}
