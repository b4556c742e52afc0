// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics defines the Prometheus collectors exported on GET /metrics.

Collectors are registered on the default registry at init via promauto:

  - toilettalk_db_query_duration_seconds{operation,table}
  - toilettalk_db_query_errors_total{operation,table}
  - toilettalk_api_requests_total{method,endpoint,status_code}
  - toilettalk_api_request_duration_seconds{method,endpoint}
  - toilettalk_api_active_requests
  - toilettalk_messages_posted_total{location_id}
  - toilettalk_messages_deleted_total
  - toilettalk_location_entries_total{result}

The endpoint label is the matched route pattern, not the raw path, so
message ids do not create new series.
*/
package metrics
