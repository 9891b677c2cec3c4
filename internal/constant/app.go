package constant

import "time"

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	QUERY_TIMEOUT_DURATION = 5 * time.Second
)

const (
	DefaultPageSize uint = 20
	MaxPageSize     uint = 100
)

const (
	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)
