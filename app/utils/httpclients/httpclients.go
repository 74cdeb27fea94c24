package httpclients

import (
	"time"

	"gametrack.gg/stats-api/app/utils/logger"
	"gametrack.gg/stats-api/config/environment_variables"
	"resty.dev/v3"
)

// RetryPolicy bounds upstream retries. The reference behaviour is a fixed
// number of immediate attempts; callers that need pacing set Backoff.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	attempts := environment_variables.EnvironmentVariables.HTTP_RETRY_COUNT
	if attempts <= 0 {
		attempts = 3
	}
	return RetryPolicy{Attempts: attempts}
}

// NewClient builds a named resty client with the default retry policy.
func NewClient(name string) *resty.Client {
	return NewClientWithRetry(name, DefaultRetryPolicy())
}

// NewClientWithRetry builds a named resty client with an explicit retry policy.
func NewClientWithRetry(name string, policy RetryPolicy) *resty.Client {
	client := resty.New().
		SetHeader("User-Agent", "stats-api/"+name).
		SetTimeout(30 * time.Second)
	if policy.Attempts > 1 {
		// resty counts retries on top of the initial attempt.
		client.SetRetryCount(policy.Attempts - 1)
		client.SetRetryWaitTime(policy.Backoff)
		client.SetRetryMaxWaitTime(policy.Backoff)
	}
	client.SetLogger(logger.GetLogger())
	return client
}
