// Package http provides the HTTP client used to fetch Steam pages and images.
//
// Requests carry a configured User-Agent, are bounded by a per-attempt
// timeout and are retried with exponential backoff on network errors,
// 429 and 5xx responses. Every failure surfaces as a *FetchError.
//
//	client := http.NewClient(http.Options{
//	    Timeout: 30 * time.Second,
//	    Retry:   http.DefaultRetryPolicy(),
//	}, logger)
//
//	html, err := client.GetString(ctx, detailURL)
package http
