package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	ECBURL = "https://data-api.ecb.europa.eu/service/data/EXR"

	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultBackoff    = 2 * time.Second

	csvDataFormat = "csvdata"
)

var (
	ErrClient          = errors.New("client error")
	ErrServer          = errors.New("server error")
	ErrUnknown         = errors.New("unknown error")
	ErrEmptyResponse   = errors.New("empty response")
	ErrFetchFailed     = errors.New("fetch failed")
	ErrFetcherNotFound = errors.New("fetcher is not found")
)

// FetchError is returned once every attempt for a pair has failed. Err is the last cause.
type FetchError struct {
	Pair     string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s after %d attempts: %v", e.Pair, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

func handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrClient, res.StatusCode)
	case res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServer, res.StatusCode)
	default:
		return fmt.Errorf("%w: status %d", ErrUnknown, res.StatusCode)
	}
}

func getData(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "text/csv")

	q := req.URL.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}

	req.URL.RawQuery = q.Encode()

	return req, nil
}
