package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// GetBody performs an http GET with url=u using the supplied client.
func GetBody(ctx context.Context, hc *http.Client, u string) (io.ReadCloser, error) {
	log.Debugf("get: %s", u)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	rsp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}

	if rsp.StatusCode < 200 || rsp.StatusCode >= 300 {
		rsp.Body.Close()
		return nil, fmt.Errorf("error status: %s", rsp.Status)
	}

	return rsp.Body, nil
}

// Get calls GetBody(), then reads the full response and returns the result.
// The request is abandoned if it does not complete within timeout.
func Get(ctx context.Context, hc *http.Client, u string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := GetBody(ctx, hc, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return io.ReadAll(NewContextReader(ctx, body))
}
