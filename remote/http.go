package remote

import (
	"fmt"
	"io"
	"net/http"
)

const (
	userAgentKey = "user-agent"
	userAgent    = "StrayDragon/guibot"
)

func ReadResponseBody(url string) (io.ReadCloser, error) {
	cl := http.Client{}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(userAgentKey, userAgent)

	resp, err := cl.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error reading response, got status %d from URL %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}
