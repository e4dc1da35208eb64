package network

import (
	"math/rand"
	"net/url"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// Client wraps a browser-profile TLS client with per-host pacing,
// user-agent rotation, and optional proxy rotation. Requests wait on
// the limiter before going out, which replaces ad hoc sleeps between
// fetches.
type Client struct {
	http    tls_client.HttpClient
	rotator *Rotator
	limiter *HostLimiter
	rand    *rand.Rand
}

func NewClient(rotator *Rotator, limiter *HostLimiter) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(30),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:    client,
		rotator: rotator,
		limiter: limiter,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.WaitURL(req.Context(), req.URL.String()); err != nil {
			return nil, err
		}
	}

	proxy, _ := c.rotateProxy()
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.randomUA())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		c.rotator.Report(proxy, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) rotateProxy() (*url.URL, error) {
	if c.rotator == nil {
		return nil, nil
	}
	proxy, err := c.rotator.Next()
	if err != nil {
		return nil, err
	}

	if proxy != nil {
		_ = c.http.SetProxy(proxy.String())
	}
	return proxy, nil
}

func (c *Client) randomUA() string {
	return userAgents[c.rand.Intn(len(userAgents))]
}
