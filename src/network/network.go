package network

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"price-tracker/src/helpers"
	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"
)

type AsyncNetworkManager struct {
	Config         *models.MConfig
	ProxyManager   interfaces.IProxyManager
	Client         *http.Client
	Logger         *logger.Logger
	retryBaseDelay time.Duration
}

// -----------------------------------------------------------------------------

func NewAsyncNetworkManager(cfg *models.MConfig, log *logger.Logger) *AsyncNetworkManager {
	var proxies []string
	if cfg.Network.Enabled {
		proxies = cfg.Network.Proxies
	}

	nm := &AsyncNetworkManager{
		Config:         cfg,
		ProxyManager:   helpers.NewProxyManager(proxies, log),
		Logger:         log,
		retryBaseDelay: time.Second,
	}
	nm.Client = nm.createClient()
	return nm
}

// -----------------------------------------------------------------------------

func (nm *AsyncNetworkManager) createClient() *http.Client {
	transport := &http.Transport{}

	if nm.ProxyManager.HasProxies() {
		proxyStr, err := nm.ProxyManager.GetCurrentProxy()
		if err == nil && proxyStr != "" {
			proxyURL, err := url.Parse(proxyStr)
			if err == nil {
				transport.Proxy = http.ProxyURL(proxyURL)
			}
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(nm.Config.Network.RequestTimeout) * time.Second,
	}
}

// -----------------------------------------------------------------------------

func (nm *AsyncNetworkManager) rotateProxy() {
	if !nm.ProxyManager.HasProxies() {
		return
	}

	nm.ProxyManager.RotateProxy()
	nm.Client = nm.createClient()
}

// -----------------------------------------------------------------------------

// Get performs a GET request with retries and proxy rotation.
func (nm *AsyncNetworkManager) Get(urlStr string, params map[string]string) ([]byte, error) {
	reqUrl, err := url.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	q := reqUrl.Query()
	for k, v := range params {
		q.Add(k, v)
	}
	reqUrl.RawQuery = q.Encode()

	finalUrl := reqUrl.String()

	var body []byte
	attempt := 0

	// MaxRetries counts retries after the first try
	err = helpers.RetryWithBackoff(nm.Logger, "GET "+urlStr, nm.Config.Network.MaxRetries+1, nm.retryBaseDelay, func() error {
		if attempt > 0 {
			nm.rotateProxy()
		}
		attempt++

		req, err := http.NewRequest("GET", finalUrl, nil)
		if err != nil {
			return err
		}

		ua := nm.Config.Network.UserAgent
		if ua == "" {
			ua = nm.ProxyManager.GetUserAgent()
		}
		req.Header.Set("User-Agent", ua)

		resp, err := nm.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == 429 || resp.StatusCode == 403 {
			nm.Logger.Info("Request blocked (%d). Rotating proxy.", resp.StatusCode)
			return fmt.Errorf("blocked (status %d)", resp.StatusCode)
		}
		if resp.StatusCode != 200 {
			return fmt.Errorf("bad status: %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, helpers.NewFetchError("max retries exceeded", err)
	}

	return body, nil
}
