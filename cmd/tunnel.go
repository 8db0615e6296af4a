package main

import (
	"context"
	"fmt"
	"net"

	"golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"
)

// listen opens the server listener. With an ngrok authtoken the listener is
// a public HTTPS endpoint and its URL is returned.
func listen(ctx context.Context, addr, ngrokToken string) (net.Listener, string, error) {
	if ngrokToken == "" {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, "", fmt.Errorf("listen on %s: %w", addr, err)
		}
		return ln, "", nil
	}

	tun, err := ngrok.Listen(ctx, ngrokconfig.HTTPEndpoint(), ngrok.WithAuthtoken(ngrokToken))
	if err != nil {
		return nil, "", fmt.Errorf("start ngrok tunnel: %w", err)
	}
	return tun, tun.URL(), nil
}
