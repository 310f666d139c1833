package server

import (
	"crypto/tls"
	"fmt"
	"net"
	"sync"

	"github.com/dtroode/notes-server/internal/model"
)

var (
	_ model.SecurityLayer = (*TLSListener)(nil)
	_ model.SecurityLayer = (*PlainListener)(nil)
)

// TLSListener opens TLS listeners from a certificate and key on disk.
// The pair is loaded on first use and shared by every listener it opens,
// so the HTTP API and the gRPC health endpoint can use one instance.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string

	once   sync.Once
	config *tls.Config
	err    error
}

// NewTLSListener creates a new TLSListener for the given certificate and key files.
func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

func (l *TLSListener) tlsConfig() (*tls.Config, error) {
	l.once.Do(func() {
		cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
		if err != nil {
			l.err = fmt.Errorf("failed to load TLS certificate: %w", err)
			return
		}
		l.config = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
			// gRPC requires h2 to be negotiated via ALPN.
			NextProtos: []string{"h2", "http/1.1"},
		}
	})
	return l.config, l.err
}

// Listen opens a TLS listener on addr.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cfg, err := l.tlsConfig()
	if err != nil {
		return nil, err
	}
	return tls.Listen(protocol, addr, cfg)
}

// PlainListener opens unencrypted listeners. Used for local development
// or behind a TLS-terminating proxy.
type PlainListener struct{}

// NewPlainListener creates a new PlainListener instance.
func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

// Listen opens a plain listener on addr.
func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
