package transport

import "go.uber.org/zap"

// Option is a functional option for configuring an Outbound client.
//
// Options are applied once in NewOutbound; the client is immutable
// afterwards and safe to share between goroutines.
type Option func(*Outbound)

// WithDialer replaces the network dialer. Tests substitute an in-memory
// dialer here; production code rarely needs it.
func WithDialer(d Dialer) Option {
	return func(o *Outbound) { o.dialer = d }
}

// WithPort changes the destination port from the default 80.
func WithPort(port int) Option {
	return func(o *Outbound) { o.port = port }
}

// WithPath changes the request path from DefaultPath.
func WithPath(path string) Option {
	return func(o *Outbound) { o.path = path }
}

// WithLogger sets the logger request activity is reported to. The default
// discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *Outbound) { o.log = log }
}
