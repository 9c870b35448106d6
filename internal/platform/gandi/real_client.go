package gandi

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/kolo/xmlrpc"
)

// DefaultEndpoint is the production hosting API endpoint.
const DefaultEndpoint = "https://rpc.gandi.net/xmlrpc/"

// EnvDebug enables RPC call logging on stderr when set.
const EnvDebug = "GANDI_DEBUG"

// rpcCaller is the slice of the XML-RPC client the RealClient needs.
// Tests substitute it to avoid the network.
type rpcCaller interface {
	Call(serviceMethod string, args interface{}, reply interface{}) error
}

// RealClient implements Client against the Gandi hosting XML-RPC API.
// The API key travels as the first positional argument of every call.
type RealClient struct {
	apiKey    string
	endpoint  string
	transport http.RoundTripper
	rpc       rpcCaller
	debug     bool
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint points the client at a non-default API endpoint, e.g. the
// OTE test platform.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = endpoint
	}
}

// WithTransport sets a custom HTTP transport for the XML-RPC client.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *RealClient) {
		c.transport = rt
	}
}

// WithRPC sets a custom XML-RPC caller (useful for testing).
func WithRPC(rpc rpcCaller) ClientOption {
	return func(c *RealClient) {
		c.rpc = rpc
	}
}

// NewRealClient creates a RealClient with optional configuration.
func NewRealClient(apiKey string, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		debug:    os.Getenv(EnvDebug) != "",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rpc == nil {
		rpc, err := xmlrpc.NewClient(c.endpoint, c.transport)
		if err != nil {
			return nil, err
		}
		c.rpc = rpc
	}
	return c, nil
}

var _ Client = (*RealClient)(nil)

// call issues one RPC. The context is only consulted for cancellation
// before the call is placed; in-flight calls run to completion under
// whatever deadline the transport imposes.
func (c *RealClient) call(ctx context.Context, method string, args []interface{}, reply interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.debug {
		log.Printf("gandi: %s", method)
	}
	return wrapFault(c.rpc.Call(method, args, reply))
}

// args prepends the API key to the positional argument list.
func (c *RealClient) args(rest ...interface{}) []interface{} {
	return append([]interface{}{c.apiKey}, rest...)
}
