// Package rpcclient wraps a raw JSON-RPC connection with the retry and
// timeout behavior the rest of the relayer relies on for the one call that
// has no typed ethclient wrapper: eth_getProof.
package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync/atomic"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

// ClientConfig controls connection and retry behavior for one RPC endpoint.
type ClientConfig struct {
	URL         string        `koanf:"url"`
	Timeout     time.Duration `koanf:"timeout"`
	Retries     uint          `koanf:"retries"`
	ArgLogLimit uint          `koanf:"arg-log-limit"`
	RetryErrors string        `koanf:"retry-errors"`
}

var DefaultClientConfig = ClientConfig{
	Timeout:     30 * time.Second,
	Retries:     3,
	ArgLogLimit: 2048,
	RetryErrors: "connection reset|EOF|timeout",
}

func AddOptions(prefix string, f *flag.FlagSet, defaultConfig *ClientConfig) {
	f.String(prefix+".url", defaultConfig.URL, "RPC endpoint URL")
	f.Duration(prefix+".timeout", defaultConfig.Timeout, "per-call timeout (0 disables)")
	f.Uint(prefix+".retries", defaultConfig.Retries, "number of retries on failure (0 means a single attempt)")
	f.Uint(prefix+".arg-log-limit", defaultConfig.ArgLogLimit, "limit size of arguments in log entries")
	f.String(prefix+".retry-errors", defaultConfig.RetryErrors, "errors matching this regular expression are retried")
}

// Client is a retrying wrapper around *rpc.Client.
type Client struct {
	config ClientConfig
	client *rpc.Client
	logID  uint64
}

// Dial connects to config.URL and returns a ready-to-use Client.
func Dial(ctx context.Context, config ClientConfig) (*Client, error) {
	if config.URL == "" {
		return nil, errors.New("rpcclient: no url configured")
	}
	client, err := rpc.DialContext(ctx, config.URL)
	if err != nil {
		return nil, fmt.Errorf("rpcclient: dialing %s: %w", config.URL, err)
	}
	return &Client{config: config, client: client}, nil
}

// NewWithClient wraps an already-constructed *rpc.Client (for example one
// dialed in-process against a fake server in tests) with the same retry
// behavior Dial provides.
func NewWithClient(client *rpc.Client, config ClientConfig) *Client {
	return &Client{config: config, client: client}
}

func (c *Client) Close() {
	c.client.Close()
}

func limitString(limit int, str string) string {
	if limit == 0 || len(str) <= limit {
		return str
	}
	prefix := str[:limit/2-1]
	postfix := str[len(str)-limit/2+1:]
	return fmt.Sprintf("%v..%v", prefix, postfix)
}

func logArgs(limit int, args ...interface{}) string {
	res := "["
	for i, arg := range args {
		marshalled, err := json.Marshal(arg)
		if err != nil {
			res += "\"CANNOT MARSHAL:" + limitString(limit, err.Error()) + "\""
		} else {
			res += limitString(limit, string(marshalled))
		}
		if i < len(args)-1 {
			res += ", "
		}
	}
	res += "]"
	return res
}

// CallContext invokes method with args, retrying on timeout or on errors
// matching config.RetryErrors, up to config.Retries additional attempts.
func (c *Client) CallContext(ctxIn context.Context, result interface{}, method string, args ...interface{}) error {
	logID := atomic.AddUint64(&c.logID, 1)
	log.Trace("sending RPC request", "method", method, "logId", logID, "args", logArgs(int(c.config.ArgLogLimit), args...))
	var err error
	for i := 0; i < int(c.config.Retries)+1; i++ {
		if ctxIn.Err() != nil {
			return ctxIn.Err()
		}
		var ctx context.Context
		var cancel context.CancelFunc
		if c.config.Timeout > 0 {
			ctx, cancel = context.WithTimeout(ctxIn, c.config.Timeout)
		} else {
			ctx, cancel = context.WithCancel(ctxIn)
		}
		err = c.client.CallContext(ctx, result, method, args...)
		cancel()
		logger := log.Trace
		limit := int(c.config.ArgLogLimit)
		if err != nil {
			logger = log.Debug
			limit = 0
		}
		logger("rpc response", "method", method, "logId", logID, "err", err, "attempt", i, "args", logArgs(limit, args...))
		if err == nil {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			continue
		}
		if c.config.RetryErrors != "" {
			match, regexErr := regexp.MatchString(c.config.RetryErrors, err.Error())
			if regexErr != nil {
				log.Warn("rpcclient: bad value for retry-errors, not retrying", "err", regexErr, "value", c.config.RetryErrors)
			} else if match {
				continue
			}
		}
		return err
	}
	return err
}
