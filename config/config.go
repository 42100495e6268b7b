// Package config loads the relayer's Configuration from defaults, an
// optional JSON file, environment variables and command-line flags, in that
// order of increasing precedence — the same layering the teacher's
// genericconf/cmd packages use via koanf.
package config

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/xdmrelay/relayer/genericconf"
)

// WalletConfig names the key material the relay signer is built from. The
// signer itself (a keystore, an HSM, a remote signing service) is an
// external collaborator; this struct is only the seam used to construct it.
type WalletConfig struct {
	Pathname   string `koanf:"pathname"`
	Password   string `koanf:"password"`
	PrivateKey string `koanf:"private-key"`
	Account    string `koanf:"account"`
}

var DefaultWalletConfig = WalletConfig{}

func WalletConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".pathname", DefaultWalletConfig.Pathname, "keystore file for the relay signer")
	f.String(prefix+".password", DefaultWalletConfig.Password, "keystore password")
	f.String(prefix+".private-key", DefaultWalletConfig.PrivateKey, "raw hex private key for the relay signer (overrides keystore)")
	f.String(prefix+".account", DefaultWalletConfig.Account, "account address to use from the keystore")
}

// Config is the Configuration entity of §3: every option the relayer
// recognizes, with koanf tags for file/env/flag loading.
type Config struct {
	L1RpcURL string `koanf:"l1-rpc-url"`
	L2RpcURL string `koanf:"l2-rpc-url"`

	StateCommitmentChainAddress    string `koanf:"state-commitment-chain-address"`
	L1CrossDomainMessengerAddress  string `koanf:"l1-cross-domain-messenger-address"`
	L2CrossDomainMessengerAddress  string `koanf:"l2-cross-domain-messenger-address"`
	L2ToL1MessagePasserAddress     string `koanf:"l2-to-l1-message-passer-address"`

	Wallet WalletConfig `koanf:"wallet"`

	L2ChainStartingHeight uint64        `koanf:"l2-chain-starting-height"`
	PollingInterval       time.Duration `koanf:"polling-interval"`
	BlockOffset           uint64        `koanf:"block-offset"`

	ConfigFile string `koanf:"conf.file"`
	EnvPrefix  string `koanf:"conf.env-prefix"`
	LogLevel   string `koanf:"log-level"`
	LogType    string `koanf:"log-type"`

	FileLogging genericconf.FileLoggingConfig `koanf:"file-logging"`
}

var DefaultConfig = Config{
	L2ChainStartingHeight: 0,
	PollingInterval:       5 * time.Second,
	BlockOffset:           0,
	EnvPrefix:             "RELAYER",
	LogLevel:              "info",
	LogType:               "plaintext",
	FileLogging:           genericconf.DefaultFileLoggingConfig,
}

func AddOptions(f *flag.FlagSet) {
	f.String("l1-rpc-url", DefaultConfig.L1RpcURL, "L1 node RPC endpoint")
	f.String("l2-rpc-url", DefaultConfig.L2RpcURL, "L2 node RPC endpoint")
	f.String("state-commitment-chain-address", DefaultConfig.StateCommitmentChainAddress, "L1 StateCommitmentChain contract address")
	f.String("l1-cross-domain-messenger-address", DefaultConfig.L1CrossDomainMessengerAddress, "L1 CrossDomainMessenger contract address")
	f.String("l2-cross-domain-messenger-address", DefaultConfig.L2CrossDomainMessengerAddress, "L2 CrossDomainMessenger contract address")
	f.String("l2-to-l1-message-passer-address", DefaultConfig.L2ToL1MessagePasserAddress, "L2ToL1MessagePasser contract address")
	WalletConfigAddOptions("wallet", f)
	f.Uint64("l2-chain-starting-height", DefaultConfig.L2ChainStartingHeight, "L2 height the cursor starts from on a fresh process")
	f.Duration("polling-interval", DefaultConfig.PollingInterval, "how often the relay loop ticks")
	f.Uint64("block-offset", DefaultConfig.BlockOffset, "L2 genesis offset between event block numbers and state-commitment element indices")
	f.String("conf.file", DefaultConfig.ConfigFile, "optional JSON configuration file")
	f.String("conf.env-prefix", DefaultConfig.EnvPrefix, "environment variables with this prefix are loaded as configuration values")
	f.String("log-level", DefaultConfig.LogLevel, "log verbosity: trace, debug, info, warn, error, crit")
	f.String("log-type", DefaultConfig.LogType, "log output format: plaintext or json")
	genericconf.FileLoggingConfigAddOptions("file-logging", f)
}

// Load layers defaults, an optional config file, environment variables and
// parsed flags into a single Config, mirroring the teacher's
// confmap -> file -> env -> posflag koanf pipeline.
func Load(args []string) (*Config, error) {
	f := flag.NewFlagSet("relayer", flag.ContinueOnError)
	AddOptions(f)
	if err := f.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}

	k := koanf.New(".")

	defaults := map[string]interface{}{
		"l2-chain-starting-height": DefaultConfig.L2ChainStartingHeight,
		"polling-interval":         DefaultConfig.PollingInterval.String(),
		"block-offset":             DefaultConfig.BlockOffset,
		"conf.env-prefix":          DefaultConfig.EnvPrefix,
		"log-level":                DefaultConfig.LogLevel,
		"log-type":                 DefaultConfig.LogType,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	if path, _ := f.GetString("conf.file"); path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading config file %q", path)
		}
	}

	envPrefix, _ := f.GetString("conf.env-prefix")
	if envPrefix != "" {
		err := k.Load(env.Provider(envPrefix+"_", ".", func(s string) string {
			s = strings.TrimPrefix(s, envPrefix+"_")
			return strings.ReplaceAll(strings.ToLower(s), "_", "-")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, "loading environment overrides")
		}
	}

	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, errors.Wrap(err, "loading flag overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling configuration")
	}
	return &cfg, nil
}

// Validate performs the configuration-error sanity checks §4.4's _init
// names that do not require a live RPC round trip.
func (c *Config) Validate() error {
	if c.L1RpcURL == "" {
		return errors.New("config: l1-rpc-url must be set")
	}
	if c.L2RpcURL == "" {
		return errors.New("config: l2-rpc-url must be set")
	}
	for name, addr := range map[string]string{
		"state-commitment-chain-address":    c.StateCommitmentChainAddress,
		"l1-cross-domain-messenger-address": c.L1CrossDomainMessengerAddress,
		"l2-cross-domain-messenger-address": c.L2CrossDomainMessengerAddress,
		"l2-to-l1-message-passer-address":   c.L2ToL1MessagePasserAddress,
	} {
		if !common.IsHexAddress(addr) {
			return errors.Errorf("config: %s is not a valid address: %q", name, addr)
		}
	}
	return nil
}

// Addresses bundles the four contract addresses as common.Address for
// convenient construction of the bound contracts.
type Addresses struct {
	StateCommitmentChain    common.Address
	L1CrossDomainMessenger  common.Address
	L2CrossDomainMessenger  common.Address
	L2ToL1MessagePasser     common.Address
}

func (c *Config) Addresses() Addresses {
	return Addresses{
		StateCommitmentChain:   common.HexToAddress(c.StateCommitmentChainAddress),
		L1CrossDomainMessenger: common.HexToAddress(c.L1CrossDomainMessengerAddress),
		L2CrossDomainMessenger: common.HexToAddress(c.L2CrossDomainMessengerAddress),
		L2ToL1MessagePasser:    common.HexToAddress(c.L2ToL1MessagePasserAddress),
	}
}
