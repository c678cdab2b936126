package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound by [RegisterFlags]. They are read after the
// owning flag set has been parsed.
type Flags struct {
	fs *pflag.FlagSet

	relayAddress    NetAddress
	backendAddress  string
	requestTimeout  time.Duration
	jsonConfigPath  string
	tokenSignKey    string
	tokenIssuer     string
	tokenDuration   time.Duration
	writeInterval   time.Duration
	serialize       bool
	logLevel        string
	logFile         string
	shutdownTimeout time.Duration
}

// RegisterFlags binds all configuration flags to fs.
//
// Flags:
//
//	-a/--address           relay listen address in format host:port
//	-b/--backend           backend base URL
//	-c/--config            json file path with configs
//	--request-timeout      backend request timeout (e.g. "10s")
//	--token-sign-key       relay token signing key
//	--token-issuer         relay token issuer
//	--token-duration       relay token lifetime (e.g. "720h")
//	--write-interval       pause between decoy clipboard writes (e.g. "100ms")
//	--serialize            serialize overlapping sanitize cycles
//	--shutdown-timeout     relay graceful shutdown timeout
//	--log-level            log level
//	--log-file             client log file
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.VarP(&f.relayAddress, "address", "a", "Relay listen address host:port")
	fs.StringVarP(&f.backendAddress, "backend", "b", "", "Backend base URL")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 10s)")
	fs.StringVar(&f.tokenSignKey, "token-sign-key", "", "Relay token signing key")
	fs.StringVar(&f.tokenIssuer, "token-issuer", "", "Relay token issuer")
	fs.DurationVar(&f.tokenDuration, "token-duration", 0, "Relay token lifetime (e.g., 720h)")
	fs.DurationVar(&f.writeInterval, "write-interval", 0, "Pause between decoy clipboard writes (e.g., 100ms)")
	fs.BoolVar(&f.serialize, "serialize", true, "Serialize overlapping sanitize cycles")
	fs.DurationVar(&f.shutdownTimeout, "shutdown-timeout", 0, "Relay graceful shutdown timeout")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")
	fs.StringVar(&f.logFile, "log-file", "", "Client log file")

	return f
}

// Config converts the parsed flag values to a [StructuredConfig]. Flags that
// were not given on the command line stay at their zero value.
func (f *Flags) Config() *StructuredConfig {
	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    f.backendAddress,
			RequestTimeout: f.requestTimeout,
		},
		Relay: Relay{
			HTTPAddress:     f.relayAddress.String(),
			TokenSignKey:    f.tokenSignKey,
			TokenIssuer:     f.tokenIssuer,
			TokenDuration:   f.tokenDuration,
			ShutdownTimeout: f.shutdownTimeout,
		},
		Sanitizer: Sanitizer{
			WriteInterval: f.writeInterval,
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		JSONFilePath: f.jsonConfigPath,
	}

	if f.fs != nil && f.fs.Changed("serialize") {
		serialize := f.serialize
		cfg.Sanitizer.Serialize = &serialize
	}

	return cfg
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
