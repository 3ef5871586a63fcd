package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair implementing flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command line into a StructuredConfig. Unset flags
// leave their fields zero so other sources can fill them in.
//
//	-a                    server address host:port
//	-provider-address     identity provider address host:port
//	-d                    database DSN
//	-driver               database driver (postgres, sqlite3)
//	-c/-config            JSON config file path
//	-token-sign-key       token signing key
//	-token-issuer         token issuer name
//	-token-duration       token lifetime, e.g. "1h"
//	-code-hash-key        verification code hash key
//	-verification-ttl     verification code lifetime, e.g. "5m"
//	-verification-timeout client-side verification wait, e.g. "60s"
//	-request-timeout      request timeout, e.g. "30s"
//	-session-file         client session token file path
//	-purge-interval       expired attempt purge interval, e.g. "1m"
func ParseFlags() *StructuredConfig {
	var (
		serverAddress, providerAddress NetAddress

		databaseDSN, databaseDriver, jsonConfigPath string
		tokenSignKey, tokenIssuer, codeHashKey      string
		sessionFile                                 string

		tokenDuration, verificationTTL      time.Duration
		verificationTimeout, requestTimeout time.Duration
		purgeInterval                       time.Duration
	)

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&providerAddress, "provider-address", "Identity provider address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (postgres, sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&codeHashKey, "code-hash-key", "", "Verification code hash key")
	flag.DurationVar(&verificationTTL, "verification-ttl", 0, "Verification code lifetime (e.g., 5m)")
	flag.DurationVar(&verificationTimeout, "verification-timeout", 0, "Client verification wait (e.g., 60s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sessionFile, "session-file", "", "Client session token file path")
	flag.DurationVar(&purgeInterval, "purge-interval", 0, "Expired attempt purge interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:        tokenSignKey,
			TokenIssuer:         tokenIssuer,
			TokenDuration:       tokenDuration,
			CodeHashKey:         codeHashKey,
			VerificationTTL:     verificationTTL,
			VerificationTimeout: verificationTimeout,
		},
		Storage: Storage{DB: DB{Driver: databaseDriver, DSN: databaseDSN}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    providerAddress.String(),
			RequestTimeout: requestTimeout,
			SessionFile:    sessionFile,
		},
		Workers:      Workers{PurgeInterval: purgeInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String renders host:port; a fully zero address renders as "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". The port must be a positive integer and any host
// other than "localhost" must be a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
