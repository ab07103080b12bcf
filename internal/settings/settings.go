// Package settings loads the process configuration shared by the bot, the
// LLM client and the database layer.
//
// A Settings value is built once at startup and passed to every component
// that needs it. The loader never fails: keys that are not set come back
// absent, and each consumer checks the keys it needs with Require or Check
// before using them.
package settings

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Environment variable names read by the env profile.
const (
	KeyBotToken  = "BOT_TOKEN"
	KeyLLMAPIURL = "LLM_API_URL"
	KeyLLMAPIKey = "LLM_API_KEY"
	KeyDBURL     = "DB_URL"
)

const (
	DefaultDataDir = "data/html"
	DefaultEnvFile = ".env"
)

// Keys returns the optional keys in declaration order.
func Keys() []string {
	return []string{KeyBotToken, KeyLLMAPIURL, KeyLLMAPIKey, KeyDBURL}
}

type optional struct {
	value string
	set   bool
}

func lookupOptional(lookup func(string) (string, bool), key string) optional {
	v, ok := lookup(key)
	return optional{value: v, set: ok}
}

// Settings is the read-only configuration record. The zero value has every
// optional key absent and an empty data directory; use a Loader to build one.
type Settings struct {
	profile   Profile
	botToken  optional
	llmAPIURL optional
	llmAPIKey optional
	dbURL     optional
	dataDir   string
}

func (s Settings) Profile() Profile { return s.profile }

func (s Settings) BotToken() (string, bool)  { return s.botToken.value, s.botToken.set }
func (s Settings) LLMAPIURL() (string, bool) { return s.llmAPIURL.value, s.llmAPIURL.set }
func (s Settings) LLMAPIKey() (string, bool) { return s.llmAPIKey.value, s.llmAPIKey.set }
func (s Settings) DBURL() (string, bool)     { return s.dbURL.value, s.dbURL.set }

// DataDir is where scraped HTML lives. It is never read from the environment.
func (s Settings) DataDir() string { return s.dataDir }

// DataPath joins elem under the data directory.
func (s Settings) DataPath(elem ...string) string {
	return filepath.Join(append([]string{s.dataDir}, elem...)...)
}

// Lookup returns the value for one of the Key* names. Unknown keys are
// reported absent.
func (s Settings) Lookup(key string) (string, bool) {
	switch key {
	case KeyBotToken:
		return s.BotToken()
	case KeyLLMAPIURL:
		return s.LLMAPIURL()
	case KeyLLMAPIKey:
		return s.LLMAPIKey()
	case KeyDBURL:
		return s.DBURL()
	}
	return "", false
}

// IsSecret reports whether values for key must not be printed verbatim.
func IsSecret(key string) bool {
	return key == KeyBotToken || key == KeyLLMAPIKey || key == KeyDBURL
}

// Display returns the printable form of key's value: "<unset>" when absent,
// redacted when the key is secret, verbatim otherwise.
func (s Settings) Display(key string) string {
	v, ok := s.Lookup(key)
	if !ok {
		return "<unset>"
	}
	if !IsSecret(key) {
		return v
	}
	return Redact(key, v)
}

// Redact masks a secret value. Database URLs keep their host and database
// so operators can tell which server is configured.
func Redact(key, value string) string {
	if value == "" {
		return ""
	}
	if key == KeyDBURL {
		if u, err := url.Parse(value); err == nil && u.Scheme != "" && u.Host != "" {
			// libpq also takes the password as a query parameter.
			if q := u.Query(); q.Has("password") {
				q.Set("password", "xxxxx")
				u.RawQuery = q.Encode()
			}
			return u.Redacted()
		}
	}
	return "****"
}

// String renders every field with secrets redacted, so a Settings can be
// passed to a logger as is.
func (s Settings) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "profile=%s", s.profile)
	for _, k := range Keys() {
		fmt.Fprintf(&b, " %s=%s", k, s.Display(k))
	}
	fmt.Fprintf(&b, " data_dir=%s", s.dataDir)
	return b.String()
}
