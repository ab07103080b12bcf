package settings

import (
	"strings"

	"github.com/pkg/errors"
)

// MissingError names configuration keys a consumer needs but that were
// never set.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Keys, ", ")
}

// IsMissing reports whether err is, or wraps, a *MissingError.
func IsMissing(err error) bool {
	var me *MissingError
	return errors.As(err, &me)
}

// Require returns a *MissingError listing every absent key, in the order
// given. An empty value counts as present.
func (s Settings) Require(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := s.Lookup(k); !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}

var requirements = map[string][]string{
	"bot": {KeyBotToken},
	"llm": {KeyLLMAPIURL, KeyLLMAPIKey},
	"db":  {KeyDBURL},
}

// Consumers returns the known consumer names in a stable order.
func Consumers() []string { return []string{"bot", "llm", "db"} }

// Requirements returns the keys a consumer needs.
func Requirements(consumer string) ([]string, error) {
	keys, ok := requirements[consumer]
	if !ok {
		return nil, errors.Errorf("unknown consumer %q", consumer)
	}
	return append([]string(nil), keys...), nil
}

// Check runs Require for the union of the consumers' keys. With no
// arguments every consumer is checked.
func (s Settings) Check(consumers ...string) error {
	if len(consumers) == 0 {
		consumers = Consumers()
	}
	var keys []string
	seen := map[string]bool{}
	for _, c := range consumers {
		req, err := Requirements(c)
		if err != nil {
			return err
		}
		for _, k := range req {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return s.Require(keys...)
}
