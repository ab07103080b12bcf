package settings

import (
	"io/fs"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Loader builds Settings for one profile.
type Loader struct {
	profile Profile
	envFile string
	lookup  func(string) (string, bool)
	logger  log.FieldLogger
	envOnce *sync.Once
}

// Option configures a Loader.
type Option func(*Loader)

// WithProfile selects the source. The default is ProfileEnv.
func WithProfile(p Profile) Option { return func(l *Loader) { l.profile = p } }

// WithEnvFile changes the env file path. An empty path skips the file step.
func WithEnvFile(path string) Option { return func(l *Loader) { l.envFile = path } }

// WithLogger sets the logger used for env file diagnostics.
func WithLogger(logger log.FieldLogger) Option { return func(l *Loader) { l.logger = logger } }

// WithLookup replaces os.LookupEnv. Values from the env file are written to
// the process environment, so a custom lookup does not see them.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(l *Loader) { l.lookup = fn }
}

// NewLoader returns a Loader whose env file step runs at most once.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		profile: ProfileEnv,
		envFile: DefaultEnvFile,
		lookup:  os.LookupEnv,
		logger:  log.StandardLogger(),
		envOnce: new(sync.Once),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// processEnvOnce guards the env file for the package level Load.
var processEnvOnce sync.Once

// Load builds Settings with a loader that shares the process-wide env file
// guard: the first call naming an env file reads it, later calls never read
// one again, whatever path they pass. Calls with an empty path do not count.
func Load(opts ...Option) Settings {
	l := NewLoader(opts...)
	l.envOnce = &processEnvOnce
	return l.Load()
}

// Load never fails. Missing keys are absent in the result.
func (l *Loader) Load() Settings {
	if l.profile == ProfileLiteral {
		l.logger.Warn("settings: using literal placeholder profile")
		return literalSettings()
	}
	if l.envFile != "" {
		l.envOnce.Do(l.loadEnvFile)
	}
	s := Settings{
		profile:   ProfileEnv,
		botToken:  lookupOptional(l.lookup, KeyBotToken),
		llmAPIURL: lookupOptional(l.lookup, KeyLLMAPIURL),
		llmAPIKey: lookupOptional(l.lookup, KeyLLMAPIKey),
		dbURL:     lookupOptional(l.lookup, KeyDBURL),
		dataDir:   DefaultDataDir,
	}
	l.logger.WithField("settings", s.String()).Debug("settings: loaded")
	return s
}

// loadEnvFile merges the env file into the process environment. godotenv
// leaves keys that are already set untouched, so the real environment wins.
func (l *Loader) loadEnvFile() {
	err := godotenv.Load(l.envFile)
	switch {
	case err == nil:
		l.logger.WithField("file", l.envFile).Debug("settings: env file loaded")
	case errors.Is(err, fs.ErrNotExist):
		l.logger.WithField("file", l.envFile).Debug("settings: no env file")
	default:
		l.logger.WithError(err).WithField("file", l.envFile).Warn("settings: env file ignored")
	}
}
