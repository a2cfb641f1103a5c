package validate

import (
	"embed"
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/moebuff/lang/pkg/config"
)

// EnvPrefix is prepended to the env tags of Messages by MessagesFromEnv.
const EnvPrefix = "VALIDATE_"

// ErrInvalidCatalog is returned by ParseMessages and MessagesFromEnv for
// malformed input, including a ValidIndex message that cannot take the index.
var ErrInvalidCatalog = errors.New("invalid message catalog")

// Messages holds the default message of every check.
// ValidIndex is a template receiving the offending index as its only operand.
type Messages struct {
	IsTrue     string `yaml:"is_true" env:"IS_TRUE"`
	NotNull    string `yaml:"not_null" env:"NOT_NULL"`
	NotEmpty   string `yaml:"not_empty" env:"NOT_EMPTY"`
	NotBlank   string `yaml:"not_blank" env:"NOT_BLANK"`
	ValidIndex string `yaml:"valid_index" env:"VALID_INDEX"`
}

//go:embed catalog/*.yaml
var catalogFS embed.FS

var (
	// Order matters: the first tag is the matcher's fallback.
	catalogTags = []language.Tag{language.English, language.Chinese}
	catalogs    = loadCatalogs(catalogTags)
	matcher     = language.NewMatcher(catalogTags)
)

func loadCatalogs(tags []language.Tag) []Messages {
	out := make([]Messages, len(tags))
	for i, tag := range tags {
		data, err := catalogFS.ReadFile(fmt.Sprintf("catalog/%s.yaml", tag))
		if err != nil {
			panic(fmt.Errorf("validate: missing catalog for %s: %w", tag, err))
		}
		var m Messages
		if err := yaml.Unmarshal(data, &m); err != nil {
			panic(fmt.Errorf("validate: catalog %s: %w", tag, err))
		}
		out[i] = m
	}
	return out
}

// DefaultMessages returns the English messages used by the package-level functions.
func DefaultMessages() Messages {
	return catalogs[0]
}

// MessagesFor returns the built-in catalog that best matches tag.
// Unsupported languages get English.
//
//	MessagesFor(language.SimplifiedChinese).IsTrue == "表达式不成立"
func MessagesFor(tag language.Tag) Messages {
	_, idx, _ := matcher.Match(tag)
	return catalogs[idx]
}

// ParseMessages decodes a YAML catalog. Keys that are missing or empty keep
// their English default.
//
//	m, err := validate.ParseMessages([]byte("valid_index: \"no element at %d\""))
func ParseMessages(data []byte) (Messages, error) {
	var m Messages
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Messages{}, errors.Join(ErrInvalidCatalog, err)
	}
	return m.checked()
}

// MessagesFromEnv reads messages from VALIDATE_IS_TRUE, VALIDATE_NOT_NULL,
// VALIDATE_NOT_EMPTY, VALIDATE_NOT_BLANK and VALIDATE_VALID_INDEX.
// Options are passed to config.Load after the default prefix, so
// config.WithPrefix overrides it. Unset variables keep their English default.
func MessagesFromEnv(opts ...config.Option) (Messages, error) {
	var m Messages
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&m, opts...); err != nil {
		return Messages{}, err
	}
	return m.checked()
}

// checked fills in defaults and rejects a ValidIndex message that fmt cannot
// apply to a single int.
func (m Messages) checked() (Messages, error) {
	m = m.withDefaults()
	if !takesIndex(m.ValidIndex) {
		return Messages{}, fmt.Errorf("%w: valid_index %q must take the index as its only operand", ErrInvalidCatalog, m.ValidIndex)
	}
	return m, nil
}

func takesIndex(format string) bool {
	return checkTemplate(format, []any{0})
}

func (m Messages) withDefaults() Messages {
	def := DefaultMessages()
	if m.IsTrue == "" {
		m.IsTrue = def.IsTrue
	}
	if m.NotNull == "" {
		m.NotNull = def.NotNull
	}
	if m.NotEmpty == "" {
		m.NotEmpty = def.NotEmpty
	}
	if m.NotBlank == "" {
		m.NotBlank = def.NotBlank
	}
	if m.ValidIndex == "" {
		m.ValidIndex = def.ValidIndex
	}
	return m
}
