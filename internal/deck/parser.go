package deck

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	kiterrors "github.com/cardkit/cardkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDeck loads a deck document from disk, validates it, and returns the
// resulting model.
func ParseDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kiterrors.NewParseError(path, 0, err)
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, kiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDeck(&d); err != nil {
		return nil, err
	}

	return &d, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
