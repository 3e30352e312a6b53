package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/oghanim/triviarena/internal/game"
)

// Bounds for session settings. UpdateSettings rejects values outside
// these ranges.
const (
	MinBoardSize       = 3
	MaxBoardSize       = 7
	MinMaxParticipants = 2
	MaxMaxParticipants = 10
)

// Defaults applied to every new session until the GM edits them.
const (
	DefaultBoardSize       = 5
	DefaultMaxParticipants = 8
)

type abilityEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type rawConfig struct {
	AbilityList []abilityEntry `json:"ability_list"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional prompt template used to generate category labels. Use the
	// token {{count}} where the number of categories will be substituted.
	// If not provided, a sensible default is used by the generator.
	CategoryPrompt string `json:"category_prompt"`
}

// LoadedConfig contains the default ability catalog seeded into new
// sessions and the server address to bind to.
type LoadedConfig struct {
	Abilities     []game.AbilityDef
	ServerAddress string
	// Optional category prompt template loaded from config
	CategoryPromptTemplate string
}

// LoadConfig reads the configuration file at path. It requires the key
// `ability_list` (snake_case) with at least one entry; entries may have
// blank names as placeholders for the GM to edit in the lobby.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.AbilityList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: ability_list is empty (provide 'ability_list' array)", path)
	}

	out := make([]game.AbilityDef, 0, len(entries))
	for i, a := range entries {
		out = append(out, game.AbilityDef{
			Position:    i,
			Name:        strings.TrimSpace(a.Name),
			Description: strings.TrimSpace(a.Description),
		})
	}

	// Cross-entry validation: non-blank names must be unique
	// (case-insensitive) so manual assignment by name is unambiguous.
	nameSet := make(map[string]struct{}, len(out))
	for _, a := range out {
		if a.Name == "" {
			continue
		}
		ln := strings.ToLower(a.Name)
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate ability name '%s'", path, a.Name)
		}
		nameSet[ln] = struct{}{}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Abilities:              out,
		ServerAddress:          addr,
		CategoryPromptTemplate: strings.TrimSpace(rc.CategoryPrompt),
	}, nil
}
