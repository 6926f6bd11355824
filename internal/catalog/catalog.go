// Package catalog loads the static, read-only card reference data a game is
// dealt from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/heroparty/internal/models"
)

//go:embed default.yaml
var defaultCatalog []byte

// CatalogError is a custom error type for catalog validation errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrNoCards         CatalogError = "catalog has no cards"
	ErrNoMonsters      CatalogError = "catalog has no monsters"
	ErrNoLeaders       CatalogError = "catalog has no leaders"
	ErrInvalidCopies   CatalogError = "copies must be at least 1"
	ErrDuplicateID     CatalogError = "duplicate catalog id"
	ErrInvalidCardType CatalogError = "invalid card type"
	ErrMissingOptions  CatalogError = "modifier has no options"
)

// CardEntry is one card definition as written in the catalog document
type CardEntry struct {
	ID              string           `yaml:"id"`
	Type            models.CardType  `yaml:"type"`
	Name            string           `yaml:"name"`
	Class           models.HeroClass `yaml:"class"`
	RollRequirement int              `yaml:"rollRequirement"`
	Effect          string           `yaml:"effect"`
	ModifierOptions []int            `yaml:"modifierOptions"`
	Description     string           `yaml:"description"`
}

type monsterEntry struct {
	ID             string           `yaml:"id"`
	Name           string           `yaml:"name"`
	Requirement    string           `yaml:"requirement"`
	RequiredHeroes int              `yaml:"requiredHeroes"`
	RequiredClass  models.HeroClass `yaml:"requiredClass"`
	SlayTarget     int              `yaml:"slayTarget"`
	FailTarget     int              `yaml:"failTarget"`
	Reward         string           `yaml:"reward"`
	Punishment     string           `yaml:"punishment"`
}

type document struct {
	Copies   int              `yaml:"copies"`
	Leaders  []*models.Leader `yaml:"leaders"`
	Monsters []monsterEntry   `yaml:"monsters"`
	Cards    []CardEntry      `yaml:"cards"`
}

// Catalog is the immutable reference data for a game. It is safe to share
// between sessions; every accessor returns fresh copies.
type Catalog struct {
	copies   int
	leaders  []models.Leader
	monsters []models.Monster
	cards    []CardEntry
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog document from path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a catalog document from r
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		copies: doc.Copies,
		cards:  doc.Cards,
	}
	for _, l := range doc.Leaders {
		c.leaders = append(c.leaders, *l)
	}
	for _, m := range doc.Monsters {
		c.monsters = append(c.monsters, models.Monster{
			ID:              m.ID,
			Name:            m.Name,
			RequirementText: m.Requirement,
			RequiredHeroes:  m.RequiredHeroes,
			RequiredClass:   m.RequiredClass,
			SlayTarget:      m.SlayTarget,
			FailTarget:      m.FailTarget,
			Reward:          m.Reward,
			Punishment:      m.Punishment,
		})
	}

	return c, nil
}

func (d *document) validate() error {
	if d.Copies == 0 {
		d.Copies = 1
	}
	if d.Copies < 1 {
		return ErrInvalidCopies
	}
	if len(d.Cards) == 0 {
		return ErrNoCards
	}
	if len(d.Monsters) == 0 {
		return ErrNoMonsters
	}
	if len(d.Leaders) == 0 {
		return ErrNoLeaders
	}

	seen := make(map[string]bool)
	check := func(id string) error {
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
		return nil
	}

	for _, l := range d.Leaders {
		if err := check(l.ID); err != nil {
			return err
		}
	}
	for _, m := range d.Monsters {
		if err := check(m.ID); err != nil {
			return err
		}
	}
	for _, card := range d.Cards {
		if err := check(card.ID); err != nil {
			return err
		}
		switch card.Type {
		case models.CardTypeHero, models.CardTypeItem, models.CardTypeMagic,
			models.CardTypeModifier, models.CardTypeChallenge:
		default:
			return fmt.Errorf("%w: %q on %s", ErrInvalidCardType, card.Type, card.ID)
		}
		if card.Type == models.CardTypeModifier {
			candidate := models.Card{Name: card.Name, ModifierOptions: card.ModifierOptions}
			if len(candidate.Options()) == 0 {
				return fmt.Errorf("%w: %s", ErrMissingOptions, card.ID)
			}
		}
	}

	return nil
}

// Copies is the number of physical copies dealt per card entry
func (c *Catalog) Copies() int {
	return c.copies
}

// Cards returns the card entries
func (c *Catalog) Cards() []CardEntry {
	out := make([]CardEntry, len(c.cards))
	copy(out, c.cards)
	return out
}

// Leaders returns fresh copies of every party leader
func (c *Catalog) Leaders() []*models.Leader {
	out := make([]*models.Leader, 0, len(c.leaders))
	for _, l := range c.leaders {
		leader := l
		out = append(out, &leader)
	}
	return out
}

// Monsters returns fresh copies of every monster
func (c *Catalog) Monsters() []*models.Monster {
	out := make([]*models.Monster, 0, len(c.monsters))
	for _, m := range c.monsters {
		monster := m
		out = append(out, &monster)
	}
	return out
}

// NewCard builds a physical card from entry with the given instance id
func (e CardEntry) NewCard(instanceID string) *models.Card {
	card := &models.Card{
		InstanceID:      instanceID,
		CatalogID:       e.ID,
		Type:            e.Type,
		Name:            e.Name,
		Class:           e.Class,
		RollRequirement: e.RollRequirement,
		Effect:          e.Effect,
		Description:     e.Description,
	}
	if len(e.ModifierOptions) > 0 {
		card.ModifierOptions = append([]int(nil), e.ModifierOptions...)
	}
	return card
}

// MustDefault returns the embedded catalog and panics if it is invalid. The
// embedded document is covered by tests, so this only fails on a bad build.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(errors.Join(errors.New("embedded catalog is invalid"), err))
	}
	return c
}
