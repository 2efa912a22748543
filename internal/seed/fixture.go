// Package seed наполняет базу демонстрационными данными через бизнес-логику сервиса,
// поэтому все сгенерированные записи проходят те же проверки, что и запросы API.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/skills.yaml
var skillsFixture []byte

// Fixture статические данные для наполнения.
type Fixture struct {
	Skills []string `yaml:"skills"`
}

// LoadFixture разбирает встроенный YAML с каталогом навыков.
func LoadFixture() (Fixture, error) {
	return ParseFixture(skillsFixture)
}

// ParseFixture разбирает YAML с каталогом навыков.
func ParseFixture(data []byte) (Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	if len(fixture.Skills) < 2 {
		return Fixture{}, fmt.Errorf("seed fixture must list at least two skills, got %d", len(fixture.Skills))
	}
	return fixture, nil
}
