package entities

import "fmt"

// MonsterInfo holds the default stats for a monster letter
type MonsterInfo struct {
	Name   string
	HP     int
	Damage int
	Tier   int
	Icon   rune
}

// MonsterTypes maps room-file letters to monster defaults
var MonsterTypes = map[byte]MonsterInfo{
	'G': {Name: "Goblin", HP: 3, Damage: 1, Tier: 1, Icon: '☘'},
	'O': {Name: "Orc", HP: 8, Damage: 3, Tier: 2, Icon: '⚉'},
	'T': {Name: "Troll", HP: 15, Damage: 4, Tier: 3, Icon: '♖'},
}

// TopMonsterTier is the strongest tier; monsters of this tier drop the key
const TopMonsterTier = 3

// Monster is a passive creature that blocks movement until it is killed
type Monster struct {
	Name   string
	HP     int
	Damage int
	Letter byte
	Tier   int
}

// NewMonster creates a monster with default stats for the letter, or nil
// if the letter is not a monster
func NewMonster(letter byte) *Monster {
	info, ok := MonsterTypes[letter]
	if !ok {
		return nil
	}
	return &Monster{
		Name:   info.Name,
		HP:     info.HP,
		Damage: info.Damage,
		Letter: letter,
		Tier:   info.Tier,
	}
}

func (m *Monster) entity()    {}
func (m *Monster) Kind() Kind { return KindMonster }

// Symbol returns the monster glyph
func (m *Monster) Symbol() rune {
	if info, ok := MonsterTypes[m.Letter]; ok {
		return info.Icon
	}
	return '?'
}

// Token returns the bare letter while the monster is unhurt, otherwise
// letter:hp so the damage survives a save
func (m *Monster) Token() string {
	if info, ok := MonsterTypes[m.Letter]; ok && info.HP == m.HP {
		return string(m.Letter)
	}
	return fmt.Sprintf("%c:%d", m.Letter, m.HP)
}

// TakeDamage lowers HP, never below zero
func (m *Monster) TakeDamage(amount int) {
	m.HP = max(0, m.HP-amount)
}

// IsDead returns true once HP has reached zero
func (m *Monster) IsDead() bool {
	return m.HP <= 0
}

// DropsKey returns true if killing this monster leaves a key behind
func (m *Monster) DropsKey() bool {
	return m.Tier >= TopMonsterTier
}
