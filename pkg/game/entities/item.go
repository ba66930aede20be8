package entities

// WeaponInfo holds the stats for a weapon letter
type WeaponInfo struct {
	Name   string
	Damage int
	Icon   rune
}

// WeaponTypes maps room-file letters to weapons, weakest first
var WeaponTypes = map[byte]WeaponInfo{
	'S': {Name: "Stick", Damage: 1, Icon: '†'},
	'W': {Name: "Weak Sword", Damage: 2, Icon: '⚔'},
	'X': {Name: "Strong Sword", Damage: 3, Icon: '⚒'},
}

// PotionInfo holds the stats for a potion letter
type PotionInfo struct {
	Name string
	Heal int
	Icon rune
}

// PotionTypes maps room-file letters to potions
var PotionTypes = map[byte]PotionInfo{
	'm': {Name: "Minor Flask", Heal: 6, Icon: '♡'},
	'B': {Name: "Big Flask", Heal: 12, Icon: '♥'},
}

// Weapon can be equipped by the hero; one at a time
type Weapon struct {
	Name   string
	Damage int
	Letter byte
}

// NewWeapon creates the weapon for a letter, or nil
func NewWeapon(letter byte) *Weapon {
	info, ok := WeaponTypes[letter]
	if !ok {
		return nil
	}
	return &Weapon{Name: info.Name, Damage: info.Damage, Letter: letter}
}

func (w *Weapon) entity()       {}
func (w *Weapon) Kind() Kind    { return KindWeapon }
func (w *Weapon) Token() string { return string(w.Letter) }

func (w *Weapon) Symbol() rune {
	if info, ok := WeaponTypes[w.Letter]; ok {
		return info.Icon
	}
	return '?'
}

// Potion heals the hero once and is then gone
type Potion struct {
	Name   string
	Heal   int
	Letter byte
}

// NewPotion creates the potion for a letter, or nil
func NewPotion(letter byte) *Potion {
	info, ok := PotionTypes[letter]
	if !ok {
		return nil
	}
	return &Potion{Name: info.Name, Heal: info.Heal, Letter: letter}
}

func (p *Potion) entity()       {}
func (p *Potion) Kind() Kind    { return KindPotion }
func (p *Potion) Token() string { return string(p.Letter) }

func (p *Potion) Symbol() rune {
	if info, ok := PotionTypes[p.Letter]; ok {
		return info.Icon
	}
	return '?'
}

// KeyToken is the room-file token for the key
const KeyToken = "*"

// Key unlocks the locked door. Picked up on contact.
type Key struct{}

func (k *Key) entity()       {}
func (k *Key) Kind() Kind    { return KindKey }
func (k *Key) Symbol() rune  { return '✪' }
func (k *Key) Token() string { return KeyToken }
