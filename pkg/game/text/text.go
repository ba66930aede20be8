// Package text holds the player-facing message catalog.
package text

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locale/en/default.po
var defaultCatalog []byte

var catalog = load(defaultCatalog)

func load(buf []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(buf)
	return po
}

// Get returns the message for key, formatted with vars. Unknown keys come
// back unchanged so a missing translation is visible rather than blank.
func Get(key string, vars ...interface{}) string {
	return catalog.Get(key, vars...)
}
