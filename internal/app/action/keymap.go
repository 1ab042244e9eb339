package action

import "strings"

var keyIntents = map[string]Intent{
	"w": {Type: ActionMove, Direction: "up"},
	"a": {Type: ActionMove, Direction: "left"},
	"s": {Type: ActionMove, Direction: "down"},
	"d": {Type: ActionMove, Direction: "right"},
	"p": {Type: ActionPlant},
	"h": {Type: ActionHarvest},
	"r": {Type: ActionRemove},
	"t": {Type: ActionTill},
	"u": {Type: ActionUntill},
	"n": {Type: ActionNewDay},
	"b": {Type: ActionBuy},
	"v": {Type: ActionSell},
}

// IntentForKey maps a single keyboard key to the intent it triggers. Keys
// are matched case-insensitively.
func IntentForKey(key string) (Intent, bool) {
	in, ok := keyIntents[strings.ToLower(strings.TrimSpace(key))]
	return in, ok
}

// KeyBindings lists the bound keys in dispatch order: movement, then the
// steps of a season, then the day change. Help screens use the same order.
func KeyBindings() []string {
	return []string{"w", "a", "s", "d", "b", "t", "p", "h", "v", "r", "u", "n"}
}
