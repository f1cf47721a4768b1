package protocol

import "encoding/json"

// Kind identifies what happened in the game
type Kind int

const (
	Null Kind = iota
	GameStarted
	RoundStart
	OffersCreated
	CardTaken
	TrophyAwarded
	BonusMalusApplied
	GameOver
	Message
)

var KindNames = map[Kind]string{
	Null:              "Null",
	GameStarted:       "GameStarted",
	RoundStart:        "RoundStart",
	OffersCreated:     "OffersCreated",
	CardTaken:         "CardTaken",
	TrophyAwarded:     "TrophyAwarded",
	BonusMalusApplied: "BonusMalusApplied",
	GameOver:          "GameOver",
	Message:           "Message",
}

var NameToKind = map[string]Kind{
	"Null":              Null,
	"GameStarted":       GameStarted,
	"RoundStart":        RoundStart,
	"OffersCreated":     OffersCreated,
	"CardTaken":         CardTaken,
	"TrophyAwarded":     TrophyAwarded,
	"BonusMalusApplied": BonusMalusApplied,
	"GameOver":          GameOver,
	"Message":           Message,
}

func (k Kind) String() string {
	name, ok := KindNames[k]
	if !ok {
		return "Unknown"
	}
	return name
}

// MarshalJSON writes the kind by name so feed clients don't depend on the numbering
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*k = NameToKind[name]
	return nil
}
