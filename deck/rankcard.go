package deck

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Wild", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight"}
var rankSymbols = []string{"*", "A", "2", "3", "4", "5", "6", "7", "8"}

const (
	WildRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
)

var (
	baseRanks     = []Rank{Ace, Two, Three, Four}
	extendedRanks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight}
)

// Ranks returns the playable ranks: Ace to Four, or Ace to Eight with the extended cards.
func Ranks(extended bool) []Rank {
	if extended {
		return append([]Rank{}, extendedRanks...)
	}
	return append([]Rank{}, baseRanks...)
}

// Value is the face value of the rank. The wild rank is worth nothing.
func (r Rank) Value() int {
	if !r.valid() {
		return 0
	}
	return int(r)
}

func (r Rank) String() string {
	if !r.valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Symbol is the short form used when printing a card
func (r Rank) Symbol() string {
	if !r.valid() {
		return "?"
	}
	return rankSymbols[r]
}

func (r Rank) valid() bool {
	return r >= WildRank && r <= Eight
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Spades", "Clubs", "Diamonds", "Hearts", "Wild"}
var suitSymbols = []string{"♠", "♣", "♦", "♥", "★"}

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
	Wild
)

// Suits lists the four real suits in deck order.
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

func (s Suit) String() string {
	if !s.valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// Symbol is the glyph used when printing a card
func (s Suit) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Priority orders the suits for breaking ties: Spades > Clubs > Diamonds > Hearts.
func (s Suit) Priority() int {
	switch s {
	case Spades:
		return 4
	case Clubs:
		return 3
	case Diamonds:
		return 2
	case Hearts:
		return 1
	default:
		return 0
	}
}

func (s Suit) valid() bool {
	return s >= Spades && s <= Wild
}
