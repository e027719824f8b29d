package game

// Hi-Lo weights per rank.
var hiLoWeights = map[string]int{
	"2": 1, "3": 1, "4": 1, "5": 1, "6": 1,
	"7": 0, "8": 0, "9": 0,
	"10": -1, "J": -1, "Q": -1, "K": -1, "A": -1,
}

// Counter keeps a running Hi-Lo count of every card it has seen since the
// last reset. While disabled it records nothing, so the count stays put.
type Counter struct {
	enabled bool
	count   int
}

func NewCounter() *Counter {
	return &Counter{}
}

// Enable turns counting on. The running count is not reset.
func (c *Counter) Enable() {
	c.enabled = true
}

// Enabled reports whether the counter is accumulating.
func (c *Counter) Enabled() bool {
	return c.enabled
}

// Reset zeroes the running count without touching the enabled flag.
func (c *Counter) Reset() {
	c.count = 0
}

// Record adds the card's Hi-Lo weight to the running count. No-op while
// disabled. Unknown ranks weigh 0.
func (c *Counter) Record(card Card) {
	if !c.enabled {
		return
	}
	c.count += hiLoWeights[card.Rank]
}

// Count returns the signed running count.
func (c *Counter) Count() int {
	return c.count
}
