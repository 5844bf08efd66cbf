package entity

// TokensPerSize is how many tokens of each size a player starts with.
const TokensPerSize = 2

// Inventory counts the tokens a player has not placed yet.
type Inventory struct {
	counts [Big + 1]int
}

func NewInventory() Inventory {
	var inventory Inventory
	for _, size := range Sizes {
		inventory.counts[size] = TokensPerSize
	}

	return inventory
}

func (that Inventory) Remaining(size Size) int {
	if !size.IsValid() {
		return 0
	}

	return that.counts[size]
}

func (that Inventory) Has(size Size) bool {
	return that.Remaining(size) > 0
}

func (that Inventory) Total() int {
	total := 0
	for _, size := range Sizes {
		total += that.counts[size]
	}

	return total
}

// take consumes one token of size, reporting false when there is none left.
func (that *Inventory) take(size Size) bool {
	if !that.Has(size) {
		return false
	}

	that.counts[size]--

	return true
}
