package domain

// LineItem pairs a product with the quantity held in the cart.
//
// Product is the value passed to Cart.Add at the time the line was created.
// Later changes to the catalog record never reach an existing line, so the
// price a customer saw when adding is the price the cart keeps.
type LineItem struct {
	Product  Product
	Quantity int
}

// LineTotal returns Product.Price * Quantity.
func (li LineItem) LineTotal() float64 {
	return li.Product.Price * float64(li.Quantity)
}

// Cart keeps at most one line per product id, in first-add order, with every
// quantity >= 1. None of its operations fail.
//
// Cart is not safe for concurrent use; callers that share one across goroutines
// must serialise access (see CartRepository).
//
// Add expects a well-formed Product (non-empty ID, non-negative Price). Nothing
// here rejects or repairs a malformed one.
type Cart struct {
	items []LineItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a snapshot of product with quantity 1, or bumps the quantity of
// the line already holding product.ID.
func (c *Cart) Add(product Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, LineItem{Product: product, Quantity: 1})
}

// Remove drops the line for productID, if any.
func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Increase adds one to the quantity of productID, if present.
func (c *Cart) Increase(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity++
	}
}

// Decrease subtracts one from the quantity of productID. A line at quantity 1
// is removed instead.
func (c *Cart) Decrease(productID string) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if c.items[i].Quantity > 1 {
		c.items[i].Quantity--
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Total is the sum of every line total, computed from the current lines on
// each call.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// Items returns a copy of the lines in cart order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count is the number of distinct lines.
func (c *Cart) Count() int {
	return len(c.items)
}

// Quantity returns the quantity held for productID, 0 when absent.
func (c *Cart) Quantity(productID string) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Snapshot captures the read model of the cart at this instant.
func (c *Cart) Snapshot() CartSnapshot {
	return CartSnapshot{
		Items: c.Items(),
		Total: c.Total(),
		Count: c.Count(),
	}
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// CartSnapshot is an immutable view of a cart handed to renderers and checkout.
type CartSnapshot struct {
	Items []LineItem
	Total float64
	Count int
}
