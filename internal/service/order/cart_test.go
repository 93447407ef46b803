package order

import (
	"testing"

	"guppyreal/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestCartAddItemMergesSameKey(t *testing.T) {
	var c Cart
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPiece, d(100))

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestCartAddItemKeepsFirstPrice(t *testing.T) {
	var c Cart
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPiece, d(999))

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !lines[0].UnitPrice.Equal(d(100)) {
		t.Fatalf("expected price frozen at 100, got %s", lines[0].UnitPrice)
	}
	if !c.FishSubtotal().Equal(d(200)) {
		t.Fatalf("expected subtotal 200, got %s", c.FishSubtotal())
	}
}

func TestCartAddItemDistinctKeysKeepInsertionOrder(t *testing.T) {
	var c Cart
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Blue Moscow", domain.UnitPair, d(250))
	c.AddItem("Full Gold", domain.UnitPair, d(180))

	lines := c.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	wantNames := []string{"Full Gold", "Blue Moscow", "Full Gold"}
	wantUnits := []domain.UnitKind{domain.UnitPiece, domain.UnitPair, domain.UnitPair}
	for i := range lines {
		if lines[i].BreedName != wantNames[i] || lines[i].Unit != wantUnits[i] {
			t.Fatalf("line %d: got (%s, %s)", i, lines[i].BreedName, lines[i].Unit)
		}
		if lines[i].Quantity != 1 {
			t.Fatalf("line %d: expected quantity 1, got %d", i, lines[i].Quantity)
		}
	}
}

func TestCartSamePairDifferentUnitsAreSeparateLines(t *testing.T) {
	var c Cart
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPair, d(180))

	if got := len(c.Lines()); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}

func TestCartFishSubtotal(t *testing.T) {
	var c Cart
	if !c.FishSubtotal().Equal(d(0)) {
		t.Fatalf("expected empty subtotal 0, got %s", c.FishSubtotal())
	}

	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	if !c.FishSubtotal().Equal(d(300)) {
		t.Fatalf("expected subtotal 300, got %s", c.FishSubtotal())
	}
}

func TestCartFishSubtotalNoDriftOnFractionalPrices(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	var c Cart
	for i := 0; i < 1000; i++ {
		c.AddItem("Albino Koi", domain.UnitPiece, price)
	}
	want := decimal.RequireFromString("19990")
	if !c.FishSubtotal().Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, c.FishSubtotal())
	}
}

func TestCartGrandTotalWaivesShippingWhenEmpty(t *testing.T) {
	var c Cart
	if !c.GrandTotal(d(60)).Equal(d(0)) {
		t.Fatalf("expected empty grand total 0, got %s", c.GrandTotal(d(60)))
	}

	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	if !c.GrandTotal(d(60)).Equal(d(360)) {
		t.Fatalf("expected grand total 360, got %s", c.GrandTotal(d(60)))
	}
}

func TestCartRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.AddItem("Blue Moscow", domain.UnitPair, d(250))
	c.AddItem("Red Dragon", domain.UnitPiece, d(120))

	c.RemoveItem("no-such-line")
	if got := len(c.Lines()); got != 3 {
		t.Fatalf("remove of unknown id changed the cart: %d lines", got)
	}

	mid := c.Lines()[1].ID
	c.RemoveItem(mid)
	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].BreedName != "Full Gold" || lines[1].BreedName != "Red Dragon" {
		t.Fatalf("relative order not preserved: %s, %s", lines[0].BreedName, lines[1].BreedName)
	}
}

func TestCartClear(t *testing.T) {
	var c Cart
	c.AddItem("Full Gold", domain.UnitPiece, d(100))
	c.Clear()
	if !c.Empty() {
		t.Fatalf("expected empty cart after clear")
	}
	if !c.FishSubtotal().Equal(d(0)) {
		t.Fatalf("expected subtotal 0 after clear, got %s", c.FishSubtotal())
	}
}

func TestCartPriceChangeDoesNotReachBack(t *testing.T) {
	b := domain.Breed{Name: "Full Gold", PricePerPiece: d(100), PricePerPair: d(180)}

	var c Cart
	c.AddItem(b.Name, domain.UnitPiece, b.PriceFor(domain.UnitPiece))

	// catalog edit after the line was added
	b.PricePerPiece = d(500)

	line := c.Lines()[0]
	if !line.UnitPrice.Equal(d(100)) {
		t.Fatalf("expected stored price 100, got %s", line.UnitPrice)
	}
	if !c.FishSubtotal().Equal(d(100)) {
		t.Fatalf("expected subtotal 100, got %s", c.FishSubtotal())
	}
}
