package order

import (
	"fmt"
	"strings"

	"guppyreal/internal/domain"
	"github.com/shopspring/decimal"
)

const divider = "----------------------------"

// Summary renders the cart into the LINE order message. An empty cart renders
// to the empty string. Line totals and the grand total are taken from the same
// arithmetic as FishSubtotal/GrandTotal, never recomputed separately.
func (c Cart) Summary(s domain.Settings) string {
	if c.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("🐠 สรุปยอดสั่งซื้อปลาครับ\n")
	b.WriteString(divider + "\n")
	for i, l := range c.lines {
		fmt.Fprintf(&b, "%d. %s: %d %s (%s.-)\n", i+1, l.BreedName, l.Quantity, l.Unit.Label(), formatAmount(l.Total()))
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "💰 ยอดรวม: %s บาท\n", formatAmount(c.GrandTotal(s.ShippingFee)))
	fmt.Fprintf(&b, "🚚 (รวมค่าส่ง %s.- แล้ว)\n", plainAmount(s.ShippingFee))
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "🏦 ชำระได้ที่: %s\n", s.BankName)
	fmt.Fprintf(&b, "เลขบัญชี: %s\n", s.AccountNumber)
	fmt.Fprintf(&b, "ชื่อบัญชี: %s\n", s.AccountName)
	b.WriteString(divider + "\n")
	b.WriteString("แจ้งสลิปและที่อยู่ได้เลยครับ 🙏✨")
	return b.String()
}

// plainAmount prints a baht amount with no separators. Trailing fractional
// zeros are dropped, so amounts loaded from numeric(12,2) columns print as
// whole baht unless they really carry satang. The shipping fee line uses this
// form; the totals add thousands separators via formatAmount.
func plainAmount(d decimal.Decimal) string {
	intPart, frac, _ := strings.Cut(d.String(), ".")
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}

// formatAmount prints a baht amount with thousands separators.
func formatAmount(d decimal.Decimal) string {
	intPart, frac, hasFrac := strings.Cut(plainAmount(d), ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
