package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/warungberkah/storefront/services/cart"
)

const divider = "━━━━━━━━━━━━━━━"

// FormatRupiah renders a whole-rupiah amount the way the storefront shows
// prices: "Rp 3.500", dots as thousands separators, no decimals.
func FormatRupiah(amount int) string {
	digits := fmt.Sprintf("%d", amount)

	var grouped strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteRune('.')
		}
		grouped.WriteRune(digit)
	}

	return "Rp " + grouped.String()
}

// BuildMessage composes the human-readable order summary that gets handed
// off to WhatsApp. It walks the lines in display order; the text has no
// parsing counterpart, readability is the only requirement.
func BuildMessage(order Order, lines []cart.Line, totalPrice int, shopName string) string {
	var b strings.Builder

	b.WriteString("*PESANAN BARU*\n")
	b.WriteString(divider + "\n\n")

	b.WriteString("*Data Pemesan:*\n")
	fmt.Fprintf(&b, "Nama: %s\n", order.Name)
	fmt.Fprintf(&b, "Telepon: %s\n", order.Phone)
	fmt.Fprintf(&b, "Alamat: %s\n", order.Address)
	if order.Notes != "" {
		fmt.Fprintf(&b, "Catatan: %s\n", order.Notes)
	}

	fmt.Fprintf(&b, "\n*Metode Pembayaran:* %s\n", order.PaymentMethodDescription())

	b.WriteString("\n" + divider + "\n")
	b.WriteString("*Detail Pesanan:*\n\n")

	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line.Product.Name)
		fmt.Fprintf(&b, "   %d x %s = %s\n", line.Quantity, FormatRupiah(line.Product.Price), FormatRupiah(line.Subtotal()))
	}

	b.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&b, "*TOTAL: %s*\n", FormatRupiah(totalPrice))
	b.WriteString(divider + "\n\n")

	fmt.Fprintf(&b, "Terima kasih telah berbelanja di %s!", shopName)

	return b.String()
}

// WhatsAppURL builds the deep link that opens a pre-filled chat with the
// shop's WhatsApp number.
func WhatsAppURL(whatsAppNumber string, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", whatsAppNumber, url.QueryEscape(message))
}
