package delivery

import (
	"fmt"
	"strings"

	"battery-delivery/internal/entities"

	"github.com/shopspring/decimal"
)

const notInformed = "Não informado"

// Summary текст заказа (comanda) для копирования продавцом. Формат фиксированный.
func Summary(d entities.Delivery) string {
	var b strings.Builder

	b.WriteString("📦 Comanda de Entrega\n")

	fmt.Fprintf(&b, "📍 Endereço: %s, nº %s", d.Address, d.Number)
	if d.Reference != nil && *d.Reference != "" {
		fmt.Fprintf(&b, " (%s)", *d.Reference)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "👤 Cliente: %s\n", d.Customer)
	fmt.Fprintf(&b, "📱 Telefone: %s\n", d.Phone)
	fmt.Fprintf(&b, "⚡ Bateria: %s\n", d.Battery)
	fmt.Fprintf(&b, "💰 Valor: R$ %s\n", formatValue(d.Value))
	fmt.Fprintf(&b, "💳 Pagamento: %s\n", d.PaymentMethod.Label())
	fmt.Fprintf(&b, "🚗 Veículo: %s\n", vehicleLabel(d.Vehicle))
	fmt.Fprintf(&b, "📅 Entrega: %s\n", scheduleLabel(d))
	fmt.Fprintf(&b, "📣 Canal: %s\n", orNotInformed(d.Channel))
	fmt.Fprintf(&b, "⚠️ Urgente: %s\n", yesNo(d.Urgent))
	fmt.Fprintf(&b, "👤 Vendedor: %s", orNotInformed(d.Seller))

	return b.String()
}

// formatValue денежный формат pt-BR: разделитель тысяч точка, копейки через запятую.
func formatValue(v *decimal.Decimal) string {
	if v == nil {
		return "0,00"
	}

	fixed := v.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return sign + grouped.String() + "," + fracPart
}

func vehicleLabel(v *entities.Vehicle) string {
	if v == nil || *v == "" {
		return notInformed
	}
	return v.Label()
}

func scheduleLabel(d entities.Delivery) string {
	if d.DeliveryDate == nil || d.DeliveryTime == nil || *d.DeliveryTime == "" {
		return "A definir"
	}
	return fmt.Sprintf("%s às %s", d.DeliveryDate.Format("02/01/2006"), *d.DeliveryTime)
}

func orNotInformed(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return notInformed
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
