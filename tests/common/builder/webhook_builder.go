//go:build unit || e2e

package builder

// Field sets key on a webhook body, or removes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// PaymentWebhook returns a gateway payment callback body.
func PaymentWebhook(orderRef, status, phone string, muts ...func(map[string]any)) map[string]any {
	m := map[string]any{
		"order_id":     orderRef,
		"status":       status,
		"product_code": "prod_fab",
		"customer": map[string]any{
			"name":  "Maria Silva",
			"phone": phone,
		},
		"amount":       "97,00",
		"payment_link": "https://pay.example.com/pix/" + orderRef,
	}
	for _, f := range muts {
		f(m)
	}
	return m
}

func ReplyWebhook(phone, message string, muts ...func(map[string]any)) map[string]any {
	m := map[string]any{
		"sender":    phone + "@s.whatsapp.net",
		"direction": "inbound",
		"message":   message,
		"instance":  "instance-1",
	}
	for _, f := range muts {
		f(m)
	}
	return m
}

func ConfirmationWebhook(phone string, completed any) map[string]any {
	return map[string]any{
		"event":     "step_sent",
		"phone":     phone,
		"instance":  "instance-1",
		"completed": completed,
	}
}
