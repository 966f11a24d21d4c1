package response

// WebhookAck is returned with 200 for every webhook call, including the ones
// that were ignored.
type WebhookAck struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func Ack(status string) WebhookAck {
	return WebhookAck{Status: status}
}

func Ignored(reason string) WebhookAck {
	return WebhookAck{Status: "ignored", Reason: reason}
}
