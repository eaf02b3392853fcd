// Package businessflow contains the core business logic flows for authentication and company management
package businessflow

// ClientMetadata holds client request information for audit logging
type ClientMetadata struct {
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id"`
}

// NewClientMetadata creates client metadata from request information
func NewClientMetadata(ip, userAgent, requestID string) *ClientMetadata {
	return &ClientMetadata{
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
	}
}
