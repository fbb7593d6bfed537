package types

// DeviceCode is the server's response to a device authorization request.
type DeviceCode struct {
	UserCode         string `json:"user_code"`
	DeviceCode       string `json:"device_code"`
	VerificationURL  string `json:"verification_url"`
	PollIntervalSecs int    `json:"poll_interval_secs"`
}

// TokenInfo is an issued access token and its expiry (RFC3339).
type TokenInfo struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration,omitempty"`
}
